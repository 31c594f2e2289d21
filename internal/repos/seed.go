package repos

import "ayurveda/internal/domain"

// DefaultCategories is served when no category list has been saved yet.
func DefaultCategories() []string {
	return []string{
		"Herbal Oils",
		"Ayurvedic Powders",
		"Herbal Tablets",
		"Ayurvedic Creams",
		"Herbal Teas",
	}
}

// DefaultProducts is the storefront's baseline catalog, written once
// when the product store is empty.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Rajwadiprash Gold - Ayurvedic Hair Oil",
			Category:    "oils",
			Price:       799,
			Discount:    25,
			Description: "Sugar-free Ayurvedic hair oil enriched with gold, silver & saffron. Natural blend of 21 precious herbs for strong, lustrous and healthy hair growth",
		},
		{
			ID:          2,
			Name:        "Dantmanjan - Triphala Dental Powder",
			Category:    "powders",
			Price:       450,
			Discount:    15,
			Description: "Traditional Ayurvedic dental powder with Triphala for strong teeth and healthy gums. Ancient herbal blend for complete oral care and fresh breath",
		},
		{
			ID:          3,
			Name:        "Ashwagandha Tablets - Premium Quality",
			Category:    "tablets",
			Price:       1299,
			Discount:    30,
			Description: "Premium quality Ashwagandha tablets for stress relief, vitality and overall wellness. Powerful adaptogen for energy, immunity and mental clarity",
		},
		{
			ID:          4,
			Name:        "Triphaladi Guggulu - Ayurvedic Face Cream",
			Category:    "creams",
			Price:       599,
			Discount:    20,
			Description: "Natural Ayurvedic face cream with Triphala and saffron. Enriched with turmeric for glowing, radiant and youthful skin. Suitable for all skin types",
		},
		{
			ID:          5,
			Name:        "Maha Yograj Guggulu - Herbal Tea",
			Category:    "tea",
			Price:       350,
			Discount:    10,
			Description: "Refreshing Ayurvedic herbal tea with holy basil (Tulsi) for immunity boost, digestive health and natural detoxification. Rich in antioxidants",
		},
		{
			ID:          6,
			Name:        "Pushpanjali Ras - Neem Face Pack Powder",
			Category:    "powders",
			Price:       299,
			Discount:    15,
			Description: "Pure natural neem powder face pack for clear, radiant and acne-free skin. Deep cleanses pores and removes impurities for healthy glowing complexion",
		},
		{
			ID:          7,
			Name:        "Vatshekhar Ras - Joint Pain Relief Oil",
			Category:    "oils",
			Price:       899,
			Discount:    35,
			Description: "Traditional Ayurvedic oil blend for effective joint pain relief, improved mobility and flexibility. Helps reduce inflammation and stiffness naturally",
		},
		{
			ID:          8,
			Name:        "Brahmi Capsules - Memory & Brain Tonic",
			Category:    "tablets",
			Price:       1499,
			Discount:    40,
			Description: "Premium Brahmi capsules for enhanced memory, concentration and mental clarity. Ancient Ayurvedic brain tonic for cognitive support and stress relief",
		},
	}
}

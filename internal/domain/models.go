package domain

import (
	"math"
	"strconv"
	"time"
)

// Order status values. Transitions only move out of StatusInProgress;
// completed and cancelled are terminal.
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Price       float64 `json:"price" db:"price"`
	Discount    float64 `json:"discount" db:"discount"` // percent, 0-100
	Image       string  `json:"image" db:"image"`
	Description string  `json:"description" db:"description"`
}

// DiscountedPrice is the rounded selling price after discount.
func (p Product) DiscountedPrice() float64 {
	return math.Round(p.Price - p.Price*p.Discount/100)
}

// RawDiscountedPrice is the unrounded value; the price-bucket filter
// compares against this, not the rounded figure.
func (p Product) RawDiscountedPrice() float64 {
	return p.Price - p.Price*p.Discount/100
}

type Order struct {
	ID                 string     `json:"id" db:"id"`
	ProductID          int64      `json:"productId" db:"product_id"`
	ProductName        string     `json:"productName" db:"product_name"`
	ProductImage       string     `json:"productImage" db:"product_image"`
	Price              float64    `json:"price" db:"price"`
	OriginalPrice      float64    `json:"originalPrice" db:"original_price"`
	Discount           float64    `json:"discount" db:"discount"`
	CustomerName       string     `json:"customerName" db:"customer_name"`
	CustomerMobile     string     `json:"customerMobile" db:"customer_mobile"`
	CustomerAddress    string     `json:"customerAddress" db:"customer_address"`
	CustomerEmail      string     `json:"customerEmail,omitempty" db:"customer_email"`
	OrderDate          time.Time  `json:"orderDate" db:"order_date"`
	DeliveryDate       time.Time  `json:"deliveryDate" db:"delivery_date"`
	Status             string     `json:"status" db:"status"`
	PaymentMethod      string     `json:"paymentMethod" db:"payment_method"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CancellationReason string     `json:"cancellationReason,omitempty" db:"cancellation_reason"`
}

// NewOrderID builds the "ORD" + milliseconds id the storefront has
// always issued.
func NewOrderID(t time.Time) string {
	return "ORD" + strconv.FormatInt(t.UnixMilli(), 10)
}

// Final reports whether the order is in a terminal state.
func (o Order) Final() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// Savings is the amount knocked off by the discount.
func (o Order) Savings() float64 { return o.OriginalPrice - o.Price }

// CategoryName maps a product category slug to its display name.
// Unknown slugs pass through unchanged.
func CategoryName(slug string) string {
	names := map[string]string{
		"oils":    "Herbal Oils",
		"powders": "Ayurvedic Powders",
		"tablets": "Herbal Tablets",
		"creams":  "Ayurvedic Creams",
		"tea":     "Herbal Teas",
	}
	if n, ok := names[slug]; ok {
		return n
	}
	return slug
}

package services

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

var ErrOrderFinal = errors.New("order already completed or cancelled")

type PlaceOrderInput struct {
	ProductID     int64
	Name          string
	Mobile        string
	Address       string
	Email         string
	PaymentMethod string
}

// OrderSummary aggregates a customer's order history for the account
// page: amounts use the charged (discounted) price, savings the delta
// to the original price.
type OrderSummary struct {
	Count        int     `json:"count"`
	InProgress   int     `json:"inProgress"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	TotalAmount  float64 `json:"totalAmount"`
	TotalSavings float64 `json:"totalSavings"`
}

type OrderService struct {
	Products repos.ProductRepo
	Orders   repos.OrderRepo
	Users    repos.UserRepo
	Mail     *Mailer
}

func NewOrderService(products repos.ProductRepo, orders repos.OrderRepo, users repos.UserRepo, mail *Mailer) *OrderService {
	return &OrderService{Products: products, Orders: orders, Users: users, Mail: mail}
}

// Place creates an order with a full snapshot of the product at
// purchase time, so later catalog edits never rewrite history. The
// charged price is the rounded discounted price; delivery is a fixed
// seven days out.
func (s *OrderService) Place(in PlaceOrderInput) (domain.Order, error) {
	p, err := s.Products.Get(in.ProductID)
	if err != nil {
		return domain.Order{}, err
	}

	now := time.Now()
	o := domain.Order{
		ID:              domain.NewOrderID(now),
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductImage:    p.Image,
		Price:           p.DiscountedPrice(),
		OriginalPrice:   p.Price,
		Discount:        p.Discount,
		CustomerName:    in.Name,
		CustomerMobile:  in.Mobile,
		CustomerAddress: in.Address,
		CustomerEmail:   in.Email,
		OrderDate:       now,
		DeliveryDate:    now.Add(7 * 24 * time.Hour),
		Status:          domain.StatusInProgress,
		PaymentMethod:   in.PaymentMethod,
	}
	if err := s.Orders.Create(o); err != nil {
		return domain.Order{}, err
	}

	// Remember the customer for the next checkout; an order must not
	// fail because the address book write did.
	if _, err := s.Users.Upsert(domain.User{
		Name:    in.Name,
		Mobile:  in.Mobile,
		Email:   in.Email,
		Address: in.Address,
	}); err != nil {
		log.Printf("orders: customer record for %s not saved: %v", o.ID, err)
	}

	if in.Email != "" && s.Mail.Enabled() {
		go s.Mail.SendOrderConfirmation(in.Email, o)
	}
	return o, nil
}

// List returns orders newest first, optionally restricted by status
// and/or customer mobile.
func (s *OrderService) List(status, mobile string) ([]domain.Order, error) {
	all, err := s.Orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if status != "" && o.Status != status {
			continue
		}
		if mobile != "" && o.CustomerMobile != mobile {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out, nil
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	return s.Orders.Get(id)
}

// Cancel is only valid while the order is still in progress.
func (s *OrderService) Cancel(id, reason string) (domain.Order, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Final() {
		return domain.Order{}, ErrOrderFinal
	}
	now := time.Now()
	o.Status = domain.StatusCancelled
	o.CancelledAt = &now
	o.CancellationReason = strings.TrimSpace(reason)
	if err := s.Orders.Update(o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (s *OrderService) Complete(id string) (domain.Order, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Final() {
		return domain.Order{}, ErrOrderFinal
	}
	o.Status = domain.StatusCompleted
	if err := s.Orders.Update(o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// Summary totals exclude cancelled orders from amount and savings.
func (s *OrderService) Summary(mobile string) (OrderSummary, error) {
	orders, err := s.List("", mobile)
	if err != nil {
		return OrderSummary{}, err
	}
	var sum OrderSummary
	for _, o := range orders {
		sum.Count++
		switch o.Status {
		case domain.StatusInProgress:
			sum.InProgress++
		case domain.StatusCompleted:
			sum.Completed++
		case domain.StatusCancelled:
			sum.Cancelled++
		}
		if o.Status != domain.StatusCancelled {
			sum.TotalAmount += o.Price
			sum.TotalSavings += o.Savings()
		}
	}
	return sum, nil
}

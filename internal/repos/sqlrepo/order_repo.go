package sqlrepo

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"ayurveda/internal/domain"
	"ayurveda/internal/repos"
)

type OrderRepo struct{ db *sqlx.DB }

type orderRow struct {
	ID                 string          `db:"id"`
	ProductID          int64           `db:"product_id"`
	ProductName        string          `db:"product_name"`
	ProductImage       string          `db:"product_image"`
	Price              float64         `db:"price"`
	OriginalPrice      float64         `db:"original_price"`
	Discount           float64         `db:"discount"`
	CustomerName       string          `db:"customer_name"`
	CustomerMobile     string          `db:"customer_mobile"`
	CustomerAddress    string          `db:"customer_address"`
	CustomerEmail      string          `db:"customer_email"`
	OrderDate          string          `db:"order_date"`
	DeliveryDate       string          `db:"delivery_date"`
	Status             string          `db:"status"`
	PaymentMethod      string          `db:"payment_method"`
	CancelledAt        sql.NullString  `db:"cancelled_at"`
	CancellationReason string          `db:"cancellation_reason"`
}

func (row orderRow) toDomain() domain.Order {
	orderDate, _ := time.Parse(timeLayout, row.OrderDate)
	deliveryDate, _ := time.Parse(timeLayout, row.DeliveryDate)
	o := domain.Order{
		ID:                 row.ID,
		ProductID:          row.ProductID,
		ProductName:        row.ProductName,
		ProductImage:       row.ProductImage,
		Price:              row.Price,
		OriginalPrice:      row.OriginalPrice,
		Discount:           row.Discount,
		CustomerName:       row.CustomerName,
		CustomerMobile:     row.CustomerMobile,
		CustomerAddress:    row.CustomerAddress,
		CustomerEmail:      row.CustomerEmail,
		OrderDate:          orderDate,
		DeliveryDate:       deliveryDate,
		Status:             row.Status,
		PaymentMethod:      row.PaymentMethod,
		CancellationReason: row.CancellationReason,
	}
	if row.CancelledAt.Valid && row.CancelledAt.String != "" {
		if ts, err := time.Parse(timeLayout, row.CancelledAt.String); err == nil {
			o.CancelledAt = &ts
		}
	}
	return o
}

func cancelledAtValue(o domain.Order) any {
	if o.CancelledAt == nil {
		return nil
	}
	return o.CancelledAt.Format(timeLayout)
}

const orderCols = `id, product_id, product_name, product_image, price, original_price, discount,
  customer_name, customer_mobile, customer_address, customer_email,
  order_date, delivery_date, status, payment_method, cancelled_at, cancellation_reason`

func (r *OrderRepo) List() ([]domain.Order, error) {
	var rows []orderRow
	if err := r.db.Select(&rows, `SELECT `+orderCols+` FROM orders ORDER BY position`); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var row orderRow
	err := r.db.Get(&row, `SELECT `+orderCols+` FROM orders WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, repos.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return row.toDomain(), nil
}

func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(`+orderCols+`, position)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?, (SELECT COALESCE(MAX(position),0)+1 FROM orders))
	`, o.ID, o.ProductID, o.ProductName, o.ProductImage, o.Price, o.OriginalPrice, o.Discount,
		o.CustomerName, o.CustomerMobile, o.CustomerAddress, o.CustomerEmail,
		o.OrderDate.Format(timeLayout), o.DeliveryDate.Format(timeLayout),
		o.Status, o.PaymentMethod, cancelledAtValue(o), o.CancellationReason)
	return err
}

func (r *OrderRepo) Update(o domain.Order) error {
	res, err := r.db.Exec(`
	  UPDATE orders SET status=?, cancelled_at=?, cancellation_reason=?,
	    customer_name=?, customer_mobile=?, customer_address=?, customer_email=?
	  WHERE id=?
	`, o.Status, cancelledAtValue(o), o.CancellationReason,
		o.CustomerName, o.CustomerMobile, o.CustomerAddress, o.CustomerEmail, o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repos.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) ReplaceAll(os []domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(`DELETE FROM orders`); err != nil {
		return err
	}
	for i, o := range os {
		if _, err := tx.Exec(`
		  INSERT INTO orders(`+orderCols+`, position)
		  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, o.ID, o.ProductID, o.ProductName, o.ProductImage, o.Price, o.OriginalPrice, o.Discount,
			o.CustomerName, o.CustomerMobile, o.CustomerAddress, o.CustomerEmail,
			o.OrderDate.Format(timeLayout), o.DeliveryDate.Format(timeLayout),
			o.Status, o.PaymentMethod, cancelledAtValue(o), o.CancellationReason, i+1); err != nil {
			return err
		}
	}
	return tx.Commit()
}

package order

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) error
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemSnapshot) error
	List(ctx context.Context, limit int) ([]model.Order, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, o *model.Order) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, status, total_amount, currency, customer_name, email, phone, address, payment_method, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, string(o.Status), o.TotalAmount, o.Currency, o.CustomerName,
		o.Email, o.Phone, o.Address, o.PaymentMethod, o.CreatedAt)
	return err
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemSnapshot) error {
	q := "INSERT INTO order_items (order_id, product_id, name_en, name_vi, price, quantity) VALUES (?, ?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.NameEn, it.NameVi, it.Price, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

type orderRow struct {
	ID            string    `db:"id"`
	Status        string    `db:"status"`
	TotalAmount   float64   `db:"total_amount"`
	Currency      string    `db:"currency"`
	CustomerName  string    `db:"customer_name"`
	Email         *string   `db:"email"`
	Phone         *string   `db:"phone"`
	Address       string    `db:"address"`
	PaymentMethod string    `db:"payment_method"`
	CreatedAt     time.Time `db:"created_at"`
}

type orderItemRow struct {
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	NameEn    string  `db:"name_en"`
	NameVi    string  `db:"name_vi"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
}

// List returns the most recent orders with their item snapshots attached.
func (r *SQL) List(ctx context.Context, limit int) ([]model.Order, error) {
	rows, err := r.conn.QueryxContext(ctx,
		`SELECT id, status, total_amount, currency, customer_name, email, phone, address, payment_method, created_at
		 FROM orders ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	index := make(map[string]int)
	ids := make([]interface{}, 0)
	for rows.Next() {
		var or orderRow
		if err := rows.StructScan(&or); err != nil {
			return nil, err
		}
		index[or.ID] = len(orders)
		ids = append(ids, or.ID)
		orders = append(orders, model.Order{
			ID:            or.ID,
			Status:        constant.OrderStatus(or.Status),
			TotalAmount:   or.TotalAmount,
			Currency:      or.Currency,
			CustomerName:  or.CustomerName,
			Email:         or.Email,
			Phone:         or.Phone,
			Address:       or.Address,
			PaymentMethod: or.PaymentMethod,
			CreatedAt:     or.CreatedAt,
			Items:         []model.OrderItemSnapshot{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	query, args, err := sqlx.In(
		"SELECT order_id, product_id, name_en, name_vi, price, quantity FROM order_items WHERE order_id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	itemRows, err := r.conn.QueryxContext(ctx, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var ir orderItemRow
		if err := itemRows.StructScan(&ir); err != nil {
			return nil, err
		}
		if i, ok := index[ir.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, model.OrderItemSnapshot{
				ProductID: ir.ProductID,
				NameEn:    ir.NameEn,
				NameVi:    ir.NameVi,
				Price:     ir.Price,
				Quantity:  ir.Quantity,
			})
		}
	}
	return orders, itemRows.Err()
}

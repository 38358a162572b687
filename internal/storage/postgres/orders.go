package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, order_number, customer_id, customer_name, customer_email, customer_phone,
       customer_address, customer_state, subtotal, shipping_charges, total_amount,
       payment_status, order_status, gateway_order_id, gateway_payment_id, gateway_signature,
       created_at, updated_at`

func scanOrder(row scanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.CustomerAddress, &o.CustomerState, &o.Subtotal, &o.ShippingCharges, &o.TotalAmount,
		&o.PaymentStatus, &o.OrderStatus, &o.GatewayOrderID, &o.GatewayPaymentID, &o.GatewaySignature,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (order_number, customer_id, customer_name, customer_email, customer_phone,
                             customer_address, customer_state, subtotal, shipping_charges, total_amount,
                             payment_status, order_status, gateway_order_id)
                         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                         RETURNING id, created_at, updated_at`
	const insertItem = `INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
                        VALUES ($1, $2, $3, $4, $5) RETURNING id`

	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.OrderNumber, order.CustomerID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
			order.CustomerAddress, order.CustomerState, order.Subtotal, order.ShippingCharges, order.TotalAmount,
			order.PaymentStatus, order.OrderStatus, order.GatewayOrderID,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range items {
			items[i].OrderID = created.ID
			if err := tx.QueryRow(ctx, insertItem,
				created.ID, items[i].ProductID, items[i].ProductName, items[i].Quantity, items[i].Price,
			).Scan(&items[i].ID); err != nil {
				return fmt.Errorf("insert order item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, number))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return order, nil
}

func (r *orderRepository) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, product_name, quantity, price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id int64, paymentID, signature string) (*model.Order, bool, error) {
	query := `UPDATE orders
              SET payment_status=$1, order_status=$2, gateway_payment_id=$3, gateway_signature=$4, updated_at=NOW()
              WHERE id=$5 AND payment_status=$6
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query,
		model.PaymentStatusCompleted, model.OrderStatusConfirmed, paymentID, signature, id, model.PaymentStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return order, true, nil
}

func (r *orderRepository) MarkFailed(ctx context.Context, id int64) (*model.Order, bool, error) {
	query := `UPDATE orders SET payment_status=$1, updated_at=NOW()
              WHERE id=$2 AND payment_status=$3
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, model.PaymentStatusFailed, id, model.PaymentStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return order, true, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	query := `UPDATE orders SET order_status=$1, updated_at=NOW()
              WHERE id=$2 AND order_status NOT IN ($3, $4)
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, id, model.OrderStatusDelivered, model.OrderStatusCancelled))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return order, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Los items viven en order_items con FK ON DELETE CASCADE.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido y sus items.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, customer_id, customer_name, table_label, total, status, payment_status, payment_method, counted_in_customer, created_at, sent_to_kitchen_at, completed_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.CustomerName, order.Table, order.Total,
		order.Status, order.PaymentStatus, order.PaymentMethod, order.CountedInCustomer,
		order.CreatedAt, order.SentToKitchenAt, order.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, position, product_id, name, quantity, unit_price, to_go, delivered)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, item := range items {
		if _, err := r.q.Exec(ctx, query,
			orderID, i, item.ProductID, item.Name, item.Quantity, item.UnitPrice, item.ToGo, item.Delivered,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus items. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	query := `
		SELECT id, COALESCE(customer_id::text, ''), customer_name, table_label, total, status, payment_status, payment_method, counted_in_customer, created_at, sent_to_kitchen_at, completed_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.Table, &o.Total, &o.Status,
		&o.PaymentStatus, &o.PaymentMethod, &o.CountedInCustomer,
		&o.CreatedAt, &o.SentToKitchenAt, &o.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT product_id, name, quantity, unit_price, to_go, delivered
		FROM order_items WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.UnitPrice, &it.ToGo, &it.Delivered); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List devuelve todos los pedidos con sus items, más recientes primero.
// El motor financiero trabaja sobre la colección completa; los items se
// cargan en una sola pasada para evitar N+1.
func (r *OrderRepo) List() ([]entity.Order, error) {
	ctx := context.Background()
	query := `
		SELECT id, COALESCE(customer_id::text, ''), customer_name, table_label, total, status, payment_status, payment_method, counted_in_customer, created_at, sent_to_kitchen_at, completed_at
		FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	index := map[string]int{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.Table, &o.Total, &o.Status,
			&o.PaymentStatus, &o.PaymentMethod, &o.CountedInCustomer,
			&o.CreatedAt, &o.SentToKitchenAt, &o.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT order_id, product_id, name, quantity, unit_price, to_go, delivered
		FROM order_items ORDER BY order_id, position`
	itemRows, err := r.q.Query(ctx, itemsQuery)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := itemRows.Scan(&orderID, &it.ProductID, &it.Name, &it.Quantity, &it.UnitPrice, &it.ToGo, &it.Delivered); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out, itemRows.Err()
}

// Update actualiza el encabezado del pedido. Los items son inmutables tras
// el checkout: solo cambian estado, pago, total y timestamps.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET total = $2, status = $3, payment_status = $4, payment_method = $5, counted_in_customer = $6, sent_to_kitchen_at = $7, completed_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		order.ID, order.Total, order.Status, order.PaymentStatus, order.PaymentMethod,
		order.CountedInCustomer, order.SentToKitchenAt, order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido (los items caen por cascada).
func (r *OrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía pedidos e items (reset financiero).
func (r *OrderRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM orders`); err != nil {
		return fmt.Errorf("delete all orders: %w", err)
	}
	return nil
}

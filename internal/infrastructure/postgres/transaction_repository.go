package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para movimientos de caja. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un movimiento de caja.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, amount, description, category, order_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Type, tx.Amount, tx.Description, string(tx.Category), tx.OrderID, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByOrderID obtiene la transacción de venta enlazada a un pedido.
// Devuelve (nil, nil) si el pedido no tiene transacción.
func (r *TransactionRepo) GetByOrderID(orderID string) (*entity.Transaction, error) {
	query := `
		SELECT id, type, amount, description, COALESCE(category, ''), COALESCE(order_id::text, ''), created_at
		FROM transactions WHERE order_id = $1 ORDER BY created_at LIMIT 1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&t.ID, &t.Type, &t.Amount, &t.Description, &t.Category, &t.OrderID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by order: %w", err)
	}
	return &t, nil
}

// List devuelve todos los movimientos, más recientes primero.
func (r *TransactionRepo) List() ([]entity.Transaction, error) {
	query := `
		SELECT id, type, amount, description, COALESCE(category, ''), COALESCE(order_id::text, ''), created_at
		FROM transactions ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Description, &t.Category, &t.OrderID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateAmount reescritura correctiva del monto (cambio del total del pedido enlazado).
func (r *TransactionRepo) UpdateAmount(id string, amount decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET amount = $2 WHERE id = $1`, id, amount)
	if err != nil {
		return fmt.Errorf("update transaction amount: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía el libro de caja (reset financiero).
func (r *TransactionRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("delete all transactions: %w", err)
	}
	return nil
}

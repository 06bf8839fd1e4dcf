package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
// Append-only: no hay update ni delete.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de persistencia para la bitácora. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append agrega una entrada a la bitácora.
func (r *AuditLogRepo) Append(entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, action, detail, user_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Action, entry.Detail, entry.UserID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devuelve las últimas entradas, más recientes primero.
func (r *AuditLogRepo) List(limit int) ([]entity.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, action, detail, COALESCE(user_id::text, ''), created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var out []entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		if err := rows.Scan(&e.ID, &e.Action, &e.Detail, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

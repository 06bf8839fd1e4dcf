package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// AuditLogRepository bitácora append-only.
type AuditLogRepository interface {
	Append(entry *entity.AuditLog) error
	List(limit int) ([]entity.AuditLog, error)
}

package entity

import "time"

// AuditLog entrada de bitácora append-only: transiciones de pedidos, reset
// financiero y siembra de datos. Provee trazabilidad, no participa en cálculos.
type AuditLog struct {
	ID        string
	Action    string // "order.status", "order.paid", "finance.reset", "seed", ...
	Detail    string
	UserID    string
	CreatedAt time.Time
}

package finance

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-caja/internal/application/ports"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

// ResetUseCase reset financiero: borra transacciones, pedidos y reservas y
// pone en cero los acumulados de clientes. El catálogo de productos y los
// clientes en sí sobreviven.
type ResetUseCase struct {
	runner    ports.TxRunner
	auditRepo repository.AuditLogRepository
	log       *logger.Logger
}

// NewResetUseCase construye el caso de uso de reset.
func NewResetUseCase(runner ports.TxRunner, auditRepo repository.AuditLogRepository, log *logger.Logger) *ResetUseCase {
	return &ResetUseCase{runner: runner, auditRepo: auditRepo, log: log}
}

// Reset ejecuta la limpieza en una sola transacción: o se borra todo o nada.
func (uc *ResetUseCase) Reset(userID string) error {
	err := uc.runner.Run(func(r ports.TxRepos) error {
		if err := r.Transactions.DeleteAll(); err != nil {
			return err
		}
		if err := r.Orders.DeleteAll(); err != nil {
			return err
		}
		if err := r.Reservations.DeleteAll(); err != nil {
			return err
		}
		return r.Customers.ResetTotals()
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("reset financiero fallido")
		return err
	}

	// La bitácora queda fuera de la transacción: el reset ya está hecho y
	// una falla al auditar no debe revertirlo.
	if auditErr := uc.auditRepo.Append(&entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    "finance.reset",
		Detail:    "transacciones, pedidos y reservas eliminados; acumulados de clientes en cero",
		UserID:    userID,
		CreatedAt: time.Now(),
	}); auditErr != nil {
		uc.log.Warn().Err(auditErr).Msg("no se pudo auditar el reset")
	}
	uc.log.Info().Str("user_id", userID).Msg("reset financiero completado")
	return nil
}

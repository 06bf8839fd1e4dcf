package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction
// (movimientos de caja). No hay Delete individual: las transacciones solo
// desaparecen con el reset financiero completo.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByOrderID(orderID string) (*entity.Transaction, error)
	List() ([]entity.Transaction, error)
	// UpdateAmount reescritura correctiva cuando cambia el total del pedido
	// enlazado (find-and-patch, única mutación permitida).
	UpdateAmount(id string, amount decimal.Decimal) error
	DeleteAll() error
}

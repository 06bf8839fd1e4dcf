package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType dirección del movimiento de caja.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"  // entrada
	TransactionExpense TransactionType = "expense" // salida
)

// TransactionCategory clasificación opcional del movimiento.
type TransactionCategory string

const (
	TxCategorySale     TransactionCategory = "sale"
	TxCategoryPurchase TransactionCategory = "purchase"
	TxCategoryExpense  TransactionCategory = "expense"
	TxCategorySalary   TransactionCategory = "salary"
	TxCategoryOther    TransactionCategory = "other"
)

// Transaction movimiento de caja registrado por el cajero.
//
// OrderID enlaza la venta con su pedido cuando existe. Una transacción de
// venta cuyo pedido ya está liquidado en la misma ventana NO vuelve a contar
// como ingreso (el pedido ya la capturó); solo las ventas sin pedido, o cuyo
// pedido aún no liquida, cuentan como "venta directa".
//
// Inmutable una vez creada, salvo la reescritura correctiva cuando cambia el
// total de su pedido. Nunca se borra individualmente (solo vía reset total).
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    TransactionCategory // opcional
	OrderID     string              // opcional: referencia al pedido
	CreatedAt   time.Time
}

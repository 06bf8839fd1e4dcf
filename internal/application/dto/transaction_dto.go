package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest registro manual de caja: venta directa, compra,
// gasto o salario.
type CreateTransactionRequest struct {
	Type        string          `json:"type"` // income | expense
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"` // sale | purchase | expense | salary | other
	OrderID     string          `json:"order_id,omitempty"`
}

// TransactionResponse movimiento de caja para la API.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	OrderID     string          `json:"order_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

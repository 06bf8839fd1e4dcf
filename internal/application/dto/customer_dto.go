package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta o edición de cliente.
type CreateCustomerRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	PIN        string `json:"pin,omitempty"`
	Tier       string `json:"tier"` // normal | fixed | vip
}

// CustomerResponse cliente con sus acumulados.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	NationalID  string          `json:"national_id"`
	Phone       string          `json:"phone"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	OrdersCount int             `json:"orders_count"`
	LastVisit   *time.Time      `json:"last_visit,omitempty"`
	Tier        string          `json:"tier"`
}

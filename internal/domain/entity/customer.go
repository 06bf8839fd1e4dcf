package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTier nivel del cliente para promociones y atención.
type CustomerTier string

const (
	TierNormal CustomerTier = "normal"
	TierFixed  CustomerTier = "fixed" // cliente fijo
	TierVIP    CustomerTier = "vip"
)

// Customer cliente del restaurante (CRM).
//
// TotalSpent y OrdersCount se incrementan exactamente una vez por pedido
// liquidado; el guard vive en Order.CountedInCustomer.
type Customer struct {
	ID         string
	Name       string
	NationalID string // documento de identidad
	Phone      string
	PIN        string // credencial opcional para autoservicio
	TotalSpent decimal.Decimal
	OrdersCount int
	LastVisit  *time.Time
	Tier       CustomerTier
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

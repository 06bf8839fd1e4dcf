package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIDTO indicador del dashboard: valor + variación acotada.
type KPIDTO struct {
	Value     decimal.Decimal `json:"value"`
	ChangePct decimal.Decimal `json:"change_pct"`
}

// PeriodTotalsDTO agregado de una ventana.
type PeriodTotalsDTO struct {
	Revenue  decimal.Decimal `json:"revenue"`
	COGS     decimal.Decimal `json:"cogs"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlyPointDTO mes de la serie anual.
type MonthlyPointDTO struct {
	Month            int             `json:"month"`
	Label            string          `json:"label"`
	ActualRevenue    decimal.Decimal `json:"actual_revenue"`
	ActualProfit     decimal.Decimal `json:"actual_profit"`
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
	ProjectedProfit  decimal.Decimal `json:"projected_profit"`
}

// WeeklyPointDTO día de la comparativa semanal.
type WeeklyPointDTO struct {
	Day             string          `json:"day"`
	CurrentRevenue  decimal.Decimal `json:"current_revenue"`
	PreviousRevenue decimal.Decimal `json:"previous_revenue"`
	Profit          decimal.Decimal `json:"profit"`
	MarginPct       decimal.Decimal `json:"margin_pct"`
}

// CategoryShareDTO participación de una categoría.
type CategoryShareDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Pct      decimal.Decimal `json:"pct"`
	COGS     decimal.Decimal `json:"cogs"`
	Profit   decimal.Decimal `json:"profit"`
}

// FinanceReportDTO respuesta de GET /api/finance/report. La misma estructura
// alimenta el PDF y el HTML; solo cambia el top-N de categorías (5 vs 10).
type FinanceReportDTO struct {
	Customers KPIDTO `json:"customers"`
	Orders    KPIDTO `json:"orders"`
	Profit    KPIDTO `json:"profit"`
	Growth    KPIDTO `json:"growth"`
	Products  KPIDTO `json:"products"`

	Current       PeriodTotalsDTO `json:"current"`
	Previous      PeriodTotalsDTO `json:"previous"`
	Baseline90    PeriodTotalsDTO `json:"baseline_90"`
	MonthlyProfit decimal.Decimal `json:"monthly_profit"`

	Monthly    []MonthlyPointDTO  `json:"monthly"`
	Weekly     []WeeklyPointDTO   `json:"weekly"`
	Categories []CategoryShareDTO `json:"categories"`

	GeneratedAt time.Time `json:"generated_at"`
}

// SnapshotImportRequest importación de un backup crudo (el formato JSON que
// exportaba el almacenamiento del navegador). Los arrays pasan por el
// normalizador: registros corruptos se descartan o coercionan, nunca fallan.
type SnapshotImportRequest struct {
	Products     []any `json:"products"`
	Orders       []any `json:"orders"`
	Transactions []any `json:"transactions"`
	Customers    []any `json:"customers"`
}

// SnapshotImportResponse conteo de registros aceptados por colección.
type SnapshotImportResponse struct {
	Products     int `json:"products"`
	Orders       int `json:"orders"`
	Transactions int `json:"transactions"`
	Customers    int `json:"customers"`
}

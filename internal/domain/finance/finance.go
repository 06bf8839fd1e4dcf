// Package finance implementa el motor de analítica financiera: concilia dos
// libros que se solapan (pedidos liquidados y transacciones de caja) sin
// contar ingresos dos veces, estima el COGS de las ventas directas con la
// razón de costo combinada del catálogo, y produce los agregados por período
// (30 días, mes calendario, semana ISO) que consumen el dashboard y la
// exportación PDF/HTML.
//
// Todo el paquete es puro: funciones síncronas sobre un Snapshot en memoria,
// sin estado oculto ni I/O. Dos llamadas con el mismo Snapshot producen
// exactamente el mismo Report.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// Snapshot es la foto en memoria de las cuatro colecciones de entrada.
// Now fija el instante de referencia; con Now cero se usa time.Now().
type Snapshot struct {
	Products     []entity.Product
	Orders       []entity.Order
	Transactions []entity.Transaction
	Customers    []entity.Customer
	Now          time.Time
}

// Options parámetros de proyección. Los ceros se reemplazan por los defaults.
type Options struct {
	PastMonthGrowth   decimal.Decimal // factor para meses pasados con ventas (default 1.05)
	DefaultMarginRate decimal.Decimal // margen asumido sin datos del mes actual (default 0.30)
}

var (
	defaultPastMonthGrowth   = decimal.RequireFromString("1.05")
	defaultMarginRate        = decimal.RequireFromString("0.30")
	zeroMonthGrowthFactor    = decimal.RequireFromString("1.10")
	hundred                  = decimal.NewFromInt(100)
)

func (o Options) withDefaults() Options {
	if o.PastMonthGrowth.IsZero() {
		o.PastMonthGrowth = defaultPastMonthGrowth
	}
	if o.DefaultMarginRate.IsZero() {
		o.DefaultMarginRate = defaultMarginRate
	}
	return o
}

// KPI un indicador del dashboard: valor y variación porcentual vs el período
// anterior (ya acotada según la regla de cada métrica).
type KPI struct {
	Value     decimal.Decimal `json:"value"`
	ChangePct decimal.Decimal `json:"change_pct"`
}

// PeriodTotals agregado de una ventana: ingresos, COGS, gastos y utilidad.
type PeriodTotals struct {
	Revenue  decimal.Decimal `json:"revenue"`
	COGS     decimal.Decimal `json:"cogs"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"` // Revenue - COGS - Expenses
}

// MonthlyPoint un mes de la serie anual: real + proyección.
type MonthlyPoint struct {
	Month            time.Month      `json:"month"`
	Label            string          `json:"label"` // "Ene", "Feb", ...
	ActualRevenue    decimal.Decimal `json:"actual_revenue"`
	ActualProfit     decimal.Decimal `json:"actual_profit"`
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
	ProjectedProfit  decimal.Decimal `json:"projected_profit"`
}

// WeeklyPoint un día de la comparativa semana actual vs anterior (lunes a domingo).
type WeeklyPoint struct {
	Day             time.Weekday    `json:"day"`
	Label           string          `json:"label"` // "Lun", "Mar", ...
	CurrentRevenue  decimal.Decimal `json:"current_revenue"`
	PreviousRevenue decimal.Decimal `json:"previous_revenue"`
	Profit          decimal.Decimal `json:"profit"`     // del día, semana actual
	MarginPct       decimal.Decimal `json:"margin_pct"` // profit / revenue * 100
}

// CategoryShare participación de una categoría en los ingresos de la ventana.
type CategoryShare struct {
	Category entity.ProductCategory `json:"category"`
	Revenue  decimal.Decimal        `json:"revenue"`
	Pct      decimal.Decimal        `json:"pct"` // renormalizado: el conjunto suma 100.00
	COGS     decimal.Decimal        `json:"cogs"`
	Profit   decimal.Decimal        `json:"profit"`
}

// Report estructura completa que consumen el dashboard, el PDF y el HTML.
// Una sola fuente para todas las vistas: no hay una segunda ruta de cálculo.
type Report struct {
	// KPIs del período móvil de 30 días vs los 30 anteriores
	Customers KPI `json:"customers"`
	Orders    KPI `json:"orders"`
	Profit    KPI `json:"profit"`
	Growth    KPI `json:"growth"` // margen de utilidad % y su delta acotado
	Products  KPI `json:"products"`

	Current    PeriodTotals `json:"current"`     // últimos 30 días
	Previous   PeriodTotals `json:"previous"`    // días 31-60
	Baseline90 PeriodTotals `json:"baseline_90"` // últimos 90 días

	MonthlyProfit decimal.Decimal `json:"monthly_profit"` // mes calendario en curso

	Monthly    []MonthlyPoint  `json:"monthly"`    // 12 meses del año en curso
	Weekly     []WeeklyPoint   `json:"weekly"`     // 7 días, semana actual vs anterior
	Categories []CategoryShare `json:"categories"` // ordenadas por ingreso descendente

	GeneratedAt time.Time `json:"generated_at"`
}

package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

const trailingWindowDays = 30

// BuildReport deriva el reporte financiero completo desde el snapshot.
//
// Es la única ruta de cálculo: dashboard, PDF y HTML consumen este mismo
// resultado. Cualquier pánico durante el cálculo (entrada corrupta más allá
// de lo que tolera la normalización) se recupera aquí y produce el reporte
// en ceros: el usuario ve "0" antes que un dashboard caído.
func BuildReport(snap Snapshot, opts Options) (report Report) {
	if snap.Now.IsZero() {
		snap.Now = time.Now()
	}
	opts = opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			report = zeroReport(snap.Now)
		}
	}()

	now := snap.Now
	idx := productIndex(snap.Products)
	ratio := blendedCostRatio(snap.Products)

	current := TrailingDays(now, trailingWindowDays)
	previous := PreviousTrailingDays(now, trailingWindowDays)
	baseline := TrailingDays(now, 3*trailingWindowDays)

	curTotals := periodTotals(&snap, idx, ratio, current)
	prevTotals := periodTotals(&snap, idx, ratio, previous)
	baseTotals := periodTotals(&snap, idx, ratio, baseline)

	monthTotals := periodTotals(&snap, idx, ratio, MonthWindow(now.Year(), now.Month(), now.Location()))

	curMargin := profitMargin(curTotals)
	prevMargin := profitMargin(prevTotals)

	report = Report{
		Customers: KPI{
			Value:     decimal.NewFromInt(int64(len(snap.Customers))),
			ChangePct: pctChange(countNewCustomers(&snap, current), countNewCustomers(&snap, previous)),
		},
		Orders: KPI{
			Value:     countSettledOrders(&snap, current),
			ChangePct: pctChange(countSettledOrders(&snap, current), countSettledOrders(&snap, previous)),
		},
		Profit: KPI{
			Value:     curTotals.Profit,
			ChangePct: profitPctChange(curTotals.Profit, prevTotals.Profit),
		},
		Growth: KPI{
			Value:     curMargin,
			ChangePct: marginDelta(curMargin, prevMargin),
		},
		Products: KPI{
			Value: decimal.NewFromInt(int64(len(snap.Products))),
		},

		Current:       curTotals,
		Previous:      prevTotals,
		Baseline90:    baseTotals,
		MonthlyProfit: monthTotals.Profit,

		Monthly:    monthlySeries(&snap, idx, ratio, opts),
		Weekly:     weeklySeries(&snap, idx, ratio),
		Categories: categoryBreakdown(&snap, idx, ratio, current),

		GeneratedAt: now,
	}
	return report
}

// TopCategories las n categorías de mayor ingreso (el slice ya viene
// ordenado): 5 para el dashboard, 10 para la exportación.
func (r *Report) TopCategories(n int) []CategoryShare {
	if n >= len(r.Categories) {
		return r.Categories
	}
	return r.Categories[:n]
}

func countSettledOrders(snap *Snapshot, w Window) decimal.Decimal {
	count := 0
	for i := range snap.Orders {
		o := &snap.Orders[i]
		if w.Contains(o.CreatedAt) && o.Settled() {
			count++
		}
	}
	return decimal.NewFromInt(int64(count))
}

func countNewCustomers(snap *Snapshot, w Window) decimal.Decimal {
	count := 0
	for i := range snap.Customers {
		if w.Contains(snap.Customers[i].CreatedAt) {
			count++
		}
	}
	return decimal.NewFromInt(int64(count))
}

// zeroReport reporte neutro con las series completas para que las vistas no
// tengan que tratar el caso vacío.
func zeroReport(now time.Time) Report {
	monthly := make([]MonthlyPoint, 12)
	for m := time.January; m <= time.December; m++ {
		monthly[m-1] = MonthlyPoint{Month: m, Label: monthLabels[m-1]}
	}
	weekly := make([]WeeklyPoint, 7)
	start := WeekStart(now)
	for i := 0; i < 7; i++ {
		weekly[i] = WeeklyPoint{Day: start.AddDate(0, 0, i).Weekday(), Label: weekdayLabels[i]}
	}
	return Report{
		Monthly:     monthly,
		Weekly:      weekly,
		Categories:  []CategoryShare{},
		GeneratedAt: now,
	}
}

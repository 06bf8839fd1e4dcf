package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

var monthLabels = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

var weekdayLabels = [...]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// monthlySeries serie de 12 meses del año en curso con real y proyección.
//
// Reglas de proyección:
//   - Mes en curso: real + (promedio diario × días restantes), con el
//     promedio diario = real / días transcurridos.
//   - Mes pasado con ventas: real × factor de crecimiento (1.05 por defecto).
//   - Mes pasado sin ventas: promedio de los meses anteriores con ventas
//     × 1.10, o 0 sin datos previos.
//   - Meses futuros: 0 (no hay días transcurridos que extrapolar).
//
// La utilidad proyectada aplica el margen del mes en curso, o el margen por
// defecto (30%) cuando el mes no tiene margen calculable.
func monthlySeries(snap *Snapshot, idx map[string]entity.Product, ratio decimal.Decimal, opts Options) []MonthlyPoint {
	now := snap.Now
	currentMonth := now.Month()

	points := make([]MonthlyPoint, 0, 12)
	actuals := make([]PeriodTotals, 0, 12)
	for m := time.January; m <= time.December; m++ {
		w := MonthWindow(now.Year(), m, now.Location())
		actuals = append(actuals, periodTotals(snap, idx, ratio, w))
	}

	marginRate := opts.DefaultMarginRate
	if cur := actuals[currentMonth-1]; cur.Revenue.IsPositive() {
		marginRate = cur.Profit.Div(cur.Revenue)
	}

	for m := time.January; m <= time.December; m++ {
		totals := actuals[m-1]
		var projected decimal.Decimal

		switch {
		case m == currentMonth:
			elapsed := decimal.NewFromInt(int64(now.Day()))
			remaining := decimal.NewFromInt(int64(DaysInMonth(now) - now.Day()))
			dailyAvg := totals.Revenue.Div(elapsed)
			projected = totals.Revenue.Add(dailyAvg.Mul(remaining))

		case m < currentMonth && totals.Revenue.IsPositive():
			projected = totals.Revenue.Mul(opts.PastMonthGrowth)

		case m < currentMonth:
			projected = averagePriorRevenue(actuals[:m-1]).Mul(zeroMonthGrowthFactor)
		}

		points = append(points, MonthlyPoint{
			Month:            m,
			Label:            monthLabels[m-1],
			ActualRevenue:    totals.Revenue,
			ActualProfit:     totals.Profit,
			ProjectedRevenue: projected,
			ProjectedProfit:  projected.Mul(marginRate),
		})
	}
	return points
}

// averagePriorRevenue promedio de los ingresos de los meses previos que sí
// tuvieron ventas; 0 si ninguno.
func averagePriorRevenue(prior []PeriodTotals) decimal.Decimal {
	var sum decimal.Decimal
	count := 0
	for _, t := range prior {
		if t.Revenue.IsPositive() {
			sum = sum.Add(t.Revenue)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// weeklySeries comparativa día a día (lunes a domingo) de la semana actual
// contra la anterior, con utilidad y margen del día en la semana actual.
func weeklySeries(snap *Snapshot, idx map[string]entity.Product, ratio decimal.Decimal) []WeeklyPoint {
	weekStart := WeekStart(snap.Now)
	prevStart := weekStart.AddDate(0, 0, -7)

	points := make([]WeeklyPoint, 0, 7)
	for i := 0; i < 7; i++ {
		curDay := DayWindow(weekStart.AddDate(0, 0, i))
		prevDay := DayWindow(prevStart.AddDate(0, 0, i))

		cur := periodTotals(snap, idx, ratio, curDay)
		prev := periodTotals(snap, idx, ratio, prevDay)

		marginPct := decimal.Zero
		if cur.Revenue.IsPositive() {
			marginPct = cur.Profit.Div(cur.Revenue).Mul(hundred)
		}

		points = append(points, WeeklyPoint{
			Day:             curDay.Start.Weekday(),
			Label:           weekdayLabels[i],
			CurrentRevenue:  cur.Revenue,
			PreviousRevenue: prev.Revenue,
			Profit:          cur.Profit,
			MarginPct:       marginPct,
		})
	}
	return points
}

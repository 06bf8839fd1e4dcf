package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

func TestMonthlySeries_ProyeccionMesEnCurso(t *testing.T) {
	// Día 10 de un mes de 30 días con 1000 acumulado (promedio 100/día):
	// proyección = 1000 + 100 x 20 = 3000.
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC) // junio tiene 30 días
	snap := &Snapshot{
		Orders: []entity.Order{settledOrder("o1", "1000", now.AddDate(0, 0, -2))},
		Now:    now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())
	require.Len(t, points, 12)

	june := points[time.June-1]
	assert.True(t, june.ActualRevenue.Equal(dec("1000")))
	assert.True(t, june.ProjectedRevenue.Equal(dec("3000")),
		"1000 + (1000/10) x 20 días restantes, fue %s", june.ProjectedRevenue)
}

func TestMonthlySeries_MesPasadoConVentasCrece5Pct(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Orders: []entity.Order{
			settledOrder("mayo", "200", time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)),
		},
		Now: now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	may := points[time.May-1]
	assert.True(t, may.ActualRevenue.Equal(dec("200")))
	assert.True(t, may.ProjectedRevenue.Equal(dec("210")), "200 x 1.05")
}

func TestMonthlySeries_MesPasadoSinVentasPromediaAnteriores(t *testing.T) {
	// Marzo y abril con ventas, mayo en cero: proyección de mayo =
	// promedio(300, 100) x 1.10 = 220.
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Orders: []entity.Order{
			settledOrder("marzo", "300", time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)),
			settledOrder("abril", "100", time.Date(2025, time.April, 5, 10, 0, 0, 0, time.UTC)),
		},
		Now: now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	may := points[time.May-1]
	assert.True(t, may.ActualRevenue.IsZero())
	assert.True(t, may.ProjectedRevenue.Equal(dec("220")), "promedio 200 x 1.10, fue %s", may.ProjectedRevenue)
}

func TestMonthlySeries_MesPasadoSinDatosPreviosProyectaCero(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{Now: now}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	jan := points[time.January-1]
	assert.True(t, jan.ProjectedRevenue.IsZero())
}

func TestMonthlySeries_MesesFuturosEnCero(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Orders: []entity.Order{settledOrder("o1", "500", now)},
		Now:    now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	for m := time.July; m <= time.December; m++ {
		assert.True(t, points[m-1].ActualRevenue.IsZero())
		assert.True(t, points[m-1].ProjectedRevenue.IsZero(), "mes futuro %s sin proyección", m)
	}
}

func TestMonthlySeries_UtilidadProyectadaUsaMargenDelMes(t *testing.T) {
	// Pedido de 1000 sin COGS ni gastos → margen del mes 100%; la utilidad
	// proyectada iguala al ingreso proyectado.
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Orders: []entity.Order{settledOrder("o1", "1000", now.AddDate(0, 0, -2))},
		Now:    now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	june := points[time.June-1]
	assert.True(t, june.ProjectedProfit.Equal(june.ProjectedRevenue))
}

func TestMonthlySeries_MargenPorDefectoSinDatos(t *testing.T) {
	// Sin ingresos en el mes actual aplica el margen por defecto del 30%
	// sobre los meses que sí proyectan.
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Orders: []entity.Order{
			settledOrder("mayo", "200", time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)),
		},
		Now: now,
	}

	points := monthlySeries(snap, productIndex(nil), dec("0"), Options{}.withDefaults())

	may := points[time.May-1]
	assert.True(t, may.ProjectedProfit.Equal(dec("63")), "210 x 0.30, fue %s", may.ProjectedProfit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie semanal
// ──────────────────────────────────────────────────────────────────────────────

func TestWeeklySeries_ComparaSemanaActualYAnterior(t *testing.T) {
	// testNow es domingo 15/06/2025; la semana ISO arranca el lunes 09/06.
	require.Equal(t, time.Sunday, testNow.Weekday())

	wednesday := time.Date(2025, time.June, 11, 13, 0, 0, 0, time.UTC)
	prevWednesday := wednesday.AddDate(0, 0, -7)

	snap := &Snapshot{
		Orders: []entity.Order{
			settledOrder("actual", "80", wednesday),
			settledOrder("anterior", "50", prevWednesday),
		},
		Now: testNow,
	}

	points := weeklySeries(snap, productIndex(nil), dec("0"))
	require.Len(t, points, 7)

	assert.Equal(t, time.Monday, points[0].Day, "la serie arranca en lunes")
	assert.Equal(t, "Lun", points[0].Label)

	wed := points[2]
	assert.Equal(t, time.Wednesday, wed.Day)
	assert.True(t, wed.CurrentRevenue.Equal(dec("80")))
	assert.True(t, wed.PreviousRevenue.Equal(dec("50")))
	assert.True(t, wed.MarginPct.Equal(dec("100")), "sin COGS ni gastos el margen del día es 100%%")
}

func TestWeeklySeries_DiaSinVentasMargenCero(t *testing.T) {
	snap := &Snapshot{Now: testNow}

	points := weeklySeries(snap, productIndex(nil), dec("0"))

	for _, p := range points {
		assert.True(t, p.MarginPct.IsZero())
		assert.True(t, p.CurrentRevenue.IsZero())
	}
}

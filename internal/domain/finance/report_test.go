package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

func demoSnapshot() Snapshot {
	lastVisit := testNow.AddDate(0, 0, -3)
	return Snapshot{
		Products: halfRatioCatalog(),
		Orders: []entity.Order{
			settledOrder("o1", "100", testNow.AddDate(0, 0, -1),
				entity.OrderItem{ProductID: "p1", Quantity: 2, UnitPrice: dec("10")},
			),
			settledOrder("o2", "60", testNow.AddDate(0, 0, -40)), // período anterior
		},
		Transactions: []entity.Transaction{
			saleTx("t1", "100", "o1", testNow.AddDate(0, 0, -1)), // enlazada: no cuenta
			saleTx("t2", "40", "", testNow.AddDate(0, 0, -2)),    // venta directa
			{ID: "g1", Type: entity.TransactionExpense, Amount: dec("20"), Category: entity.TxCategoryExpense, CreatedAt: testNow.AddDate(0, 0, -1)},
		},
		Customers: []entity.Customer{
			{ID: "c1", Name: "Ana", CreatedAt: testNow.AddDate(0, 0, -5), LastVisit: &lastVisit},
			{ID: "c2", Name: "Luis", CreatedAt: testNow.AddDate(0, 0, -45)},
		},
		Now: testNow,
	}
}

func TestBuildReport_KPIsBasicos(t *testing.T) {
	report := BuildReport(demoSnapshot(), Options{})

	// Ingresos 30d: 100 (pedido) + 40 (directa); la transacción enlazada al
	// pedido liquidado no cuenta.
	assert.True(t, report.Current.Revenue.Equal(dec("140")))
	// COGS: 10 del pedido (5x2) + 20 estimado (40 x razón 0.5)
	assert.True(t, report.Current.COGS.Equal(dec("30")))
	assert.True(t, report.Current.Expenses.Equal(dec("20")))
	assert.True(t, report.Current.Profit.Equal(dec("90")))

	assert.True(t, report.Orders.Value.Equal(dec("1")), "un pedido liquidado en la ventana actual")
	assert.True(t, report.Customers.Value.Equal(dec("2")))
	assert.True(t, report.Products.Value.Equal(dec("2")))

	require.Len(t, report.Monthly, 12)
	require.Len(t, report.Weekly, 7)
}

func TestBuildReport_PeriodoAnteriorSepara(t *testing.T) {
	report := BuildReport(demoSnapshot(), Options{})

	assert.True(t, report.Previous.Revenue.Equal(dec("60")), "el pedido de hace 40 días cae en días 31-60")
	assert.True(t, report.Baseline90.Revenue.Equal(dec("200")), "la base de 90 días cubre ambos")
}

func TestBuildReport_Idempotente(t *testing.T) {
	// Función pura: dos llamadas sobre el mismo snapshot producen un
	// resultado idéntico bit a bit.
	snap := demoSnapshot()

	first := BuildReport(snap, Options{})
	second := BuildReport(snap, Options{})

	assert.Equal(t, first, second)
}

func TestBuildReport_SnapshotVacioTodoCeroSinPanico(t *testing.T) {
	// Después del reset: colecciones vacías → KPIs en cero, series completas,
	// ninguna división por cero.
	report := BuildReport(Snapshot{Now: testNow}, Options{})

	assert.True(t, report.Current.Revenue.IsZero())
	assert.True(t, report.Current.Profit.IsZero())
	assert.True(t, report.Profit.ChangePct.IsZero())
	assert.True(t, report.Growth.Value.IsZero())
	assert.Empty(t, report.Categories)
	require.Len(t, report.Monthly, 12)
	require.Len(t, report.Weekly, 7)
}

func TestBuildReport_CrecimientoConBaseCero(t *testing.T) {
	// Período anterior sin utilidad y actual con 150 → +100, nunca Infinity.
	snap := Snapshot{
		Orders: []entity.Order{settledOrder("o1", "150", testNow.AddDate(0, 0, -1))},
		Now:    testNow,
	}
	report := BuildReport(snap, Options{})

	assert.True(t, report.Profit.ChangePct.Equal(dec("100")))

	// Y con utilidad negativa (solo gastos) → -100.
	snap = Snapshot{
		Transactions: []entity.Transaction{
			{ID: "g1", Type: entity.TransactionExpense, Amount: dec("50"), CreatedAt: testNow.AddDate(0, 0, -1)},
		},
		Now: testNow,
	}
	report = BuildReport(snap, Options{})

	assert.True(t, report.Profit.ChangePct.Equal(dec("-100")))
}

func TestBuildReport_TopCategories(t *testing.T) {
	report := BuildReport(demoSnapshot(), Options{})

	top1 := report.TopCategories(1)
	require.Len(t, top1, 1)
	assert.Equal(t, report.Categories[0].Category, top1[0].Category)

	all := report.TopCategories(50)
	assert.Equal(t, len(report.Categories), len(all), "pedir más de lo que hay devuelve todo")
}

func TestBuildReport_MargenYDeltaAcotados(t *testing.T) {
	report := BuildReport(demoSnapshot(), Options{})

	// Margen 30d: (140 - 50) / 140 * 100 ≈ 64.29
	expected := dec("90").Div(dec("140")).Mul(hundred)
	assert.True(t, report.Growth.Value.Equal(expected))
	assert.True(t, report.Growth.ChangePct.Abs().LessThanOrEqual(dec("100")), "delta siempre en [-100, 100]")
}

func TestBuildReport_NowCeroUsaRelojActual(t *testing.T) {
	report := BuildReport(Snapshot{}, Options{})
	assert.WithinDuration(t, time.Now(), report.GeneratedAt, time.Minute)
}

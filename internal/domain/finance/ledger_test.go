package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func settledOrder(id string, total string, at time.Time, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		ID:            id,
		Total:         dec(total),
		Status:        entity.OrderCompleted,
		PaymentStatus: entity.PaymentPending,
		CreatedAt:     at,
		Items:         items,
	}
}

func saleTx(id, amount, orderID string, at time.Time) entity.Transaction {
	return entity.Transaction{
		ID:        id,
		Type:      entity.TransactionIncome,
		Amount:    dec(amount),
		Category:  entity.TxCategorySale,
		OrderID:   orderID,
		CreatedAt: at,
	}
}

// catálogo con razón de costo uniforme 0.5: (costo 5 / precio 10) y (10 / 20)
func halfRatioCatalog() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Café", BuyPrice: dec("5"), SellPrice: dec("10"), Category: entity.CategoryBebidas},
		{ID: "p2", Name: "Torta", BuyPrice: dec("10"), SellPrice: dec("20"), Category: entity.CategoryPostres},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución del libro de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderLedger_RevenueDesdeTotalAlmacenado(t *testing.T) {
	// El revenue sale del snapshot Total, no de los items: items por 40 pero
	// Total 100 → revenue 100 (confiar-en-el-snapshot).
	orders := []entity.Order{
		settledOrder("o1", "100", testNow,
			entity.OrderItem{ProductID: "p1", Quantity: 4, UnitPrice: dec("10")},
		),
	}
	idx := productIndex(halfRatioCatalog())
	w := TrailingDays(testNow, 30)

	totals, settled := orderLedger(orders, idx, w)

	assert.True(t, totals.revenue.Equal(dec("100")), "revenue debe ser el Total almacenado")
	assert.True(t, totals.cogs.Equal(dec("20")), "cogs = costo 5 x 4 unidades")
	assert.True(t, settled["o1"])
}

func TestOrderLedger_PagadoTambienLiquida(t *testing.T) {
	// status pendiente pero paymentStatus pagado: las dos banderas son
	// independientes y cualquiera basta.
	orders := []entity.Order{{
		ID: "o1", Total: dec("50"),
		Status: entity.OrderPending, PaymentStatus: entity.PaymentPaid,
		CreatedAt: testNow,
	}}
	w := TrailingDays(testNow, 30)

	totals, settled := orderLedger(orders, nil, w)

	assert.True(t, settled["o1"])
	assert.True(t, totals.revenue.Equal(dec("50")))
}

func TestOrderLedger_ProductoBorradoAportaCogsCero(t *testing.T) {
	orders := []entity.Order{
		settledOrder("o1", "30", testNow,
			entity.OrderItem{ProductID: "desaparecido", Quantity: 3, UnitPrice: dec("10")},
		),
	}
	w := TrailingDays(testNow, 30)

	totals, _ := orderLedger(orders, productIndex(nil), w)

	assert.True(t, totals.revenue.Equal(dec("30")))
	assert.True(t, totals.cogs.IsZero(), "join fallido contribuye COGS cero, sin error")
}

func TestOrderLedger_TotalNegativoContribuyeCero(t *testing.T) {
	orders := []entity.Order{settledOrder("o1", "-80", testNow)}
	w := TrailingDays(testNow, 30)

	totals, _ := orderLedger(orders, nil, w)

	assert.True(t, totals.revenue.IsZero(), "montos negativos se clampan a cero")
}

func TestOrderLedger_FueraDeVentanaYNoLiquidados(t *testing.T) {
	orders := []entity.Order{
		settledOrder("viejo", "100", testNow.AddDate(0, 0, -45)),
		{ID: "abierto", Total: dec("60"), Status: entity.OrderKitchen, PaymentStatus: entity.PaymentPending, CreatedAt: testNow},
	}
	w := TrailingDays(testNow, 30)

	totals, settled := orderLedger(orders, nil, w)

	assert.True(t, totals.revenue.IsZero())
	assert.Empty(t, settled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Razón de costo combinada y ventas directas
// ──────────────────────────────────────────────────────────────────────────────

func TestBlendedCostRatio_CatalogoUniforme(t *testing.T) {
	ratio := blendedCostRatio(halfRatioCatalog())
	assert.True(t, ratio.Equal(dec("0.5")), "(5+10)/(10+20) = 0.5")
}

func TestBlendedCostRatio_IgnoraPreciosNoPositivos(t *testing.T) {
	products := append(halfRatioCatalog(),
		entity.Product{ID: "gratis", BuyPrice: dec("99"), SellPrice: decimal.Zero},
	)
	ratio := blendedCostRatio(products)
	assert.True(t, ratio.Equal(dec("0.5")), "productos sin precio de venta no entran a la razón")
}

func TestBlendedCostRatio_CatalogoVacio(t *testing.T) {
	assert.True(t, blendedCostRatio(nil).IsZero())
	assert.True(t, blendedCostRatio([]entity.Product{}).IsZero())
}

func TestDirectSales_CogsEstimado(t *testing.T) {
	// Venta directa de 50 con razón 0.5 → COGS estimado 25.
	txs := []entity.Transaction{saleTx("t1", "50", "", testNow)}
	w := TrailingDays(testNow, 30)

	totals := directSales(txs, dec("0.5"), w, map[string]bool{})

	assert.True(t, totals.revenue.Equal(dec("50")))
	assert.True(t, totals.cogs.Equal(dec("25")))
}

func TestDirectSales_CatalogoVacioNuncaNaN(t *testing.T) {
	txs := []entity.Transaction{saleTx("t1", "50", "", testNow)}
	w := TrailingDays(testNow, 30)

	totals := directSales(txs, blendedCostRatio(nil), w, map[string]bool{})

	assert.True(t, totals.revenue.Equal(dec("50")))
	assert.True(t, totals.cogs.IsZero(), "sin catálogo el COGS estimado es 0, jamás NaN")
}

func TestDirectSales_ExcluyeNoVentas(t *testing.T) {
	w := TrailingDays(testNow, 30)
	txs := []entity.Transaction{
		{ID: "gasto", Type: entity.TransactionExpense, Amount: dec("40"), Category: entity.TxCategoryExpense, CreatedAt: testNow},
		{ID: "compra", Type: entity.TransactionIncome, Amount: dec("30"), Category: entity.TxCategoryPurchase, CreatedAt: testNow},
	}

	totals := directSales(txs, dec("0.5"), w, map[string]bool{})

	assert.True(t, totals.revenue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Anti doble conteo (la propiedad central del conciliador)
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodTotals_SinDobleConteo(t *testing.T) {
	// Pedido liquidado por 100 + transacción de venta por 100 con el mismo
	// orderId, ambos dentro de la ventana: el ingreso combinado es 100, no 200.
	snap := &Snapshot{
		Orders:       []entity.Order{settledOrder("o1", "100", testNow)},
		Transactions: []entity.Transaction{saleTx("t1", "100", "o1", testNow)},
		Now:          testNow,
	}
	w := TrailingDays(testNow, 30)

	totals := periodTotals(snap, productIndex(nil), decimal.Zero, w)

	assert.True(t, totals.Revenue.Equal(dec("100")),
		"revenue = 100 una sola vez: la transacción enlazada al pedido liquidado se excluye")
}

func TestPeriodTotals_PedidoNoLiquidadoDejaPasarLaTransaccion(t *testing.T) {
	// Si el pedido referenciado aún no liquida, la transacción sí cuenta
	// como venta directa.
	snap := &Snapshot{
		Orders: []entity.Order{{
			ID: "o1", Total: dec("100"),
			Status: entity.OrderKitchen, PaymentStatus: entity.PaymentPending,
			CreatedAt: testNow,
		}},
		Transactions: []entity.Transaction{saleTx("t1", "100", "o1", testNow)},
		Now:          testNow,
	}
	w := TrailingDays(testNow, 30)

	totals := periodTotals(snap, productIndex(nil), decimal.Zero, w)

	assert.True(t, totals.Revenue.Equal(dec("100")))
}

func TestPeriodTotals_ProfitRestaCogsYGastos(t *testing.T) {
	snap := &Snapshot{
		Products: halfRatioCatalog(),
		Orders: []entity.Order{
			settledOrder("o1", "100", testNow,
				entity.OrderItem{ProductID: "p1", Quantity: 2, UnitPrice: dec("10")},
			),
		},
		Transactions: []entity.Transaction{
			saleTx("t1", "40", "", testNow),
			{ID: "g1", Type: entity.TransactionExpense, Amount: dec("25"), CreatedAt: testNow},
		},
		Now: testNow,
	}
	idx := productIndex(snap.Products)
	ratio := blendedCostRatio(snap.Products)
	w := TrailingDays(testNow, 30)

	totals := periodTotals(snap, idx, ratio, w)

	require.True(t, totals.Revenue.Equal(dec("140")), "100 del pedido + 40 directo")
	require.True(t, totals.COGS.Equal(dec("30")), "10 del pedido (5x2) + 20 estimado (40x0.5)")
	require.True(t, totals.Expenses.Equal(dec("25")))
	assert.True(t, totals.Profit.Equal(dec("85")), "140 - 30 - 25")
}

package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

func categoryByName(shares []CategoryShare, cat entity.ProductCategory) *CategoryShare {
	for i := range shares {
		if shares[i].Category == cat {
			return &shares[i]
		}
	}
	return nil
}

func TestCategoryBreakdown_AtribucionPorJoin(t *testing.T) {
	snap := &Snapshot{
		Products: halfRatioCatalog(), // p1 Bebidas, p2 Postres
		Orders: []entity.Order{
			settledOrder("o1", "40", testNow,
				entity.OrderItem{ProductID: "p1", Quantity: 2, UnitPrice: dec("10")}, // 20 Bebidas
				entity.OrderItem{ProductID: "p2", Quantity: 1, UnitPrice: dec("20")}, // 20 Postres
			),
		},
		Now: testNow,
	}
	idx := productIndex(snap.Products)

	shares := categoryBreakdown(snap, idx, blendedCostRatio(snap.Products), TrailingDays(testNow, 30))

	bebidas := categoryByName(shares, entity.CategoryBebidas)
	require.NotNil(t, bebidas)
	assert.True(t, bebidas.Revenue.Equal(dec("20")))
	assert.True(t, bebidas.COGS.Equal(dec("10")), "costo 5 x 2 unidades")
	assert.True(t, bebidas.Profit.Equal(dec("10")))

	postres := categoryByName(shares, entity.CategoryPostres)
	require.NotNil(t, postres)
	assert.True(t, postres.Revenue.Equal(dec("20")))
	assert.True(t, postres.COGS.Equal(dec("10")))
}

func TestCategoryBreakdown_VentaDirectaPorSubstring(t *testing.T) {
	// La descripción contiene "café" → hereda la categoría del producto
	// (match sin distinguir mayúsculas).
	snap := &Snapshot{
		Products:     halfRatioCatalog(),
		Transactions: []entity.Transaction{saleTx("t1", "30", "", testNow)},
		Now:          testNow,
	}
	snap.Transactions[0].Description = "2x CAFÉ para llevar"

	shares := categoryBreakdown(snap, productIndex(snap.Products), dec("0.5"), TrailingDays(testNow, 30))

	bebidas := categoryByName(shares, entity.CategoryBebidas)
	require.NotNil(t, bebidas, "la venta directa debe atribuirse a Bebidas vía substring")
	assert.True(t, bebidas.Revenue.Equal(dec("30")))
	assert.True(t, bebidas.COGS.Equal(dec("15")), "COGS estimado con la razón combinada")
}

func TestCategoryBreakdown_VentaDirectaSinMatchVaAOtros(t *testing.T) {
	snap := &Snapshot{
		Products:     halfRatioCatalog(),
		Transactions: []entity.Transaction{saleTx("t1", "25", "", testNow)},
		Now:          testNow,
	}
	snap.Transactions[0].Description = "venta mostrador"

	shares := categoryBreakdown(snap, productIndex(snap.Products), dec("0.5"), TrailingDays(testNow, 30))

	otros := categoryByName(shares, entity.CategoryOtros)
	require.NotNil(t, otros)
	assert.True(t, otros.Revenue.Equal(dec("25")))
}

func TestCategoryBreakdown_PorcentajesSumanExactamente100(t *testing.T) {
	// Tres categorías con 100 cada una: 33.33% crudo tras redondeo; el
	// conjunto renormalizado debe sumar exactamente 100.00.
	snap := &Snapshot{
		Products: []entity.Product{
			{ID: "a", Name: "A", BuyPrice: dec("1"), SellPrice: dec("2"), Category: entity.CategoryBebidas},
			{ID: "b", Name: "B", BuyPrice: dec("1"), SellPrice: dec("2"), Category: entity.CategoryComidas},
			{ID: "c", Name: "C", BuyPrice: dec("1"), SellPrice: dec("2"), Category: entity.CategoryPostres},
		},
		Orders: []entity.Order{
			settledOrder("o1", "100", testNow, entity.OrderItem{ProductID: "a", Quantity: 1, UnitPrice: dec("100")}),
			settledOrder("o2", "100", testNow, entity.OrderItem{ProductID: "b", Quantity: 1, UnitPrice: dec("100")}),
			settledOrder("o3", "100", testNow, entity.OrderItem{ProductID: "c", Quantity: 1, UnitPrice: dec("100")}),
		},
		Now: testNow,
	}

	shares := categoryBreakdown(snap, productIndex(snap.Products), decimal.Zero, TrailingDays(testNow, 30))
	require.Len(t, shares, 3)

	var sum decimal.Decimal
	tolerance := dec("0.011")
	for _, s := range shares {
		sum = sum.Add(s.Pct)
		assert.True(t, s.Pct.Sub(dec("33.33")).Abs().LessThanOrEqual(tolerance),
			"cada porcentaje queda dentro de la tolerancia de redondeo: %s", s.Pct)
	}
	assert.True(t, sum.Equal(dec("100")), "la suma post-normalización es exactamente 100.00, fue %s", sum)
}

func TestCategoryBreakdown_OrdenadoPorIngresoDescendente(t *testing.T) {
	snap := &Snapshot{
		Products: halfRatioCatalog(),
		Orders: []entity.Order{
			settledOrder("o1", "10", testNow, entity.OrderItem{ProductID: "p1", Quantity: 1, UnitPrice: dec("10")}),
			settledOrder("o2", "60", testNow, entity.OrderItem{ProductID: "p2", Quantity: 3, UnitPrice: dec("20")}),
		},
		Now: testNow,
	}

	shares := categoryBreakdown(snap, productIndex(snap.Products), decimal.Zero, TrailingDays(testNow, 30))

	require.Len(t, shares, 2)
	assert.Equal(t, entity.CategoryPostres, shares[0].Category, "la categoría dominante va primero")
	assert.True(t, shares[0].Revenue.GreaterThan(shares[1].Revenue))
}

func TestMatchCategory(t *testing.T) {
	products := halfRatioCatalog()

	assert.Equal(t, entity.CategoryBebidas, matchCategory("un café grande", products))
	assert.Equal(t, entity.CategoryPostres, matchCategory("TORTA de chocolate", products))
	assert.Equal(t, entity.CategoryOtros, matchCategory("propina", products))
	assert.Equal(t, entity.CategoryOtros, matchCategory("", products))
}

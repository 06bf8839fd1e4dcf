package finance

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

func TestNormalizeProducts_DescartaEntradasNoObjeto(t *testing.T) {
	raw := []any{
		map[string]any{"id": "p1", "name": "Café", "buyPrice": 5.0, "price": 10.0},
		"no soy un objeto",
		42.0,
		[]any{"tampoco"},
		nil,
	}

	products := NormalizeProducts(raw)

	require.Len(t, products, 1, "solo sobrevive el objeto plano")
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].SellPrice.Equal(dec("10")))
}

func TestNormalizeProducts_CoercionNumerica(t *testing.T) {
	raw := []any{map[string]any{
		"id":       "p1",
		"name":     "Jugo",
		"buyPrice": "3.50",      // string numérico → parsea
		"price":    math.NaN(),  // NaN → 0
		"stock":    "7",
	}}

	products := NormalizeProducts(raw)

	require.Len(t, products, 1)
	assert.True(t, products[0].BuyPrice.Equal(dec("3.5")))
	assert.True(t, products[0].SellPrice.IsZero(), "NaN se sustituye por 0, nunca se propaga")
	assert.Equal(t, 7, products[0].Stock)
}

func TestNormalizeProducts_InfinitoYBasuraCaenACero(t *testing.T) {
	raw := []any{map[string]any{
		"id":       "p1",
		"buyPrice": math.Inf(1),
		"price":    "no-numérico",
	}}

	products := NormalizeProducts(raw)

	require.Len(t, products, 1)
	assert.True(t, products[0].BuyPrice.IsZero())
	assert.True(t, products[0].SellPrice.IsZero())
}

func TestNormalizeOrders_CamposOpcionales(t *testing.T) {
	raw := []any{
		map[string]any{
			"id": "o1", "total": 100.0, "status": "completed",
			"customerId": "c9",
			"items": []any{
				map[string]any{"productId": "p1", "quantity": 2.0, "price": 10.0},
				"item corrupto",
			},
		},
		map[string]any{
			"id": "o2", "total": 50.0, "status": "pending",
			"customerId": nil, // null → se omite, no se defaultea
		},
	}

	orders := NormalizeOrders(raw)
	require.Len(t, orders, 2)

	assert.Equal(t, "c9", orders[0].CustomerID)
	require.Len(t, orders[0].Items, 1, "el item corrupto se descarta en silencio")
	assert.Equal(t, 2, orders[0].Items[0].Quantity)

	assert.Empty(t, orders[1].CustomerID, "referencia null queda ausente")
}

func TestNormalizeTransactions_DesdeJSONReal(t *testing.T) {
	// El camino real: backup JSON del almacenamiento del navegador.
	blob := `[
		{"id":"t1","type":"income","amount":99.9,"category":"sale","orderId":"o1","createdAt":"2025-06-01T10:00:00Z"},
		{"id":"t2","type":"expense","amount":"15.25","description":"hielo"},
		{"id":"t3","type":"income","amount":null}
	]`
	var raw []any
	require.NoError(t, json.Unmarshal([]byte(blob), &raw))

	txs := NormalizeTransactions(raw)
	require.Len(t, txs, 3)

	assert.True(t, txs[0].Amount.Equal(dec("99.9")))
	assert.Equal(t, "o1", txs[0].OrderID)
	assert.Equal(t, entity.TxCategorySale, txs[0].Category)
	assert.Equal(t, 2025, txs[0].CreatedAt.Year())

	assert.True(t, txs[1].Amount.Equal(dec("15.25")), "montos como string se parsean")
	assert.Empty(t, txs[1].OrderID)

	assert.True(t, txs[2].Amount.IsZero(), "amount null cae a 0")
}

func TestNormalizeCustomers_AcumuladosYVisita(t *testing.T) {
	raw := []any{map[string]any{
		"id": "c1", "name": "Ana", "totalSpent": 250.5, "ordersCount": 4.0,
		"lastVisit": "2025-06-10T18:00:00Z",
		"tier":      "vip",
	}}

	customers := NormalizeCustomers(raw)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.True(t, c.TotalSpent.Equal(dec("250.5")))
	assert.Equal(t, 4, c.OrdersCount)
	require.NotNil(t, c.LastVisit)
	assert.Equal(t, 10, c.LastVisit.Day())
	assert.Equal(t, entity.TierVIP, c.Tier)
}

func TestNormalize_NuncaDevuelveNil(t *testing.T) {
	assert.NotNil(t, NormalizeProducts(nil))
	assert.NotNil(t, NormalizeOrders(nil))
	assert.NotNil(t, NormalizeTransactions(nil))
	assert.NotNil(t, NormalizeCustomers(nil))
}

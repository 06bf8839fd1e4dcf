package finance

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// ledgerTotals suma parcial de un libro (pedidos o ventas directas).
type ledgerTotals struct {
	revenue decimal.Decimal
	cogs    decimal.Decimal
}

// productIndex índice id → producto para el join item→producto.
func productIndex(products []entity.Product) map[string]entity.Product {
	idx := make(map[string]entity.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// nonNegative clamp defensivo: montos negativos contribuyen cero, no error.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// orderLedger resuelve el libro de pedidos para una ventana: ingresos desde
// el Total almacenado (snapshot, nunca recalculado desde los items), COGS
// desde el join item→producto, y el conjunto de IDs liquidados que el
// conciliador de transacciones usa para no contar dos veces.
//
// Un producto borrado del catálogo aporta COGS cero para esa línea.
func orderLedger(orders []entity.Order, idx map[string]entity.Product, w Window) (ledgerTotals, map[string]bool) {
	var totals ledgerTotals
	settled := make(map[string]bool)

	for i := range orders {
		o := &orders[i]
		if !w.Contains(o.CreatedAt) || !o.Settled() {
			continue
		}
		settled[o.ID] = true
		totals.revenue = totals.revenue.Add(nonNegative(o.Total))

		for _, item := range o.Items {
			p, ok := idx[item.ProductID]
			if !ok || item.Quantity <= 0 {
				continue
			}
			cost := nonNegative(p.BuyPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
			totals.cogs = totals.cogs.Add(cost)
		}
	}
	return totals, settled
}

// blendedCostRatio razón de costo combinada del catálogo completo:
// Σ costo / Σ precio sobre los productos con precio de venta positivo.
// Catálogo vacío o sin precios → 0 (y por tanto COGS estimado 0, nunca NaN).
//
// Es una aproximación deliberada: una venta de caja registrada como monto
// plano no trae detalle por ítem, así que el COGS exacto es imposible.
func blendedCostRatio(products []entity.Product) decimal.Decimal {
	var totalCost, totalPrice decimal.Decimal
	for _, p := range products {
		if !p.SellPrice.IsPositive() {
			continue
		}
		totalCost = totalCost.Add(nonNegative(p.BuyPrice))
		totalPrice = totalPrice.Add(p.SellPrice)
	}
	if !totalPrice.IsPositive() {
		return decimal.Zero
	}
	return totalCost.Div(totalPrice)
}

// isDirectSale regla anti doble conteo: cuenta como venta directa una
// transacción de entrada con categoría venta, dentro de la ventana, que no
// referencia pedido o cuyo pedido NO está en el conjunto liquidado (si lo
// está, el libro de pedidos ya capturó ese ingreso).
func isDirectSale(tx *entity.Transaction, w Window, settled map[string]bool) bool {
	if tx.Type != entity.TransactionIncome || tx.Category != entity.TxCategorySale {
		return false
	}
	if !w.Contains(tx.CreatedAt) {
		return false
	}
	return tx.OrderID == "" || !settled[tx.OrderID]
}

// directSales suma las ventas directas de la ventana y estima su COGS con la
// razón de costo combinada.
func directSales(txs []entity.Transaction, ratio decimal.Decimal, w Window, settled map[string]bool) ledgerTotals {
	var totals ledgerTotals
	for i := range txs {
		tx := &txs[i]
		if !isDirectSale(tx, w, settled) {
			continue
		}
		amount := nonNegative(tx.Amount)
		totals.revenue = totals.revenue.Add(amount)
		totals.cogs = totals.cogs.Add(amount.Mul(ratio))
	}
	return totals
}

// expensesIn suma los egresos de la ventana.
func expensesIn(txs []entity.Transaction, w Window) decimal.Decimal {
	var sum decimal.Decimal
	for i := range txs {
		tx := &txs[i]
		if tx.Type != entity.TransactionExpense || !w.Contains(tx.CreatedAt) {
			continue
		}
		sum = sum.Add(nonNegative(tx.Amount))
	}
	return sum
}

// periodTotals compone los dos libros y los egresos de una ventana:
// revenue = pedidos + ventas directas; profit = revenue - cogs - expenses.
func periodTotals(snap *Snapshot, idx map[string]entity.Product, ratio decimal.Decimal, w Window) PeriodTotals {
	orderTotals, settled := orderLedger(snap.Orders, idx, w)
	direct := directSales(snap.Transactions, ratio, w, settled)
	expenses := expensesIn(snap.Transactions, w)

	revenue := orderTotals.revenue.Add(direct.revenue)
	cogs := orderTotals.cogs.Add(direct.cogs)
	return PeriodTotals{
		Revenue:  revenue,
		COGS:     cogs,
		Expenses: expenses,
		Profit:   revenue.Sub(cogs).Sub(expenses),
	}
}

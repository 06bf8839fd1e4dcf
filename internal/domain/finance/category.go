package finance

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// pctDriftTolerance deriva máxima tolerada antes de reescalar el conjunto.
var pctDriftTolerance = decimal.RequireFromString("0.01")

type categoryAccum struct {
	revenue decimal.Decimal
	cogs    decimal.Decimal
}

// matchCategory atribución best-effort de una venta directa: si la
// descripción contiene el nombre de algún producto del catálogo (sin
// distinguir mayúsculas), hereda su categoría; si no, "Otros".
//
// El match por substring es frágil a propósito: reproduce el comportamiento
// observado en caja. Un tag explícito de categoría en la transacción lo
// reemplazaría; esta función es el único punto a tocar.
func matchCategory(description string, products []entity.Product) entity.ProductCategory {
	desc := strings.ToLower(description)
	if desc == "" {
		return entity.CategoryOtros
	}
	for _, p := range products {
		if p.Name != "" && strings.Contains(desc, strings.ToLower(p.Name)) {
			return p.Category
		}
	}
	return entity.CategoryOtros
}

// categoryBreakdown atribuye ingresos y COGS por categoría en la ventana:
// pedidos liquidados vía join item→producto (precio×cant, costo×cant) y
// ventas directas vía matchCategory con COGS estimado por la razón combinada.
// Devuelve la lista ordenada por ingreso descendente con porcentajes que
// suman exactamente 100.00.
func categoryBreakdown(snap *Snapshot, idx map[string]entity.Product, ratio decimal.Decimal, w Window) []CategoryShare {
	accum := make(map[entity.ProductCategory]*categoryAccum)
	add := func(cat entity.ProductCategory, revenue, cogs decimal.Decimal) {
		a, ok := accum[cat]
		if !ok {
			a = &categoryAccum{}
			accum[cat] = a
		}
		a.revenue = a.revenue.Add(revenue)
		a.cogs = a.cogs.Add(cogs)
	}

	_, settled := orderLedger(snap.Orders, idx, w)

	for i := range snap.Orders {
		o := &snap.Orders[i]
		if !settled[o.ID] {
			continue
		}
		for _, item := range o.Items {
			if item.Quantity <= 0 {
				continue
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			revenue := nonNegative(item.UnitPrice).Mul(qty)

			cat := entity.CategoryOtros
			cogs := decimal.Zero
			if p, ok := idx[item.ProductID]; ok {
				cat = p.Category
				cogs = nonNegative(p.BuyPrice).Mul(qty)
			}
			add(cat, revenue, cogs)
		}
	}

	for i := range snap.Transactions {
		tx := &snap.Transactions[i]
		if !isDirectSale(tx, w, settled) {
			continue
		}
		amount := nonNegative(tx.Amount)
		add(matchCategory(tx.Description, snap.Products), amount, amount.Mul(ratio))
	}

	shares := make([]CategoryShare, 0, len(accum))
	var total decimal.Decimal
	for cat, a := range accum {
		total = total.Add(a.revenue)
		shares = append(shares, CategoryShare{
			Category: cat,
			Revenue:  a.revenue,
			COGS:     a.cogs,
			Profit:   a.revenue.Sub(a.cogs),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Revenue.Equal(shares[j].Revenue) {
			return shares[i].Revenue.GreaterThan(shares[j].Revenue)
		}
		return shares[i].Category < shares[j].Category
	})

	normalizePercentages(shares, total)
	return shares
}

// normalizePercentages calcula pct = revenue/total*100 redondeado a 2 y
// corrige la deriva de redondeo: si la suma se aparta más de 0.01 de 100 se
// reescala uniformemente, y el residuo restante se asigna a la categoría de
// mayor ingreso para que el conjunto sume exactamente 100.00.
func normalizePercentages(shares []CategoryShare, total decimal.Decimal) {
	if len(shares) == 0 || !total.IsPositive() {
		return
	}
	var sum decimal.Decimal
	for i := range shares {
		shares[i].Pct = shares[i].Revenue.Div(total).Mul(hundred).Round(2)
		sum = sum.Add(shares[i].Pct)
	}

	drift := hundred.Sub(sum)
	if drift.Abs().GreaterThan(pctDriftTolerance) && sum.IsPositive() {
		scale := hundred.Div(sum)
		sum = decimal.Zero
		for i := range shares {
			shares[i].Pct = shares[i].Pct.Mul(scale).Round(2)
			sum = sum.Add(shares[i].Pct)
		}
		drift = hundred.Sub(sum)
	}

	// El residuo de redondeo (±0.01 típico) va a la categoría dominante
	if !drift.IsZero() {
		shares[0].Pct = shares[0].Pct.Add(drift)
	}
}

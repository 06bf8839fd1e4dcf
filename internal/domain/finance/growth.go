package finance

import "github.com/shopspring/decimal"

// Límites de las variaciones porcentuales. Existen para que un denominador
// cercano a cero nunca muestre ∞% o miles de por ciento en el dashboard.
var (
	profitChangeBound = decimal.NewFromInt(200)
	marginDeltaBound  = decimal.NewFromInt(100)
	nearZeroMargin    = decimal.RequireFromString("0.01")
	sidewaysDeltaCap  = decimal.NewFromInt(50)
	deltaScaleFactor  = decimal.NewFromInt(10)
	two               = decimal.NewFromInt(2)
)

// clampAbs acota d al rango [-bound, bound].
func clampAbs(d, bound decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(bound) {
		return bound
	}
	if d.LessThan(bound.Neg()) {
		return bound.Neg()
	}
	return d
}

// pctChange variación porcentual de una métrica escalar (clientes, pedidos):
// (actual - anterior) / anterior * 100 si anterior > 0; con anterior en cero,
// 100 si hay valor actual y 0 si no.
func pctChange(current, prior decimal.Decimal) decimal.Decimal {
	if prior.IsPositive() {
		return current.Sub(prior).Div(prior).Mul(hundred)
	}
	if current.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

// profitPctChange variación de utilidad entre períodos. El denominador es el
// valor absoluto del anterior (la utilidad puede ser negativa); con anterior
// en cero: +100 si mejora, -100 si empeora, 0 si nada. Acotado a [-200, 200].
func profitPctChange(current, prior decimal.Decimal) decimal.Decimal {
	var change decimal.Decimal
	switch {
	case !prior.IsZero():
		change = current.Sub(prior).Div(prior.Abs()).Mul(hundred)
	case current.IsPositive():
		change = hundred
	case current.IsNegative():
		change = hundred.Neg()
	default:
		change = decimal.Zero
	}
	return clampAbs(change, profitChangeBound)
}

// profitMargin margen de utilidad de la ventana: el KPI "Crecimiento" que ve
// el usuario. grossProfit = revenue - (cogs + expenses); margen en %.
func profitMargin(t PeriodTotals) decimal.Decimal {
	if !t.Revenue.IsPositive() {
		return decimal.Zero
	}
	gross := t.Revenue.Sub(t.COGS.Add(t.Expenses))
	return gross.Div(t.Revenue).Mul(hundred)
}

// marginDelta variación del margen entre períodos. Multi-rama a propósito:
//
//  1. Con margen anterior significativo (|prior| > 0.01), el delta es la
//     diferencia directa; pero si el salto supera 2x el margen anterior se
//     sustituye por la forma relativa (delta/prior*100, o delta*10 con prior
//     negativo) para no explotar la razón.
//  2. Con margen anterior ≈ 0, delta unilateral moderado acotado a ±50.
//
// El resultado final siempre queda en [-100, 100]. El orden de las ramas es
// parte del contrato de salida: cambiarlo cambia los números del dashboard.
func marginDelta(current, prior decimal.Decimal) decimal.Decimal {
	var delta decimal.Decimal

	if prior.Abs().GreaterThan(nearZeroMargin) {
		delta = current.Sub(prior)
		if delta.Abs().GreaterThan(prior.Abs().Mul(two)) {
			if prior.IsPositive() {
				delta = delta.Div(prior).Mul(hundred)
			} else {
				delta = delta.Mul(deltaScaleFactor)
			}
		}
	} else {
		delta = clampAbs(current, sidewaysDeltaCap)
	}

	return clampAbs(delta, marginDeltaBound)
}

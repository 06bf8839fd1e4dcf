package finance

import (
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
)

// Normalización de registros crudos (JSON deserializado a []any) a entidades
// bien formadas. Es la frontera de validación del motor: después de pasar por
// aquí, la aritmética aguas abajo asume números finitos y no necesita
// try/catch alrededor de cada expresión.
//
// Reglas:
//   - Entradas que no son objetos planos se descartan en silencio.
//   - Campos numéricos: coerción; NaN, ±Inf o no parseable → 0.
//   - Campos string: coerción; ausente → "".
//   - Campos opcionales (categoría, referencia a pedido): solo se conservan
//     si están presentes y no son null; no se inventa un default.
//
// Nunca lanza: siempre devuelve un slice, aunque sea vacío.

// NormalizeProducts coerciona registros crudos a productos.
func NormalizeProducts(raw []any) []entity.Product {
	out := make([]entity.Product, 0, len(raw))
	for _, r := range raw {
		m, ok := asObject(r)
		if !ok {
			continue
		}
		out = append(out, entity.Product{
			ID:        strField(m, "id"),
			Name:      strField(m, "name"),
			BuyPrice:  numField(m, "buyPrice", "buy_price"),
			SellPrice: numField(m, "price", "sell_price"),
			Stock:     intField(m, "stock"),
			Category:  entity.ProductCategory(strField(m, "category")),
			CreatedAt: timeField(m, "createdAt", "created_at"),
		})
	}
	return out
}

// NormalizeOrders coerciona registros crudos a pedidos (con sus items).
func NormalizeOrders(raw []any) []entity.Order {
	out := make([]entity.Order, 0, len(raw))
	for _, r := range raw {
		m, ok := asObject(r)
		if !ok {
			continue
		}
		o := entity.Order{
			ID:            strField(m, "id"),
			CustomerID:    optStrField(m, "customerId", "customer_id"),
			CustomerName:  strField(m, "customerName", "customer_name"),
			Table:         strField(m, "table"),
			Total:         numField(m, "total"),
			Status:        entity.OrderStatus(strField(m, "status")),
			PaymentStatus: entity.PaymentStatus(strField(m, "paymentStatus", "payment_status")),
			PaymentMethod: optStrField(m, "paymentMethod", "payment_method"),
			CreatedAt:     timeField(m, "createdAt", "created_at"),
		}
		if items, ok := m["items"].([]any); ok {
			for _, ri := range items {
				im, ok := asObject(ri)
				if !ok {
					continue
				}
				o.Items = append(o.Items, entity.OrderItem{
					ProductID: strField(im, "productId", "product_id"),
					Name:      strField(im, "name"),
					Quantity:  intField(im, "quantity"),
					UnitPrice: numField(im, "price", "unit_price"),
					ToGo:      boolField(im, "toGo", "to_go"),
					Delivered: boolField(im, "delivered"),
				})
			}
		}
		out = append(out, o)
	}
	return out
}

// NormalizeTransactions coerciona registros crudos a transacciones.
func NormalizeTransactions(raw []any) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(raw))
	for _, r := range raw {
		m, ok := asObject(r)
		if !ok {
			continue
		}
		out = append(out, entity.Transaction{
			ID:          strField(m, "id"),
			Type:        entity.TransactionType(strField(m, "type")),
			Amount:      numField(m, "amount"),
			Description: strField(m, "description"),
			Category:    entity.TransactionCategory(optStrField(m, "category")),
			OrderID:     optStrField(m, "orderId", "order_id"),
			CreatedAt:   timeField(m, "createdAt", "created_at", "date"),
		})
	}
	return out
}

// NormalizeCustomers coerciona registros crudos a clientes.
func NormalizeCustomers(raw []any) []entity.Customer {
	out := make([]entity.Customer, 0, len(raw))
	for _, r := range raw {
		m, ok := asObject(r)
		if !ok {
			continue
		}
		c := entity.Customer{
			ID:          strField(m, "id"),
			Name:        strField(m, "name"),
			NationalID:  strField(m, "nationalId", "national_id"),
			Phone:       strField(m, "phone"),
			PIN:         optStrField(m, "pin"),
			TotalSpent:  numField(m, "totalSpent", "total_spent"),
			OrdersCount: intField(m, "ordersCount", "orders_count"),
			Tier:        entity.CustomerTier(strField(m, "tier")),
			CreatedAt:   timeField(m, "createdAt", "created_at"),
		}
		if lv := timeField(m, "lastVisit", "last_visit"); !lv.IsZero() {
			c.LastVisit = &lv
		}
		out = append(out, c)
	}
	return out
}

// asObject acepta solo objetos planos clave-valor; arrays, escalares y null
// se descartan.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// numField coerción numérica con fallback 0: float JSON, string numérico o
// json.Number-style; NaN e infinitos también caen a 0.
func numField(m map[string]any, keys ...string) decimal.Decimal {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return decimal.Zero
			}
			return decimal.NewFromFloat(n)
		case int:
			return decimal.NewFromInt(int64(n))
		case string:
			d, err := decimal.NewFromString(n)
			if err != nil {
				return decimal.Zero
			}
			return d
		default:
			return decimal.Zero
		}
	}
	return decimal.Zero
}

func intField(m map[string]any, keys ...string) int {
	d := numField(m, keys...)
	return int(d.IntPart())
}

// strField coerción a string; ausente o null → "".
func strField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(s)
		default:
			return ""
		}
	}
	return ""
}

// optStrField como strField pero sin default: ausente o null se queda vacío
// y el llamador lo interpreta como "no presente".
func optStrField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func boolField(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

// timeField acepta RFC3339 o epoch en milisegundos; fallback: hora cero.
func timeField(m map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				return parsed
			}
		case float64:
			if !math.IsNaN(t) && !math.IsInf(t, 0) && t > 0 {
				return time.UnixMilli(int64(t))
			}
		}
	}
	return time.Time{}
}

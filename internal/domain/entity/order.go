package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus máquina de estados del pedido:
// pending → kitchen → preparing → ready → delivered → completed, o cancelled.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderKitchen   OrderStatus = "kitchen"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus estado de pago, independiente del estado del pedido.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// OrderItem línea de pedido. Name y UnitPrice son snapshots al momento de la
// venta: el producto puede cambiar de precio o borrarse después sin afectar
// pedidos históricos (por eso el join item→producto puede fallar y se tolera).
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	ToGo      bool // para llevar
	Delivered bool
}

// Order pedido de mesa o de mostrador.
//
// Total es redundante respecto a los items y es la fuente de verdad para
// ingresos: el motor financiero confía en el snapshot y nunca lo recalcula.
type Order struct {
	ID            string
	CustomerID    string // opcional: pedido anónimo si vacío
	CustomerName  string
	Table         string // mesa o etiqueta de ubicación ("Mesa 4", "Mostrador")
	Items         []OrderItem
	Total         decimal.Decimal
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod string // opcional: efectivo, tarjeta, pix...

	// CountedInCustomer evita acumular dos veces el gasto en el cliente cuando
	// el pedido pasa por varios eventos de pago/completado.
	CountedInCustomer bool

	CreatedAt       time.Time
	SentToKitchenAt *time.Time
	CompletedAt     *time.Time
}

// Settled indica si el pedido cuenta como ingreso: completado O pagado.
// Las dos banderas son independientes y cualquiera de las dos basta.
func (o *Order) Settled() bool {
	return o.Status == OrderCompleted || o.PaymentStatus == PaymentPaid
}

// CanTransition valida la máquina de estados. Cancelar es válido desde
// cualquier estado no terminal.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderCompleted || from == OrderCancelled {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	next := map[OrderStatus]OrderStatus{
		OrderPending:   OrderKitchen,
		OrderKitchen:   OrderPreparing,
		OrderPreparing: OrderReady,
		OrderReady:     OrderDelivered,
		OrderDelivered: OrderCompleted,
	}
	return next[from] == to
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest línea del pedido en el checkout.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	ToGo      bool   `json:"to_go"`
}

// CheckoutRequest creación de pedido (mesa o mostrador).
type CheckoutRequest struct {
	CustomerID    string                `json:"customer_id,omitempty"`
	CustomerName  string                `json:"customer_name"`
	Table         string                `json:"table"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	Items         []CheckoutItemRequest `json:"items"`
}

// UpdateOrderStatusRequest transición de la máquina de estados.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PayOrderRequest marca el pedido como pagado.
type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// OrderItemResponse línea de pedido para la API.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ToGo      bool            `json:"to_go"`
	Delivered bool            `json:"delivered"`
}

// OrderResponse pedido completo para la API.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id,omitempty"`
	CustomerName  string              `json:"customer_name"`
	Table         string              `json:"table"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

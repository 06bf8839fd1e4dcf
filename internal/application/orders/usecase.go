// Package orders implementa el ciclo de vida del pedido: checkout, máquina
// de estados, pago y la contabilización única del gasto en el cliente.
package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/application/ports"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	runner    ports.TxRunner
	orderRepo repository.OrderRepository
	auditRepo repository.AuditLogRepository
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(
	runner ports.TxRunner,
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{runner: runner, orderRepo: orderRepo, auditRepo: auditRepo, log: log}
}

// Checkout crea el pedido con sus items, descuenta stock y registra la
// transacción de venta enlazada, todo en una transacción. El total se
// congela aquí: es el snapshot que el motor financiero usará como ingreso.
func (uc *OrderUseCase) Checkout(req dto.CheckoutRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.Order
	err := uc.runner.Run(func(r ports.TxRepos) error {
		now := time.Now()
		items := make([]entity.OrderItem, 0, len(req.Items))
		total := decimal.Zero
		for _, line := range req.Items {
			if line.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			product, err := r.Products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < line.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := r.Products.AdjustStock(product.ID, -line.Quantity); err != nil {
				return err
			}
			items = append(items, entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				UnitPrice: product.SellPrice,
				ToGo:      line.ToGo,
			})
			total = total.Add(product.SellPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order = &entity.Order{
			ID:            uuid.New().String(),
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			Table:         req.Table,
			Items:         items,
			Total:         total,
			Status:        entity.OrderPending,
			PaymentStatus: entity.PaymentPending,
			PaymentMethod: req.PaymentMethod,
			CreatedAt:     now,
		}
		if err := r.Orders.Create(order); err != nil {
			return err
		}

		// Transacción de venta enlazada al pedido. Mientras el pedido no
		// liquide, esta transacción es la que cuenta como ingreso directo;
		// cuando el pedido liquida, el motor la excluye para no duplicar.
		return r.Transactions.Create(&entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionIncome,
			Amount:      total,
			Description: fmt.Sprintf("Venta pedido %s", order.Table),
			Category:    entity.TxCategorySale,
			OrderID:     order.ID,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_id", order.ID).Str("total", order.Total.String()).Msg("pedido creado")
	return order, nil
}

// UpdateStatus avanza la máquina de estados. Si la transición lleva el
// pedido a completed, dispara la contabilización en el cliente.
func (uc *OrderUseCase) UpdateStatus(orderID string, status entity.OrderStatus, userID string) (*entity.Order, error) {
	var updated *entity.Order
	err := uc.runner.Run(func(r ports.TxRepos) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransition(order.Status, status) {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		order.Status = status
		switch status {
		case entity.OrderKitchen:
			order.SentToKitchenAt = &now
		case entity.OrderCompleted:
			order.CompletedAt = &now
			if err := settleCustomer(r, order, now); err != nil {
				return err
			}
		case entity.OrderCancelled:
			// Un pedido cancelado sin pagar devuelve el stock.
			if order.PaymentStatus != entity.PaymentPaid {
				for _, item := range order.Items {
					if err := r.Products.AdjustStock(item.ProductID, item.Quantity); err != nil {
						if !errors.Is(err, domain.ErrNotFound) {
							return err
						}
					}
				}
			}
		}
		if err := r.Orders.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit("order.status", fmt.Sprintf("pedido %s → %s", orderID, status), userID)
	return updated, nil
}

// MarkPaid marca el pedido como pagado. Pagado basta para liquidar: el
// gasto se acumula en el cliente aquí aunque el pedido siga en cocina.
func (uc *OrderUseCase) MarkPaid(orderID, paymentMethod, userID string) (*entity.Order, error) {
	var updated *entity.Order
	err := uc.runner.Run(func(r ports.TxRepos) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.OrderCancelled || order.PaymentStatus == entity.PaymentPaid {
			return domain.ErrConflict
		}

		now := time.Now()
		order.PaymentStatus = entity.PaymentPaid
		if paymentMethod != "" {
			order.PaymentMethod = paymentMethod
		}
		if err := settleCustomer(r, order, now); err != nil {
			return err
		}
		if err := r.Orders.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit("order.paid", fmt.Sprintf("pedido %s pagado (%s)", orderID, paymentMethod), userID)
	return updated, nil
}

// UpdateTotal corrección manual del total (descuento, error de tipeo).
// Reescribe también la transacción de venta enlazada para que los dos
// libros cuenten lo mismo.
func (uc *OrderUseCase) UpdateTotal(orderID string, total decimal.Decimal, userID string) (*entity.Order, error) {
	if total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.runner.Run(func(r ports.TxRepos) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		order.Total = total
		if err := r.Orders.Update(order); err != nil {
			return err
		}

		tx, err := r.Transactions.GetByOrderID(orderID)
		if err != nil {
			return err
		}
		if tx != nil {
			if err := r.Transactions.UpdateAmount(tx.ID, total); err != nil {
				return err
			}
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit("order.total", fmt.Sprintf("pedido %s total corregido a %s", orderID, total.String()), userID)
	return updated, nil
}

// GetByID devuelve un pedido con sus items.
func (uc *OrderUseCase) GetByID(orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve todos los pedidos.
func (uc *OrderUseCase) List() ([]entity.Order, error) {
	return uc.orderRepo.List()
}

// settleCustomer acumula el gasto en el cliente exactamente una vez por
// pedido. El guard CountedInCustomer tolera que el pedido pase por varios
// eventos de pago/completado sin duplicar TotalSpent ni OrdersCount.
func settleCustomer(r ports.TxRepos, order *entity.Order, now time.Time) error {
	if order.CountedInCustomer || order.CustomerID == "" {
		return nil
	}
	customer, err := r.Customers.GetByID(order.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		// Pedido con cliente borrado: se liquida igual, sin acumular.
		order.CountedInCustomer = true
		return nil
	}
	customer.TotalSpent = customer.TotalSpent.Add(order.Total)
	customer.OrdersCount++
	customer.LastVisit = &now
	customer.UpdatedAt = now
	if err := r.Customers.Update(customer); err != nil {
		return err
	}
	order.CountedInCustomer = true
	return nil
}

func (uc *OrderUseCase) audit(action, detail, userID string) {
	if err := uc.auditRepo.Append(&entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		Detail:    detail,
		UserID:    userID,
		CreatedAt: time.Now(),
	}); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo auditar")
	}
}

package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/application/ports"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type memStore struct {
	products     map[string]*entity.Product
	orders       map[string]*entity.Order
	transactions map[string]*entity.Transaction
	customers    map[string]*entity.Customer
}

func newMemStore() *memStore {
	return &memStore{
		products:     map[string]*entity.Product{},
		orders:       map[string]*entity.Order{},
		transactions: map[string]*entity.Transaction{},
		customers:    map[string]*entity.Customer{},
	}
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { cp := *p; r.s.products[p.ID] = &cp; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (r *memProductRepo) List() ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	return out, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { cp := *p; r.s.products[p.ID] = &cp; return nil }
func (r *memProductRepo) AdjustStock(id string, delta int) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(o *entity.Order) error { cp := *o; r.s.orders[o.ID] = &cp; return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.s.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}
func (r *memOrderRepo) List() ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, *o)
	}
	return out, nil
}
func (r *memOrderRepo) Update(o *entity.Order) error { cp := *o; r.s.orders[o.ID] = &cp; return nil }
func (r *memOrderRepo) Delete(id string) error       { delete(r.s.orders, id); return nil }
func (r *memOrderRepo) DeleteAll() error             { r.s.orders = map[string]*entity.Order{}; return nil }

type memTransactionRepo struct{ s *memStore }

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	cp := *t
	r.s.transactions[t.ID] = &cp
	return nil
}
func (r *memTransactionRepo) GetByOrderID(orderID string) (*entity.Transaction, error) {
	for _, t := range r.s.transactions {
		if t.OrderID == orderID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memTransactionRepo) List() ([]entity.Transaction, error) {
	out := make([]entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		out = append(out, *t)
	}
	return out, nil
}
func (r *memTransactionRepo) UpdateAmount(id string, amount decimal.Decimal) error {
	t, ok := r.s.transactions[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Amount = amount
	return nil
}
func (r *memTransactionRepo) DeleteAll() error {
	r.s.transactions = map[string]*entity.Transaction{}
	return nil
}

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Create(c *entity.Customer) error { cp := *c; r.s.customers[c.ID] = &cp; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if c, ok := r.s.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}
func (r *memCustomerRepo) List() ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, *c)
	}
	return out, nil
}
func (r *memCustomerRepo) Update(c *entity.Customer) error { cp := *c; r.s.customers[c.ID] = &cp; return nil }
func (r *memCustomerRepo) Delete(id string) error          { delete(r.s.customers, id); return nil }
func (r *memCustomerRepo) ResetTotals() error {
	for _, c := range r.s.customers {
		c.TotalSpent = decimal.Zero
		c.OrdersCount = 0
	}
	return nil
}

type memAuditRepo struct{ entries []entity.AuditLog }

func (r *memAuditRepo) Append(e *entity.AuditLog) error {
	r.entries = append(r.entries, *e)
	return nil
}
func (r *memAuditRepo) List(limit int) ([]entity.AuditLog, error) { return r.entries, nil }

// memRunner ejecuta el callback directo sobre el store, sin transacción real.
type memRunner struct{ s *memStore }

func (m *memRunner) Run(fn func(r ports.TxRepos) error) error {
	return fn(ports.TxRepos{
		Products:     &memProductRepo{s: m.s},
		Orders:       &memOrderRepo{s: m.s},
		Transactions: &memTransactionRepo{s: m.s},
		Customers:    &memCustomerRepo{s: m.s},
	})
}

func newTestUseCase(s *memStore) (*OrderUseCase, *memAuditRepo) {
	audit := &memAuditRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return NewOrderUseCase(&memRunner{s: s}, &memOrderRepo{s: s}, audit, log), audit
}

func seedProduct(s *memStore, id, name string, sell string, stock int) {
	s.products[id] = &entity.Product{
		ID:        id,
		Name:      name,
		BuyPrice:  decimal.RequireFromString("5"),
		SellPrice: decimal.RequireFromString(sell),
		Stock:     stock,
		Category:  entity.CategoryComidas,
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestCheckoutCreaPedidoYTransaccionEnlazada(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Hamburguesa", "28", 10)
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		CustomerName: "Ana",
		Table:        "Mesa 4",
		Items:        []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("56").Equal(order.Total))
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, 8, s.products["p1"].Stock, "el stock debe descontarse")

	tx, err := (&memTransactionRepo{s: s}).GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, tx, "debe existir la transacción de venta enlazada")
	assert.True(t, order.Total.Equal(tx.Amount))
	assert.Equal(t, entity.TxCategorySale, tx.Category)
}

func TestCheckoutStockInsuficiente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Hamburguesa", "28", 1)
	uc, _ := newTestUseCase(s)

	_, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mesa 1",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCheckoutSinItems(t *testing.T) {
	uc, _ := newTestUseCase(newMemStore())
	_, err := uc.Checkout(dto.CheckoutRequest{Table: "Mesa 1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatusTransicionInvalida(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Café", "8", 10)
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mesa 2",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	// pending → ready se salta kitchen y preparing
	_, err = uc.UpdateStatus(order.ID, entity.OrderReady, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMarkPaidAcumulaEnClienteUnaSolaVez(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Pizza", "25", 10)
	s.customers["c1"] = &entity.Customer{ID: "c1", Name: "Luis", TotalSpent: decimal.Zero}
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		CustomerID: "c1",
		Table:      "Mesa 3",
		Items:      []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	paid, err := uc.MarkPaid(order.ID, "efectivo", "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, paid.PaymentStatus)
	assert.True(t, paid.CountedInCustomer)

	// avanzar hasta completed NO debe volver a acumular
	for _, st := range []entity.OrderStatus{
		entity.OrderKitchen, entity.OrderPreparing, entity.OrderReady,
		entity.OrderDelivered, entity.OrderCompleted,
	} {
		_, err = uc.UpdateStatus(order.ID, st, "u1")
		require.NoError(t, err)
	}

	customer := s.customers["c1"]
	assert.True(t, decimal.RequireFromString("25").Equal(customer.TotalSpent),
		"TotalSpent debe acumularse exactamente una vez, quedó %s", customer.TotalSpent)
	assert.Equal(t, 1, customer.OrdersCount)
	assert.NotNil(t, customer.LastVisit)
}

func TestMarkPaidDosVecesFalla(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Café", "8", 10)
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mostrador",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.MarkPaid(order.ID, "efectivo", "u1")
	require.NoError(t, err)
	_, err = uc.MarkPaid(order.ID, "efectivo", "u1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCompletarSinPagoAcumulaEnCliente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Flan", "10", 10)
	s.customers["c1"] = &entity.Customer{ID: "c1", Name: "Eva", TotalSpent: decimal.Zero}
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		CustomerID: "c1",
		Table:      "Mesa 5",
		Items:      []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	for _, st := range []entity.OrderStatus{
		entity.OrderKitchen, entity.OrderPreparing, entity.OrderReady,
		entity.OrderDelivered, entity.OrderCompleted,
	} {
		_, err = uc.UpdateStatus(order.ID, st, "u1")
		require.NoError(t, err)
	}

	assert.True(t, decimal.RequireFromString("20").Equal(s.customers["c1"].TotalSpent))
	assert.Equal(t, 1, s.customers["c1"].OrdersCount)
}

func TestCancelarDevuelveStock(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Nachos", "12", 10)
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mesa 6",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, s.products["p1"].Stock)

	_, err = uc.UpdateStatus(order.ID, entity.OrderCancelled, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, s.products["p1"].Stock)
}

func TestUpdateTotalReescribeTransaccion(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Torta", "15", 10)
	uc, _ := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mesa 7",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	corrected := decimal.RequireFromString("25")
	updated, err := uc.UpdateTotal(order.ID, corrected, "u1")
	require.NoError(t, err)
	assert.True(t, corrected.Equal(updated.Total))

	tx, err := (&memTransactionRepo{s: s}).GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.True(t, corrected.Equal(tx.Amount), "la transacción enlazada debe reflejar el total corregido")
}

func TestAuditoriaRegistraEventos(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "p1", "Café", "8", 10)
	uc, audit := newTestUseCase(s)

	order, err := uc.Checkout(dto.CheckoutRequest{
		Table: "Mesa 8",
		Items: []dto.CheckoutItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.MarkPaid(order.ID, "tarjeta", "u9")
	require.NoError(t, err)

	require.NotEmpty(t, audit.entries)
	assert.Equal(t, "order.paid", audit.entries[len(audit.entries)-1].Action)
	assert.Equal(t, "u9", audit.entries[len(audit.entries)-1].UserID)
}

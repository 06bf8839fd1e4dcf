package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (pedido + items).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// List devuelve todos los pedidos con sus items (el motor financiero
	// trabaja sobre la colección completa).
	List() ([]entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) error
	DeleteAll() error
}

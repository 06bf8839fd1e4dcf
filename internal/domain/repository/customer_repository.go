package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (CRM).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// ResetTotals pone en cero TotalSpent y OrdersCount de todos los
	// clientes (parte del reset financiero).
	ResetTotals() error
}

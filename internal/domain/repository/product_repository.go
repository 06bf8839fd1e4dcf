package repository

import "github.com/tu-usuario/resto-caja/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (catálogo).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]entity.Product, error)
	Update(product *entity.Product) error
	AdjustStock(id string, delta int) error
	Delete(id string) error
}

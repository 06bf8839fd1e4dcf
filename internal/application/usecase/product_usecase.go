// Package usecase agrupa los casos de uso CRUD simples (catálogo, clientes,
// transacciones manuales y reservas).
package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto. Precios negativos se rechazan: el motor
// financiero asume catálogo con precios no negativos.
func (uc *ProductUseCase) Create(req dto.CreateProductRequest) (*entity.Product, error) {
	if req.Name == "" || req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() || req.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, ok := parseCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      req.Name,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		Stock:     req.Stock,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.repo.List()
}

// Update edita un producto existente.
func (uc *ProductUseCase) Update(id string, req dto.CreateProductRequest) (*entity.Product, error) {
	if req.Name == "" || req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() || req.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, ok := parseCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = req.Name
	product.BuyPrice = req.BuyPrice
	product.SellPrice = req.SellPrice
	product.Stock = req.Stock
	product.Category = category
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto. Los pedidos históricos conservan el nombre y
// precio en sus items: el borrado no los afecta.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func parseCategory(s string) (entity.ProductCategory, bool) {
	if s == "" {
		return entity.CategoryOtros, true
	}
	for _, c := range entity.ValidCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

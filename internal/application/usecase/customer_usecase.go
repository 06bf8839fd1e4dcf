package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes. Los acumulados (TotalSpent, OrdersCount)
// no se editan por aquí: los mueve únicamente la liquidación de pedidos.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create da de alta un cliente con acumulados en cero.
func (uc *CustomerUseCase) Create(req dto.CreateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	tier, ok := parseTier(req.Tier)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       req.Name,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		PIN:        req.PIN,
		TotalSpent: decimal.Zero,
		Tier:       tier,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID devuelve un cliente por id.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]entity.Customer, error) {
	return uc.repo.List()
}

// Update edita los datos de contacto y el tier.
func (uc *CustomerUseCase) Update(id string, req dto.CreateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	tier, ok := parseTier(req.Tier)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = req.Name
	customer.NationalID = req.NationalID
	customer.Phone = req.Phone
	if req.PIN != "" {
		customer.PIN = req.PIN
	}
	customer.Tier = tier
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete elimina un cliente. Sus pedidos históricos quedan (con CustomerID
// colgante, que la liquidación tolera).
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func parseTier(s string) (entity.CustomerTier, bool) {
	switch s {
	case "", string(entity.TierNormal):
		return entity.TierNormal, true
	case string(entity.TierFixed):
		return entity.TierFixed, true
	case string(entity.TierVIP):
		return entity.TierVIP, true
	}
	return "", false
}

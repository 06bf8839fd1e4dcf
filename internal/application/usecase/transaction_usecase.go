package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/domain"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
)

// TransactionUseCase registro manual de movimientos de caja: ventas directas
// de mostrador, compras, gastos y salarios. Sin edición ni borrado individual:
// el libro de caja es append-only salvo la reescritura correctiva de pedidos
// y el reset total.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso de transacciones.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra un movimiento. El monto debe ser positivo; la dirección la
// da Type. OrderID es opcional y enlaza la venta con su pedido.
func (uc *TransactionUseCase) Create(req dto.CreateTransactionRequest) (*entity.Transaction, error) {
	txType, ok := parseTxType(req.Type)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if !req.Amount.IsPositive() || req.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	category, ok := parseTxCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    category,
		OrderID:     req.OrderID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List devuelve todos los movimientos de caja.
func (uc *TransactionUseCase) List() ([]entity.Transaction, error) {
	return uc.repo.List()
}

func parseTxType(s string) (entity.TransactionType, bool) {
	switch s {
	case string(entity.TransactionIncome):
		return entity.TransactionIncome, true
	case string(entity.TransactionExpense):
		return entity.TransactionExpense, true
	}
	return "", false
}

func parseTxCategory(s string) (entity.TransactionCategory, bool) {
	switch s {
	case "":
		return entity.TxCategoryOther, true
	case string(entity.TxCategorySale):
		return entity.TxCategorySale, true
	case string(entity.TxCategoryPurchase):
		return entity.TxCategoryPurchase, true
	case string(entity.TxCategoryExpense):
		return entity.TxCategoryExpense, true
	case string(entity.TxCategorySalary):
		return entity.TxCategorySalary, true
	case string(entity.TxCategoryOther):
		return entity.TxCategoryOther, true
	}
	return "", false
}

package finance

import (
	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/application/ports"
	"github.com/tu-usuario/resto-caja/internal/domain/finance"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

// ImportUseCase importa un backup crudo (el JSON que exportaba el
// almacenamiento del navegador). Cada colección pasa por el normalizador:
// registros corruptos se descartan o coercionan a valores seguros, la
// importación nunca falla por datos sucios.
type ImportUseCase struct {
	runner ports.TxRunner
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso de importación.
func NewImportUseCase(runner ports.TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{runner: runner, log: log}
}

// Import normaliza y persiste las cuatro colecciones en una transacción.
// Los registros existentes con el mismo ID se consideran duplicados y cortan
// la importación (el backup se importa sobre una base limpia o tras un reset).
func (uc *ImportUseCase) Import(req dto.SnapshotImportRequest) (*dto.SnapshotImportResponse, error) {
	products := finance.NormalizeProducts(req.Products)
	orders := finance.NormalizeOrders(req.Orders)
	transactions := finance.NormalizeTransactions(req.Transactions)
	customers := finance.NormalizeCustomers(req.Customers)

	dropped := (len(req.Products) - len(products)) +
		(len(req.Orders) - len(orders)) +
		(len(req.Transactions) - len(transactions)) +
		(len(req.Customers) - len(customers))
	if dropped > 0 {
		uc.log.Warn().Int("dropped", dropped).Msg("registros descartados por el normalizador")
	}

	err := uc.runner.Run(func(r ports.TxRepos) error {
		for i := range products {
			if err := r.Products.Create(&products[i]); err != nil {
				return err
			}
		}
		for i := range customers {
			if err := r.Customers.Create(&customers[i]); err != nil {
				return err
			}
		}
		for i := range orders {
			if err := r.Orders.Create(&orders[i]); err != nil {
				return err
			}
		}
		for i := range transactions {
			if err := r.Transactions.Create(&transactions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("products", len(products)).
		Int("orders", len(orders)).
		Int("transactions", len(transactions)).
		Int("customers", len(customers)).
		Msg("backup importado")
	return &dto.SnapshotImportResponse{
		Products:     len(products),
		Orders:       len(orders),
		Transactions: len(transactions),
		Customers:    len(customers),
	}, nil
}

package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/resto-caja/internal/application/ports"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

const seededKey = "seeded"

// SeedUseCase siembra el catálogo de demostración exactamente una vez.
// El flag vive en app_state, no en memoria: sobrevive reinicios y vale
// para múltiples instancias del servicio.
type SeedUseCase struct {
	runner ports.TxRunner
	log    *logger.Logger
}

// NewSeedUseCase construye el caso de uso de siembra.
func NewSeedUseCase(runner ports.TxRunner, log *logger.Logger) *SeedUseCase {
	return &SeedUseCase{runner: runner, log: log}
}

// EnsureSeeded inserta los datos demo si nunca se sembró. Idempotente: la
// segunda llamada (u otra instancia) encuentra el flag y no hace nada.
func (uc *SeedUseCase) EnsureSeeded() error {
	return uc.runner.Run(func(r ports.TxRepos) error {
		flag, err := r.AppState.Get(seededKey)
		if err != nil {
			return err
		}
		if flag == "true" {
			return nil
		}
		now := time.Now()
		for _, p := range demoProducts(now) {
			p := p
			if err := r.Products.Create(&p); err != nil {
				return err
			}
		}
		if err := r.AppState.Set(seededKey, "true"); err != nil {
			return err
		}
		uc.log.Info().Msg("catálogo demo sembrado")
		return nil
	})
}

func demoProducts(now time.Time) []entity.Product {
	mk := func(name string, buy, sell string, stock int, cat entity.ProductCategory) entity.Product {
		return entity.Product{
			ID:        uuid.New().String(),
			Name:      name,
			BuyPrice:  decimal.RequireFromString(buy),
			SellPrice: decimal.RequireFromString(sell),
			Stock:     stock,
			Category:  cat,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return []entity.Product{
		mk("Café Americano", "2.50", "8.00", 100, entity.CategoryBebidas),
		mk("Jugo Natural", "3.00", "10.00", 60, entity.CategoryBebidas),
		mk("Refresco", "2.00", "6.00", 120, entity.CategoryBebidas),
		mk("Hamburguesa Clásica", "12.00", "28.00", 40, entity.CategoryComidas),
		mk("Pizza Personal", "10.00", "25.00", 35, entity.CategoryComidas),
		mk("Ensalada César", "8.00", "20.00", 25, entity.CategoryComidas),
		mk("Torta de Chocolate", "5.00", "15.00", 20, entity.CategoryPostres),
		mk("Flan Casero", "3.50", "10.00", 24, entity.CategoryPostres),
		mk("Papas Fritas", "3.00", "9.00", 80, entity.CategorySnacks),
		mk("Nachos con Queso", "4.50", "12.00", 50, entity.CategorySnacks),
	}
}

package finance

import (
	"time"

	"github.com/tu-usuario/resto-caja/internal/application/dto"
	"github.com/tu-usuario/resto-caja/internal/domain/finance"
	"github.com/tu-usuario/resto-caja/internal/domain/repository"
	"github.com/tu-usuario/resto-caja/pkg/logger"
)

// ReportUseCase arma el Snapshot desde los repositorios y delega el cálculo
// al motor puro. Dashboard, PDF y HTML pasan por aquí: una sola ruta.
type ReportUseCase struct {
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	transactionRepo repository.TransactionRepository
	customerRepo    repository.CustomerRepository
	opts            finance.Options
	log             *logger.Logger
}

// NewReportUseCase construye el caso de uso del reporte financiero.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	transactionRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	opts finance.Options,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		opts:            opts,
		log:             log,
	}
}

// Build carga las cuatro colecciones y calcula el reporte. El reporte se
// recalcula en cada petición: no hay caché que invalidar ni estado que
// sincronizar entre vistas.
func (uc *ReportUseCase) Build(now time.Time) (finance.Report, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return finance.Report{}, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return finance.Report{}, err
	}
	transactions, err := uc.transactionRepo.List()
	if err != nil {
		return finance.Report{}, err
	}
	customers, err := uc.customerRepo.List()
	if err != nil {
		return finance.Report{}, err
	}

	snap := finance.Snapshot{
		Products:     products,
		Orders:       orders,
		Transactions: transactions,
		Customers:    customers,
		Now:          now,
	}
	report := finance.BuildReport(snap, uc.opts)
	uc.log.Debug().
		Int("products", len(products)).
		Int("orders", len(orders)).
		Int("transactions", len(transactions)).
		Str("profit_30d", report.Current.Profit.String()).
		Msg("reporte financiero calculado")
	return report, nil
}

// BuildDTO versión para el dashboard JSON: top 5 categorías.
func (uc *ReportUseCase) BuildDTO(now time.Time) (*dto.FinanceReportDTO, error) {
	report, err := uc.Build(now)
	if err != nil {
		return nil, err
	}
	return ToReportDTO(&report, 5), nil
}

// ToReportDTO mapea el reporte del dominio al DTO de la API, recortando las
// categorías al top-N pedido.
func ToReportDTO(r *finance.Report, topN int) *dto.FinanceReportDTO {
	out := &dto.FinanceReportDTO{
		Customers:     toKPIDTO(r.Customers),
		Orders:        toKPIDTO(r.Orders),
		Profit:        toKPIDTO(r.Profit),
		Growth:        toKPIDTO(r.Growth),
		Products:      toKPIDTO(r.Products),
		Current:       toPeriodDTO(r.Current),
		Previous:      toPeriodDTO(r.Previous),
		Baseline90:    toPeriodDTO(r.Baseline90),
		MonthlyProfit: r.MonthlyProfit,
		GeneratedAt:   r.GeneratedAt,
	}
	out.Monthly = make([]dto.MonthlyPointDTO, len(r.Monthly))
	for i, m := range r.Monthly {
		out.Monthly[i] = dto.MonthlyPointDTO{
			Month:            int(m.Month),
			Label:            m.Label,
			ActualRevenue:    m.ActualRevenue,
			ActualProfit:     m.ActualProfit,
			ProjectedRevenue: m.ProjectedRevenue,
			ProjectedProfit:  m.ProjectedProfit,
		}
	}
	out.Weekly = make([]dto.WeeklyPointDTO, len(r.Weekly))
	for i, w := range r.Weekly {
		out.Weekly[i] = dto.WeeklyPointDTO{
			Day:             w.Label,
			CurrentRevenue:  w.CurrentRevenue,
			PreviousRevenue: w.PreviousRevenue,
			Profit:          w.Profit,
			MarginPct:       w.MarginPct,
		}
	}
	top := r.TopCategories(topN)
	out.Categories = make([]dto.CategoryShareDTO, len(top))
	for i, c := range top {
		out.Categories[i] = dto.CategoryShareDTO{
			Category: string(c.Category),
			Revenue:  c.Revenue,
			Pct:      c.Pct,
			COGS:     c.COGS,
			Profit:   c.Profit,
		}
	}
	return out
}

func toKPIDTO(k finance.KPI) dto.KPIDTO {
	return dto.KPIDTO{Value: k.Value, ChangePct: k.ChangePct}
}

func toPeriodDTO(t finance.PeriodTotals) dto.PeriodTotalsDTO {
	return dto.PeriodTotalsDTO{Revenue: t.Revenue, COGS: t.COGS, Expenses: t.Expenses, Profit: t.Profit}
}

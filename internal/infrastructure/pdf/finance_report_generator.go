// Package pdf implementa la exportación del reporte financiero a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Clientes | Pedidos | Utilidad | Margen | Productos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Período (30d / 30d previos / 90d)                   │
//	│  TABLA: Serie mensual (real + proyección)                   │
//	│  TABLA: Semana actual vs anterior                           │
//	│  TABLA: Top 10 categorías                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/resto-caja/internal/domain/finance"
	"github.com/tu-usuario/resto-caja/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPositive = &props.Color{Red: 16, Green: 122, Blue: 52}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// FinanceReportGenerator produce el PDF del reporte financiero con Maroto v2.
type FinanceReportGenerator struct {
	appName string
	fmt     *money.Formatter
}

// NewFinanceReportGenerator construye el generador.
func NewFinanceReportGenerator(appName string, formatter *money.Formatter) *FinanceReportGenerator {
	return &FinanceReportGenerator{appName: appName, fmt: formatter}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *FinanceReportGenerator) Generate(report *finance.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.kpiRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("RESULTADOS POR PERÍODO"))
	m.AddRows(g.periodHeaderRow())
	m.AddRows(g.periodRow("Últimos 30 días", report.Current))
	m.AddRows(g.periodRow("30 días previos", report.Previous))
	m.AddRows(g.periodRow("Últimos 90 días", report.Baseline90))

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("SERIE MENSUAL (REAL Y PROYECCIÓN)"))
	m.AddRows(g.monthlyHeaderRow())
	for _, p := range report.Monthly {
		m.AddRows(g.monthlyRow(p))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("SEMANA ACTUAL VS ANTERIOR"))
	m.AddRows(g.weeklyHeaderRow())
	for _, p := range report.Weekly {
		m.AddRows(g.weeklyRow(p))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("TOP CATEGORÍAS (30 DÍAS)"))
	m.AddRows(g.categoryHeaderRow())
	for _, c := range report.TopCategories(10) {
		m.AddRows(g.categoryRow(c))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *FinanceReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte Financiero", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cinco indicadores con su variación vs el período anterior.
func (g *FinanceReportGenerator) kpiRow(report *finance.Report) core.Row {
	cell := func(label string, k finance.KPI, isMoney bool) core.Col {
		value := k.Value.StringFixed(0)
		if isMoney {
			value = g.fmt.Currency(k.Value)
		}
		changeColor := colorPositive
		if k.ChangePct.IsNegative() {
			changeColor = colorNegative
		}
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(g.fmt.SignedPercent(k.ChangePct), props.Text{
				Size: 7, Top: 11, Color: changeColor,
			}),
		)
	}
	marginCell := func(label string, k finance.KPI) core.Col {
		changeColor := colorPositive
		if k.ChangePct.IsNegative() {
			changeColor = colorNegative
		}
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(g.fmt.Percent(k.Value), props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(g.fmt.SignedPercent(k.ChangePct), props.Text{
				Size: 7, Top: 11, Color: changeColor,
			}),
		)
	}

	return row.New(16).Add(
		col.New(1),
		cell("CLIENTES", report.Customers, false),
		cell("PEDIDOS", report.Orders, false),
		cell("UTILIDAD 30D", report.Profit, true),
		marginCell("MARGEN", report.Growth),
		cell("PRODUCTOS", report.Products, false),
		col.New(1),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func (g *FinanceReportGenerator) periodHeaderRow() core.Row {
	return tableHeader(
		hcol("Período", 4, align.Left),
		hcol("Ingresos", 2, align.Right),
		hcol("COGS", 2, align.Right),
		hcol("Gastos", 2, align.Right),
		hcol("Utilidad", 2, align.Right),
	)
}

func (g *FinanceReportGenerator) periodRow(label string, t finance.PeriodTotals) core.Row {
	return row.New(6).Add(
		vcolText(label, 4, align.Left),
		vcolText(g.fmt.Currency(t.Revenue), 2, align.Right),
		vcolText(g.fmt.Currency(t.COGS), 2, align.Right),
		vcolText(g.fmt.Currency(t.Expenses), 2, align.Right),
		vcolText(g.fmt.Currency(t.Profit), 2, align.Right),
	)
}

func (g *FinanceReportGenerator) monthlyHeaderRow() core.Row {
	return tableHeader(
		hcol("Mes", 2, align.Left),
		hcol("Ingreso real", 2, align.Right),
		hcol("Utilidad real", 3, align.Right),
		hcol("Ingreso proy.", 2, align.Right),
		hcol("Utilidad proy.", 3, align.Right),
	)
}

func (g *FinanceReportGenerator) monthlyRow(p finance.MonthlyPoint) core.Row {
	return row.New(6).Add(
		vcolText(p.Label, 2, align.Left),
		vcolText(g.fmt.Currency(p.ActualRevenue), 2, align.Right),
		vcolText(g.fmt.Currency(p.ActualProfit), 3, align.Right),
		vcolText(g.fmt.Currency(p.ProjectedRevenue), 2, align.Right),
		vcolText(g.fmt.Currency(p.ProjectedProfit), 3, align.Right),
	)
}

func (g *FinanceReportGenerator) weeklyHeaderRow() core.Row {
	return tableHeader(
		hcol("Día", 2, align.Left),
		hcol("Semana actual", 3, align.Right),
		hcol("Semana anterior", 3, align.Right),
		hcol("Utilidad", 2, align.Right),
		hcol("Margen", 2, align.Right),
	)
}

func (g *FinanceReportGenerator) weeklyRow(p finance.WeeklyPoint) core.Row {
	return row.New(6).Add(
		vcolText(p.Label, 2, align.Left),
		vcolText(g.fmt.Currency(p.CurrentRevenue), 3, align.Right),
		vcolText(g.fmt.Currency(p.PreviousRevenue), 3, align.Right),
		vcolText(g.fmt.Currency(p.Profit), 2, align.Right),
		vcolText(g.fmt.Percent(p.MarginPct), 2, align.Right),
	)
}

func (g *FinanceReportGenerator) categoryHeaderRow() core.Row {
	return tableHeader(
		hcol("Categoría", 3, align.Left),
		hcol("Ingresos", 3, align.Right),
		hcol("% del total", 2, align.Right),
		hcol("COGS", 2, align.Right),
		hcol("Utilidad", 2, align.Right),
	)
}

func (g *FinanceReportGenerator) categoryRow(c finance.CategoryShare) core.Row {
	return row.New(6).Add(
		vcolText(string(c.Category), 3, align.Left),
		vcolText(g.fmt.Currency(c.Revenue), 3, align.Right),
		vcolText(g.fmt.Percent(c.Pct), 2, align.Right),
		vcolText(g.fmt.Currency(c.COGS), 2, align.Right),
		vcolText(g.fmt.Currency(c.Profit), 2, align.Right),
	)
}

// ── helpers de tabla ──────────────────────────────────────────────────────────

func tableHeader(cols ...core.Col) core.Row {
	return row.New(7).Add(cols...)
}

func hcol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func vcolText(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

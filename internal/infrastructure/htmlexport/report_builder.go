// Package htmlexport genera la versión HTML imprimible del reporte
// financiero. El documento se construye como árbol de elementos y se
// serializa indentado: apto para abrir en el navegador e imprimir.
package htmlexport

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"github.com/tu-usuario/resto-caja/internal/domain/finance"
	"github.com/tu-usuario/resto-caja/pkg/money"
)

const reportStyles = `
body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 24px; }
h1 { color: #00467f; margin-bottom: 0; }
.meta { color: #666; font-size: 12px; margin-bottom: 18px; }
.kpis { display: flex; gap: 24px; margin-bottom: 22px; }
.kpi { border: 1px solid #ddd; border-radius: 6px; padding: 10px 14px; min-width: 120px; }
.kpi .label { color: #666; font-size: 11px; text-transform: uppercase; }
.kpi .value { font-size: 18px; font-weight: bold; margin-top: 4px; }
.kpi .up { color: #107a34; font-size: 11px; }
.kpi .down { color: #aa1e1e; font-size: 11px; }
h2 { color: #00467f; font-size: 14px; border-bottom: 1px solid #00467f; padding-bottom: 4px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 20px; font-size: 12px; }
th { text-align: left; color: #00467f; border-bottom: 1px solid #ccc; padding: 4px 6px; }
td { border-bottom: 1px solid #eee; padding: 4px 6px; }
td.num, th.num { text-align: right; }
@media print { .kpis { break-inside: avoid; } table { break-inside: avoid; } }
`

// ReportBuilder construye el HTML del reporte financiero.
type ReportBuilder struct {
	appName string
	fmt     *money.Formatter
}

// NewReportBuilder construye el generador HTML.
func NewReportBuilder(appName string, formatter *money.Formatter) *ReportBuilder {
	return &ReportBuilder{appName: appName, fmt: formatter}
}

// Build serializa el reporte completo como documento HTML.
func (b *ReportBuilder) Build(report *finance.Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("lang", "es")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(b.appName + " — Reporte Financiero")
	head.CreateElement("style").SetText(reportStyles)

	body := html.CreateElement("body")
	body.CreateElement("h1").SetText(b.appName)
	meta := body.CreateElement("div")
	meta.CreateAttr("class", "meta")
	meta.SetText("Reporte Financiero · generado " + report.GeneratedAt.Format("02/01/2006 15:04"))

	b.writeKPIs(body, report)
	b.writePeriods(body, report)
	b.writeMonthly(body, report)
	b.writeWeekly(body, report)
	b.writeCategories(body, report)

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("htmlexport: serializar documento: %w", err)
	}
	return out.Bytes(), nil
}

func (b *ReportBuilder) writeKPIs(body *etree.Element, report *finance.Report) {
	kpis := body.CreateElement("div")
	kpis.CreateAttr("class", "kpis")

	add := func(label, value string, k finance.KPI) {
		card := kpis.CreateElement("div")
		card.CreateAttr("class", "kpi")
		l := card.CreateElement("div")
		l.CreateAttr("class", "label")
		l.SetText(label)
		v := card.CreateElement("div")
		v.CreateAttr("class", "value")
		v.SetText(value)
		c := card.CreateElement("div")
		if k.ChangePct.IsNegative() {
			c.CreateAttr("class", "down")
		} else {
			c.CreateAttr("class", "up")
		}
		c.SetText(b.fmt.SignedPercent(k.ChangePct) + " vs 30 días previos")
	}

	add("Clientes", report.Customers.Value.StringFixed(0), report.Customers)
	add("Pedidos", report.Orders.Value.StringFixed(0), report.Orders)
	add("Utilidad 30d", b.fmt.Currency(report.Profit.Value), report.Profit)
	add("Margen", b.fmt.Percent(report.Growth.Value), report.Growth)
	add("Productos", report.Products.Value.StringFixed(0), report.Products)
}

func (b *ReportBuilder) writePeriods(body *etree.Element, report *finance.Report) {
	body.CreateElement("h2").SetText("Resultados por período")
	table := newTable(body, "Período", "Ingresos", "COGS", "Gastos", "Utilidad")
	b.periodRow(table, "Últimos 30 días", report.Current)
	b.periodRow(table, "30 días previos", report.Previous)
	b.periodRow(table, "Últimos 90 días", report.Baseline90)
}

func (b *ReportBuilder) periodRow(table *etree.Element, label string, t finance.PeriodTotals) {
	tr := table.CreateElement("tr")
	cellText(tr, label)
	cellNum(tr, b.fmt.Currency(t.Revenue))
	cellNum(tr, b.fmt.Currency(t.COGS))
	cellNum(tr, b.fmt.Currency(t.Expenses))
	cellNum(tr, b.fmt.Currency(t.Profit))
}

func (b *ReportBuilder) writeMonthly(body *etree.Element, report *finance.Report) {
	body.CreateElement("h2").SetText("Serie mensual (real y proyección)")
	table := newTable(body, "Mes", "Ingreso real", "Utilidad real", "Ingreso proy.", "Utilidad proy.")
	for _, p := range report.Monthly {
		tr := table.CreateElement("tr")
		cellText(tr, p.Label)
		cellNum(tr, b.fmt.Currency(p.ActualRevenue))
		cellNum(tr, b.fmt.Currency(p.ActualProfit))
		cellNum(tr, b.fmt.Currency(p.ProjectedRevenue))
		cellNum(tr, b.fmt.Currency(p.ProjectedProfit))
	}
}

func (b *ReportBuilder) writeWeekly(body *etree.Element, report *finance.Report) {
	body.CreateElement("h2").SetText("Semana actual vs anterior")
	table := newTable(body, "Día", "Semana actual", "Semana anterior", "Utilidad", "Margen")
	for _, p := range report.Weekly {
		tr := table.CreateElement("tr")
		cellText(tr, p.Label)
		cellNum(tr, b.fmt.Currency(p.CurrentRevenue))
		cellNum(tr, b.fmt.Currency(p.PreviousRevenue))
		cellNum(tr, b.fmt.Currency(p.Profit))
		cellNum(tr, b.fmt.Percent(p.MarginPct))
	}
}

func (b *ReportBuilder) writeCategories(body *etree.Element, report *finance.Report) {
	body.CreateElement("h2").SetText("Top categorías (30 días)")
	table := newTable(body, "Categoría", "Ingresos", "% del total", "COGS", "Utilidad")
	for _, c := range report.TopCategories(10) {
		tr := table.CreateElement("tr")
		cellText(tr, string(c.Category))
		cellNum(tr, b.fmt.Currency(c.Revenue))
		cellNum(tr, b.fmt.Percent(c.Pct))
		cellNum(tr, b.fmt.Currency(c.COGS))
		cellNum(tr, b.fmt.Currency(c.Profit))
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newTable(body *etree.Element, headers ...string) *etree.Element {
	table := body.CreateElement("table")
	tr := table.CreateElement("tr")
	for i, h := range headers {
		th := tr.CreateElement("th")
		if i > 0 {
			th.CreateAttr("class", "num")
		}
		th.SetText(h)
	}
	return table
}

func cellText(tr *etree.Element, s string) {
	tr.CreateElement("td").SetText(s)
}

func cellNum(tr *etree.Element, s string) {
	td := tr.CreateElement("td")
	td.CreateAttr("class", "num")
	td.SetText(s)
}

// Package money formatea montos y porcentajes para las salidas imprimibles
// (PDF y HTML). El dashboard JSON entrega decimales crudos; el formato con
// separadores de miles y coma decimal es exclusivo de la capa de exportación.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter produce strings monetarios según el locale configurado,
// ej: "R$ 1.234,56" con pt-BR o "$ 1,234.56" con es-CO/en.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter construye el formateador. Un locale inválido cae a pt-BR.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Currency devuelve el monto con símbolo y dos decimales: "R$ 1.234,56".
func (f *Formatter) Currency(d decimal.Decimal) string {
	return f.symbol + " " + f.Amount(d)
}

// Amount devuelve el monto sin símbolo, con separadores del locale y dos decimales.
func (f *Formatter) Amount(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Percent devuelve "12,34%" (el valor ya viene expresado en puntos porcentuales).
func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.Amount(d) + "%"
}

// SignedPercent antepone "+" a los valores positivos: "+12,34%".
func (f *Formatter) SignedPercent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + f.Percent(d)
	}
	return f.Percent(d)
}

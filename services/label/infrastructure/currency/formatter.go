// Package currency formats label prices for one fixed locale and currency.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts such as "$1,234.50": locale digit grouping, the
// currency's standard number of fraction digits, symbol in front.
type Formatter struct {
	tag    language.Tag
	unit   currency.Unit
	symbol string
	scale  int
}

// NewFormatter builds a formatter for a BCP 47 locale ("en-US") and an ISO
// 4217 code ("USD"). A blank symbol falls back to the ISO code plus a space.
func NewFormatter(locale, code, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	if symbol == "" {
		symbol = unit.String() + " "
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{tag: tag, unit: unit, symbol: symbol, scale: scale}, nil
}

// Format rounds half away from zero to the currency scale and formats the result.
// The rounded amount goes through float64, so it is exact up to 15 significant digits.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	v, _ := rounded.Abs().Float64()

	// message.Printer is not safe for concurrent use; build one per call.
	p := message.NewPrinter(f.tag)
	s := p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(f.scale),
		number.MaxFractionDigits(f.scale),
	))

	if rounded.IsNegative() {
		return "-" + f.symbol + s
	}
	return f.symbol + s
}

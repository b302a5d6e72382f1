package catalog

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceFormatter renders minor-unit prices for display.
type PriceFormatter struct {
	unit    currency.Unit
	scale   int
	symbol  string
	printer *message.Printer
}

// NewPriceFormatter builds a formatter for an ISO 4217 currency code and a
// BCP 47 locale such as "en-IN".
func NewPriceFormatter(code, locale string) (*PriceFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("catalog: currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("catalog: locale %q: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag)
	return &PriceFormatter{
		unit:    unit,
		scale:   scale,
		symbol:  printer.Sprint(currency.NarrowSymbol(unit)),
		printer: printer,
	}, nil
}

// Currency returns the ISO code of the formatter.
func (f *PriceFormatter) Currency() string {
	return f.unit.String()
}

// Format renders minor units as a localized amount with the currency symbol.
func (f *PriceFormatter) Format(minor int64) string {
	amount := float64(minor) / math.Pow10(f.scale)
	return f.symbol + f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
}

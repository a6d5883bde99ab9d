package handler

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The currency renderer separates symbol and amount with a space
// (plain or no-break, depending on the locale data); the screens show
// them joined, "$45.00".
var symbolJoiner = strings.NewReplacer(" ", "", " ", "", " ", "")

// MoneyFormatter renders monetary amounts with the currency symbol and
// grouping of the configured locale. Formatting is a presentation
// concern only; the catalog and view layers stay on raw numbers.
type MoneyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewMoneyFormatter builds a formatter for a BCP 47 locale tag such as
// "en-US". Unrecognized tags fall back to en-US / USD.
func NewMoneyFormatter(locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	return &MoneyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

func (f *MoneyFormatter) Format(amount float64) string {
	rendered := f.printer.Sprintf("%v", currency.NarrowSymbol(f.unit.Amount(amount)))
	return symbolJoiner.Replace(rendered)
}

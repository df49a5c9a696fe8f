package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a money amount or a rate. Arithmetic is exact (no floats).
type Amount = decimal.Decimal

var Zero = decimal.Zero

// Parse reads a decimal string like "1000" or "0.05".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for literals; it panics on bad input.
func MustParse(s string) Amount {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Display renders amounts in a currency for a locale.
type Display struct {
	Unit currency.Unit
	Tag  language.Tag
}

func NewDisplay(unit, locale string) (Display, error) {
	u, err := currency.ParseISO(unit)
	if err != nil {
		return Display{}, fmt.Errorf("currency %q: %w", unit, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Display{}, fmt.Errorf("locale %q: %w", locale, err)
	}
	return Display{Unit: u, Tag: tag}, nil
}

// Format rounds to the currency's standard scale and prints it with the
// currency symbol. The float conversion happens after rounding and is for
// display only.
func (d Display) Format(a Amount) string {
	scale, _ := currency.Standard.Rounding(d.Unit)
	f, _ := a.Round(int32(scale)).Float64()
	p := message.NewPrinter(d.Tag)
	return p.Sprint(currency.Symbol(d.Unit.Amount(f)))
}

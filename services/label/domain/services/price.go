package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxPriceExponent bounds the scientific-notation exponent of a price. Larger
// exponents are rejected before any comparison rescales the coefficient.
const maxPriceExponent = 32

// MaxPrice is the exclusive upper bound for a selling price.
var MaxPrice = decimal.New(1, 12)

// ParsePrice accepts a selling price typed into the form. Surrounding
// whitespace is ignored; the result must be greater than zero and below
// MaxPrice.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, fmt.Errorf("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q is not a number", text)
	}
	if exp := d.Exponent(); exp > maxPriceExponent || exp < -maxPriceExponent {
		return decimal.Zero, fmt.Errorf("price %q is out of range", text)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("price must be greater than zero")
	}
	if !d.LessThan(MaxPrice) {
		return decimal.Zero, fmt.Errorf("price %q is out of range", text)
	}
	return d, nil
}

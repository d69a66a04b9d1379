package models

import "fmt"

// SKU is a value object: an upper-case prefix taken from the business name
// followed by 8–10 random decimal digits. Upper-casing may lengthen the
// prefix ("ß" becomes "SS"), so only the digit run is constrained.
type SKU string

const (
	MinSKUDigits = 8
	MaxSKUDigits = 10
)

// NewSKU joins prefix and digits into an SKU after checking the digit run.
func NewSKU(prefix, digits string) (SKU, error) {
	if len(digits) < MinSKUDigits || len(digits) > MaxSKUDigits {
		return "", fmt.Errorf("sku must have %d to %d digits, got %d", MinSKUDigits, MaxSKUDigits, len(digits))
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("sku digits must be 0-9, got %q", c)
		}
	}
	return SKU(prefix + digits), nil
}

// String returns the underlying string value.
func (s SKU) String() string {
	return string(s)
}

// Package services contains stateless domain services for the label bounded context.
// Domain services enforce business rules that operate purely on domain types;
// randomness and currency formatting are injected.
package services

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// RandSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SKUGenerator produces SKUs. It keeps no state between calls: the same
// business name yields a fresh, independent draw every time.
type SKUGenerator struct {
	rnd RandSource
}

// NewSKUGenerator returns a generator drawing from rnd, or from the global
// source when rnd is nil.
func NewSKUGenerator(rnd RandSource) *SKUGenerator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &SKUGenerator{rnd: rnd}
}

const prefixRunes = 2

// Generate maps a business name to prefix + 8–10 random digits.
//
// Rules:
//   - Blank (after trimming) names fail with ErrEmptyInput
//   - Prefix is the upper-cased first two characters of the trimmed name
//   - Digit count is uniform over {8, 9, 10}; each digit uniform over 0–9
//   - No retry, no collision check
func (g *SKUGenerator) Generate(businessName string) (models.SKU, error) {
	name := strings.TrimSpace(businessName)
	if name == "" {
		return "", labeldomain.ErrEmptyInput
	}

	runes := []rune(name)
	if len(runes) > prefixRunes {
		runes = runes[:prefixRunes]
	}
	prefix := cases.Upper(language.Und).String(string(runes))

	n := models.MinSKUDigits + g.rnd.IntN(models.MaxSKUDigits-models.MinSKUDigits+1)
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + g.rnd.IntN(10))
	}

	sku, err := models.NewSKU(prefix, string(digits))
	if err != nil {
		return "", fmt.Errorf("build sku: %w", err)
	}
	return sku, nil
}

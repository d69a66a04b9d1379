package services

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// seqRand replays a fixed sequence of draws, wrapping around at the end.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func splitSKU(t *testing.T, sku models.SKU, prefixLen int) (string, string) {
	t.Helper()
	r := []rune(sku.String())
	if len(r) < prefixLen {
		t.Fatalf("sku %q shorter than prefix length %d", sku, prefixLen)
	}
	return string(r[:prefixLen]), string(r[prefixLen:])
}

func TestGenerate_DeterministicSource(t *testing.T) {
	// First draw picks the digit count (0 → 8 digits), the rest are digits.
	gen := NewSKUGenerator(&seqRand{vals: []int{0, 0, 1, 2, 3, 4, 5, 6, 7}})

	sku, err := gen.Generate("acme traders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sku != "AC01234567" {
		t.Fatalf("expected %q, got %q", "AC01234567", sku)
	}
}

func TestGenerate_DigitCountFromFirstDraw(t *testing.T) {
	tests := []struct {
		draw       int
		wantDigits int
	}{
		{0, 8},
		{1, 9},
		{2, 10},
	}

	for _, tt := range tests {
		gen := NewSKUGenerator(&seqRand{vals: []int{tt.draw, 9}})
		sku, err := gen.Generate("Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, digits := splitSKU(t, sku, 2)
		if len(digits) != tt.wantDigits {
			t.Errorf("draw %d: expected %d digits, got %d (%q)", tt.draw, tt.wantDigits, len(digits), sku)
		}
	}
}

func TestGenerate_Prefix(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
	}{
		{"two lower-case letters", "acme", "AC"},
		{"already upper-case", "ACME", "AC"},
		{"single character", "a", "A"},
		{"surrounding whitespace ignored", "  zeta corp ", "ZE"},
		{"digits kept", "7eleven", "7E"},
		{"non-ascii", "éclair", "ÉC"},
		{"space inside first two", "a b", "A "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewSKUGenerator(nil)
			sku, err := gen.Generate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(sku.String(), tt.wantPrefix) {
				t.Fatalf("Generate(%q) = %q, want prefix %q", tt.input, sku, tt.wantPrefix)
			}
			_, digits := splitSKU(t, sku, len([]rune(tt.wantPrefix)))
			if len(digits) < models.MinSKUDigits || len(digits) > models.MaxSKUDigits {
				t.Fatalf("Generate(%q) = %q has %d digits", tt.input, sku, len(digits))
			}
		})
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	gen := NewSKUGenerator(nil)
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := gen.Generate(in)
		if !errors.Is(err, labeldomain.ErrEmptyInput) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestGenerate_Property(t *testing.T) {
	gen := NewSKUGenerator(rand.New(rand.NewPCG(1, 2)))
	names := []string{"Acme Traders", "x", "Ω Systems", "  bob ", "42 Widgets", "ab"}

	for _, name := range names {
		trimmed := []rune(strings.TrimSpace(name))
		prefixLen := min(2, len(trimmed))
		wantPrefix := strings.ToUpper(string(trimmed[:prefixLen]))

		for i := 0; i < 50; i++ {
			sku, err := gen.Generate(name)
			if err != nil {
				t.Fatalf("Generate(%q): %v", name, err)
			}
			prefix, digits := splitSKU(t, sku, prefixLen)
			if prefix != wantPrefix {
				t.Fatalf("Generate(%q) prefix = %q, want %q", name, prefix, wantPrefix)
			}
			if len(digits) < 8 || len(digits) > 10 {
				t.Fatalf("Generate(%q) = %q: digit count %d out of range", name, sku, len(digits))
			}
			for _, c := range digits {
				if !unicode.IsDigit(c) {
					t.Fatalf("Generate(%q) = %q: non-digit %q", name, sku, c)
				}
			}
			total := len([]rune(sku.String()))
			if total < prefixLen+8 || total > prefixLen+10 {
				t.Fatalf("Generate(%q) = %q: length %d out of range", name, sku, total)
			}
		}
	}
}

func TestGenerate_DigitCountDistribution(t *testing.T) {
	gen := NewSKUGenerator(nil)
	counts := map[int]int{}
	prefixes := map[string]bool{}

	for i := 0; i < 300; i++ {
		sku, err := gen.Generate("Acme Traders")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prefix, digits := splitSKU(t, sku, 2)
		prefixes[prefix] = true
		counts[len(digits)]++
	}

	for _, n := range []int{8, 9, 10} {
		if counts[n] == 0 {
			t.Errorf("digit count %d never drawn in 300 trials: %v", n, counts)
		}
	}
	if len(prefixes) != 1 || !prefixes["AC"] {
		t.Errorf("expected identical AC prefixes, got %v", prefixes)
	}
}

func TestGenerate_NotIdempotent(t *testing.T) {
	gen := NewSKUGenerator(nil)
	seen := map[models.SKU]bool{}
	for i := 0; i < 20; i++ {
		sku, err := gen.Generate("Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[sku] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected independent draws to differ")
	}
}

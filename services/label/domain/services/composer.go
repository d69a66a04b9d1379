package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// Generator is the SKU generation capability the composer depends on.
type Generator interface {
	Generate(businessName string) (models.SKU, error)
}

// CurrencyFormatter renders a price in the deployment's fixed locale and currency.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
}

// Composer validates form input and assembles label descriptors.
// Each call is independent; nothing carries over between calls.
type Composer struct {
	gen    Generator
	format CurrencyFormatter
}

// NewComposer returns a Composer using gen for SKUs and format for prices.
func NewComposer(gen Generator, format CurrencyFormatter) *Composer {
	return &Composer{gen: gen, format: format}
}

// Compose runs validate → generate → assemble. The first failing rule wins:
//  1. ErrMissingRequiredField when business or product name is blank
//  2. ErrInvalidPrice when the price is shown but not a positive finite number
//
// Any failure of the generation step, including a panic, becomes
// ErrGenerationFailed. No partial descriptor is ever returned.
func (c *Composer) Compose(in models.LabelInput) (*models.LabelDescriptor, error) {
	if strings.TrimSpace(in.BusinessName) == "" || strings.TrimSpace(in.ProductName) == "" {
		return nil, labeldomain.ErrMissingRequiredField
	}

	var price decimal.Decimal
	if in.ShowPrice {
		p, err := ParsePrice(in.SellingPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", labeldomain.ErrInvalidPrice, err)
		}
		price = p
	}

	sku, err := c.generate(in.BusinessName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", labeldomain.ErrGenerationFailed, err)
	}

	var priceText *string
	if in.ShowPrice {
		s := c.format.Format(price)
		priceText = &s
	}

	title := cases.Upper(language.Und).String(in.ProductName)
	return models.NewLabelDescriptor(title, priceText, sku, in.CodeType), nil
}

func (c *Composer) generate(businessName string) (sku models.SKU, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sku generator panicked: %v", r)
		}
	}()
	return c.gen.Generate(businessName)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// LabelInput is the raw form state for one generation attempt.
// It is rebuilt by the caller on every attempt and never mutated here.
type LabelInput struct {
	BusinessName string
	ProductName  string
	SellingPrice string // raw text; only inspected when ShowPrice is set
	ShowPrice    bool
	CodeType     CodeType
}

// LabelDescriptor is everything a renderer needs to draw one label.
// It replaces any previous descriptor and is never partially built.
type LabelDescriptor struct {
	ID        uuid.UUID
	Title     string
	Price     *string // formatted currency text; nil when the price is hidden
	SKU       SKU
	CodeType  CodeType
	CreatedAt time.Time
}

// NewLabelDescriptor constructs a descriptor with generated ID and current timestamp.
func NewLabelDescriptor(title string, price *string, sku SKU, codeType CodeType) *LabelDescriptor {
	return &LabelDescriptor{
		ID:        uuid.New(),
		Title:     title,
		Price:     price,
		SKU:       sku,
		CodeType:  codeType,
		CreatedAt: time.Now().UTC(),
	}
}

// PriceText returns the formatted price and whether it is shown.
func (d *LabelDescriptor) PriceText() (string, bool) {
	if d.Price == nil {
		return "", false
	}
	return *d.Price, true
}

// Layout returns the layout mode for this descriptor's code type.
func (d *LabelDescriptor) Layout() Layout {
	return LayoutFor(d.CodeType)
}

// DocumentTitle is the print job title, e.g. "SKU_AC12345678".
func (d *LabelDescriptor) DocumentTitle() string {
	return "SKU_" + d.SKU.String()
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// PriceValue accepts the selling price as a JSON string ("19.99") or number
// (19.99). The raw text is kept; parsing belongs to the composer.
type PriceValue string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PriceValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("selling_price must be a string or a number")
	}
	*p = PriceValue(n.String())
	return nil
}

// CreateLabelRequest is the request body for POST /label.
// Blank names and bad prices are reported by the composer, not by tags,
// so every caller gets the same single message per failure kind.
type CreateLabelRequest struct {
	BusinessName string     `json:"business_name" validate:"max=200"              example:"Acme Traders"`
	ProductName  string     `json:"product_name"  validate:"max=200"              example:"Widget"`
	SellingPrice PriceValue `json:"selling_price" validate:"max=32"               example:"19.99" swaggertype:"string"`
	ShowPrice    bool       `json:"show_price"                                    example:"true"`
	CodeType     string     `json:"code_type"     validate:"omitempty,max=16"     example:"qr"`
} // @name CreateLabelRequest

func (r *CreateLabelRequest) input() appsvcs.ComposeInput {
	return appsvcs.ComposeInput{
		BusinessName: r.BusinessName,
		ProductName:  r.ProductName,
		SellingPrice: string(r.SellingPrice),
		ShowPrice:    r.ShowPrice,
		CodeType:     r.CodeType,
	}
}

// LayoutResponse describes how the label is laid out on the print sheet.
type LayoutResponse struct {
	Mode         string  `json:"mode"           example:"both"`
	Arrangement  string  `json:"arrangement"    example:"row"`
	ShowBarcode  bool    `json:"show_barcode"   example:"true"`
	ShowQR       bool    `json:"show_qr"        example:"true"`
	ShowSKUText  bool    `json:"show_sku_text"  example:"true"`
	PageWidthIn  float64 `json:"page_width_in"  example:"2"`
	PageHeightIn float64 `json:"page_height_in" example:"1"`
} // @name LayoutResponse

// LabelResponse is the current label of the caller's session.
type LabelResponse struct {
	ID            uuid.UUID      `json:"id"             example:"123e4567-e89b-12d3-a456-426614174000"`
	Title         string         `json:"title"          example:"WIDGET"`
	Price         *string        `json:"price"          example:"$19.99"`
	SKU           string         `json:"sku"            example:"AC4820175531"`
	CodeType      string         `json:"code_type"      example:"qr"`
	DocumentTitle string         `json:"document_title" example:"SKU_AC4820175531"`
	Layout        LayoutResponse `json:"layout"`
	CreatedAt     time.Time      `json:"created_at"     example:"2024-01-15T10:30:00Z"`
} // @name LabelResponse

func newLabelResponse(l *models.LabelDescriptor) LabelResponse {
	layout := l.Layout()
	return LabelResponse{
		ID:            l.ID,
		Title:         l.Title,
		Price:         l.Price,
		SKU:           l.SKU.String(),
		CodeType:      l.CodeType.String(),
		DocumentTitle: l.DocumentTitle(),
		Layout: LayoutResponse{
			Mode:         layout.Mode.String(),
			Arrangement:  string(layout.Arrangement),
			ShowBarcode:  layout.ShowBarcode,
			ShowQR:       layout.ShowQR,
			ShowSKUText:  layout.ShowSKUText,
			PageWidthIn:  layout.PageWidthIn,
			PageHeightIn: layout.PageHeightIn,
		},
		CreatedAt: l.CreatedAt,
	}
}

// CodeTypesResponse lists the code types offered by this deployment.
type CodeTypesResponse struct {
	Options      []string `json:"options"       example:"barcode,qr,both"`
	Default      string   `json:"default"       example:"barcode"`
	PrintEnabled bool     `json:"print_enabled" example:"false"`
} // @name CodeTypesResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Please fill business name and product name"`
	Code  string `json:"code"  example:"missing_required_field"`
} // @name ErrorResponse

// storedLabel is the session representation of a descriptor.
type storedLabel struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     *string   `json:"price,omitempty"`
	SKU       string    `json:"sku"`
	CodeType  string    `json:"code_type"`
	CreatedAt time.Time `json:"created_at"`
}

func toStored(l *models.LabelDescriptor) storedLabel {
	return storedLabel{
		ID:        l.ID,
		Title:     l.Title,
		Price:     l.Price,
		SKU:       l.SKU.String(),
		CodeType:  l.CodeType.String(),
		CreatedAt: l.CreatedAt,
	}
}

func (s storedLabel) descriptor() (*models.LabelDescriptor, error) {
	ct, err := models.ParseCodeType(s.CodeType)
	if err != nil {
		return nil, err
	}
	if s.SKU == "" {
		return nil, fmt.Errorf("stored label has no sku")
	}
	return &models.LabelDescriptor{
		ID:        s.ID,
		Title:     s.Title,
		Price:     s.Price,
		SKU:       models.SKU(s.SKU),
		CodeType:  ct,
		CreatedAt: s.CreatedAt,
	}, nil
}

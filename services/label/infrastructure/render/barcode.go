// Package render draws the scannable codes and the print sheet for a label.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/ghuser/skulabel/services/label/domain/models"
)

// BarcodeRenderer encodes a payload as a Code 128 PNG.
type BarcodeRenderer struct {
	spec models.BarcodeSpec
}

// NewBarcodeRenderer returns a renderer using the given bar dimensions.
func NewBarcodeRenderer(spec models.BarcodeSpec) *BarcodeRenderer {
	return &BarcodeRenderer{spec: spec}
}

// Render returns PNG bytes. The image is as wide as the symbol needs at the
// configured module width; no quiet zone is added around the bars.
func (r *BarcodeRenderer) Render(_ context.Context, payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("barcode: empty payload")
	}

	bc, err := code128.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("barcode encode: %w", err)
	}

	moduleWidth := max(r.spec.ModuleWidthPx, 1)
	height := max(r.spec.HeightPx, 1)
	scaled, err := barcode.Scale(bc, bc.Bounds().Dx()*moduleWidth, height)
	if err != nil {
		return nil, fmt.Errorf("barcode scale: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("barcode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Variant identifies the rendering parameters for cache keys.
func (r *BarcodeRenderer) Variant() string {
	return fmt.Sprintf("code128-%dx%d", r.spec.ModuleWidthPx, r.spec.HeightPx)
}

package models

// Arrangement is how code images are placed inside the label content box.
type Arrangement string

const (
	ArrangeColumn Arrangement = "column"
	ArrangeRow    Arrangement = "row"
)

// BarcodeSpec holds Code 128 rendering and print dimensions.
type BarcodeSpec struct {
	ModuleWidthPx int     // width of the narrowest bar
	HeightPx      int     // bar height in the rendered image
	PrintWidthIn  float64 // printed size on the label
	PrintHeightIn float64
}

// QRSpec holds QR rendering and print dimensions.
type QRSpec struct {
	SizePx      int
	Level       string // error-correction level: L, M, Q or H
	QuietZone   bool
	PrintSizeIn float64
}

// Layout is the layout mode handed to the print subsystem together with a
// LabelDescriptor. All physical sizes are in inches.
type Layout struct {
	Mode            CodeType
	Arrangement     Arrangement
	PageWidthIn     float64
	PageHeightIn    float64
	ContentWidthIn  float64
	ContentHeightIn float64
	MarginIn        float64
	TitleFontPx     int
	PriceFontPx     int
	SKUFontPx       int
	ShowBarcode     bool
	ShowQR          bool
	ShowSKUText     bool // SKU printed in monospace under the barcode
	Barcode         BarcodeSpec
	QR              QRSpec
}

// Label stock is 2in × 1in with a 1.6in × 0.8in centred content box.
var baseLayout = Layout{
	Arrangement:     ArrangeColumn,
	PageWidthIn:     2,
	PageHeightIn:    1,
	ContentWidthIn:  1.6,
	ContentHeightIn: 0.8,
	MarginIn:        0.1,
	TitleFontPx:     8,
	PriceFontPx:     8,
	SKUFontPx:       6,
	Barcode: BarcodeSpec{
		ModuleWidthPx: 2,
		HeightPx:      38,
		PrintWidthIn:  1,
		PrintHeightIn: 0.4,
	},
	QR: QRSpec{
		SizePx:      48,
		Level:       "H",
		QuietZone:   true,
		PrintSizeIn: 0.5,
	},
}

// LayoutFor returns the layout for a code type. Unknown types fall back to
// the barcode layout, matching the form's default selection.
func LayoutFor(ct CodeType) Layout {
	l := baseLayout
	switch ct {
	case CodeTypeQR:
		l.Mode = CodeTypeQR
		l.ShowQR = true
	case CodeTypeBoth:
		// Side by side so both codes fit the 0.8in content height.
		l.Mode = CodeTypeBoth
		l.Arrangement = ArrangeRow
		l.ShowQR = true
		l.ShowBarcode = true
		l.ShowSKUText = true
	default:
		l.Mode = CodeTypeBarcode
		l.ShowBarcode = true
		l.ShowSKUText = true
	}
	return l
}

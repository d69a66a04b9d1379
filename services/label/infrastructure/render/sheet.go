package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/ghuser/skulabel/services/label/domain/models"
)

// SheetInput is one composed label plus the code images it shows.
// Images missing from the layout may be nil.
type SheetInput struct {
	Label      *models.LabelDescriptor
	BarcodePNG []byte
	QRPNG      []byte
}

type sheetData struct {
	DocumentTitle string
	CSS           template.CSS
	Arrangement   string
	Title         string
	Price         string
	SKU           string
	Barcode       template.URL
	QR            template.URL
	ShowSKUText   bool
}

var sheetTmpl = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.DocumentTitle}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="print-content">
  <div class="print-title">{{.Title}}</div>
  {{- if .Price}}
  <div class="print-price">{{.Price}}</div>
  {{- end}}
  <div class="codes {{.Arrangement}}">
    {{- if .QR}}
    <img class="qrcode" src="{{.QR}}" alt="QR {{.SKU}}">
    {{- end}}
    {{- if .Barcode}}
    <div class="barcode-block">
      <img class="barcode" src="{{.Barcode}}" alt="Barcode {{.SKU}}">
      {{- if .ShowSKUText}}
      <div class="print-sku">{{.SKU}}</div>
      {{- end}}
    </div>
    {{- end}}
  </div>
</div>
</body>
</html>
`))

// SheetRenderer builds the single-label HTML print sheet.
type SheetRenderer struct{}

func NewSheetRenderer() *SheetRenderer {
	return &SheetRenderer{}
}

// Render returns the HTML document for in. Images are inlined as data URIs
// so the sheet prints without further requests.
func (s *SheetRenderer) Render(in SheetInput) ([]byte, error) {
	if in.Label == nil {
		return nil, fmt.Errorf("sheet: nil label")
	}
	layout := in.Label.Layout()

	data := sheetData{
		DocumentTitle: in.Label.DocumentTitle(),
		CSS:           sheetCSS(layout),
		Arrangement:   string(layout.Arrangement),
		Title:         in.Label.Title,
		SKU:           in.Label.SKU.String(),
		ShowSKUText:   layout.ShowSKUText,
	}
	if price, ok := in.Label.PriceText(); ok {
		data.Price = price
	}
	if layout.ShowBarcode {
		if len(in.BarcodePNG) == 0 {
			return nil, fmt.Errorf("sheet: barcode image required for %s label", layout.Mode)
		}
		data.Barcode = pngDataURI(in.BarcodePNG)
	}
	if layout.ShowQR {
		if len(in.QRPNG) == 0 {
			return nil, fmt.Errorf("sheet: qr image required for %s label", layout.Mode)
		}
		data.QR = pngDataURI(in.QRPNG)
	}

	var buf bytes.Buffer
	if err := sheetTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("sheet template: %w", err)
	}
	return buf.Bytes(), nil
}

func pngDataURI(b []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(b))
}

func sheetCSS(l models.Layout) template.CSS {
	direction := "column"
	if l.Arrangement == models.ArrangeRow {
		direction = "row"
	}
	return template.CSS(fmt.Sprintf(`
@page { size: %[1]gin %[2]gin; margin: 0; }
html, body { margin: 0; padding: 0; }
.print-content {
  display: flex; flex-direction: column; align-items: center; justify-content: center;
  width: %[3]gin; height: %[4]gin; margin: %[5]gin auto; padding: 1mm;
  font-family: Arial, sans-serif; overflow: hidden; box-sizing: border-box;
}
.print-title {
  font-size: %[6]dpx; font-weight: 900; margin-bottom: 1px; text-align: center;
  max-width: 100%%; line-height: 1.2; overflow: hidden; text-overflow: ellipsis; white-space: nowrap;
}
.print-price { font-size: %[7]dpx; font-weight: 900; margin-bottom: 1px; text-align: center; }
.codes { display: flex; flex-direction: %[8]s; align-items: center; gap: 2px; }
.barcode-block { display: flex; flex-direction: column; align-items: center; }
.print-sku { font-size: %[9]dpx; font-weight: 700; margin-top: 1px; text-align: center; font-family: monospace; }
.qrcode { width: %[10]gin; height: %[10]gin; }
.barcode { width: %[11]gin; height: %[12]gin; }
`,
		l.PageWidthIn, l.PageHeightIn,
		l.ContentWidthIn, l.ContentHeightIn, l.MarginIn,
		l.TitleFontPx, l.PriceFontPx,
		direction,
		l.SKUFontPx,
		l.QR.PrintSizeIn,
		l.Barcode.PrintWidthIn, l.Barcode.PrintHeightIn,
	))
}

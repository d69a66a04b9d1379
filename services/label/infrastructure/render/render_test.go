package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/boombuler/barcode/code128"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

func TestBarcodeRenderer_Dimensions(t *testing.T) {
	spec := models.LayoutFor(models.CodeTypeBarcode).Barcode
	r := NewBarcodeRenderer(spec)

	data, err := r.Render(context.Background(), "AC12345678")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	bc, _ := code128.Encode("AC12345678")
	wantW := bc.Bounds().Dx() * spec.ModuleWidthPx
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("width = %d, want %d", got, wantW)
	}
	if got := img.Bounds().Dy(); got != spec.HeightPx {
		t.Errorf("height = %d, want %d", got, spec.HeightPx)
	}
}

func TestBarcodeRenderer_EmptyPayload(t *testing.T) {
	r := NewBarcodeRenderer(models.BarcodeSpec{ModuleWidthPx: 2, HeightPx: 38})
	if _, err := r.Render(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestQRRenderer_PNG(t *testing.T) {
	r, err := NewQRRenderer(models.LayoutFor(models.CodeTypeQR).QR)
	if err != nil {
		t.Fatalf("NewQRRenderer: %v", err)
	}

	data, err := r.Render(context.Background(), "AC1234567890")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("QR image not square: %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() < 48 {
		t.Errorf("QR image smaller than requested: %d", b.Dx())
	}
}

func TestQRRenderer_Levels(t *testing.T) {
	for _, lvl := range []string{"L", "m", "Q", "H", ""} {
		if _, err := NewQRRenderer(models.QRSpec{SizePx: 48, Level: lvl}); err != nil {
			t.Errorf("level %q: unexpected error %v", lvl, err)
		}
	}
	if _, err := NewQRRenderer(models.QRSpec{SizePx: 48, Level: "X"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestVariants_DifferBySettings(t *testing.T) {
	a := NewBarcodeRenderer(models.BarcodeSpec{ModuleWidthPx: 2, HeightPx: 38})
	b := NewBarcodeRenderer(models.BarcodeSpec{ModuleWidthPx: 3, HeightPx: 38})
	if a.Variant() == b.Variant() {
		t.Fatalf("variants should differ: %q", a.Variant())
	}

	q, _ := NewQRRenderer(models.QRSpec{SizePx: 48, Level: "H", QuietZone: true})
	if q.Variant() == a.Variant() {
		t.Fatal("qr and barcode variants collide")
	}
}

// memStore is an in-memory ImageStore.
type memStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	gets   int
	sets   int
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, variant, payload string) ([]byte, error) {
	m.gets++
	if m.getErr != nil {
		return nil, m.getErr
	}
	d, ok := m.data[variant+"|"+payload]
	if !ok {
		return nil, redis.Nil
	}
	return d, nil
}

func (m *memStore) Set(_ context.Context, variant, payload string, data []byte) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[variant+"|"+payload] = data
	return nil
}

type countingRenderer struct {
	calls int
	err   error
}

func (c *countingRenderer) Render(_ context.Context, payload string) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []byte("img:" + payload), nil
}

func (c *countingRenderer) Variant() string { return "test" }

func TestCached_HitAndMiss(t *testing.T) {
	next := &countingRenderer{}
	store := newMemStore()
	c := NewCached(next, store, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := c.Render(ctx, "AC123")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if string(got) != "img:AC123" {
			t.Fatalf("got %q", got)
		}
	}
	if next.calls != 1 {
		t.Fatalf("expected one underlying render, got %d", next.calls)
	}
	if store.sets != 1 {
		t.Fatalf("expected one store write, got %d", store.sets)
	}
}

func TestCached_StoreFailuresDoNotFailRender(t *testing.T) {
	next := &countingRenderer{}
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	c := NewCached(next, store, logger.NewNop())

	got, err := c.Render(context.Background(), "AC123")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(got) != "img:AC123" {
		t.Fatalf("got %q", got)
	}
}

func TestCached_RenderErrorNotCached(t *testing.T) {
	next := &countingRenderer{err: errors.New("bad payload")}
	store := newMemStore()
	c := NewCached(next, store, logger.NewNop())

	if _, err := c.Render(context.Background(), "AC123"); err == nil {
		t.Fatal("expected render error")
	}
	if store.sets != 0 {
		t.Fatal("failed render must not be cached")
	}
	if c.Variant() != "test" {
		t.Fatalf("Variant() = %q", c.Variant())
	}
}

func label(ct models.CodeType, price *string) *models.LabelDescriptor {
	return models.NewLabelDescriptor("WIDGET", price, models.SKU("AC12345678"), ct)
}

func TestSheetRenderer_Modes(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G'}
	price := "$19.99"

	tests := []struct {
		name        string
		ct          models.CodeType
		in          SheetInput
		wantQR      bool
		wantBarcode bool
	}{
		{"barcode", models.CodeTypeBarcode, SheetInput{BarcodePNG: img}, false, true},
		{"qr", models.CodeTypeQR, SheetInput{QRPNG: img}, true, false},
		{"both", models.CodeTypeBoth, SheetInput{BarcodePNG: img, QRPNG: img}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Label = label(tt.ct, &price)
			out, err := NewSheetRenderer().Render(tt.in)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			html := string(out)

			for _, want := range []string{
				"<title>SKU_AC12345678</title>",
				"size: 2in 1in",
				"width: 1.6in; height: 0.8in; margin: 0.1in auto",
				`class="print-title">WIDGET<`,
				`class="print-price">$19.99<`,
			} {
				if !strings.Contains(html, want) {
					t.Errorf("missing %q in sheet", want)
				}
			}
			if got := strings.Contains(html, `class="qrcode"`); got != tt.wantQR {
				t.Errorf("qr present = %v, want %v", got, tt.wantQR)
			}
			if got := strings.Contains(html, `class="barcode"`); got != tt.wantBarcode {
				t.Errorf("barcode present = %v, want %v", got, tt.wantBarcode)
			}
			if got := strings.Contains(html, `class="print-sku">AC12345678<`); got != tt.wantBarcode {
				t.Errorf("sku text present = %v, want %v", got, tt.wantBarcode)
			}
			if !strings.Contains(html, "data:image/png;base64,") {
				t.Error("images must be inlined as data URIs")
			}
		})
	}
}

func TestSheetRenderer_HiddenPrice(t *testing.T) {
	out, err := NewSheetRenderer().Render(SheetInput{
		Label:      label(models.CodeTypeBarcode, nil),
		BarcodePNG: []byte{1},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), `class="print-price"`) {
		t.Fatal("price block must be absent when hidden")
	}
}

func TestSheetRenderer_EscapesTitle(t *testing.T) {
	d := models.NewLabelDescriptor("<SCRIPT>", nil, models.SKU("AC12345678"), models.CodeTypeQR)
	out, err := NewSheetRenderer().Render(SheetInput{Label: d, QRPNG: []byte{1}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<SCRIPT>") {
		t.Fatal("title must be HTML-escaped")
	}
}

func TestSheetRenderer_MissingImage(t *testing.T) {
	if _, err := NewSheetRenderer().Render(SheetInput{Label: label(models.CodeTypeBoth, nil), QRPNG: []byte{1}}); err == nil {
		t.Fatal("expected error when barcode image is missing")
	}
	if _, err := NewSheetRenderer().Render(SheetInput{}); err == nil {
		t.Fatal("expected error for nil label")
	}
}

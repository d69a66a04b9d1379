package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ghuser/skulabel/services/label/domain/models"
)

// QRRenderer encodes a payload as a QR code PNG.
type QRRenderer struct {
	spec  models.QRSpec
	level qrcode.RecoveryLevel
}

// NewQRRenderer maps the L/M/Q/H level onto go-qrcode recovery levels.
func NewQRRenderer(spec models.QRSpec) (*QRRenderer, error) {
	level, err := recoveryLevel(spec.Level)
	if err != nil {
		return nil, err
	}
	return &QRRenderer{spec: spec, level: level}, nil
}

// Render returns PNG bytes. go-qrcode silently grows the image when SizePx is
// too small for the symbol at one pixel per module.
func (r *QRRenderer) Render(_ context.Context, payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr: empty payload")
	}

	qr, err := qrcode.New(payload, r.level)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	qr.DisableBorder = !r.spec.QuietZone

	data, err := qr.PNG(r.spec.SizePx)
	if err != nil {
		return nil, fmt.Errorf("qr png: %w", err)
	}
	return data, nil
}

// Variant identifies the rendering parameters for cache keys.
func (r *QRRenderer) Variant() string {
	return fmt.Sprintf("qr-%s-%d-%t", strings.ToUpper(r.spec.Level), r.spec.SizePx, r.spec.QuietZone)
}

func recoveryLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H", "":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unknown QR error-correction level %q", s)
	}
}

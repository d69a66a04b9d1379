package services

import (
	"context"
	"fmt"

	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/cache"
	"github.com/ghuser/skulabel/services/label/domain/models"
	domainsvcs "github.com/ghuser/skulabel/services/label/domain/services"
	"github.com/ghuser/skulabel/services/label/infrastructure/currency"
	"github.com/ghuser/skulabel/services/label/infrastructure/render"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Label *LabelService
}

// New wires the label application services with infrastructure from the
// Application container. Code images go through the Redis image cache when
// a.Redis is set.
func New(a *app.Application) (*Services, error) {
	cfg := a.Config

	codeTypes, err := models.NewCodeTypeSet(cfg.LabelCodeTypes, cfg.DefaultCodeType)
	if err != nil {
		return nil, fmt.Errorf("label code types: %w", err)
	}

	formatter, err := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencyCode, cfg.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("currency formatter: %w", err)
	}

	layout := models.LayoutFor(codeTypes.Default())
	qr, err := render.NewQRRenderer(layout.QR)
	if err != nil {
		return nil, fmt.Errorf("qr renderer: %w", err)
	}
	var barcode render.Renderer = render.NewBarcodeRenderer(layout.Barcode)
	var qrRenderer render.Renderer = qr

	if a.Redis != nil {
		images := cache.NewCodeImageCache(a.Redis, cfg.CodeImageCacheTTL)
		barcode = render.NewCached(barcode, images, a.Logger)
		qrRenderer = render.NewCached(qrRenderer, images, a.Logger)
	}

	var bus Publisher = discardPublisher{}
	if a.EventBus != nil {
		bus = a.EventBus
	}

	label, err := NewLabelService(LabelServiceDeps{
		CodeTypes: codeTypes,
		Composer:  domainsvcs.NewComposer(domainsvcs.NewSKUGenerator(nil), formatter),
		Barcode:   barcode,
		QR:        qrRenderer,
		Sheet:     render.NewSheetRenderer(),
		Printer:   a.Printer,
		Bus:       bus,
		Logger:    a.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Services{Label: label}, nil
}

type discardPublisher struct{}

func (discardPublisher) PublishJSON(context.Context, string, any) error { return nil }

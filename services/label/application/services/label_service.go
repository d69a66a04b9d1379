package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/logger"
	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/events"
	"github.com/ghuser/skulabel/services/label/domain/models"
	domainsvcs "github.com/ghuser/skulabel/services/label/domain/services"
	"github.com/ghuser/skulabel/services/label/infrastructure/render"
)

const instrumentationName = "github.com/ghuser/skulabel/services/label"

// Publisher is the slice of the event bus the label service needs.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, v any) error
}

// ComposeInput is the raw form state of one generation attempt.
// CodeType is unresolved: blank selects the configured default.
type ComposeInput struct {
	BusinessName string
	ProductName  string
	SellingPrice string
	ShowPrice    bool
	CodeType     string
}

// LabelService composes labels and renders them to images, HTML and PDF.
// It holds no per-user state; the caller keeps the current descriptor.
type LabelService struct {
	codeTypes models.CodeTypeSet
	composer  *domainsvcs.Composer
	barcode   render.Renderer
	qr        render.Renderer
	sheet     *render.SheetRenderer
	printer   app.Printer // nil disables PrintPDF
	bus       Publisher
	log       logger.Logger

	tracer          trace.Tracer
	composedTotal   metric.Int64Counter
	composeFailures metric.Int64Counter
	printedTotal    metric.Int64Counter
}

// LabelServiceDeps groups the collaborators of a LabelService.
type LabelServiceDeps struct {
	CodeTypes models.CodeTypeSet
	Composer  *domainsvcs.Composer
	Barcode   render.Renderer
	QR        render.Renderer
	Sheet     *render.SheetRenderer
	Printer   app.Printer
	Bus       Publisher
	Logger    logger.Logger
}

// NewLabelService returns a LabelService recording spans and counters on the
// global OTel providers.
func NewLabelService(d LabelServiceDeps) (*LabelService, error) {
	meter := otel.Meter(instrumentationName)

	composed, err := meter.Int64Counter("labels_composed_total",
		metric.WithDescription("Labels composed successfully"))
	if err != nil {
		return nil, fmt.Errorf("labels_composed_total counter: %w", err)
	}
	failures, err := meter.Int64Counter("label_compose_failures_total",
		metric.WithDescription("Label generation attempts rejected or failed, by error kind"))
	if err != nil {
		return nil, fmt.Errorf("label_compose_failures_total counter: %w", err)
	}
	printed, err := meter.Int64Counter("labels_printed_total",
		metric.WithDescription("Label sheets printed to PDF"))
	if err != nil {
		return nil, fmt.Errorf("labels_printed_total counter: %w", err)
	}

	return &LabelService{
		codeTypes:       d.CodeTypes,
		composer:        d.Composer,
		barcode:         d.Barcode,
		qr:              d.QR,
		sheet:           d.Sheet,
		printer:         d.Printer,
		bus:             d.Bus,
		log:             d.Logger,
		tracer:          otel.Tracer(instrumentationName),
		composedTotal:   composed,
		composeFailures: failures,
		printedTotal:    printed,
	}, nil
}

// CodeTypes returns the configured option set.
func (s *LabelService) CodeTypes() models.CodeTypeSet {
	return s.codeTypes
}

// PrintEnabled reports whether PrintPDF can succeed at all.
func (s *LabelService) PrintEnabled() bool {
	return s.printer != nil
}

// Compose resolves the code type against the option set, then runs the
// composer. On success it publishes label.composed; a publish failure is
// logged and does not fail the call.
func (s *LabelService) Compose(ctx context.Context, in ComposeInput) (*models.LabelDescriptor, error) {
	ctx, span := s.tracer.Start(ctx, "LabelService.Compose")
	defer span.End()

	label, err := s.compose(in)
	if err != nil {
		kind := labeldomain.Kind(err)
		s.composeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("label.sku", label.SKU.String()),
		attribute.String("label.code_type", label.CodeType.String()),
	)
	s.composedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("code_type", label.CodeType.String())))

	evt := events.LabelComposedEvent{
		EventID:    uuid.New(),
		Version:    1,
		LabelID:    label.ID,
		SKU:        label.SKU.String(),
		CodeType:   label.CodeType.String(),
		PriceShown: label.Price != nil,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.bus.PublishJSON(ctx, events.TopicLabelComposed, evt); err != nil {
		s.log.WarnContext(ctx, "failed to publish label event", "topic", events.TopicLabelComposed, "error", err)
	}

	return label, nil
}

func (s *LabelService) compose(in ComposeInput) (*models.LabelDescriptor, error) {
	ct, err := s.codeTypes.Resolve(in.CodeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", labeldomain.ErrUnsupportedCodeType, err)
	}
	return s.composer.Compose(models.LabelInput{
		BusinessName: in.BusinessName,
		ProductName:  in.ProductName,
		SellingPrice: in.SellingPrice,
		ShowPrice:    in.ShowPrice,
		CodeType:     ct,
	})
}

// Barcode renders the Code 128 image for label. ErrCodeNotOnLabel when the
// label carries no barcode.
func (s *LabelService) Barcode(ctx context.Context, label *models.LabelDescriptor) ([]byte, error) {
	if !label.CodeType.HasBarcode() {
		return nil, labeldomain.ErrCodeNotOnLabel
	}
	return s.render(ctx, "LabelService.Barcode", s.barcode, label.SKU)
}

// QR renders the QR image for label. ErrCodeNotOnLabel when the label
// carries no QR code.
func (s *LabelService) QR(ctx context.Context, label *models.LabelDescriptor) ([]byte, error) {
	if !label.CodeType.HasQR() {
		return nil, labeldomain.ErrCodeNotOnLabel
	}
	return s.render(ctx, "LabelService.QR", s.qr, label.SKU)
}

func (s *LabelService) render(ctx context.Context, name string, r render.Renderer, sku models.SKU) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("render.variant", r.Variant())))
	defer span.End()

	img, err := r.Render(ctx, sku.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, fmt.Errorf("render %s for %s: %w", r.Variant(), sku, err)
	}
	return img, nil
}

// WarmImages renders every code image a label with this SKU and code type
// shows, filling the image cache when one is configured.
func (s *LabelService) WarmImages(ctx context.Context, sku models.SKU, ct models.CodeType) error {
	var errs []error
	if ct.HasBarcode() {
		if _, err := s.render(ctx, "LabelService.WarmBarcode", s.barcode, sku); err != nil {
			errs = append(errs, err)
		}
	}
	if ct.HasQR() {
		if _, err := s.render(ctx, "LabelService.WarmQR", s.qr, sku); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sheet returns the HTML print sheet for label with its code images inlined.
func (s *LabelService) Sheet(ctx context.Context, label *models.LabelDescriptor) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "LabelService.Sheet")
	defer span.End()

	in := render.SheetInput{Label: label}
	var err error
	if label.CodeType.HasBarcode() {
		if in.BarcodePNG, err = s.Barcode(ctx, label); err != nil {
			return nil, err
		}
	}
	if label.CodeType.HasQR() {
		if in.QRPNG, err = s.QR(ctx, label); err != nil {
			return nil, err
		}
	}

	html, err := s.sheet.Render(in)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("render sheet: %w", err)
	}
	return html, nil
}

// PrintPDF prints the label sheet on a page sized to the label stock and
// publishes label.printed.
func (s *LabelService) PrintPDF(ctx context.Context, label *models.LabelDescriptor) ([]byte, error) {
	if s.printer == nil {
		return nil, labeldomain.ErrPrinterUnavailable
	}

	ctx, span := s.tracer.Start(ctx, "LabelService.PrintPDF",
		trace.WithAttributes(attribute.String("label.sku", label.SKU.String())))
	defer span.End()

	html, err := s.Sheet(ctx, label)
	if err != nil {
		return nil, err
	}

	layout := label.Layout()
	pdf, err := s.printer.Print(ctx, html, layout.PageWidthIn, layout.PageHeightIn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "print failed")
		return nil, fmt.Errorf("print %s: %w", label.DocumentTitle(), err)
	}

	s.printedTotal.Add(ctx, 1)
	evt := events.LabelPrintedEvent{
		EventID:    uuid.New(),
		Version:    1,
		LabelID:    label.ID,
		SKU:        label.SKU.String(),
		CodeType:   label.CodeType.String(),
		Format:     "pdf",
		Bytes:      len(pdf),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.bus.PublishJSON(ctx, events.TopicLabelPrinted, evt); err != nil {
		s.log.WarnContext(ctx, "failed to publish label event", "topic", events.TopicLabelPrinted, "error", err)
	}

	return pdf, nil
}

// Command labelctl generates one label from the command line and writes its
// SKU, code images, print sheet and optionally a PDF to a directory.
//
//	labelctl --business "Acme Traders" --product Widget --price 19.99 --show-price --code-type both --pdf
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/conf/v3"

	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/config"
	"github.com/ghuser/skulabel/pkg/events"
	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/pkg/telemetry"
	labelSubscribers "github.com/ghuser/skulabel/services/label/application/subscribers"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/models"
	"github.com/ghuser/skulabel/services/label/infrastructure/printer"
)

type options struct {
	config.Config

	Business  string `conf:"flag:business,env:LABEL_BUSINESS,help:business name the SKU prefix is taken from"`
	Product   string `conf:"flag:product,env:LABEL_PRODUCT,help:product name printed as the label title"`
	Price     string `conf:"flag:price,env:LABEL_PRICE,help:selling price"`
	ShowPrice bool   `conf:"flag:show-price,env:LABEL_SHOW_PRICE,help:print the price on the label"`
	CodeType  string `conf:"flag:code-type,env:LABEL_CODE_TYPE,help:barcode qr or both (blank uses the configured default)"`
	Out       string `conf:"default:.,flag:out,env:LABEL_OUT,help:output directory"`
	PDF       bool   `conf:"flag:pdf,env:LABEL_PDF,help:also print a PDF through headless Chrome"`
}

func main() {
	var opts options
	help, err := config.LoadInto(&opts)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(context.Background(), &opts); err != nil {
		fmt.Fprintln(os.Stderr, "labelctl:", labeldomain.UserMessage(err))
		if labeldomain.Kind(err) == "internal" {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	cfg := &opts.Config
	log := logger.NewWithWriter(cfg, os.Stderr)

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
	}
	if opts.PDF {
		pdf := printer.NewPDFPrinter(cfg.ChromeBin, log)
		defer pdf.Close() //nolint:errcheck
		a.Printer = pdf
	}

	if err := labelSubscribers.Register(ctx, a); err != nil {
		return fmt.Errorf("register subscribers: %w", err)
	}

	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}

	label, err := svcs.Label.Compose(ctx, appsvcs.ComposeInput{
		BusinessName: opts.Business,
		ProductName:  opts.Product,
		SellingPrice: opts.Price,
		ShowPrice:    opts.ShowPrice,
		CodeType:     opts.CodeType,
	})
	if err != nil {
		return err
	}

	files, err := writeLabel(ctx, svcs.Label, label, opts.Out, opts.PDF)
	if err != nil {
		return err
	}

	fmt.Println(label.SKU)
	for _, f := range files {
		log.Info("wrote file", "path", f)
	}
	return nil
}

// writeLabel writes the label's code images and print sheet into dir, plus a
// PDF when withPDF is set. It returns the paths written.
func writeLabel(ctx context.Context, svc *appsvcs.LabelService, label *models.LabelDescriptor, dir string, withPDF bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	sku := label.SKU.String()
	if label.CodeType.HasBarcode() {
		img, err := svc.Barcode(ctx, label)
		if err != nil {
			return written, err
		}
		if err := write(sku+"-barcode.png", img); err != nil {
			return written, err
		}
	}
	if label.CodeType.HasQR() {
		img, err := svc.QR(ctx, label)
		if err != nil {
			return written, err
		}
		if err := write(sku+"-qr.png", img); err != nil {
			return written, err
		}
	}

	html, err := svc.Sheet(ctx, label)
	if err != nil {
		return written, err
	}
	if err := write(label.DocumentTitle()+".html", html); err != nil {
		return written, err
	}

	if withPDF {
		pdf, err := svc.PrintPDF(ctx, label)
		if err != nil {
			return written, err
		}
		if err := write(label.DocumentTitle()+".pdf", pdf); err != nil {
			return written, err
		}
	}
	return written, nil
}

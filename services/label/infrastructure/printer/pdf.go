// Package printer prints label sheets to PDF through headless Chrome.
package printer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/ghuser/skulabel/pkg/logger"
	labeldomain "github.com/ghuser/skulabel/services/label/domain"
)

// PDFPrinter owns one headless browser, started on first use and shared by
// all print jobs. Each job gets its own page.
type PDFPrinter struct {
	bin string
	log logger.Logger

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPDFPrinter returns a printer that launches bin, or the browser rod
// resolves itself when bin is empty.
func NewPDFPrinter(bin string, log logger.Logger) *PDFPrinter {
	return &PDFPrinter{bin: bin, log: log}
}

// Print loads html into a fresh page and prints it on a widthIn × heightIn
// page with zero margins. Browser start-up failures wrap ErrPrinterUnavailable.
func (p *PDFPrinter) Print(ctx context.Context, html []byte, widthIn, heightIn float64) ([]byte, error) {
	browser, err := p.connect()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: open page: %w", labeldomain.ErrPrinterUnavailable, err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			p.log.WarnContext(ctx, "close print page", "error", err)
		}
	}()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("load sheet: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait sheet load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        inches(widthIn),
		PaperHeight:       inches(heightIn),
		MarginTop:         inches(0),
		MarginBottom:      inches(0),
		MarginLeft:        inches(0),
		MarginRight:       inches(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}

// Ping reports whether the browser answers. A printer that has not started
// yet is started here so the health check reflects real availability.
func (p *PDFPrinter) Ping(ctx context.Context) error {
	browser, err := p.connect()
	if err != nil {
		return err
	}
	if _, err := browser.Context(ctx).Version(); err != nil {
		return fmt.Errorf("%w: %w", labeldomain.ErrPrinterUnavailable, err)
	}
	return nil
}

// Close shuts the browser down. Safe to call when never started.
func (p *PDFPrinter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.browser != nil {
		err = p.browser.Close()
		p.browser = nil
	}
	if p.launcher != nil {
		p.launcher.Kill()
		p.launcher.Cleanup()
		p.launcher = nil
	}
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	return nil
}

func (p *PDFPrinter) connect() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		return p.browser, nil
	}

	l := launcher.New().Headless(true).Leakless(false).NoSandbox(true)
	if p.bin != "" {
		l = l.Bin(p.bin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: launch browser: %w", labeldomain.ErrPrinterUnavailable, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: connect browser: %w", labeldomain.ErrPrinterUnavailable, err)
	}

	p.log.Info("headless browser started", "control_url", u)
	p.launcher = l
	p.browser = b
	return b, nil
}

func inches(v float64) *float64 {
	return &v
}

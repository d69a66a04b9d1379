package app

import (
	"context"
	"io"
)

// Printer is the shared headless-browser print backend. It is opened once at
// startup and closed on shutdown.
type Printer interface {
	Print(ctx context.Context, html []byte, widthIn, heightIn float64) ([]byte, error)
	Ping(ctx context.Context) error
	io.Closer
}

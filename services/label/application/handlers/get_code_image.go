package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	"github.com/ghuser/skulabel/pkg/logger"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

type imageFunc func(ctx context.Context, l *models.LabelDescriptor) ([]byte, error)

func serveImage(w http.ResponseWriter, r *http.Request, log logger.Logger, render imageFunc, suffix string) {
	label, err := LabelFromCtx(r.Context())
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	img, err := render(r.Context(), label)
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	httpx.Blob(w, http.StatusOK, "image/png", img, label.SKU.String()+suffix)
}

// GetBarcodeHandler handles GET /label/barcode.png requests.
type GetBarcodeHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetBarcodeHandler returns a GetBarcodeHandler backed by the given services.
func NewGetBarcodeHandler(svc *appsvcs.Services, log logger.Logger) *GetBarcodeHandler {
	return &GetBarcodeHandler{svc: svc, log: log}
}

// Execute renders the current label's Code 128 barcode.
//
//	@Summary		Barcode image
//	@Description	Code 128 PNG of the current SKU
//	@Tags			labels
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		404	{object}	ErrorResponse
//	@Router			/label/barcode.png [get]
func (h *GetBarcodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	serveImage(w, r, h.log, h.svc.Label.Barcode, "-barcode.png")
}

// GetQRHandler handles GET /label/qr.png requests.
type GetQRHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetQRHandler returns a GetQRHandler backed by the given services.
func NewGetQRHandler(svc *appsvcs.Services, log logger.Logger) *GetQRHandler {
	return &GetQRHandler{svc: svc, log: log}
}

// Execute renders the current label's QR code.
//
//	@Summary		QR image
//	@Description	QR code PNG of the current SKU
//	@Tags			labels
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		404	{object}	ErrorResponse
//	@Router			/label/qr.png [get]
func (h *GetQRHandler) Execute(w http.ResponseWriter, r *http.Request) {
	serveImage(w, r, h.log, h.svc.Label.QR, "-qr.png")
}

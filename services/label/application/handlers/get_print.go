package handlers

import (
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	"github.com/ghuser/skulabel/pkg/logger"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
)

// GetPrintHandler handles GET /label/print requests.
type GetPrintHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetPrintHandler returns a GetPrintHandler backed by the given services.
func NewGetPrintHandler(svc *appsvcs.Services, log logger.Logger) *GetPrintHandler {
	return &GetPrintHandler{svc: svc, log: log}
}

// Execute renders the printable HTML sheet for the current label.
//
//	@Summary		Print sheet
//	@Description	Single-label HTML page sized for 2in x 1in label stock
//	@Tags			labels
//	@Produce		html
//	@Success		200	{string}	string	"HTML document"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/label/print [get]
func (h *GetPrintHandler) Execute(w http.ResponseWriter, r *http.Request) {
	label, err := LabelFromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	html, err := h.svc.Label.Sheet(r.Context(), label)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.Blob(w, http.StatusOK, "text/html; charset=utf-8", html, "")
}

// GetPrintPDFHandler handles GET /label/print.pdf requests.
type GetPrintPDFHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetPrintPDFHandler returns a GetPrintPDFHandler backed by the given services.
func NewGetPrintPDFHandler(svc *appsvcs.Services, log logger.Logger) *GetPrintPDFHandler {
	return &GetPrintPDFHandler{svc: svc, log: log}
}

// Execute prints the current label to a one-page PDF.
//
//	@Summary		Print PDF
//	@Description	Prints the label sheet through headless Chrome. The file is named SKU_<sku>.pdf.
//	@Tags			labels
//	@Produce		application/pdf
//	@Success		200	{file}		binary
//	@Failure		404	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/label/print.pdf [get]
func (h *GetPrintPDFHandler) Execute(w http.ResponseWriter, r *http.Request) {
	label, err := LabelFromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	pdf, err := h.svc.Label.PrintPDF(r.Context(), label)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "label printed", "sku", label.SKU.String(), "bytes", len(pdf))
	httpx.Blob(w, http.StatusOK, "application/pdf", pdf, label.DocumentTitle()+".pdf")
}

package handlers

import (
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	"github.com/ghuser/skulabel/pkg/logger"
)

// GetLabelHandler handles GET /label requests.
type GetLabelHandler struct {
	log logger.Logger
}

// NewGetLabelHandler returns a GetLabelHandler.
func NewGetLabelHandler(log logger.Logger) *GetLabelHandler {
	return &GetLabelHandler{log: log}
}

// Execute returns the session's current label.
//
//	@Summary		Current label
//	@Description	Returns the label generated last in this session
//	@Tags			labels
//	@Produce		json
//	@Success		200	{object}	LabelResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/label [get]
func (h *GetLabelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	label, err := LabelFromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newLabelResponse(label))
}

// GetSKUHandler handles GET /label/sku requests.
type GetSKUHandler struct {
	log logger.Logger
}

// NewGetSKUHandler returns a GetSKUHandler.
func NewGetSKUHandler(log logger.Logger) *GetSKUHandler {
	return &GetSKUHandler{log: log}
}

// Execute returns the bare SKU for copying to the clipboard.
//
//	@Summary		Current SKU
//	@Description	Returns the current label's SKU as plain text
//	@Tags			labels
//	@Produce		plain
//	@Success		200	{string}	string	"AC4820175531"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/label/sku [get]
func (h *GetSKUHandler) Execute(w http.ResponseWriter, r *http.Request) {
	label, err := LabelFromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	httpx.Text(w, http.StatusOK, label.SKU.String())
}

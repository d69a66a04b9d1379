package handlers

import (
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/pkg/session"
	pkgvalidator "github.com/ghuser/skulabel/pkg/validator"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
)

// PostLabelHandler handles POST /label requests.
type PostLabelHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostLabelHandler returns a PostLabelHandler backed by the given services.
func NewPostLabelHandler(svc *appsvcs.Services, log logger.Logger) *PostLabelHandler {
	return &PostLabelHandler{svc: svc, log: log}
}

// Execute generates a SKU and composes the session's current label.
// A failed attempt clears any previous label.
//
//	@Summary		Generate label
//	@Description	Generates a SKU from the business name and composes a label. Replaces the current label.
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateLabelRequest	true	"Label form"
//	@Success		201		{object}	LabelResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/label [post]
func (h *PostLabelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateLabelRequest](w, r)
	if !ok {
		return
	}

	s, err := session.FromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	label, err := h.svc.Label.Compose(r.Context(), req.input())
	if err != nil {
		if clearErr := clearLabel(w, r, s); clearErr != nil {
			h.log.WarnContext(r.Context(), "failed to clear session label", "error", clearErr)
		}
		writeError(w, r, h.log, err)
		return
	}

	if err := storeLabel(w, r, s, label); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "label generated", "sku", label.SKU.String(), "code_type", label.CodeType.String())
	httpx.JSON(w, http.StatusCreated, newLabelResponse(label))
}

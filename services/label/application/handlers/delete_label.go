package handlers

import (
	"net/http"

	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/pkg/session"
)

// DeleteLabelHandler handles DELETE /label requests.
type DeleteLabelHandler struct {
	log logger.Logger
}

// NewDeleteLabelHandler returns a DeleteLabelHandler.
func NewDeleteLabelHandler(log logger.Logger) *DeleteLabelHandler {
	return &DeleteLabelHandler{log: log}
}

// Execute drops the current label, e.g. when the form is edited.
// Idempotent: deleting when there is no label still returns 204.
//
//	@Summary		Clear label
//	@Description	Discards the session's current label
//	@Tags			labels
//	@Success		204
//	@Failure		500	{object}	ErrorResponse
//	@Router			/label [delete]
func (h *DeleteLabelHandler) Execute(w http.ResponseWriter, r *http.Request) {
	s, err := session.FromCtx(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := clearLabel(w, r, s); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

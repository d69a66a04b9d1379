package handlers

import (
	"net/http"

	"github.com/ghuser/skulabel/pkg/httpx"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
)

// GetCodeTypesHandler handles GET /label/code-types requests.
type GetCodeTypesHandler struct {
	svc *appsvcs.Services
}

// NewGetCodeTypesHandler returns a GetCodeTypesHandler backed by the given services.
func NewGetCodeTypesHandler(svc *appsvcs.Services) *GetCodeTypesHandler {
	return &GetCodeTypesHandler{svc: svc}
}

// Execute lists the code types the form offers, in display order.
//
//	@Summary		Code type options
//	@Description	Configured code types, the preselected default and whether PDF printing is on
//	@Tags			labels
//	@Produce		json
//	@Success		200	{object}	CodeTypesResponse
//	@Router			/label/code-types [get]
func (h *GetCodeTypesHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	set := h.svc.Label.CodeTypes()
	opts := set.Options()

	resp := CodeTypesResponse{
		Options:      make([]string, len(opts)),
		Default:      set.Default().String(),
		PrintEnabled: h.svc.Label.PrintEnabled(),
	}
	for i, o := range opts {
		resp.Options[i] = o.String()
	}
	httpx.JSON(w, http.StatusOK, resp)
}

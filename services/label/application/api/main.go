package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/session"
	"github.com/ghuser/skulabel/services/label/application/handlers"
	appsvcs "github.com/ghuser/skulabel/services/label/application/services"
)

// LabelRoutes registers label endpoints on the provided chi router.
// Every route runs with the caller's session loaded; routes that act on the
// current label answer 404 until one has been generated.
func LabelRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}
	registerLabelRoutes(r, a, svcs)
	return nil
}

func registerLabelRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	r.Route("/label", func(r chi.Router) {
		r.Use(session.Middleware(a.SessionStore, a.Logger))

		r.Get("/code-types", handlers.NewGetCodeTypesHandler(svcs).Execute)
		r.Post("/", handlers.NewPostLabelHandler(svcs, a.Logger).Execute)
		r.Delete("/", handlers.NewDeleteLabelHandler(a.Logger).Execute)

		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireLabel(a.Logger))
			r.Get("/", handlers.NewGetLabelHandler(a.Logger).Execute)
			r.Get("/sku", handlers.NewGetSKUHandler(a.Logger).Execute)
			r.Get("/barcode.png", handlers.NewGetBarcodeHandler(svcs, a.Logger).Execute)
			r.Get("/qr.png", handlers.NewGetQRHandler(svcs, a.Logger).Execute)
			r.Get("/print", handlers.NewGetPrintHandler(svcs, a.Logger).Execute)
			r.Get("/print.pdf", handlers.NewGetPrintPDFHandler(svcs, a.Logger).Execute)
		})
	})
}

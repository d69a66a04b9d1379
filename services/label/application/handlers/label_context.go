package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/skulabel/pkg/errhttp"
	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/pkg/session"
	"github.com/ghuser/skulabel/pkg/telemetry"
	labeldomain "github.com/ghuser/skulabel/services/label/domain"
	"github.com/ghuser/skulabel/services/label/domain/models"
)

// sessionLabelKey holds the caller's current label in the session.
const sessionLabelKey = "label"

type contextKey string

const labelKey contextKey = "label"

// WithLabel returns a new context carrying the current label.
func WithLabel(ctx context.Context, l *models.LabelDescriptor) context.Context {
	return context.WithValue(ctx, labelKey, l)
}

// LabelFromCtx returns the label injected by RequireLabel.
func LabelFromCtx(ctx context.Context) (*models.LabelDescriptor, error) {
	l, ok := ctx.Value(labelKey).(*models.LabelDescriptor)
	if !ok || l == nil {
		return nil, labeldomain.ErrLabelNotFound
	}
	return l, nil
}

// RequireLabel loads the session's current label into the request context.
// Requests without one get 404 label_not_found. Must run after session.Middleware.
func RequireLabel(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := session.FromCtx(r.Context())
			if err != nil {
				writeError(w, r, log, err)
				return
			}

			label, err := loadLabel(s)
			if err != nil {
				log.WarnContext(r.Context(), "discarding unreadable session label", "error", err)
				label = nil
			}
			if label == nil {
				errhttp.WriteError(w, labeldomain.ErrLabelNotFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithLabel(r.Context(), label)))
		})
	}
}

func loadLabel(s *sessions.Session) (*models.LabelDescriptor, error) {
	var stored storedLabel
	found, err := session.GetJSON(s, sessionLabelKey, &stored)
	if err != nil || !found {
		return nil, err
	}
	return stored.descriptor()
}

// storeLabel replaces the session label and saves the session.
func storeLabel(w http.ResponseWriter, r *http.Request, s *sessions.Session, l *models.LabelDescriptor) error {
	if err := session.SetJSON(s, sessionLabelKey, toStored(l)); err != nil {
		return err
	}
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// clearLabel removes the session label and saves the session.
func clearLabel(w http.ResponseWriter, r *http.Request, s *sessions.Session) error {
	session.Delete(s, sessionLabelKey)
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// writeError writes the mapped error response. Unexpected failures are logged
// and reported to Sentry; expected ones are not.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch status := errhttp.Status(err); {
	case status == http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "label request failed", "path", r.URL.Path, "error", err)
		telemetry.CaptureError(r.Context(), err)
	case status == http.StatusServiceUnavailable:
		log.WarnContext(r.Context(), "label request unavailable", "path", r.URL.Path, "error", err)
	}
	errhttp.WriteError(w, err)
}

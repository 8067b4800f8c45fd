package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/avelis/users-api/internal/api/shared"
	"github.com/avelis/users-api/internal/platform/logger"
	"github.com/avelis/users-api/internal/service"
)

// HandleServiceError is the single place service failures become HTTP
// responses. It matches the taxonomy root with errors.As and uses the
// kind's fixed status; anything outside the taxonomy gets a generic 500
// after the full error is logged with its trace ID.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.Kind != service.KindUnhandled {
		status := svcErr.Kind.HTTPStatus()

		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request failed",
			slog.String("kind", svcErr.Kind.String()),
			slog.Int("status", status),
			slog.Bool("retryable", svcErr.Kind.Retryable()),
			slog.String("error", svcErr.Error()),
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method))

		shared.RespondWithEnvelope(w, r, status, shared.Fail(svcErr.Message, nil))
		return
	}

	// Outside the taxonomy (or explicitly unhandled): full context goes to
	// the logs, only a generic message to the caller.
	log.LogAttrs(r.Context(), slog.LevelError, "unhandled error",
		slog.String("error", err.Error()),
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	shared.RespondWithEnvelope(w, r, http.StatusInternalServerError,
		shared.Fail("internal error", nil))
}

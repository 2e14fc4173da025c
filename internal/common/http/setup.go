package http

import (
	"net/http"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
)

// BuildBaseHandler wraps handler in the shared middleware chain. Extra
// middlewares run innermost, in the order given, so their responses still
// carry trace ids and are counted.
func BuildBaseHandler(log *logger.Logger, handler http.Handler, inner ...func(http.Handler) http.Handler) http.Handler {
	for i := len(inner) - 1; i >= 0; i-- {
		handler = inner[i](handler)
	}

	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(TraceIDMiddleware(recovery(maxRequestSize(httpmetrics.Wrap(handler)))))
}

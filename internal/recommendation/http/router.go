package http

import (
	"net/http"

	"github.com/AlibekovAA/course-advisor/backend/internal/auth/service"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	commonhttp "github.com/AlibekovAA/course-advisor/backend/internal/common/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	recservice "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/service"
)

type Handler struct {
	recs   *recservice.Service
	errors *commonhttp.ErrorHandler
}

func NewHandler(
	recs *recservice.Service,
	requireSession func(http.Handler) http.Handler,
	cfg config.AdvisorConfig,
	log *logger.Logger,
) http.Handler {
	h := &Handler{recs: recs, errors: commonhttp.NewErrorHandler(log)}

	list := requireSession(commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.list)))

	mux := http.NewServeMux()
	mux.Handle("/recommendations", list)
	mux.Handle("/recommendations/{$}", list)
	return mux
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user, ok := jwtverify.FromContext(r.Context())
	if !ok {
		h.errors.HandleError(w, r, service.ErrUnauthenticated)
		return
	}

	recs, err := h.recs.ForUser(r.Context(), user)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, recs)
}

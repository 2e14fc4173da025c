package http

import (
	"net/http"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/course-advisor/backend/internal/common/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
)

type Handler struct {
	courses store.CourseLister
	errors  *commonhttp.ErrorHandler
	log     *logger.Logger
}

// NewHandler serves the public course catalog, unchanged and in store order.
func NewHandler(courses store.CourseLister, cfg config.AdvisorConfig, log *logger.Logger) http.Handler {
	h := &Handler{courses: courses, errors: commonhttp.NewErrorHandler(log), log: log}

	list := commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.list))

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", list)
	mux.HandleFunc("/courses/{$}", list)
	return mux
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListCourses(r.Context())
	if err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "catalog_list_failed",
		}).Errorf("failed to list courses: %v", err)
		h.errors.HandleError(w, r, commonerrors.ErrStoreUnavailable.WithCause(err))
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, courses)
}

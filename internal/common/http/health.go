package http

import (
	"net/http"
)

func HealthHandler() http.HandlerFunc {
	return RequireMethod(http.MethodGet)(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

package http

import (
	"mime"
	"net/http"

	"github.com/AlibekovAA/course-advisor/backend/internal/auth/service"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	commonhttp "github.com/AlibekovAA/course-advisor/backend/internal/common/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Handler struct {
	auth   *service.AuthService
	errors *commonhttp.ErrorHandler
	log    *logger.Logger
}

// NewHandler serves the login endpoint and the caller's own profile.
// requireSession must reject requests without a resolvable bearer token.
func NewHandler(
	auth *service.AuthService,
	requireSession func(http.Handler) http.Handler,
	cfg config.AdvisorConfig,
	log *logger.Logger,
) http.Handler {
	h := &Handler{auth: auth, errors: commonhttp.NewErrorHandler(log), log: log}

	login := commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.login))
	me := requireSession(commonhttp.RequireMethod(http.MethodGet)(h.me))

	mux := http.NewServeMux()
	mux.HandleFunc("/token", login)
	mux.HandleFunc("/token/{$}", login)
	mux.Handle("/users/me", me)
	mux.Handle("/users/me/{$}", me)
	return mux
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeLogin(w, r)
	if !ok {
		return
	}

	result, err := h.auth.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// decodeLogin accepts the OAuth2 password-flow form body and, for API
// clients, a JSON object with the same two fields.
func (h *Handler) decodeLogin(w http.ResponseWriter, r *http.Request) (loginRequest, bool) {
	traceID := commonhttp.TraceIDFromContext(r.Context())
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var req loginRequest
		if err := commonhttp.DecodeJSON(r, &req); err != nil {
			h.log.WithFields(r.Context(), logger.Fields{
				"action": "login_invalid_json",
			}).Warnf("login rejected: invalid json: %v", err)
			commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", traceID)
			return loginRequest{}, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "login_invalid_form",
		}).Warnf("login rejected: invalid form: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "invalid form body", traceID)
		return loginRequest{}, false
	}
	return loginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, true
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := jwtverify.FromContext(r.Context())
	if !ok {
		h.errors.HandleError(w, r, service.ErrUnauthenticated)
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, user.Profile())
}

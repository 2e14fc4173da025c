package server

import (
	"net/http"
	"time"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
)

// writeTimeoutMargin is the time left after a handler's own deadline for the
// error envelope to reach the client.
const writeTimeoutMargin = 5 * time.Second

// NewAdvisorServer builds the advisor's http.Server. The write timeout is
// widened when needed so a request timing out under ADVISOR_REQUEST_TIMEOUT
// can still be answered.
func NewAdvisorServer(cfg config.AdvisorConfig, handler http.Handler) *http.Server {
	writeTimeout := constants.ServerWriteTimeout
	if needed := cfg.RequestTimeout + writeTimeoutMargin; needed > writeTimeout {
		writeTimeout = needed
	}

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
		ReadTimeout:       constants.ServerReadTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       constants.ServerIdleTimeout,
	}
}

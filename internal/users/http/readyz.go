package http

import (
	"net/http"
	"time"

	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns service health status including database connectivity.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	userapi.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	userapi.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &userapi.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, userapi.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

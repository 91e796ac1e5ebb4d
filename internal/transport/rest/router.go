package rest

import (
	"log/slog"
	"net/http"

	"github.com/praxora/praxis-backend/internal/auth"
	"github.com/praxora/praxis-backend/internal/config"
	"github.com/praxora/praxis-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs. Handlers are constructed
// by the caller so tests can swap in mocked services.
type RouterDeps struct {
	Logger     *slog.Logger
	Tokens     *auth.JWTValidator
	Limiter    *middleware.RateLimiter
	CORS       config.CORSConfig
	RatePerMin int

	Health     *HealthHandler
	Attendance *AttendanceHandler
	Reports    *ReportHandler
}

// NewRouter builds the HTTP routing table. Health probes stay outside the
// authenticated chain; everything under /api/v1 requires a bearer token.
func NewRouter(deps RouterDeps) http.Handler {
	// Logger sits inside Auth so request logs carry the resolved worker and
	// practice. Health probes stay unlogged; they fire every few seconds.
	api := middleware.Chain(
		middleware.Auth(deps.Tokens),
		middleware.Logger(deps.Logger),
		deps.Limiter.Limit(deps.RatePerMin),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.Handle("POST /api/v1/attendance/clock-in", api(http.HandlerFunc(deps.Attendance.ClockIn)))
	mux.Handle("POST /api/v1/attendance/clock-out", api(http.HandlerFunc(deps.Attendance.ClockOut)))
	mux.Handle("POST /api/v1/attendance/break/start", api(http.HandlerFunc(deps.Attendance.StartBreak)))
	mux.Handle("POST /api/v1/attendance/break/end", api(http.HandlerFunc(deps.Attendance.EndBreak)))
	mux.Handle("GET /api/v1/attendance/status", api(http.HandlerFunc(deps.Attendance.Status)))
	mux.Handle("GET /api/v1/attendance/blocks", api(http.HandlerFunc(deps.Attendance.Blocks)))
	mux.Handle("GET /api/v1/attendance/stamps", api(http.HandlerFunc(deps.Attendance.Stamps)))

	mux.Handle("POST /api/v1/reports", api(http.HandlerFunc(deps.Reports.Generate)))
	mux.Handle("GET /api/v1/reports", api(http.HandlerFunc(deps.Reports.List)))
	mux.Handle("GET /api/v1/reports/{id}", api(http.HandlerFunc(deps.Reports.Get)))
	mux.Handle("GET /api/v1/reports/{id}/export", api(http.HandlerFunc(deps.Reports.Export)))

	// Request plumbing wraps the whole mux so panics anywhere are recovered
	// and every response carries a request ID. CORS preflights never reach
	// Auth.
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
	)(mux)
}

//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/praxora/praxis-backend/internal/adapter/notify"
	"github.com/praxora/praxis-backend/internal/adapter/postgres"
	reportrepo "github.com/praxora/praxis-backend/internal/adapter/postgres/report"
	stamprepo "github.com/praxora/praxis-backend/internal/adapter/postgres/stamp"
	"github.com/praxora/praxis-backend/internal/adapter/postgres/testhelper"
	blockrepo "github.com/praxora/praxis-backend/internal/adapter/postgres/timeblock"
	authpkg "github.com/praxora/praxis-backend/internal/auth"
	"github.com/praxora/praxis-backend/internal/config"
	"github.com/praxora/praxis-backend/internal/service/attendance"
	"github.com/praxora/praxis-backend/internal/service/timesheet"
	"github.com/praxora/praxis-backend/internal/transport/middleware"
	"github.com/praxora/praxis-backend/internal/transport/rest"
)

const (
	jwtSecret = "e2e-test-secret-have-at-least-32-chars!"
	jwtIssuer = "praxora-test"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer assembles the full stack against a real PostgreSQL
// container: repositories, services, middleware chain, and an httptest
// server on top of the production router.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stamps := stamprepo.New(pool)
	blocks := blockrepo.New(pool)
	reports := reportrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	attendanceCfg := config.AttendanceConfig{
		TargetMinutesPerDay: 480,
		MaxBlockHours:       16,
	}

	attendanceSvc := attendance.NewService(logger, stamps, blocks, txm, attendanceCfg)
	timesheetSvc := timesheet.NewService(logger, blocks, reports, notify.NewLogSink(logger), attendanceCfg)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Tokens:     authpkg.NewJWTValidator(jwtSecret, jwtIssuer),
		Limiter:    limiter,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RatePerMin: 6000,

		Health:     rest.NewHealthHandler(pool, "test-version"),
		Attendance: rest.NewAttendanceHandler(attendanceSvc, logger),
		Reports:    rest.NewReportHandler(timesheetSvc, logger),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// signToken mints an access token the way the identity service would.
func signToken(t *testing.T, userID, practiceID uuid.UUID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":         userID.String(),
		"practice_id": practiceID.String(),
		"role":        role,
		"iss":         jwtIssuer,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return tok
}

// postJSON sends an authenticated POST and returns status + decoded body.
func (ts *testServer) postJSON(t *testing.T, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

// getJSON sends an authenticated GET and returns status + decoded body.
func (ts *testServer) getJSON(t *testing.T, path string, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

// getRaw sends an authenticated GET and returns status, headers, and raw body.
func (ts *testServer) getRaw(t *testing.T, path string, token string) (int, http.Header, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, data
}

func (ts *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.ContentLength != 0 {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode, result
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/internal/service/attendance"
)

// attendanceService defines the minimal interface needed by AttendanceHandler.
type attendanceService interface {
	ClockIn(ctx context.Context, input attendance.ClockInInput) (*attendance.ClockResult, error)
	ClockOut(ctx context.Context, input attendance.ClockOutInput) (*attendance.ClockResult, error)
	StartBreak(ctx context.Context) (*attendance.BreakResult, error)
	EndBreak(ctx context.Context) (*attendance.BreakResult, error)
	Status(ctx context.Context) (*attendance.StatusResult, error)
	ListBlocks(ctx context.Context, input attendance.ListBlocksInput) ([]*domain.TimeBlock, error)
	ListStamps(ctx context.Context, input attendance.ListBlocksInput) ([]*domain.TimeStamp, error)
}

// AttendanceHandler serves the clock action endpoints.
type AttendanceHandler struct {
	svc attendanceService
	log *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc attendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: logger.With("handler", "attendance")}
}

type clockInRequest struct {
	Location string  `json:"location"`
	Comment  *string `json:"comment,omitempty"`
}

type clockOutRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type blockResponse struct {
	ID           string     `json:"id"`
	BlockDate    string     `json:"blockDate"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	Location     string     `json:"location"`
	BreakMinutes int        `json:"breakMinutes"`
	OnBreak      bool       `json:"onBreak"`
	NetMinutes   *int       `json:"netMinutes,omitempty"`
	Status       string     `json:"status"`
	Plausibility string     `json:"plausibility,omitempty"`
}

type stampResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	StampedAt time.Time `json:"stampedAt"`
	Location  string    `json:"location"`
	Comment   *string   `json:"comment,omitempty"`
}

type clockResponse struct {
	Status string         `json:"status"`
	Block  *blockResponse `json:"block"`
	Stamp  stampResponse  `json:"stamp"`
}

type statusResponse struct {
	Status        string         `json:"status"`
	Block         *blockResponse `json:"block,omitempty"`
	WorkedMinutes int            `json:"workedMinutes"`
	BreakMinutes  int            `json:"breakMinutes"`
	AsOf          time.Time      `json:"asOf"`
}

// ClockIn handles POST /api/v1/attendance/clock-in.
func (h *AttendanceHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req clockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ClockIn(r.Context(), attendance.ClockInInput{
		Location: domain.LocationType(req.Location),
		Comment:  req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, clockResponse{
		Status: string(result.Status),
		Block:  toBlockResponse(result.Block),
		Stamp:  toStampResponse(result.Stamp),
	})
}

// ClockOut handles POST /api/v1/attendance/clock-out.
func (h *AttendanceHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req clockOutRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.svc.ClockOut(r.Context(), attendance.ClockOutInput{Comment: req.Comment})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clockResponse{
		Status: string(result.Status),
		Block:  toBlockResponse(result.Block),
		Stamp:  toStampResponse(result.Stamp),
	})
}

// StartBreak handles POST /api/v1/attendance/break/start.
func (h *AttendanceHandler) StartBreak(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.StartBreak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clockResponse{
		Status: string(result.Status),
		Block:  toBlockResponse(result.Block),
		Stamp:  toStampResponse(result.Stamp),
	})
}

// EndBreak handles POST /api/v1/attendance/break/end.
func (h *AttendanceHandler) EndBreak(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.EndBreak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, clockResponse{
		Status: string(result.Status),
		Block:  toBlockResponse(result.Block),
		Stamp:  toStampResponse(result.Stamp),
	})
}

// Status handles GET /api/v1/attendance/status.
func (h *AttendanceHandler) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Status(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:        string(result.Status),
		Block:         toBlockResponse(result.Block),
		WorkedMinutes: result.WorkedMinutes,
		BreakMinutes:  result.BreakMinutes,
		AsOf:          result.AsOf,
	})
}

// Blocks handles GET /api/v1/attendance/blocks?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *AttendanceHandler) Blocks(w http.ResponseWriter, r *http.Request) {
	input, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	blocks, err := h.svc.ListBlocks(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]*blockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toBlockResponse(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocks": out})
}

// Stamps handles GET /api/v1/attendance/stamps?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Raw ledger view for audits; rows come back in chronological order.
func (h *AttendanceHandler) Stamps(w http.ResponseWriter, r *http.Request) {
	input, ok := parseRangeQuery(w, r)
	if !ok {
		return
	}

	stamps, err := h.svc.ListStamps(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]stampResponse, 0, len(stamps))
	for _, s := range stamps {
		out = append(out, toStampResponse(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"stamps": out})
}

// parseRangeQuery reads the from/to date query parameters. Missing or
// malformed dates are rejected here; range plausibility is left to the
// service input validation.
func parseRangeQuery(w http.ResponseWriter, r *http.Request) (attendance.ListBlocksInput, bool) {
	var input attendance.ListBlocksInput

	from, err := parseDateParam(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: expected date YYYY-MM-DD")
		return input, false
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: expected date YYYY-MM-DD")
		return input, false
	}

	input.From = from
	input.To = to
	return input, true
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}

func toBlockResponse(b *domain.TimeBlock) *blockResponse {
	if b == nil {
		return nil
	}
	return &blockResponse{
		ID:           b.ID.String(),
		BlockDate:    b.BlockDate.Format("2006-01-02"),
		StartedAt:    b.StartedAt,
		EndedAt:      b.EndedAt,
		Location:     string(b.Location),
		BreakMinutes: b.BreakMinutes,
		OnBreak:      b.OnBreak(),
		NetMinutes:   b.NetMinutes,
		Status:       string(b.Status),
		Plausibility: b.Plausibility,
	}
}

func toStampResponse(s *domain.TimeStamp) stampResponse {
	return stampResponse{
		ID:        s.ID.String(),
		Type:      string(s.Type),
		StampedAt: s.StampedAt,
		Location:  string(s.Location),
		Comment:   s.Comment,
	}
}

package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
	"github.com/praxora/praxis-backend/internal/service/timesheet"
)

// timesheetService defines the minimal interface needed by ReportHandler.
type timesheetService interface {
	GenerateReport(ctx context.Context, input timesheet.GenerateReportInput) (*domain.MonthlyReport, error)
	ListReports(ctx context.Context, input timesheet.ListReportsInput) ([]*domain.MonthlyReport, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*domain.MonthlyReport, error)
	ExportPDF(ctx context.Context, reportID uuid.UUID) ([]byte, error)
	ExportCSV(ctx context.Context, reportID uuid.UUID) ([]byte, error)
}

// ReportHandler serves the monthly report endpoints.
type ReportHandler struct {
	svc timesheetService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc timesheetService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type generateReportRequest struct {
	// UserID may be omitted; it then defaults to the caller. Generating for
	// another worker requires the admin role.
	UserID string `json:"userId,omitempty"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

type dayRecordResponse struct {
	Date         string    `json:"date"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	GrossMinutes int       `json:"grossMinutes"`
	BreakMinutes int       `json:"breakMinutes"`
	NetMinutes   int       `json:"netMinutes"`
	Location     string    `json:"location"`
	Plausibility string    `json:"plausibility"`
}

type reportResponse struct {
	ID                   string              `json:"id"`
	UserID               string              `json:"userId"`
	Year                 int                 `json:"year"`
	Month                int                 `json:"month"`
	WorkDays             int                 `json:"workDays"`
	GrossMinutes         int                 `json:"grossMinutes"`
	BreakMinutes         int                 `json:"breakMinutes"`
	NetMinutes           int                 `json:"netMinutes"`
	TargetMinutes        int                 `json:"targetMinutes"`
	OvertimeMinutes      int                 `json:"overtimeMinutes"`
	UndertimeMinutes     int                 `json:"undertimeMinutes"`
	HomeofficeDays       int                 `json:"homeofficeDays"`
	PlausibilityWarnings int                 `json:"plausibilityWarnings"`
	DailyBreakdown       []dayRecordResponse `json:"dailyBreakdown"`
	GeneratedAt          time.Time           `json:"generatedAt"`
}

// Generate handles POST /api/v1/reports.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := timesheet.GenerateReportInput{
		Year:  req.Year,
		Month: req.Month,
	}
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "userId: invalid UUID")
			return
		}
		input.UserID = id
	}

	report, err := h.svc.GenerateReport(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(report))
}

// List handles GET /api/v1/reports?userId=&year=&month=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	var input timesheet.ListReportsInput

	q := r.URL.Query()
	if v := q.Get("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "userId: invalid UUID")
			return
		}
		input.UserID = id
	}
	var ok bool
	if input.Year, ok = parseIntParam(w, q.Get("year"), "year"); !ok {
		return
	}
	if input.Month, ok = parseIntParam(w, q.Get("month"), "month"); !ok {
		return
	}

	reports, err := h.svc.ListReports(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, toReportResponse(rep))
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": out})
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id: invalid UUID")
		return
	}

	report, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}

// Export handles GET /api/v1/reports/{id}/export?format=pdf|csv.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id: invalid UUID")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}

	// Resolve the report first: access checks and the filename period come
	// from here, and an unknown format should not hide a 404.
	report, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "pdf":
		data, err = h.svc.ExportPDF(r.Context(), id)
		contentType = "application/pdf"
	case "csv":
		data, err = h.svc.ExportCSV(r.Context(), id)
		contentType = "text/csv; charset=utf-8"
	default:
		writeError(w, http.StatusBadRequest, "format: must be pdf or csv")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := timesheet.ExportFilename(report.Year, int(report.Month), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func parseIntParam(w http.ResponseWriter, v, name string) (int, bool) {
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+": expected integer")
		return 0, false
	}
	return n, true
}

func toReportResponse(rep *domain.MonthlyReport) reportResponse {
	days := make([]dayRecordResponse, 0, len(rep.DailyBreakdown))
	for _, d := range rep.DailyBreakdown {
		days = append(days, dayRecordResponse{
			Date:         d.Date,
			StartTime:    d.StartTime,
			EndTime:      d.EndTime,
			GrossMinutes: d.GrossMinutes,
			BreakMinutes: d.BreakMinutes,
			NetMinutes:   d.NetMinutes,
			Location:     string(d.Location),
			Plausibility: d.Plausibility,
		})
	}
	return reportResponse{
		ID:                   rep.ID.String(),
		UserID:               rep.UserID.String(),
		Year:                 rep.Year,
		Month:                int(rep.Month),
		WorkDays:             rep.WorkDays,
		GrossMinutes:         rep.GrossMinutes,
		BreakMinutes:         rep.BreakMinutes,
		NetMinutes:           rep.NetMinutes,
		TargetMinutes:        rep.TargetMinutes,
		OvertimeMinutes:      rep.OvertimeMinutes,
		UndertimeMinutes:     rep.UndertimeMinutes,
		HomeofficeDays:       rep.HomeofficeDays,
		PlausibilityWarnings: rep.PlausibilityWarnings,
		DailyBreakdown:       days,
		GeneratedAt:          rep.GeneratedAt,
	}
}

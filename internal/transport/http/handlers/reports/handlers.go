package reportshandler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ulms/internal/domain/auth"
	"ulms/internal/domain/employee"
	"ulms/internal/domain/leave"
	"ulms/internal/report"
	"ulms/internal/report/export"
	"ulms/internal/transport/http/api"
	"ulms/internal/transport/http/middleware"
)

// LeaveSource returns approved records only; the aggregator trusts its input
// and does not re-filter by status.
type LeaveSource interface {
	ApprovedInRange(ctx context.Context, start, end time.Time) ([]leave.Record, error)
	ApprovedForEmployee(ctx context.Context, employeeID string, year int) ([]leave.Record, error)
	ApprovedInMonth(ctx context.Context, month time.Month, year int) ([]leave.Record, error)
}

type RosterSource interface {
	Roster(ctx context.Context) ([]employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
}

type Handler struct {
	Leaves LeaveSource
	Roster RosterSource
	Perms  middleware.PermissionStore
}

func NewHandler(leaves LeaveSource, roster RosterSource, perms middleware.PermissionStore) *Handler {
	return &Handler{Leaves: leaves, Roster: roster, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves/admin/report", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermReportsRead, h.Perms))
		r.Get("/date-range", h.handleDateRange)
		r.Get("/employee/{id}", h.handleEmployee)
		r.Get("/monthly/{month}/{year}", h.handleMonthly)
	})
}

func (h *Handler) handleDateRange(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "start must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "end must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	if end.Before(start) {
		api.Fail(w, http.StatusBadRequest, "bad_request", "end before start", middleware.GetRequestID(r.Context()))
		return
	}

	roster, err := h.Roster.Roster(r.Context())
	if err != nil {
		h.failLoad(w, r, err)
		return
	}
	records, err := h.Leaves.ApprovedInRange(r.Context(), start, end)
	if err != nil {
		h.failLoad(w, r, err)
		return
	}

	cfg := reportConfig(r, report.GroupByEmployee)
	title := "Leave Report"
	subtitle := fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	h.render(w, r, cfg, roster, records, title, subtitle, "leave-report-date-range")
}

func (h *Handler) handleEmployee(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "bad_request", "year must be numeric", middleware.GetRequestID(r.Context()))
			return
		}
		year = parsed
	}

	emp, err := h.Roster.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	records, err := h.Leaves.ApprovedForEmployee(r.Context(), emp.ID, year)
	if err != nil {
		h.failLoad(w, r, err)
		return
	}

	// The annual employee report breaks one person's year down by month.
	cfg := reportConfig(r, report.GroupByMonth)
	cfg.Year = year
	title := fmt.Sprintf("Annual Leave Report - %s", emp.FullName())
	subtitle := fmt.Sprintf("Year %d", year)
	h.render(w, r, cfg, []employee.Employee{emp}, records, title, subtitle, "leave-report-employee")
}

func (h *Handler) handleMonthly(w http.ResponseWriter, r *http.Request) {
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "month must be 1-12", middleware.GetRequestID(r.Context()))
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "year must be numeric", middleware.GetRequestID(r.Context()))
		return
	}
	month := time.Month(monthNum)

	roster, err := h.Roster.Roster(r.Context())
	if err != nil {
		h.failLoad(w, r, err)
		return
	}
	records, err := h.Leaves.ApprovedInMonth(r.Context(), month, year)
	if err != nil {
		h.failLoad(w, r, err)
		return
	}

	cfg := reportConfig(r, report.GroupByEmployee)
	cfg.Year = year
	title := "Monthly Leave Report"
	subtitle := fmt.Sprintf("%s %d", month, year)
	h.render(w, r, cfg, roster, records, title, subtitle, "leave-report-monthly")
}

// reportConfig picks the report variant. scope=academic-support drops duty
// and vacation from the summary.
func reportConfig(r *http.Request, groupBy report.GroupBy) report.Config {
	if r.URL.Query().Get("scope") == "academic-support" {
		return report.AcademicSupportConfig(groupBy)
	}
	return report.DefaultConfig(groupBy)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, cfg report.Config,
	roster []employee.Employee, records []leave.Record, title, subtitle, filename string) {

	buckets := report.Aggregate(cfg, roster, records)
	rows := report.BuildRows(cfg, buckets)
	cols := report.Columns(cfg.GroupBy)

	switch r.URL.Query().Get("format") {
	case "", "json":
		api.Success(w, map[string]any{
			"title":       title,
			"period":      subtitle,
			"headers":     report.Headers(cols),
			"rows":        rows,
			"empty":       len(records) == 0,
			"generatedAt": time.Now().UTC(),
		}, middleware.GetRequestID(r.Context()))
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		if err := export.WriteCSV(w, cols, rows); err != nil {
			slog.Warn("csv export write failed", "err", err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		if err := export.WriteXLSX(w, title, cols, rows); err != nil {
			slog.Warn("xlsx export write failed", "err", err)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
		if err := export.WritePDF(w, title, subtitle, cols, rows); err != nil {
			slog.Warn("pdf export write failed", "err", err)
		}
	default:
		api.Fail(w, http.StatusBadRequest, "bad_request", "format must be json, csv, xlsx or pdf", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) failLoad(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("report data load failed", "err", err, "path", r.URL.Path)
	api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load report data", middleware.GetRequestID(r.Context()))
}

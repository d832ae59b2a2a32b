// Package admin serves the reporting endpoints the dashboard calls.
package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/aurelia-jewels/reports-manager/internal/backend"
	"github.com/aurelia-jewels/reports-manager/internal/dependency"
	"github.com/aurelia-jewels/reports-manager/internal/dto"
	"github.com/aurelia-jewels/reports-manager/internal/entity"
	"github.com/aurelia-jewels/reports-manager/internal/form"
	"github.com/aurelia-jewels/reports-manager/internal/report"
	"github.com/aurelia-jewels/reports-manager/internal/session"
	"github.com/google/uuid"
)

// Server implements handlers for admin reporting.
type Server struct {
	source    dependency.CollectionSource
	snapshots dependency.Snapshots
}

// New creates a new server with admin reporting handlers.
func New(source dependency.CollectionSource, snapshots dependency.Snapshots) *Server {
	return &Server{
		source:    source,
		snapshots: snapshots,
	}
}

// GetReport computes the report for the requested window. The computed
// report is also snapshotted for history; a snapshot write failure is logged
// but never fails the request.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	cfg, ok := reportConfigFromQuery(w, r)
	if !ok {
		return
	}

	cols, err := s.source.FetchAll(r.Context())
	if err != nil {
		writeFetchError(w, r, err)
		return
	}

	res := report.Compute(cols.Orders, cols.Users, cols.Products, cfg)

	if s.snapshots != nil {
		if _, err := s.snapshots.AddSnapshot(r.Context(), cfg, &res); err != nil {
			slog.Default().ErrorContext(r.Context(), "can't persist report snapshot",
				slog.String("err", err.Error()),
			)
		}
	}

	writeJSON(w, http.StatusOK, dto.ReportResponseFromEntity(cfg, &res))
}

// ExportOrders streams the current period's orders as a CSV attachment.
// An empty period is a no-op: 204, no file.
func (s *Server) ExportOrders(w http.ResponseWriter, r *http.Request) {
	cfg, ok := reportConfigFromQuery(w, r)
	if !ok {
		return
	}

	cols, err := s.source.FetchAll(r.Context())
	if err != nil {
		writeFetchError(w, r, err)
		return
	}

	csvBody, err := report.ExportCSV(report.FilterCurrent(cols.Orders, cfg))
	if err != nil {
		if errors.Is(err, report.ErrNothingToExport) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Error(w, "can't export orders", http.StatusInternalServerError)
		return
	}

	exportID := uuid.New().String()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("X-Export-Id", exportID)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"orders-%s-%s.csv\"", cfg.Granularity, cfg.Anchor))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvBody)); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write csv export",
			slog.String("err", err.Error()),
			slog.String("export_id", exportID),
		)
	}
}

// ListSnapshots returns persisted report history, newest first.
func (s *Server) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	f := form.ListSnapshotsRequest{
		Granularity: r.URL.Query().Get("granularity"),
		Limit:       limit,
		Offset:      offset,
	}
	if err := f.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshots, err := s.snapshots.ListSnapshots(r.Context(), entity.Granularity(f.Granularity), f.Limit, f.Offset)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list report snapshots",
			slog.String("err", err.Error()),
		)
		http.Error(w, "can't list snapshots", http.StatusInternalServerError)
		return
	}

	out := make([]dto.SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		out = append(out, dto.SnapshotResponseFromEntity(&snapshots[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func reportConfigFromQuery(w http.ResponseWriter, r *http.Request) (entity.ReportConfig, bool) {
	f := form.GetReportRequest{
		Granularity: r.URL.Query().Get("granularity"),
		Anchor:      r.URL.Query().Get("anchor"),
	}
	if err := f.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return entity.ReportConfig{}, false
	}
	return entity.ReportConfig{
		Granularity: entity.Granularity(f.Granularity),
		Anchor:      f.Anchor,
	}, true
}

// writeFetchError maps collection fetch failures: an authorization failure
// surfaces as 401 so the dashboard redirects to login, everything else is a
// 502 because the platform API is the upstream at fault.
func writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, backend.ErrUnauthorized) || errors.Is(err, session.ErrInvalidated) {
		http.Error(w, "backend session expired", http.StatusUnauthorized)
		return
	}
	slog.Default().ErrorContext(r.Context(), "can't fetch collections",
		slog.String("err", err.Error()),
	)
	http.Error(w, "can't fetch report data", http.StatusBadGateway)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

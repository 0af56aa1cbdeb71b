package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/adamanr/corp_summary/internal/storage"
	logging "github.com/adamanr/corp_summary/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers
}

func NewServer(deps *controllers.Dependens) *Server {
	return &Server{
		deps:        deps,
		Controllers: controllers.NewControllers(deps),
	}
}

// Router mounts the read-only views of the loaded dataset.
func (s Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware(s.deps.Logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			s.deps.Metrics.HTTPRequests.WithLabelValues(routeLabel(r), r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	})

	r.Get("/healthz", s.Health)
	r.Get("/hierarchy", s.GetHierarchy)
	r.Get("/report", s.GetReport)
	r.Get("/report.csv", s.GetReportCSV)
	r.Handle("/metrics", promhttp.HandlerFor(s.deps.Metrics.Registry, promhttp.HandlerOpts{}))

	return r
}

// Health reports the size of the loaded dataset.
func (s Server) Health(w http.ResponseWriter, _ *http.Request) {
	s.httpResponse(w, http.StatusOK, map[string]int{"records": len(s.deps.Records)}, "success")
}

// GetHierarchy returns departments with their teams.
func (s Server) GetHierarchy(w http.ResponseWriter, _ *http.Request) {
	hierarchy := s.Controllers.DepartmentController.GetHierarchy()
	s.httpResponse(w, http.StatusOK, hierarchy.Units(), "success")
}

// GetReport returns the department salary summary.
func (s Server) GetReport(w http.ResponseWriter, _ *http.Request) {
	report, err := s.Controllers.DepartmentController.GetReport()
	if err != nil {
		s.deps.Logger.Error("Error getting report", slog.String("error", err.Error()))
		s.httpResponse(w, errorStatus(err), map[string]string{"error": err.Error()}, "error")
		return
	}

	s.httpResponse(w, http.StatusOK, report, "success")
}

// GetReportCSV returns the report in the export file format.
func (s Server) GetReportCSV(w http.ResponseWriter, _ *http.Request) {
	report, err := s.Controllers.DepartmentController.GetReport()
	if err != nil {
		s.deps.Logger.Error("Error getting report", slog.String("error", err.Error()))
		s.httpResponse(w, errorStatus(err), map[string]string{"error": err.Error()}, "error")
		return
	}

	var buf bytes.Buffer
	if err := storage.WriteReport(&buf, report, s.deps.Config.Comma()); err != nil {
		s.deps.Logger.Error("Error encoding report", slog.String("error", err.Error()))
		s.httpResponse(w, errorStatus(err), map[string]string{"error": err.Error()}, "error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="Department_Report.csv"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf.Bytes()); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

// routeLabel names the matched route so unknown paths share one series.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrParse), errors.Is(err, entity.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s Server) httpResponse(w http.ResponseWriter, status int, data any, respType string) {
	resp := map[string]any{
		"status": status,
		"type":   respType,
		"data":   data,
	}

	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

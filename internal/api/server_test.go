package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamanr/corp_summary/internal/config"
	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/adamanr/corp_summary/internal/metrics"
	"github.com/adamanr/corp_summary/internal/storage"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(department, team, salary string) entity.EmployeeRecord {
	return entity.EmployeeRecord{
		entity.FieldDepartment: department,
		entity.FieldTeam:       team,
		entity.FieldSalary:     salary,
	}
}

func newTestServer(records []entity.EmployeeRecord) (*Server, *controllers.Dependens) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default()

	deps := &controllers.Dependens{
		Store:   storage.NewFileStore(cfg.Comma(), logger),
		Records: records,
		Logger:  logger,
		Config:  cfg,
		Metrics: metrics.New(),
	}

	return NewServer(deps), deps
}

type envelope struct {
	Status int             `json:"status"`
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func sampleRecords() []entity.EmployeeRecord {
	return []entity.EmployeeRecord{
		record("A", "X", "1000"),
		record("A", "Y", "2000"),
		record("B", "X", "500"),
	}
}

func TestServer_GetHierarchy(t *testing.T) {
	s, _ := newTestServer(sampleRecords())

	rec := doRequest(t, s.Router(), "/hierarchy")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "success", env.Type)

	var units []entity.DepartmentUnit
	require.NoError(t, json.Unmarshal(env.Data, &units))
	assert.Equal(t, []entity.DepartmentUnit{
		{Name: "A", Teams: []string{"X", "Y"}},
		{Name: "B", Teams: []string{"X"}},
	}, units)
}

func TestServer_GetReport(t *testing.T) {
	tests := []struct {
		name           string
		records        []entity.EmployeeRecord
		expectedStatus int
		expectedType   string
		check          func(t *testing.T, data json.RawMessage)
	}{
		{
			name:           "successful report",
			records:        sampleRecords(),
			expectedStatus: http.StatusOK,
			expectedType:   "success",
			check: func(t *testing.T, data json.RawMessage) {
				var report []entity.DepartmentStats
				require.NoError(t, json.Unmarshal(data, &report))
				require.Len(t, report, 2)
				assert.Equal(t, "A", report[0].Department)
				assert.Equal(t, 2, report[0].Headcount)
				assert.Equal(t, "1500", report[0].AverageSalary.String())
				assert.Equal(t, "B", report[1].Department)
			},
		},
		{
			name:           "empty dataset",
			records:        nil,
			expectedStatus: http.StatusOK,
			expectedType:   "success",
			check: func(t *testing.T, data json.RawMessage) {
				assert.JSONEq(t, `[]`, string(data))
			},
		},
		{
			name:           "bad salary",
			records:        []entity.EmployeeRecord{record("A", "X", "oops")},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedType:   "error",
			check: func(t *testing.T, data json.RawMessage) {
				assert.Contains(t, string(data), "parse error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(tt.records)

			rec := doRequest(t, s.Router(), "/report")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.expectedStatus, env.Status)
			assert.Equal(t, tt.expectedType, env.Type)
			tt.check(t, env.Data)
		})
	}
}

func TestServer_GetReportCSV(t *testing.T) {
	tests := []struct {
		name           string
		records        []entity.EmployeeRecord
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "successful export",
			records:        sampleRecords(),
			expectedStatus: http.StatusOK,
			expectedBody: "Департамент;Численность;Мин. зарплата;Макс. зарплата;Средняя зарплата\n" +
				"A;2;1000.00;2000.00;1500.00\n" +
				"B;1;500.00;500.00;500.00\n",
		},
		{
			name:           "empty report",
			records:        nil,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(tt.records)

			rec := doRequest(t, s.Router(), "/report.csv")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestServer_MetricsAndHealth(t *testing.T) {
	s, deps := newTestServer(sampleRecords())
	h := s.Router()

	health := doRequest(t, h, "/healthz")
	require.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"records":3}`, string(decode(t, health).Data))

	doRequest(t, h, "/report")

	rec := doRequest(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "corp_summary_reports_built_total 1")
	assert.Equal(t, float64(1), testutil.ToFloat64(deps.Metrics.HTTPRequests.WithLabelValues("/report", http.MethodGet, "200")))

	assert.Equal(t, http.StatusNotFound, doRequest(t, h, "/employees").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, "/employees/42").Code)
	assert.Equal(t, float64(2), testutil.ToFloat64(deps.Metrics.HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(deps.Metrics.HTTPRequests.WithLabelValues("/employees", http.MethodGet, "404")))
}

package controllers

import (
	"errors"
	"testing"

	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDependens_Load(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStore)
		expectError bool
		expectedLen int
	}{
		{
			name: "successful load",
			setupMocks: func(store *MockStore) {
				store.On("LoadEmployees", "Corp_Summary.csv").Return(CreateTestEmployees(), nil)
			},
			expectedLen: 3,
		},
		{
			name: "missing file",
			setupMocks: func(store *MockStore) {
				store.On("LoadEmployees", "Corp_Summary.csv").
					Return(nil, &entity.IOError{Op: "open", Path: "Corp_Summary.csv", Err: errors.New("no such file")})
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}
			deps := CreateTestDependencies(store, nil)

			tt.setupMocks(store)

			err := deps.Load()

			if tt.expectError {
				assert.ErrorIs(t, err, entity.ErrIO)
				assert.Nil(t, deps.Records)
			} else {
				assert.NoError(t, err)
				assert.Len(t, deps.Records, tt.expectedLen)
				assert.Equal(t, float64(tt.expectedLen), testutil.ToFloat64(deps.Metrics.RecordsLoaded))
			}

			store.AssertExpectations(t)
		})
	}
}

func TestDepartmentController_GetHierarchy(t *testing.T) {
	deps := CreateTestDependencies(&MockStore{}, CreateTestEmployees())
	controller := NewControllers(deps).DepartmentController

	hierarchy := controller.GetHierarchy()

	assert.Equal(t, []entity.DepartmentUnit{
		{Name: "A", Teams: []string{"X", "Y"}},
		{Name: "B", Teams: []string{"X"}},
	}, hierarchy.Units())
}

func TestDepartmentController_GetReport(t *testing.T) {
	tests := []struct {
		name        string
		records     []entity.EmployeeRecord
		expectError bool
		expectedLen int
	}{
		{
			name:        "successful report",
			records:     CreateTestEmployees(),
			expectedLen: 2,
		},
		{
			name:        "empty dataset",
			records:     nil,
			expectedLen: 0,
		},
		{
			name:        "bad salary",
			records:     []entity.EmployeeRecord{Employee("A", "X", "n/a")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies(&MockStore{}, tt.records)
			controller := NewDepartmentController(deps)

			report, err := controller.GetReport()

			if tt.expectError {
				assert.ErrorIs(t, err, entity.ErrParse)
				assert.Nil(t, report)
				assert.Equal(t, float64(0), testutil.ToFloat64(deps.Metrics.ReportsBuilt))
			} else {
				assert.NoError(t, err)
				assert.Len(t, report, tt.expectedLen)
				assert.Equal(t, float64(1), testutil.ToFloat64(deps.Metrics.ReportsBuilt))
			}
		})
	}
}

func TestDepartmentController_ExportReport(t *testing.T) {
	tests := []struct {
		name         string
		records      []entity.EmployeeRecord
		setupMocks   func(*MockStore)
		expectErr    error
		expectResult string
	}{
		{
			name:    "successful export",
			records: CreateTestEmployees(),
			setupMocks: func(store *MockStore) {
				store.On("SaveReport", "Department_Report.csv", mock.MatchedBy(func(report []entity.DepartmentStats) bool {
					return len(report) == 2 && report[0].Department == "A" && report[1].Department == "B"
				})).Return(nil)
			},
			expectResult: "ok",
		},
		{
			name:         "empty report",
			records:      nil,
			setupMocks:   func(*MockStore) {},
			expectErr:    entity.ErrValidation,
			expectResult: "validation_error",
		},
		{
			name:         "bad salary",
			records:      []entity.EmployeeRecord{Employee("A", "X", "")},
			setupMocks:   func(*MockStore) {},
			expectErr:    entity.ErrParse,
			expectResult: "parse_error",
		},
		{
			name:    "write failure",
			records: CreateTestEmployees(),
			setupMocks: func(store *MockStore) {
				store.On("SaveReport", "Department_Report.csv", mock.Anything).
					Return(&entity.IOError{Op: "create", Path: "Department_Report.csv", Err: errors.New("permission denied")})
			},
			expectErr:    entity.ErrIO,
			expectResult: "io_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{}
			deps := CreateTestDependencies(store, tt.records)

			tt.setupMocks(store)

			controller := NewDepartmentController(deps)
			path, err := controller.ExportReport()

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Empty(t, path)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Department_Report.csv", path)
			}

			assert.Equal(t, float64(1), testutil.ToFloat64(deps.Metrics.ReportExports.WithLabelValues(tt.expectResult)))
			store.AssertExpectations(t)
		})
	}
}

package controllers

import (
	"io"
	"log/slog"

	"github.com/adamanr/corp_summary/internal/config"
	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/adamanr/corp_summary/internal/metrics"
	"github.com/stretchr/testify/mock"
)

// MockStore represents a mock flat-file store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadEmployees(path string) ([]entity.EmployeeRecord, error) {
	args := m.Called(path)
	records, _ := args.Get(0).([]entity.EmployeeRecord)
	return records, args.Error(1)
}

func (m *MockStore) SaveReport(path string, report []entity.DepartmentStats) error {
	args := m.Called(path, report)
	return args.Error(0)
}

// Test helper functions.
func CreateTestDependencies(store *MockStore, records []entity.EmployeeRecord) *Dependens {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := config.Default()
	cfg.Input.Path = "Corp_Summary.csv"
	cfg.Output.Path = "Department_Report.csv"

	return &Dependens{
		Store:   store,
		Records: records,
		Logger:  logger,
		Config:  cfg,
		Metrics: metrics.New(),
	}
}

// Test data helpers.
func Employee(department, team, salary string) entity.EmployeeRecord {
	return entity.EmployeeRecord{
		"ФИО полностью":        "Иванов Иван Иванович",
		entity.FieldDepartment: department,
		entity.FieldTeam:       team,
		entity.FieldSalary:     salary,
	}
}

func CreateTestEmployees() []entity.EmployeeRecord {
	return []entity.EmployeeRecord{
		Employee("A", "X", "1000"),
		Employee("A", "Y", "2000"),
		Employee("B", "X", "500"),
	}
}

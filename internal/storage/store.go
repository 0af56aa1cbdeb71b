package storage

import (
	"log/slog"

	"github.com/adamanr/corp_summary/internal/entity"
)

// FileStore reads and writes delimited flat files with a fixed delimiter.
type FileStore struct {
	Comma  rune
	Logger *slog.Logger
}

func NewFileStore(comma rune, logger *slog.Logger) *FileStore {
	return &FileStore{Comma: comma, Logger: logger}
}

func (s *FileStore) LoadEmployees(path string) ([]entity.EmployeeRecord, error) {
	return LoadEmployees(path, s.Comma, s.Logger)
}

func (s *FileStore) SaveReport(path string, report []entity.DepartmentStats) error {
	return SaveReport(path, report, s.Comma, s.Logger)
}

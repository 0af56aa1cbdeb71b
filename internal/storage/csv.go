package storage

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adamanr/corp_summary/internal/entity"
)

const utf8BOM = "\ufeff"

// ReadEmployees parses a delimited employee table whose first row names the
// columns. Rows are returned in file order.
func ReadEmployees(r io.Reader, comma rune) ([]entity.EmployeeRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &entity.ParseError{Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, readError(0, err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var records []entity.EmployeeRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(row, err)
		}

		rec := make(entity.EmployeeRecord, len(header))
		for i, name := range header {
			rec[name] = fields[i]
		}
		if err := checkKeys(row, rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// readError keeps malformed input apart from failures of the underlying reader.
func readError(row int, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &entity.ParseError{Row: row, Err: err}
	}
	return &entity.IOError{Op: "read", Err: err}
}

// checkKeys rejects rows without the department or team they are grouped by.
func checkKeys(row int, rec entity.EmployeeRecord) error {
	for _, name := range []string{entity.FieldDepartment, entity.FieldTeam} {
		if strings.TrimSpace(rec[name]) == "" {
			return &entity.ParseError{Row: row, Field: name, Err: errors.New("empty value")}
		}
	}
	return nil
}

func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	for _, name := range entity.RequiredFields {
		if !present[name] {
			return &entity.ParseError{Field: name, Err: errors.New("missing column")}
		}
	}

	return nil
}

// LoadEmployees opens path and reads the employee table from it.
func LoadEmployees(path string, comma rune, logger *slog.Logger) ([]entity.EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("Error opening employee file", slog.String("path", path), slog.String("error", err.Error()))
		return nil, &entity.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	records, err := ReadEmployees(f, comma)
	if err != nil {
		logger.Error("Error reading employee file", slog.String("path", path), slog.String("error", err.Error()))
		var ioErr *entity.IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return nil, err
	}

	logger.Info("Employee file loaded", slog.String("path", path), slog.Int("records", len(records)))
	return records, nil
}

// WriteReport serializes report as a delimited table with a header row.
func WriteReport(w io.Writer, report []entity.DepartmentStats, comma rune) error {
	if len(report) == 0 {
		return &entity.ValidationError{Err: entity.ErrEmptyReport}
	}

	writer := csv.NewWriter(w)
	writer.Comma = comma

	if err := writer.Write(entity.ReportHeader); err != nil {
		return err
	}

	for _, stats := range report {
		row := []string{
			stats.Department,
			strconv.Itoa(stats.Headcount),
			stats.MinSalary.StringFixed(2),
			stats.MaxSalary.StringFixed(2),
			stats.AverageSalary.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveReport writes report to the file at path, replacing its contents.
func SaveReport(path string, report []entity.DepartmentStats, comma rune, logger *slog.Logger) (err error) {
	if len(report) == 0 {
		logger.Warn("Refusing to export empty report", slog.String("path", path))
		return &entity.ValidationError{Err: entity.ErrEmptyReport}
	}

	// The report goes to a temp file next to path and replaces it only when complete.
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		logger.Error("Error creating report file", slog.String("path", path), slog.String("error", err.Error()))
		return &entity.IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err := WriteReport(f, report, comma); err != nil {
		f.Close()
		logger.Error("Error writing report file", slog.String("path", path), slog.String("error", err.Error()))
		return &entity.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		logger.Error("Error closing report file", slog.String("path", path), slog.String("error", err.Error()))
		return &entity.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		logger.Error("Error replacing report file", slog.String("path", path), slog.String("error", err.Error()))
		return &entity.IOError{Op: "rename", Path: path, Err: err}
	}

	logger.Info("Report saved", slog.String("path", path), slog.Int("departments", len(report)))
	return nil
}

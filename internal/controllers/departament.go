package controllers

import (
	"errors"
	"log/slog"

	"github.com/adamanr/corp_summary/internal/entity"
)

type DepartmentController struct {
	deps *Dependens
}

func NewDepartmentController(deps *Dependens) *DepartmentController {
	return &DepartmentController{
		deps: deps,
	}
}

func (c *DepartmentController) GetHierarchy() entity.DepartmentHierarchy {
	hierarchy := BuildHierarchy(c.deps.Records)
	c.deps.Logger.Debug("Hierarchy built", slog.Int("departments", len(hierarchy)))
	return hierarchy
}

func (c *DepartmentController) GetReport() ([]entity.DepartmentStats, error) {
	report, err := BuildReport(c.deps.Records)
	if err != nil {
		c.deps.Logger.Error("Error building report", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Metrics.ReportsBuilt.Inc()
	c.deps.Logger.Debug("Report built", slog.Int("departments", len(report)))

	return report, nil
}

// ExportReport builds the report and saves it to the configured output path.
func (c *DepartmentController) ExportReport() (string, error) {
	path := c.deps.Config.Output.Path

	report, err := c.GetReport()
	if err != nil {
		c.deps.Metrics.ReportExports.WithLabelValues(exportResult(err)).Inc()
		return "", err
	}

	if len(report) == 0 {
		err = &entity.ValidationError{Err: entity.ErrEmptyReport}
		c.deps.Logger.Warn("Nothing to export", slog.String("path", path))
		c.deps.Metrics.ReportExports.WithLabelValues(exportResult(err)).Inc()
		return "", err
	}

	if err := c.deps.Store.SaveReport(path, report); err != nil {
		c.deps.Logger.Error("Error exporting report", slog.String("path", path), slog.String("error", err.Error()))
		c.deps.Metrics.ReportExports.WithLabelValues(exportResult(err)).Inc()
		return "", err
	}

	c.deps.Metrics.ReportExports.WithLabelValues(exportResult(nil)).Inc()
	c.deps.Logger.Info("Report exported", slog.String("path", path), slog.Int("departments", len(report)))

	return path, nil
}

func exportResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entity.ErrParse):
		return "parse_error"
	case errors.Is(err, entity.ErrValidation):
		return "validation_error"
	case errors.Is(err, entity.ErrIO):
		return "io_error"
	default:
		return "error"
	}
}

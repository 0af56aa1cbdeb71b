package controllers

import (
	"log/slog"

	"github.com/adamanr/corp_summary/internal/config"
	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/adamanr/corp_summary/internal/metrics"
)

type Controllers struct {
	DepartmentController *DepartmentController
}

func NewControllers(deps *Dependens) *Controllers {
	return &Controllers{
		DepartmentController: NewDepartmentController(deps),
	}
}

// Dependens carries the loaded dataset and everything the controllers need.
// Records are read once by Load and never modified afterwards.
type Dependens struct {
	Store interface {
		LoadEmployees(path string) ([]entity.EmployeeRecord, error)
		SaveReport(path string, report []entity.DepartmentStats) error
	}
	Records []entity.EmployeeRecord
	Logger  *slog.Logger
	Config  *config.Config
	Metrics *metrics.Metrics
}

// Load reads the employee file named in the config into Records.
func (d *Dependens) Load() error {
	records, err := d.Store.LoadEmployees(d.Config.Input.Path)
	if err != nil {
		d.Logger.Error("Error loading dataset", slog.String("error", err.Error()))
		return err
	}

	d.Records = records
	d.Metrics.RecordsLoaded.Set(float64(len(records)))
	d.Logger.Info("Dataset loaded", slog.String("path", d.Config.Input.Path), slog.Int("records", len(records)))

	return nil
}

package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Column labels of the exported department report.
const (
	ReportDepartment = "Департамент"
	ReportHeadcount  = "Численность"
	ReportMinSalary  = "Мин. зарплата"
	ReportMaxSalary  = "Макс. зарплата"
	ReportAvgSalary  = "Средняя зарплата"
)

// ReportHeader is the fixed column order of the exported report.
var ReportHeader = []string{ReportDepartment, ReportHeadcount, ReportMinSalary, ReportMaxSalary, ReportAvgSalary}

// DepartmentHierarchy maps a department name to the set of its team names.
type DepartmentHierarchy map[string]map[string]struct{}

// Add inserts team under department, creating the department on first use.
func (h DepartmentHierarchy) Add(department, team string) {
	teams, ok := h[department]
	if !ok {
		teams = make(map[string]struct{})
		h[department] = teams
	}
	teams[team] = struct{}{}
}

// Departments returns department names in ascending order.
func (h DepartmentHierarchy) Departments() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Teams returns the teams of department in ascending order.
func (h DepartmentHierarchy) Teams(department string) []string {
	teams := make([]string, 0, len(h[department]))
	for team := range h[department] {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// Units flattens the hierarchy into sorted department entries.
func (h DepartmentHierarchy) Units() []DepartmentUnit {
	units := make([]DepartmentUnit, 0, len(h))
	for _, name := range h.Departments() {
		units = append(units, DepartmentUnit{Name: name, Teams: h.Teams(name)})
	}
	return units
}

// DepartmentUnit is one department with its sorted teams.
type DepartmentUnit struct {
	Name  string   `json:"department"`
	Teams []string `json:"teams"`
}

// DepartmentStats is the salary summary of a single department.
type DepartmentStats struct {
	Department    string          `json:"department"`
	Headcount     int             `json:"headcount"`
	MinSalary     decimal.Decimal `json:"min_salary"`
	MaxSalary     decimal.Decimal `json:"max_salary"`
	AverageSalary decimal.Decimal `json:"average_salary"`
}

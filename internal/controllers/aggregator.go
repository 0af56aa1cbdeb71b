package controllers

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/adamanr/corp_summary/internal/entity"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySalary    = errors.New("empty salary")
	ErrNegativeSalary = errors.New("negative salary")
	ErrSalaryScale    = errors.New("salary scale out of range")
)

// Salaries are kept within these decimal exponents so arithmetic stays bounded.
const (
	minSalaryExponent = -8
	maxSalaryExponent = 15
)

// ParseSalary parses a salary written with optional space thousands
// separators, e.g. "1 500" or "120 000.50".
func ParseSalary(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return decimal.Zero, ErrEmptySalary
	}

	salary, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	if salary.IsNegative() {
		return decimal.Zero, ErrNegativeSalary
	}
	if exp := salary.Exponent(); exp < minSalaryExponent || exp > maxSalaryExponent {
		return decimal.Zero, ErrSalaryScale
	}

	return salary, nil
}

// BuildHierarchy groups the distinct teams of every department.
func BuildHierarchy(records []entity.EmployeeRecord) entity.DepartmentHierarchy {
	hierarchy := make(entity.DepartmentHierarchy)
	for _, rec := range records {
		hierarchy.Add(rec.Department(), rec.Team())
	}
	return hierarchy
}

type salaryTotals struct {
	headcount int
	min       decimal.Decimal
	max       decimal.Decimal
	total     decimal.Decimal
}

// BuildReport summarizes salaries per department, ordered by department name.
// The average is rounded half away from zero to two fractional digits.
// Any unparsable salary fails the whole report.
func BuildReport(records []entity.EmployeeRecord) ([]entity.DepartmentStats, error) {
	totals := make(map[string]*salaryTotals)

	for i, rec := range records {
		salary, err := ParseSalary(rec.Salary())
		if err != nil {
			return nil, &entity.ParseError{Row: i + 1, Field: entity.FieldSalary, Value: rec.Salary(), Err: err}
		}

		dept, ok := totals[rec.Department()]
		if !ok {
			dept = &salaryTotals{min: salary, max: salary, total: decimal.Zero}
			totals[rec.Department()] = dept
		}

		dept.headcount++
		dept.total = dept.total.Add(salary)
		if salary.LessThan(dept.min) {
			dept.min = salary
		}
		if salary.GreaterThan(dept.max) {
			dept.max = salary
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	report := make([]entity.DepartmentStats, 0, len(names))
	for _, name := range names {
		dept := totals[name]
		report = append(report, entity.DepartmentStats{
			Department:    name,
			Headcount:     dept.headcount,
			MinSalary:     dept.min,
			MaxSalary:     dept.max,
			AverageSalary: dept.total.DivRound(decimal.NewFromInt(int64(dept.headcount)), 2),
		})
	}

	return report, nil
}

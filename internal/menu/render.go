package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/adamanr/corp_summary/internal/entity"
)

// RenderHierarchy prints every department followed by its teams.
func RenderHierarchy(w io.Writer, hierarchy entity.DepartmentHierarchy) error {
	var b strings.Builder
	for _, unit := range hierarchy.Units() {
		fmt.Fprintf(&b, "Департамент: %s\n", unit.Name)
		for _, team := range unit.Teams {
			fmt.Fprintf(&b, "  Команда: %s\n", team)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderReport prints the department summary block by block.
func RenderReport(w io.Writer, report []entity.DepartmentStats) error {
	var b strings.Builder
	for _, stats := range report {
		fmt.Fprintf(&b, "Департамент: %s\n", stats.Department)
		fmt.Fprintf(&b, "Численность: %d\n", stats.Headcount)
		fmt.Fprintf(&b, "Вилка зарплат: %s - %s\n", stats.MinSalary.StringFixed(2), stats.MaxSalary.StringFixed(2))
		fmt.Fprintf(&b, "Средняя зарплата: %s\n", stats.AverageSalary.StringFixed(2))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

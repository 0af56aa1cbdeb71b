package entity

// Column labels of the source employee file.
const (
	FieldDepartment = "Департамент"
	FieldTeam       = "Отдел"
	FieldSalary     = "Оклад"
)

// RequiredFields lists the columns every employee file must carry.
var RequiredFields = []string{FieldDepartment, FieldTeam, FieldSalary}

// EmployeeRecord is one data row of the employee file keyed by header label.
type EmployeeRecord map[string]string

func (r EmployeeRecord) Department() string {
	return r[FieldDepartment]
}

func (r EmployeeRecord) Team() string {
	return r[FieldTeam]
}

func (r EmployeeRecord) Salary() string {
	return r[FieldSalary]
}

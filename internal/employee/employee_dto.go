package employee

type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Mobile      *string `json:"mobile"`
	Org         string  `json:"org" binding:"required"`
	EmpType     string  `json:"emp_type" binding:"required,oneof=STAFF LABOR"`
	SalaryType  string  `json:"salary_type" binding:"required,oneof=MONTHLY DAILY HOURLY"`
	GrossSalary float64 `json:"gross_salary"`
	JoinDate    string  `json:"join_date" binding:"required"`
	LeaveDate   *string `json:"leave_date"`
	EmpCode     string  `json:"emp_code"`
}

type UpdateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Mobile      *string `json:"mobile"`
	EmpType     string  `json:"emp_type" binding:"required,oneof=STAFF LABOR"`
	SalaryType  string  `json:"salary_type" binding:"required,oneof=MONTHLY DAILY HOURLY"`
	GrossSalary float64 `json:"gross_salary"`
	JoinDate    string  `json:"join_date" binding:"required"`
	LeaveDate   *string `json:"leave_date"`
}

type MarkLeftRequest struct {
	LeaveDate string `json:"leave_date" binding:"required"`
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Org         string  `json:"org"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	Mobile      *string `json:"mobile,omitempty"`
	EmpType     string  `json:"emp_type"`
	SalaryType  string  `json:"salary_type"`
	GrossSalary float64 `json:"gross_salary"`
	JoinDate    string  `json:"join_date"`
	LeaveDate   *string `json:"leave_date,omitempty"`
}

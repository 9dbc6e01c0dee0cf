package advance

type CreateAdvanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Mode       string  `json:"mode" binding:"required,oneof=CASH BANK"`
}

type AdvanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Mode       string  `json:"mode"`
}

type EmployeeAdvancesResponse struct {
	EmployeeID string            `json:"employee_id"`
	Advances   []AdvanceResponse `json:"advances"`
	Total      float64           `json:"total"`
}

// MonthAdvanceRow is one employee's advances within a reporting month.
type MonthAdvanceRow struct {
	EmployeeID string            `json:"employee_id"`
	EmpCode    string            `json:"emp_code"`
	Name       string            `json:"name"`
	Advances   []AdvanceResponse `json:"advances"`
	Total      float64           `json:"total"`
}

type MonthAdvancesResponse struct {
	Org   string            `json:"org"`
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Rows  []MonthAdvanceRow `json:"rows"`
	Total float64           `json:"total"`
}

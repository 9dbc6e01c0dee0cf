package salary

type SheetRow struct {
	EmployeeID  string  `json:"employee_id"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	SalaryType  string  `json:"salary_type"`
	GrossSalary float64 `json:"gross_salary"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	HalfDays    int     `json:"half_days"`
	HoursWorked float64 `json:"hours_worked"`
	TotalDays   string  `json:"total_days"`
	Actual      float64 `json:"actual_salary"`
	Advances    float64 `json:"advances"`
	NetPayable  float64 `json:"net_payable"`
}

type SheetFailure struct {
	EmployeeID string `json:"employee_id"`
	EmpCode    string `json:"emp_code"`
	Name       string `json:"name"`
	Reason     string `json:"reason"`
}

type SheetTotals struct {
	Actual     float64 `json:"actual_salary"`
	Advances   float64 `json:"advances"`
	NetPayable float64 `json:"net_payable"`
}

type SheetResponse struct {
	Org           string         `json:"org"`
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	EffectiveDays int            `json:"effective_days"`
	Rows          []SheetRow     `json:"rows"`
	Failures      []SheetFailure `json:"failures"`
	Totals        SheetTotals    `json:"totals"`
}

type ExportSheetRequest struct {
	Org   string `json:"org" binding:"required"`
	Year  int    `json:"year" binding:"required"`
	Month int    `json:"month" binding:"required"`
}

type ExportSheetResponse struct {
	Org       string `json:"org"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	RunNumber int64  `json:"run_number"`
	Status    string `json:"status"`
}

func mapStatementToRow(s Statement) SheetRow {
	return SheetRow{
		EmployeeID:  s.EmployeeID,
		EmpCode:     s.EmpCode,
		Name:        s.Name,
		SalaryType:  s.SalaryType,
		GrossSalary: s.GrossRate,
		PresentDays: s.PresentDays,
		AbsentDays:  s.AbsentDays,
		HalfDays:    s.HalfDays,
		HoursWorked: Round2(s.AccrualHours),
		TotalDays:   s.TotalDaysTag(),
		Actual:      Round2(s.ActualSalary),
		Advances:    Round2(s.Advances),
		NetPayable:  Round2(s.NetPayable),
	}
}

func mapBatchToSheet(result BatchResult) SheetResponse {
	resp := SheetResponse{
		Org:           result.Org,
		Year:          result.Year,
		Month:         int(result.Month),
		EffectiveDays: result.EffectiveDays,
		Rows:          make([]SheetRow, len(result.Statements)),
		Failures:      make([]SheetFailure, len(result.Failures)),
	}

	var actual, advances, net float64
	for i, stmt := range result.Statements {
		resp.Rows[i] = mapStatementToRow(stmt)
		actual += stmt.ActualSalary
		advances += stmt.Advances
		net += stmt.NetPayable
	}
	for i, f := range result.Failures {
		resp.Failures[i] = SheetFailure(f)
	}

	resp.Totals = SheetTotals{
		Actual:     Round2(actual),
		Advances:   Round2(advances),
		NetPayable: Round2(net),
	}
	return resp
}

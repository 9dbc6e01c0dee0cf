package attendance

type MarkEntryRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=PRESENT ABSENT HALF_DAY"`
	HoursWorked float64 `json:"hours_worked"`
}

type MarkAttendanceRequest struct {
	Org     string             `json:"org" binding:"required"`
	Date    string             `json:"date" binding:"required"`
	Entries []MarkEntryRequest `json:"entries" binding:"required,dive"`
}

type MarkAttendanceResponse struct {
	Org    string `json:"org"`
	Date   string `json:"date"`
	Marked int    `json:"marked"`
}

// DaySheetEntry is one row of the marking screen: every active employee of
// the org, prefilled PRESENT / 12h until an explicit mark exists.
type DaySheetEntry struct {
	EmployeeID  string  `json:"employee_id"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	HoursWorked float64 `json:"hours_worked"`
	Marked      bool    `json:"marked"`
}

type DaySheetResponse struct {
	Org     string          `json:"org"`
	Date    string          `json:"date"`
	Entries []DaySheetEntry `json:"entries"`
}

type DayCell struct {
	Day         int     `json:"day"`
	Status      string  `json:"status,omitempty"`
	HoursWorked float64 `json:"hours_worked,omitempty"`
}

type MatrixRow struct {
	EmployeeID string    `json:"employee_id"`
	EmpCode    string    `json:"emp_code"`
	Name       string    `json:"name"`
	Days       []DayCell `json:"days"`
}

type MonthlyMatrixResponse struct {
	Org         string      `json:"org"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	DaysInMonth int         `json:"days_in_month"`
	Rows        []MatrixRow `json:"rows"`
}

type AbsentEntry struct {
	EmployeeID string `json:"employee_id"`
	EmpCode    string `json:"emp_code"`
	Name       string `json:"name"`
}

type AbsentListResponse struct {
	Org     string        `json:"org"`
	Date    string        `json:"date"`
	Absent  []AbsentEntry `json:"absent"`
	Total   int           `json:"total"`
	Present int           `json:"present"`
}

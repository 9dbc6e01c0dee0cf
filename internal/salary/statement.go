package salary

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Statement is one employee's computed pay for one month. All money fields
// are unrounded; rounding happens only when a statement is mapped to a DTO
// or rendered.
type Statement struct {
	EmployeeID string
	EmpCode    string
	Name       string
	Org        string
	SalaryType string
	GrossRate  float64

	Year  int
	Month time.Month

	// EffectiveDays is how far into the month the computation ran: the
	// current day-of-month for an in-progress month, the full month
	// otherwise.
	EffectiveDays int

	PresentDays int
	AbsentDays  int
	HalfDays    int

	// WorkedHours is the hourly-paid hour count; zero for monthly and daily
	// employees. AccrualHours is the present/half-day hour total regardless
	// of salary type.
	WorkedHours  float64
	AccrualHours float64

	ActualSalary float64
	Advances     float64
	NetPayable   float64
}

// TotalDaysTag is the sheet's compact worked-quantity column: hours for
// hourly employees, counted days for everyone else.
func (s Statement) TotalDaysTag() string {
	if s.SalaryType == "" {
		return ""
	}
	if isHourly(s.SalaryType) {
		return "H-" + strconv.FormatFloat(s.WorkedHours, 'f', -1, 64)
	}
	return fmt.Sprintf("d-%d", s.PresentDays)
}

// Round2 rounds half away from zero to two decimals. Used at the
// presentation edge only; the engine itself stays unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package salary

import (
	"time"

	"github.com/mrxguptaa/payroll/internal/advance"
	"github.com/mrxguptaa/payroll/internal/attendance"
	"github.com/mrxguptaa/payroll/internal/employee"
	salaryerrors "github.com/mrxguptaa/payroll/internal/salary/errors"
)

// fullShiftHours normalizes a day of work into hours: the mills run one
// 12-hour shift, so a monthly per-day rate divides into 12 payable hours and
// a daily rate is likewise paid out per twelfth.
const fullShiftHours = 12

func isHourly(salaryType string) bool {
	return salaryType == employee.SalaryTypeHourly
}

// Compute produces one employee's statement for (year, month).
//
// The month is swept day by day between the employee's join and leave dates,
// clamped to the month and, when the month is still running, to today's
// day-of-month. Days without an attendance record count as absent with zero
// hours. Pay then follows the salary type:
//
//   - MONTHLY: the gross rate divides over the month's calendar days into a
//     per-day rate, and over the 12-hour shift into a per-hour rate. Pay
//     accrues per recorded hour; any absence additionally subtracts a full
//     per-day rate.
//   - DAILY: the day rate divides into 12 payable hours; pay accrues per
//     recorded hour.
//   - HOURLY: pay is the hour rate times recorded hours.
//
// Advances dated inside the month subtract from the result. Net pay may go
// negative; recovery of over-advanced pay is the next month's problem.
func Compute(
	emp employee.Employee,
	ledger *attendance.Ledger,
	advances *advance.Ledger,
	year int,
	month time.Month,
	today time.Time,
) (Statement, error) {
	if month < time.January || month > time.December || year < 2000 {
		return Statement{}, salaryerrors.ErrInvalidPeriod
	}
	if emp.GrossSalary <= 0 {
		return Statement{}, salaryerrors.ErrMissingSalaryConfig
	}

	monthStart, monthEnd := employee.MonthBounds(year, month)
	daysInMonth := monthEnd.Day()

	effectiveDays := daysInMonth
	if year == today.Year() && month == today.Month() {
		effectiveDays = today.Day()
	}

	// Clamp the counted range to the employment window. No overlap means
	// nothing is counted — no presence, no absence, no pay.
	from, to := 1, 0
	if start, end, ok := emp.Window().Intersect(monthStart, monthEnd); ok {
		from = start.Day()
		to = end.Day()
		if to > effectiveDays {
			to = effectiveDays
		}
	}

	tally := ledger.Tally(from, to)

	stmt := Statement{
		EmployeeID:    emp.ID.String(),
		EmpCode:       emp.EmpCode,
		Name:          emp.Name,
		Org:           emp.Org,
		SalaryType:    emp.SalaryType,
		GrossRate:     emp.GrossSalary,
		Year:          year,
		Month:         month,
		EffectiveDays: effectiveDays,
		PresentDays:   tally.PresentDays,
		AbsentDays:    tally.AbsentDays,
		HalfDays:      tally.HalfDays,
		AccrualHours:  tally.HoursWorked,
	}

	switch emp.SalaryType {
	case employee.SalaryTypeMonthly:
		perDay := emp.GrossSalary / float64(daysInMonth)
		perHour := perDay / fullShiftHours
		stmt.ActualSalary = perHour * stmt.AccrualHours
		if stmt.AbsentDays > 0 {
			stmt.ActualSalary -= perDay * float64(stmt.AbsentDays)
		}
	case employee.SalaryTypeDaily:
		stmt.ActualSalary = (emp.GrossSalary / fullShiftHours) * stmt.AccrualHours
	case employee.SalaryTypeHourly:
		stmt.WorkedHours = tally.HoursWorked
		stmt.ActualSalary = emp.GrossSalary * stmt.WorkedHours
	default:
		return Statement{}, salaryerrors.ErrMissingSalaryConfig
	}

	stmt.Advances = advances.SumForMonth(year, month)
	stmt.NetPayable = stmt.ActualSalary - stmt.Advances

	return stmt, nil
}

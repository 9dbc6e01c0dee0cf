package attendance

import (
	"time"

	attendanceerrors "github.com/mrxguptaa/payroll/internal/attendance/errors"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
)

// ValidStatus reports whether s is one of the three recognized marks.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusHalfDay
}

// Day is a single calendar day's mark for one employee.
type Day struct {
	Day         int
	Status      string
	HoursWorked float64
}

// Tally aggregates a day range of one ledger. PresentDays counts PRESENT and
// HALF_DAY marks both; HalfDays counts HALF_DAY alone. Days with no record
// count as absent.
type Tally struct {
	PresentDays int
	AbsentDays  int
	HalfDays    int
	HoursWorked float64
}

// Ledger holds one employee's marks for one calendar month. Days are keyed by
// day-of-month; a missing key means the day was never marked.
type Ledger struct {
	Year  int
	Month time.Month

	days map[int]Day
}

func NewLedger(year int, month time.Month) *Ledger {
	return &Ledger{Year: year, Month: month, days: make(map[int]Day)}
}

// DaysInMonth returns the number of calendar days in the ledger's month.
func (l *Ledger) DaysInMonth() int {
	return time.Date(l.Year, l.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// RecordDay inserts or overwrites a day's mark. Recording the same day twice
// keeps the latest mark.
func (l *Ledger) RecordDay(d Day) error {
	if d.Day < 1 || d.Day > l.DaysInMonth() {
		return attendanceerrors.ErrInvalidDay
	}
	l.days[d.Day] = d
	return nil
}

// Get returns the mark for a day, with ok false when the day was never
// recorded.
func (l *Ledger) Get(day int) (Day, bool) {
	d, ok := l.days[day]
	return d, ok
}

// Tally sweeps days from..to inclusive. Unmarked days count as absent with
// zero hours; hours accumulate for PRESENT and HALF_DAY marks only.
func (l *Ledger) Tally(from, to int) Tally {
	var t Tally
	for day := from; day <= to; day++ {
		d, ok := l.days[day]
		if !ok {
			t.AbsentDays++
			continue
		}
		switch d.Status {
		case StatusPresent:
			t.PresentDays++
			t.HoursWorked += d.HoursWorked
		case StatusHalfDay:
			t.PresentDays++
			t.HalfDays++
			t.HoursWorked += d.HoursWorked
		default:
			t.AbsentDays++
		}
	}
	return t
}

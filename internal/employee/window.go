package employee

import "time"

// Window is the [JoinDate, LeaveDate] interval during which an employee is in
// service. A nil LeaveDate means still active.
type Window struct {
	JoinDate  time.Time
	LeaveDate *time.Time
}

// ActiveOn reports whether the employee was in service on the given calendar
// day. Time-of-day is ignored on both sides.
func (w Window) ActiveOn(day time.Time) bool {
	d := DateOnly(day)
	if d.Before(DateOnly(w.JoinDate)) {
		return false
	}
	if w.LeaveDate != nil && d.After(DateOnly(*w.LeaveDate)) {
		return false
	}
	return true
}

// Intersect overlaps the window with [start, end] and returns the effective
// range. ok is false when the employee was never in service during the range,
// in which case no attendance day may be counted.
func (w Window) Intersect(start, end time.Time) (time.Time, time.Time, bool) {
	effectiveStart := DateOnly(start)
	effectiveEnd := DateOnly(end)

	join := DateOnly(w.JoinDate)
	if join.After(effectiveStart) {
		effectiveStart = join
	}
	if w.LeaveDate != nil {
		leave := DateOnly(*w.LeaveDate)
		if leave.Before(effectiveEnd) {
			effectiveEnd = leave
		}
	}

	if effectiveStart.After(effectiveEnd) {
		return time.Time{}, time.Time{}, false
	}
	return effectiveStart, effectiveEnd, true
}

// DateOnly strips the time component, keeping UTC calendar semantics so month
// boundaries never drift across timezones.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first and last calendar day of a month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

package employee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrxguptaa/payroll/internal/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestWindow_ActiveOn(t *testing.T) {
	w := employee.Window{JoinDate: date(2026, 3, 10), LeaveDate: datePtr(2026, 3, 20)}

	assert.False(t, w.ActiveOn(date(2026, 3, 9)))
	assert.True(t, w.ActiveOn(date(2026, 3, 10)), "join date itself is in service")
	assert.True(t, w.ActiveOn(date(2026, 3, 15)))
	assert.True(t, w.ActiveOn(date(2026, 3, 20)), "leave date itself is in service")
	assert.False(t, w.ActiveOn(date(2026, 3, 21)))
}

func TestWindow_ActiveOn_StillEmployed(t *testing.T) {
	w := employee.Window{JoinDate: date(2024, 1, 1)}

	assert.True(t, w.ActiveOn(date(2030, 12, 31)))
	assert.False(t, w.ActiveOn(date(2023, 12, 31)))
}

func TestWindow_ActiveOn_IgnoresTimeOfDay(t *testing.T) {
	w := employee.Window{JoinDate: date(2026, 3, 10)}

	late := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.True(t, w.ActiveOn(late))
}

func TestWindow_Intersect(t *testing.T) {
	monthStart, monthEnd := employee.MonthBounds(2026, time.March)

	t.Run("window inside month clamps both ends", func(t *testing.T) {
		w := employee.Window{JoinDate: date(2026, 3, 10), LeaveDate: datePtr(2026, 3, 20)}
		start, end, ok := w.Intersect(monthStart, monthEnd)
		assert.True(t, ok)
		assert.Equal(t, date(2026, 3, 10), start)
		assert.Equal(t, date(2026, 3, 20), end)
	})

	t.Run("open window spans the full month", func(t *testing.T) {
		w := employee.Window{JoinDate: date(2025, 1, 1)}
		start, end, ok := w.Intersect(monthStart, monthEnd)
		assert.True(t, ok)
		assert.Equal(t, date(2026, 3, 1), start)
		assert.Equal(t, date(2026, 3, 31), end)
	})

	t.Run("left before the month", func(t *testing.T) {
		w := employee.Window{JoinDate: date(2025, 1, 1), LeaveDate: datePtr(2026, 2, 15)}
		_, _, ok := w.Intersect(monthStart, monthEnd)
		assert.False(t, ok)
	})

	t.Run("joined after the month", func(t *testing.T) {
		w := employee.Window{JoinDate: date(2026, 4, 1)}
		_, _, ok := w.Intersect(monthStart, monthEnd)
		assert.False(t, ok)
	})
}

func TestMonthBounds(t *testing.T) {
	start, end := employee.MonthBounds(2026, time.February)
	assert.Equal(t, date(2026, 2, 1), start)
	assert.Equal(t, date(2026, 2, 28), end)

	start, end = employee.MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, 2, 1), start)
	assert.Equal(t, date(2024, 2, 29), end, "leap year february has 29 days")
}

package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrxguptaa/payroll/internal/attendance"
	attendanceerrors "github.com/mrxguptaa/payroll/internal/attendance/errors"
)

func TestLedger_RecordDay(t *testing.T) {
	l := attendance.NewLedger(2026, time.March)

	assert.NoError(t, l.RecordDay(attendance.Day{Day: 1, Status: attendance.StatusPresent, HoursWorked: 12}))
	assert.NoError(t, l.RecordDay(attendance.Day{Day: 31, Status: attendance.StatusAbsent}))

	t.Run("day zero rejected", func(t *testing.T) {
		err := l.RecordDay(attendance.Day{Day: 0, Status: attendance.StatusPresent})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDay)
	})

	t.Run("day beyond month length rejected", func(t *testing.T) {
		feb := attendance.NewLedger(2026, time.February)
		err := feb.RecordDay(attendance.Day{Day: 29, Status: attendance.StatusPresent})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDay)
	})

	t.Run("leap february accepts day 29", func(t *testing.T) {
		feb := attendance.NewLedger(2024, time.February)
		assert.NoError(t, feb.RecordDay(attendance.Day{Day: 29, Status: attendance.StatusPresent, HoursWorked: 12}))
	})

	t.Run("re-marking a day keeps the latest mark", func(t *testing.T) {
		l := attendance.NewLedger(2026, time.March)
		assert.NoError(t, l.RecordDay(attendance.Day{Day: 5, Status: attendance.StatusPresent, HoursWorked: 12}))
		assert.NoError(t, l.RecordDay(attendance.Day{Day: 5, Status: attendance.StatusHalfDay, HoursWorked: 6}))

		d, ok := l.Get(5)
		assert.True(t, ok)
		assert.Equal(t, attendance.StatusHalfDay, d.Status)
		assert.Equal(t, 6.0, d.HoursWorked)
	})
}

func TestLedger_Get(t *testing.T) {
	l := attendance.NewLedger(2026, time.March)
	assert.NoError(t, l.RecordDay(attendance.Day{Day: 10, Status: attendance.StatusAbsent}))

	d, ok := l.Get(10)
	assert.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, d.Status)

	_, ok = l.Get(11)
	assert.False(t, ok, "unmarked day has no record")
}

func TestLedger_Tally(t *testing.T) {
	l := attendance.NewLedger(2026, time.March)
	assert.NoError(t, l.RecordDay(attendance.Day{Day: 1, Status: attendance.StatusPresent, HoursWorked: 12}))
	assert.NoError(t, l.RecordDay(attendance.Day{Day: 2, Status: attendance.StatusHalfDay, HoursWorked: 6}))
	assert.NoError(t, l.RecordDay(attendance.Day{Day: 3, Status: attendance.StatusAbsent}))

	t.Run("marked range", func(t *testing.T) {
		tally := l.Tally(1, 3)
		assert.Equal(t, 2, tally.PresentDays, "half day counts toward presence")
		assert.Equal(t, 1, tally.HalfDays)
		assert.Equal(t, 1, tally.AbsentDays)
		assert.Equal(t, 18.0, tally.HoursWorked)
	})

	t.Run("unmarked days count as absent with zero hours", func(t *testing.T) {
		tally := l.Tally(1, 5)
		assert.Equal(t, 2, tally.PresentDays)
		assert.Equal(t, 3, tally.AbsentDays)
		assert.Equal(t, 18.0, tally.HoursWorked)
	})

	t.Run("sub-range excludes days outside it", func(t *testing.T) {
		tally := l.Tally(2, 2)
		assert.Equal(t, 1, tally.PresentDays)
		assert.Equal(t, 1, tally.HalfDays)
		assert.Equal(t, 0, tally.AbsentDays)
		assert.Equal(t, 6.0, tally.HoursWorked)
	})

	t.Run("empty ledger is all absent", func(t *testing.T) {
		empty := attendance.NewLedger(2026, time.February)
		tally := empty.Tally(1, empty.DaysInMonth())
		assert.Equal(t, 0, tally.PresentDays)
		assert.Equal(t, 28, tally.AbsentDays)
		assert.Equal(t, 0.0, tally.HoursWorked)
	})

	t.Run("absent hours never accumulate", func(t *testing.T) {
		l := attendance.NewLedger(2026, time.March)
		assert.NoError(t, l.RecordDay(attendance.Day{Day: 1, Status: attendance.StatusAbsent, HoursWorked: 8}))
		tally := l.Tally(1, 1)
		assert.Equal(t, 0.0, tally.HoursWorked)
	})
}

func TestLedger_DaysInMonth(t *testing.T) {
	assert.Equal(t, 31, attendance.NewLedger(2026, time.March).DaysInMonth())
	assert.Equal(t, 30, attendance.NewLedger(2026, time.April).DaysInMonth())
	assert.Equal(t, 28, attendance.NewLedger(2026, time.February).DaysInMonth())
	assert.Equal(t, 29, attendance.NewLedger(2024, time.February).DaysInMonth())
}

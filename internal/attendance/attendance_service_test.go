package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mrxguptaa/payroll/internal/attendance"
	attendanceerrors "github.com/mrxguptaa/payroll/internal/attendance/errors"
	"github.com/mrxguptaa/payroll/internal/employee"
	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
)

type fakeAttendanceRepository struct {
	withTxFn        func(tx *sql.Tx) attendance.Repository
	upsertRecordsFn func(ctx context.Context, records []attendance.AttendanceRecord) error
	findByDateFn    func(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]attendance.AttendanceRecord, error)
	findForRangeFn  func(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]attendance.AttendanceRecord, error)
	getLedgerFn     func(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*attendance.Ledger, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) UpsertRecords(ctx context.Context, records []attendance.AttendanceRecord) error {
	if f.upsertRecordsFn != nil {
		return f.upsertRecordsFn(ctx, records)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByDate(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]attendance.AttendanceRecord, error) {
	if f.findByDateFn != nil {
		return f.findByDateFn(ctx, employeeIDs, date)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindForRange(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	if f.findForRangeFn != nil {
		return f.findForRangeFn(ctx, employeeIDs, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*attendance.Ledger, error) {
	if f.getLedgerFn != nil {
		return f.getLedgerFn(ctx, employeeID, year, month)
	}
	return attendance.NewLedger(year, month), nil
}

type fakeEmployeeDirectory struct {
	employee.Repository

	findActiveForMonthFn func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error)
}

func (f *fakeEmployeeDirectory) FindActiveForMonth(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
	return f.findActiveForMonthFn(ctx, org, monthStart, monthEnd)
}

type attendanceServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *fakeAttendanceRepository
	employees *fakeEmployeeDirectory
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	employees := &fakeEmployeeDirectory{}
	svc := attendance.NewService(db, repo, employees)

	return &attendanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, employees: employees}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeWorkers(ids ...uuid.UUID) []employee.Employee {
	names := []string{"Anil", "Bhim", "Chand", "Dev"}
	workers := make([]employee.Employee, len(ids))
	for i, id := range ids {
		workers[i] = employee.Employee{
			ID:         id,
			Org:        "Mittal Spinners",
			EmpCode:    "10" + string(rune('1'+i)),
			Name:       names[i%len(names)],
			EmpType:    employee.EmpTypeLabor,
			SalaryType: employee.SalaryTypeMonthly,
			JoinDate:   date(2025, 1, 1),
		}
	}
	return workers
}

func TestAttendanceService_MarkForDate(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	t.Run("upserts marks for active employees", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
			assert.Equal(t, "Mittal Spinners", org)
			assert.Equal(t, date(2026, 3, 15), monthStart)
			assert.Equal(t, date(2026, 3, 15), monthEnd)
			return activeWorkers(workerID), nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.upsertRecordsFn = func(ctx context.Context, records []attendance.AttendanceRecord) error {
			assert.Len(t, records, 1)
			assert.Equal(t, workerID, records[0].EmployeeID)
			assert.Equal(t, date(2026, 3, 15), records[0].WorkDate)
			assert.Equal(t, attendance.StatusHalfDay, records[0].Status)
			assert.Equal(t, 6.0, records[0].HoursWorked)
			return nil
		}

		resp, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "2026-03-15",
			Entries: []attendance.MarkEntryRequest{
				{EmployeeID: workerID.String(), Status: attendance.StatusHalfDay, HoursWorked: 6},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Marked)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("present with zero hours defaults to a full shift", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
			return activeWorkers(workerID), nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.upsertRecordsFn = func(ctx context.Context, records []attendance.AttendanceRecord) error {
			assert.Equal(t, float64(attendance.DefaultFullDayHours), records[0].HoursWorked)
			return nil
		}

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "2026-03-15",
			Entries: []attendance.MarkEntryRequest{
				{EmployeeID: workerID.String(), Status: attendance.StatusPresent},
			},
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("absent forces zero hours", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
			return activeWorkers(workerID), nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.upsertRecordsFn = func(ctx context.Context, records []attendance.AttendanceRecord) error {
			assert.Equal(t, 0.0, records[0].HoursWorked)
			return nil
		}

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "2026-03-15",
			Entries: []attendance.MarkEntryRequest{
				{EmployeeID: workerID.String(), Status: attendance.StatusAbsent, HoursWorked: 8},
			},
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee outside window is rejected", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
			return nil, nil
		}

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "2026-03-15",
			Entries: []attendance.MarkEntryRequest{
				{EmployeeID: workerID.String(), Status: attendance.StatusPresent, HoursWorked: 12},
			},
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeInactive)
	})

	t.Run("unknown org", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Acme Mills",
			Date: "2026-03-15",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrUnknownOrg)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "15-03-2026",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})

	t.Run("hours out of range", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
			return activeWorkers(workerID), nil
		}

		_, err := deps.service.MarkForDate(ctx, attendance.MarkAttendanceRequest{
			Org:  "Mittal Spinners",
			Date: "2026-03-15",
			Entries: []attendance.MarkEntryRequest{
				{EmployeeID: workerID.String(), Status: attendance.StatusPresent, HoursWorked: 25},
			},
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidHours)
	})
}

func TestAttendanceService_DaySheet(t *testing.T) {
	ctx := context.Background()
	markedID := uuid.New()
	unmarkedID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
		return activeWorkers(markedID, unmarkedID), nil
	}
	deps.repo.findByDateFn = func(ctx context.Context, employeeIDs []uuid.UUID, d time.Time) ([]attendance.AttendanceRecord, error) {
		assert.Len(t, employeeIDs, 2)
		return []attendance.AttendanceRecord{
			{EmployeeID: markedID, WorkDate: d, Status: attendance.StatusAbsent, HoursWorked: 0},
		}, nil
	}

	resp, err := deps.service.DaySheet(ctx, "Mittal Spinners", "2026-03-15")

	assert.NoError(t, err)
	assert.Len(t, resp.Entries, 2)

	assert.True(t, resp.Entries[0].Marked)
	assert.Equal(t, attendance.StatusAbsent, resp.Entries[0].Status)

	assert.False(t, resp.Entries[1].Marked)
	assert.Equal(t, attendance.StatusPresent, resp.Entries[1].Status, "unmarked rows prefill present")
	assert.Equal(t, float64(attendance.DefaultFullDayHours), resp.Entries[1].HoursWorked)
}

func TestAttendanceService_AbsentList(t *testing.T) {
	ctx := context.Background()
	absentID := uuid.New()
	presentID := uuid.New()
	unmarkedID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
		return activeWorkers(absentID, presentID, unmarkedID), nil
	}
	deps.repo.findByDateFn = func(ctx context.Context, employeeIDs []uuid.UUID, d time.Time) ([]attendance.AttendanceRecord, error) {
		return []attendance.AttendanceRecord{
			{EmployeeID: absentID, WorkDate: d, Status: attendance.StatusAbsent},
			{EmployeeID: presentID, WorkDate: d, Status: attendance.StatusPresent, HoursWorked: 12},
		}, nil
	}

	resp, err := deps.service.AbsentList(ctx, "Mittal Spinners", "2026-03-15")

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Present, "unmarked employees count as present")
	if assert.Len(t, resp.Absent, 1) {
		assert.Equal(t, absentID.String(), resp.Absent[0].EmployeeID)
	}
}

func TestAttendanceService_MonthlyMatrix(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	deps.employees.findActiveForMonthFn = func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
		assert.Equal(t, date(2026, 2, 1), monthStart)
		assert.Equal(t, date(2026, 2, 28), monthEnd)
		return activeWorkers(workerID), nil
	}
	deps.repo.findForRangeFn = func(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]attendance.AttendanceRecord, error) {
		return []attendance.AttendanceRecord{
			{EmployeeID: workerID, WorkDate: date(2026, 2, 3), Status: attendance.StatusPresent, HoursWorked: 12},
			{EmployeeID: workerID, WorkDate: date(2026, 2, 4), Status: attendance.StatusHalfDay, HoursWorked: 6},
		}, nil
	}

	resp, err := deps.service.MonthlyMatrix(ctx, "Mittal Spinners", 2026, 2)

	assert.NoError(t, err)
	assert.Equal(t, 28, resp.DaysInMonth)
	if assert.Len(t, resp.Rows, 1) {
		row := resp.Rows[0]
		assert.Len(t, row.Days, 28)
		assert.Equal(t, attendance.StatusPresent, row.Days[2].Status)
		assert.Equal(t, attendance.StatusHalfDay, row.Days[3].Status)
		assert.Empty(t, row.Days[0].Status, "unmarked cells stay empty")
	}

	t.Run("invalid month aborts", func(t *testing.T) {
		_, err := deps.service.MonthlyMatrix(ctx, "Mittal Spinners", 2026, 13)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)
	})
}

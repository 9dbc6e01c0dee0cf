package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "github.com/mrxguptaa/payroll/internal/attendance/errors"
	"github.com/mrxguptaa/payroll/internal/employee"
	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
	"github.com/mrxguptaa/payroll/internal/shared/contextutil"
)

// DefaultFullDayHours is the shift length prefilled for an unmarked employee
// on the day sheet. The mills run a single 12-hour shift.
const DefaultFullDayHours = 12

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	MarkForDate(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
	DaySheet(ctx context.Context, org, date string) (DaySheetResponse, error)
	MonthlyMatrix(ctx context.Context, org string, year, month int) (MonthlyMatrixResponse, error)
	AbsentList(ctx context.Context, org, date string) (AbsentListResponse, error)
	GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*Ledger, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) MarkForDate(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("org", req.Org),
		zap.String("date", req.Date),
		zap.Int("entries", len(req.Entries)),
	)

	if !employee.KnownOrg(req.Org) {
		return MarkAttendanceResponse{}, employeeerrors.ErrUnknownOrg
	}
	workDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return MarkAttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	workDate = employee.DateOnly(workDate)

	active, err := s.activeOnDate(ctx, req.Org, workDate)
	if err != nil {
		s.logger.Error("mark attendance load active employees failed", zap.Error(err))
		return MarkAttendanceResponse{}, err
	}
	activeByID := make(map[string]employee.Employee, len(active))
	for _, e := range active {
		activeByID[e.ID.String()] = e
	}

	records := make([]AttendanceRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if !ValidStatus(entry.Status) {
			return MarkAttendanceResponse{}, attendanceerrors.ErrInvalidStatus
		}
		if entry.HoursWorked < 0 || entry.HoursWorked > 24 {
			return MarkAttendanceResponse{}, attendanceerrors.ErrInvalidHours
		}
		empl, ok := activeByID[entry.EmployeeID]
		if !ok {
			s.logger.Warn("mark attendance employee not in service",
				zap.String("request_id", rid),
				zap.String("employee_id", entry.EmployeeID),
				zap.String("date", req.Date),
			)
			return MarkAttendanceResponse{}, attendanceerrors.ErrEmployeeInactive
		}

		hours := entry.HoursWorked
		switch entry.Status {
		case StatusAbsent:
			hours = 0
		case StatusPresent:
			if hours == 0 {
				hours = DefaultFullDayHours
			}
		}

		records = append(records, AttendanceRecord{
			ID:          uuid.New(),
			EmployeeID:  empl.ID,
			WorkDate:    workDate,
			Status:      entry.Status,
			HoursWorked: hours,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return MarkAttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpsertRecords(ctx, records); err != nil {
		s.logger.Error("mark attendance persist failed", zap.Error(err))
		return MarkAttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark attendance commit failed", zap.String("request_id", rid), zap.Error(err))
		return MarkAttendanceResponse{}, err
	}

	s.logger.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("org", req.Org),
		zap.String("date", req.Date),
		zap.Int("marked", len(records)),
	)

	return MarkAttendanceResponse{Org: req.Org, Date: req.Date, Marked: len(records)}, nil
}

func (s *service) DaySheet(ctx context.Context, org, date string) (DaySheetResponse, error) {
	s.logger.Debug("day sheet requested", zap.String("org", org), zap.String("date", date))

	if !employee.KnownOrg(org) {
		return DaySheetResponse{}, employeeerrors.ErrUnknownOrg
	}
	workDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DaySheetResponse{}, attendanceerrors.ErrInvalidDate
	}
	workDate = employee.DateOnly(workDate)

	active, err := s.activeOnDate(ctx, org, workDate)
	if err != nil {
		s.logger.Error("day sheet load active employees failed", zap.Error(err))
		return DaySheetResponse{}, err
	}

	ids := make([]uuid.UUID, len(active))
	for i, e := range active {
		ids[i] = e.ID
	}
	records, err := s.repo.FindByDate(ctx, ids, workDate)
	if err != nil {
		s.logger.Error("day sheet load records failed", zap.Error(err))
		return DaySheetResponse{}, err
	}
	byEmployee := make(map[uuid.UUID]AttendanceRecord, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	entries := make([]DaySheetEntry, len(active))
	for i, e := range active {
		entry := DaySheetEntry{
			EmployeeID:  e.ID.String(),
			EmpCode:     e.EmpCode,
			Name:        e.Name,
			Status:      StatusPresent,
			HoursWorked: DefaultFullDayHours,
		}
		if rec, ok := byEmployee[e.ID]; ok {
			entry.Status = rec.Status
			entry.HoursWorked = rec.HoursWorked
			entry.Marked = true
		}
		entries[i] = entry
	}

	return DaySheetResponse{Org: org, Date: date, Entries: entries}, nil
}

func (s *service) MonthlyMatrix(ctx context.Context, org string, year, month int) (MonthlyMatrixResponse, error) {
	s.logger.Debug("monthly matrix requested",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	if !employee.KnownOrg(org) {
		return MonthlyMatrixResponse{}, employeeerrors.ErrUnknownOrg
	}
	if month < 1 || month > 12 || year < 2000 {
		return MonthlyMatrixResponse{}, attendanceerrors.ErrInvalidMonth
	}

	monthStart, monthEnd := employee.MonthBounds(year, time.Month(month))
	active, err := s.employees.FindActiveForMonth(ctx, org, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("monthly matrix load employees failed", zap.Error(err))
		return MonthlyMatrixResponse{}, err
	}

	ids := make([]uuid.UUID, len(active))
	for i, e := range active {
		ids[i] = e.ID
	}
	records, err := s.repo.FindForRange(ctx, ids, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("monthly matrix load records failed", zap.Error(err))
		return MonthlyMatrixResponse{}, err
	}
	byEmployee := make(map[uuid.UUID][]AttendanceRecord)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	daysInMonth := monthEnd.Day()
	rows := make([]MatrixRow, len(active))
	for i, e := range active {
		cells := make([]DayCell, daysInMonth)
		for d := 1; d <= daysInMonth; d++ {
			cells[d-1] = DayCell{Day: d}
		}
		for _, rec := range byEmployee[e.ID] {
			d := rec.WorkDate.Day()
			cells[d-1] = DayCell{Day: d, Status: rec.Status, HoursWorked: rec.HoursWorked}
		}
		rows[i] = MatrixRow{
			EmployeeID: e.ID.String(),
			EmpCode:    e.EmpCode,
			Name:       e.Name,
			Days:       cells,
		}
	}

	return MonthlyMatrixResponse{
		Org:         org,
		Year:        year,
		Month:       month,
		DaysInMonth: daysInMonth,
		Rows:        rows,
	}, nil
}

func (s *service) AbsentList(ctx context.Context, org, date string) (AbsentListResponse, error) {
	sheet, err := s.DaySheet(ctx, org, date)
	if err != nil {
		return AbsentListResponse{}, err
	}

	resp := AbsentListResponse{Org: org, Date: date, Total: len(sheet.Entries)}
	resp.Absent = make([]AbsentEntry, 0)
	for _, entry := range sheet.Entries {
		// Unmarked employees are treated as present on the sheet; only an
		// explicit ABSENT mark lists an employee here.
		if entry.Marked && entry.Status == StatusAbsent {
			resp.Absent = append(resp.Absent, AbsentEntry{
				EmployeeID: entry.EmployeeID,
				EmpCode:    entry.EmpCode,
				Name:       entry.Name,
			})
		} else {
			resp.Present++
		}
	}

	return resp, nil
}

func (s *service) GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*Ledger, error) {
	return s.repo.GetLedger(ctx, employeeID, year, month)
}

func (s *service) activeOnDate(ctx context.Context, org string, date time.Time) ([]employee.Employee, error) {
	return s.employees.FindActiveForMonth(ctx, org, date, date)
}

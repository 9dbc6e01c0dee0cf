package advance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	advanceerrors "github.com/mrxguptaa/payroll/internal/advance/errors"
	"github.com/mrxguptaa/payroll/internal/employee"
	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
	"github.com/mrxguptaa/payroll/internal/shared/contextutil"
)

//go:generate mockgen -source=advance_service.go -destination=mock/advance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	GetForEmployee(ctx context.Context, employeeID string) (EmployeeAdvancesResponse, error)
	GetForMonth(ctx context.Context, org string, year, month int) (MonthAdvancesResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("advance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("advance.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create advance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("amount", req.Amount),
	)

	if req.Amount <= 0 {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAmount
	}
	if !ValidMode(req.Mode) {
		return AdvanceResponse{}, advanceerrors.ErrInvalidMode
	}
	advDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidDate
	}
	advDate = employee.DateOnly(advDate)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create advance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AdvanceResponse{}, err
	}
	defer tx.Rollback()

	empl, err := s.employees.WithTx(tx).FindByID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create advance fetch employee failed", zap.Error(err))
		return AdvanceResponse{}, mapEmployeeError(err)
	}
	if advDate.Before(employee.DateOnly(empl.JoinDate)) {
		return AdvanceResponse{}, advanceerrors.ErrBeforeJoinDate
	}
	if empl.LeaveDate != nil && advDate.After(employee.DateOnly(*empl.LeaveDate)) {
		return AdvanceResponse{}, advanceerrors.ErrEmployeeLeft
	}

	adv := &Advance{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		Date:       advDate,
		Amount:     req.Amount,
		Mode:       req.Mode,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, adv); err != nil {
		s.logger.Error("create advance persist failed", zap.Error(err))
		return AdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create advance commit failed", zap.String("request_id", rid), zap.Error(err))
		return AdvanceResponse{}, err
	}

	s.logger.Info("create advance success",
		zap.String("request_id", rid),
		zap.String("advance_id", adv.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.Float64("amount", adv.Amount),
	)

	return mapToResponse(*adv), nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string) (EmployeeAdvancesResponse, error) {
	s.logger.Debug("get employee advances requested", zap.String("employee_id", employeeID))

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeAdvancesResponse{}, mapEmployeeError(err)
	}

	advances, err := s.repo.FindByEmployee(ctx, empl.ID)
	if err != nil {
		s.logger.Error("get employee advances failed", zap.Error(err))
		return EmployeeAdvancesResponse{}, err
	}

	resp := EmployeeAdvancesResponse{
		EmployeeID: employeeID,
		Advances:   make([]AdvanceResponse, len(advances)),
	}
	for i, adv := range advances {
		resp.Advances[i] = mapToResponse(adv)
		resp.Total += adv.Amount
	}
	return resp, nil
}

func (s *service) GetForMonth(ctx context.Context, org string, year, month int) (MonthAdvancesResponse, error) {
	s.logger.Debug("get month advances requested",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
	)

	if !employee.KnownOrg(org) {
		return MonthAdvancesResponse{}, employeeerrors.ErrUnknownOrg
	}

	monthStart, monthEnd := employee.MonthBounds(year, time.Month(month))
	active, err := s.employees.FindActiveForMonth(ctx, org, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("get month advances load employees failed", zap.Error(err))
		return MonthAdvancesResponse{}, err
	}

	ids := make([]uuid.UUID, len(active))
	for i, e := range active {
		ids[i] = e.ID
	}
	advances, err := s.repo.FindForMonth(ctx, ids, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("get month advances load failed", zap.Error(err))
		return MonthAdvancesResponse{}, err
	}
	byEmployee := make(map[uuid.UUID][]Advance)
	for _, adv := range advances {
		byEmployee[adv.EmployeeID] = append(byEmployee[adv.EmployeeID], adv)
	}

	resp := MonthAdvancesResponse{Org: org, Year: year, Month: month}
	resp.Rows = make([]MonthAdvanceRow, 0, len(active))
	for _, e := range active {
		rows := byEmployee[e.ID]
		if len(rows) == 0 {
			continue
		}
		row := MonthAdvanceRow{
			EmployeeID: e.ID.String(),
			EmpCode:    e.EmpCode,
			Name:       e.Name,
			Advances:   make([]AdvanceResponse, len(rows)),
		}
		for i, adv := range rows {
			row.Advances[i] = mapToResponse(adv)
			row.Total += adv.Amount
		}
		resp.Rows = append(resp.Rows, row)
		resp.Total += row.Total
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete advance requested", zap.String("advance_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete advance begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return advanceerrors.ErrAdvanceNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete advance failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete advance commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete advance success", zap.String("advance_id", id))
	return nil
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func mapToResponse(adv Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:         adv.ID.String(),
		EmployeeID: adv.EmployeeID.String(),
		Date:       adv.Date.Format("2006-01-02"),
		Amount:     adv.Amount,
		Mode:       adv.Mode,
	}
}

package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
	"github.com/mrxguptaa/payroll/internal/shared/contextutil"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(org string) string {
	return EmployeeOptionsKeyPrefix + org
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, org string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, org string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	MarkLeft(ctx context.Context, id string, req MarkLeftRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ListOrgs() []string
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("org", req.Org),
		zap.String("emp_type", req.EmpType),
	)

	if !KnownOrg(req.Org) {
		s.logger.Warn("create employee unknown org",
			zap.String("request_id", rid),
			zap.String("org", req.Org),
		)
		return EmployeeResponse{}, employeeerrors.ErrUnknownOrg
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		s.logger.Warn("create employee invalid join_date",
			zap.String("join_date", req.JoinDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	var leaveDate *time.Time
	if req.LeaveDate != nil && *req.LeaveDate != "" {
		ld, err := time.Parse("2006-01-02", *req.LeaveDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		if ld.Before(joinDate) {
			return EmployeeResponse{}, employeeerrors.ErrLeaveBeforeJoin
		}
		leaveDate = &ld
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.EmpCode == "" {
		records, err := qtx.FindCodeRecords(ctx, req.Org, req.EmpType)
		if err != nil {
			s.logger.Error("create employee load code records failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		code, err := AllocateEmpCode(req.Org, req.EmpType, joinDate, records)
		if err != nil {
			s.logger.Warn("create employee code allocation failed",
				zap.String("org", req.Org),
				zap.String("emp_type", req.EmpType),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
		req.EmpCode = code
	}

	empl := &Employee{
		ID:          uuid.New(),
		Org:         req.Org,
		EmpCode:     req.EmpCode,
		Name:        req.Name,
		Mobile:      req.Mobile,
		EmpType:     req.EmpType,
		SalaryType:  req.SalaryType,
		GrossSalary: req.GrossSalary,
		JoinDate:    DateOnly(joinDate),
		LeaveDate:   leaveDate,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, req.Org)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("emp_code", empl.EmpCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, org string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("org", org))
	employees, err := s.repo.FindAllByOrg(ctx, org)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, org string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(org)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent misses into one query while the sheet UI loads
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAllByOrg(ctx, org)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		s.logger.Warn("update employee invalid join_date",
			zap.String("join_date", req.JoinDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	var leaveDate *time.Time
	if req.LeaveDate != nil && *req.LeaveDate != "" {
		ld, err := time.Parse("2006-01-02", *req.LeaveDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
		}
		if ld.Before(joinDate) {
			return EmployeeResponse{}, employeeerrors.ErrLeaveBeforeJoin
		}
		leaveDate = &ld
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Mobile = req.Mobile
	empl.EmpType = req.EmpType
	empl.SalaryType = req.SalaryType
	empl.GrossSalary = req.GrossSalary
	empl.JoinDate = DateOnly(joinDate)
	empl.LeaveDate = leaveDate

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, empl.Org)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) MarkLeft(
	ctx context.Context,
	id string,
	req MarkLeftRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("mark employee left requested",
		zap.String("employee_id", id),
		zap.String("leave_date", req.LeaveDate),
	)

	leaveDate, err := time.Parse("2006-01-02", req.LeaveDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark employee left begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("mark employee left fetch failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl.LeaveDate != nil {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyLeft
	}
	if leaveDate.Before(empl.JoinDate) {
		return EmployeeResponse{}, employeeerrors.ErrLeaveBeforeJoin
	}

	ld := DateOnly(leaveDate)
	empl.LeaveDate = &ld

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("mark employee left persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark employee left commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, empl.Org)

	s.logger.Info("mark employee left success",
		zap.String("employee_id", id),
		zap.String("leave_date", req.LeaveDate),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee fetch failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx, empl.Org)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) ListOrgs() []string {
	return Orgs()
}

func (s *service) invalidateOptionsCache(ctx context.Context, org string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(org)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmpCodeTaken
	}
	return err
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID.String(),
		Org:         empl.Org,
		EmpCode:     empl.EmpCode,
		Name:        empl.Name,
		Mobile:      empl.Mobile,
		EmpType:     empl.EmpType,
		SalaryType:  empl.SalaryType,
		GrossSalary: empl.GrossSalary,
		JoinDate:    empl.JoinDate.Format("2006-01-02"),
	}
	if empl.LeaveDate != nil {
		ld := empl.LeaveDate.Format("2006-01-02")
		resp.LeaveDate = &ld
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

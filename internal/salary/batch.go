package salary

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrxguptaa/payroll/internal/advance"
	"github.com/mrxguptaa/payroll/internal/attendance"
	"github.com/mrxguptaa/payroll/internal/employee"
	salaryerrors "github.com/mrxguptaa/payroll/internal/salary/errors"
	"github.com/mrxguptaa/payroll/internal/shared/apperror"
)

// EmployeeDirectory lists the employees whose employment window intersects
// the target month, in stable order.
type EmployeeDirectory interface {
	ActiveForMonth(ctx context.Context, org string, year int, month time.Month) ([]employee.Employee, error)
}

// AttendanceStore loads one employee's attendance month. A month with no
// records yields an empty ledger, never an error.
type AttendanceStore interface {
	GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*attendance.Ledger, error)
}

// AdvanceStore loads one employee's full advance history.
type AdvanceStore interface {
	GetLedger(ctx context.Context, employeeID uuid.UUID) (*advance.Ledger, error)
}

// Failure is one employee the batch could not compute. The rest of the batch
// is unaffected.
type Failure struct {
	EmployeeID string
	EmpCode    string
	Name       string
	Reason     string
}

// BatchResult carries the per-employee outcomes of one run, both lists in
// the directory's employee order.
type BatchResult struct {
	Org           string
	Year          int
	Month         time.Month
	EffectiveDays int
	Statements    []Statement
	Failures      []Failure
}

const defaultBatchConcurrency = 8

// Runner computes a whole org's salary sheet by fanning the per-employee
// computations out over a bounded worker group. Each employee either yields
// a statement or a failure record; one employee's failure never aborts the
// batch.
type Runner struct {
	directory   EmployeeDirectory
	attendance  AttendanceStore
	advances    AdvanceStore
	concurrency int
	now         func() time.Time
	logger      *zap.Logger
}

func NewRunner(
	directory EmployeeDirectory,
	attendanceStore AttendanceStore,
	advanceStore AdvanceStore,
	logger ...*zap.Logger,
) *Runner {
	l := zap.L().Named("salary.runner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.runner")
	}
	return &Runner{
		directory:   directory,
		attendance:  attendanceStore,
		advances:    advanceStore,
		concurrency: defaultBatchConcurrency,
		now:         time.Now,
		logger:      l,
	}
}

// WithNow overrides the clock, for deterministic current-month truncation in
// tests.
func (r *Runner) WithNow(now func() time.Time) *Runner {
	r.now = now
	return r
}

func (r *Runner) Run(ctx context.Context, org string, year, month int) (BatchResult, error) {
	if month < 1 || month > 12 || year < 2000 {
		return BatchResult{}, salaryerrors.ErrInvalidPeriod
	}
	m := time.Month(month)

	employees, err := r.directory.ActiveForMonth(ctx, org, year, m)
	if err != nil {
		r.logger.Error("batch load employees failed",
			zap.String("org", org),
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
		return BatchResult{}, err
	}

	today := r.now().UTC()
	result := BatchResult{
		Org:           org,
		Year:          year,
		Month:         m,
		EffectiveDays: effectiveDaysFor(year, m, today),
		Statements:    make([]Statement, 0, len(employees)),
		Failures:      make([]Failure, 0),
	}
	if len(employees) == 0 {
		return result, nil
	}

	type outcome struct {
		stmt    Statement
		failure *Failure
	}
	outcomes := make([]outcome, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			stmt, err := r.computeOne(gctx, emp, year, m, today)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				outcomes[i] = outcome{failure: &Failure{
					EmployeeID: emp.ID.String(),
					EmpCode:    emp.EmpCode,
					Name:       emp.Name,
					Reason:     failureReason(err),
				}}
				return nil
			}
			outcomes[i] = outcome{stmt: stmt}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}

	for _, o := range outcomes {
		if o.failure != nil {
			result.Failures = append(result.Failures, *o.failure)
			continue
		}
		result.Statements = append(result.Statements, o.stmt)
	}

	r.logger.Info("salary batch computed",
		zap.String("org", org),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("statements", len(result.Statements)),
		zap.Int("failures", len(result.Failures)),
	)

	return result, nil
}

func (r *Runner) computeOne(
	ctx context.Context,
	emp employee.Employee,
	year int,
	month time.Month,
	today time.Time,
) (Statement, error) {
	ledger, err := r.attendance.GetLedger(ctx, emp.ID, year, month)
	if err != nil {
		r.logger.Warn("batch attendance fetch failed",
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
		return Statement{}, err
	}

	advLedger, err := r.advances.GetLedger(ctx, emp.ID)
	if err != nil {
		r.logger.Warn("batch advance fetch failed",
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
		return Statement{}, err
	}

	return Compute(emp, ledger, advLedger, year, month, today)
}

func effectiveDaysFor(year int, month time.Month, today time.Time) int {
	_, monthEnd := employee.MonthBounds(year, month)
	if year == today.Year() && month == today.Month() {
		return today.Day()
	}
	return monthEnd.Day()
}

func failureReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/mrxguptaa/payroll/internal/employee"
	employeeerrors "github.com/mrxguptaa/payroll/internal/employee/errors"
)

type fakeEmployeeRepository struct {
	withTxFn             func(tx *sql.Tx) employee.Repository
	createFn             func(ctx context.Context, empl *employee.Employee) error
	findAllByOrgFn       func(ctx context.Context, org string) ([]employee.Employee, error)
	findByIDFn           func(ctx context.Context, id string) (*employee.Employee, error)
	findByOrgAndCodeFn   func(ctx context.Context, org, empCode string) (*employee.Employee, error)
	findActiveForMonthFn func(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error)
	findCodeRecordsFn    func(ctx context.Context, org, empType string) ([]employee.CodeRecord, error)
	updateFn             func(ctx context.Context, empl *employee.Employee) error
	deleteFn             func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByOrg(ctx context.Context, org string) ([]employee.Employee, error) {
	if f.findAllByOrgFn != nil {
		return f.findAllByOrgFn(ctx, org)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByOrgAndCode(ctx context.Context, org, empCode string) (*employee.Employee, error) {
	if f.findByOrgAndCodeFn != nil {
		return f.findByOrgAndCodeFn(ctx, org, empCode)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindActiveForMonth(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]employee.Employee, error) {
	if f.findActiveForMonthFn != nil {
		return f.findActiveForMonthFn(ctx, org, monthStart, monthEnd)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindCodeRecords(ctx context.Context, org, empType string) ([]employee.CodeRecord, error) {
	if f.findCodeRecordsFn != nil {
		return f.findCodeRecordsFn(ctx, org, empType)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo, nil)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates a code when none given", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findCodeRecordsFn = func(ctx context.Context, org, empType string) ([]employee.CodeRecord, error) {
			assert.Equal(t, "Mittal Spinners", org)
			assert.Equal(t, employee.EmpTypeLabor, empType)
			return []employee.CodeRecord{
				{EmpCode: "101", JoinDate: date(2024, 1, 1)},
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "102", empl.EmpCode)
			assert.Equal(t, date(2026, 3, 1), empl.JoinDate)
			return nil
		}

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:        "Ram Kumar",
			Org:         "Mittal Spinners",
			EmpType:     employee.EmpTypeLabor,
			SalaryType:  employee.SalaryTypeMonthly,
			GrossSalary: 18000,
			JoinDate:    "2026-03-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "102", resp.EmpCode)
		assert.Equal(t, "2026-03-01", resp.JoinDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps an explicit code", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findCodeRecordsFn = func(ctx context.Context, org, empType string) ([]employee.CodeRecord, error) {
			t.Fatal("allocator must not run when a code is supplied")
			return nil, nil
		}
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "JDC-7", empl.EmpCode)
			return nil
		}

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:        "Sita Devi",
			Org:         "Jai Durga Cottex",
			EmpType:     employee.EmpTypeStaff,
			SalaryType:  employee.SalaryTypeHourly,
			GrossSalary: 55,
			JoinDate:    "2026-01-15",
			EmpCode:     "JDC-7",
		})

		assert.NoError(t, err)
		assert.Equal(t, "JDC-7", resp.EmpCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown org is rejected before any tx", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:       "X",
			Org:        "Acme Mills",
			EmpType:    employee.EmpTypeStaff,
			SalaryType: employee.SalaryTypeMonthly,
			JoinDate:   "2026-03-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrUnknownOrg)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bad join date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:       "X",
			Org:        "Mittal Spinners",
			EmpType:    employee.EmpTypeStaff,
			SalaryType: employee.SalaryTypeMonthly,
			JoinDate:   "01-03-2026",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})

	t.Run("leave before join", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		leave := "2026-02-01"
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:       "X",
			Org:        "Mittal Spinners",
			EmpType:    employee.EmpTypeStaff,
			SalaryType: employee.SalaryTypeMonthly,
			JoinDate:   "2026-03-01",
			LeaveDate:  &leave,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrLeaveBeforeJoin)
	})
}

func TestEmployeeService_MarkLeft(t *testing.T) {
	ctx := context.Background()
	id := "2f0a7c1e-5f34-4c7e-9a14-0d6f4d3f8a21"

	t.Run("sets the leave date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
			assert.Equal(t, id, got)
			return &employee.Employee{Org: "Mittal Spinners", JoinDate: date(2025, 1, 1)}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			if assert.NotNil(t, empl.LeaveDate) {
				assert.Equal(t, date(2026, 3, 31), *empl.LeaveDate)
			}
			return nil
		}

		resp, err := deps.service.MarkLeft(ctx, id, employee.MarkLeftRequest{LeaveDate: "2026-03-31"})

		assert.NoError(t, err)
		if assert.NotNil(t, resp.LeaveDate) {
			assert.Equal(t, "2026-03-31", *resp.LeaveDate)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already left", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{JoinDate: date(2025, 1, 1), LeaveDate: datePtr(2025, 12, 31)}, nil
		}

		_, err := deps.service.MarkLeft(ctx, id, employee.MarkLeftRequest{LeaveDate: "2026-03-31"})

		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyLeft)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("leave before join", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
			return &employee.Employee{JoinDate: date(2026, 6, 1)}, nil
		}

		_, err := deps.service.MarkLeft(ctx, id, employee.MarkLeftRequest{LeaveDate: "2026-03-31"})

		assert.ErrorIs(t, err, employeeerrors.ErrLeaveBeforeJoin)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllByOrgFn = func(ctx context.Context, org string) ([]employee.Employee, error) {
		assert.Equal(t, "HRM Spinners", org)
		return []employee.Employee{
			{Org: org, EmpCode: "301", Name: "Anil", EmpType: employee.EmpTypeStaff, SalaryType: employee.SalaryTypeMonthly, GrossSalary: 30000, JoinDate: date(2025, 6, 1)},
			{Org: org, EmpCode: "401", Name: "Bhim", EmpType: employee.EmpTypeLabor, SalaryType: employee.SalaryTypeHourly, GrossSalary: 60, JoinDate: date(2025, 8, 1)},
		}, nil
	}

	resp, err := deps.service.GetAll(ctx, "HRM Spinners")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "301", resp[0].EmpCode)
	assert.Equal(t, "2025-08-01", resp[1].JoinDate)
}

package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByOrg(ctx context.Context, org string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByOrgAndCode(ctx context.Context, org, empCode string) (*Employee, error)
	FindActiveForMonth(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]Employee, error)
	FindCodeRecords(ctx context.Context, org, empType string) ([]CodeRecord, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAllByOrg(ctx context.Context, org string) ([]Employee, error) {
	var employees []Employee
	q := r.db.WithContext(ctx).Order("name ASC")
	if org != "" {
		q = q.Where("org = ?", org)
	}
	err := q.Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByOrgAndCode(ctx context.Context, org, empCode string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("org = ?", org).
		First(&empl, "emp_code = ?", empCode).Error
	return &empl, err
}

// FindActiveForMonth returns employees whose employment window intersects the
// month, in stable name order. This backs the batch runner's directory.
func (r *repository) FindActiveForMonth(ctx context.Context, org string, monthStart, monthEnd time.Time) ([]Employee, error) {
	var employees []Employee
	q := r.db.WithContext(ctx).
		Where("join_date <= ?", monthEnd).
		Where("leave_date IS NULL OR leave_date >= ?", monthStart).
		Order("name ASC")
	if org != "" {
		q = q.Where("org = ?", org)
	}
	err := q.Find(&employees).Error
	return employees, err
}

func (r *repository) FindCodeRecords(ctx context.Context, org, empType string) ([]CodeRecord, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Unscoped(). // codes of soft-deleted employees stay reserved
		Where("org = ? AND emp_type = ?", org, empType).
		Select("emp_code", "join_date", "leave_date").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}

	records := make([]CodeRecord, len(employees))
	for i, e := range employees {
		records[i] = CodeRecord{EmpCode: e.EmpCode, JoinDate: e.JoinDate, LeaveDate: e.LeaveDate}
	}
	return records, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertRecords(ctx context.Context, records []AttendanceRecord) error
	FindByDate(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]AttendanceRecord, error)
	FindForRange(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]AttendanceRecord, error)
	GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*Ledger, error)
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

// UpsertRecords writes one row per (employee, work_date); re-marking a day
// overwrites status and hours.
func (r *repository) UpsertRecords(ctx context.Context, records []AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "hours_worked", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *repository) FindByDate(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	if len(employeeIDs) == 0 {
		return records, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("work_date = ?", date).
		Find(&records).Error
	return records, err
}

func (r *repository) FindForRange(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	if len(employeeIDs) == 0 {
		return records, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("work_date BETWEEN ? AND ?", from, to).
		Order("work_date ASC").
		Find(&records).Error
	return records, err
}

// GetLedger loads one employee's month into a Ledger. No rows is not an
// error; the caller gets an empty ledger and tallies it as all absent.
func (r *repository) GetLedger(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*Ledger, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var records []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", monthStart, monthEnd).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(year, month)
	for _, rec := range records {
		if err := ledger.RecordDay(Day{
			Day:         rec.WorkDate.Day(),
			Status:      rec.Status,
			HoursWorked: rec.HoursWorked,
		}); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

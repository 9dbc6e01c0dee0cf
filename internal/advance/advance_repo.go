package advance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=advance_repo.go -destination=mock/advance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, adv *Advance) error
	FindByID(ctx context.Context, id string) (*Advance, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Advance, error)
	FindForMonth(ctx context.Context, employeeIDs []uuid.UUID, monthStart, monthEnd time.Time) ([]Advance, error)
	GetLedger(ctx context.Context, employeeID uuid.UUID) (*Ledger, error)
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

func (r *repository) Create(ctx context.Context, adv *Advance) error {
	return r.db.WithContext(ctx).Create(adv).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Advance, error) {
	var adv Advance
	err := r.db.WithContext(ctx).First(&adv, "id = ?", id).Error
	return &adv, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Advance, error) {
	var advances []Advance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date ASC, created_at ASC").
		Find(&advances).Error
	return advances, err
}

func (r *repository) FindForMonth(ctx context.Context, employeeIDs []uuid.UUID, monthStart, monthEnd time.Time) ([]Advance, error) {
	var advances []Advance
	if len(employeeIDs) == 0 {
		return advances, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("date BETWEEN ? AND ?", monthStart, monthEnd).
		Order("date ASC, created_at ASC").
		Find(&advances).Error
	return advances, err
}

// GetLedger loads one employee's full advance history. The salary engine
// filters by month itself, so the ledger always carries everything.
func (r *repository) GetLedger(ctx context.Context, employeeID uuid.UUID) (*Ledger, error) {
	advances, err := r.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	for _, adv := range advances {
		ledger.Add(Entry{
			ID:     adv.ID.String(),
			Date:   adv.Date,
			Amount: adv.Amount,
			Mode:   adv.Mode,
		})
	}
	return ledger, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Advance{}, "id = ?", id).Error
}

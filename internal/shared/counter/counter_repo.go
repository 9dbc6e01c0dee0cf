package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, org string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, org string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic UPSERT and increment so concurrent runs per org/type never race
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO org_counters (org, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (org, counter_type) DO UPDATE
		SET last_value = org_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, org, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

package advance

import (
	"time"

	"github.com/google/uuid"
)

type Advance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	Date       time.Time `gorm:"column:date;type:date;not null;index"`
	Amount     float64   `gorm:"column:amount;type:numeric(12,2);not null"`
	Mode       string    `gorm:"column:mode;type:varchar(10);not null;default:CASH"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Advance) TableName() string {
	return "advances"
}

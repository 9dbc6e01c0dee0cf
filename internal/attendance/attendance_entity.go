package attendance

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecord struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_employee_work_date"`
	WorkDate    time.Time `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_employee_work_date"`
	Status      string    `gorm:"column:status;type:varchar(10);not null"`
	HoursWorked float64   `gorm:"column:hours_worked;type:numeric(5,2);not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

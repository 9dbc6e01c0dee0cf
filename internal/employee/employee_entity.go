package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmpTypeStaff = "STAFF"
	EmpTypeLabor = "LABOR"

	SalaryTypeMonthly = "MONTHLY"
	SalaryTypeDaily   = "DAILY"
	SalaryTypeHourly  = "HOURLY"
)

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Org         string    `gorm:"type:varchar(60);not null;index:idx_org_emp_code,unique"`
	EmpCode     string    `gorm:"type:varchar(20);not null;index:idx_org_emp_code,unique"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Mobile      *string   `gorm:"type:varchar(20)"`
	EmpType     string    `gorm:"type:varchar(10);not null"`
	SalaryType  string    `gorm:"type:varchar(10);not null"`
	GrossSalary float64   `gorm:"type:numeric(12,2);not null;default:0"`

	// Employment window
	JoinDate  time.Time  `gorm:"type:date;not null;index"`
	LeaveDate *time.Time `gorm:"type:date;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// Window returns the employee's active-service interval
func (e *Employee) Window() Window {
	return Window{JoinDate: e.JoinDate, LeaveDate: e.LeaveDate}
}

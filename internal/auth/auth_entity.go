package auth

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "ADMIN"

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(120);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'ADMIN'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          *string   `gorm:"type:varchar(200)"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(50);not null;default:'USER'"`
	FirstName     *string   `gorm:"type:varchar(100)"`
	LastName      *string   `gorm:"type:varchar(100)"`
	StudentNumber *string   `gorm:"type:varchar(100)"`
	Establishment *string   `gorm:"type:varchar(255)"`
	Diploma       *string   `gorm:"type:varchar(255)"`
	IsApproved    bool      `gorm:"not null;default:false"`
	IsRejected    bool      `gorm:"not null;default:false"`
	Profile       *Profile  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

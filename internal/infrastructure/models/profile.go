package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Phone              *string   `gorm:"type:varchar(50)"`
	City               *string   `gorm:"type:varchar(100)"`
	Linkedin           *string   `gorm:"type:varchar(255)"`
	Presentation       *string   `gorm:"type:text"`
	ExpectedGraduation *string   `gorm:"type:varchar(100)"`
	ClassProjects      *string   `gorm:"type:text"`
	IsComplete         bool      `gorm:"not null;default:false"`
	IsAvailableForWork bool      `gorm:"not null;default:true"`
	IsProfileApproved  bool      `gorm:"not null;default:false"`
	IsProfileRejected  bool      `gorm:"not null;default:false"`
	Courses            []Course     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Skills             []Skill      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Languages          []Language   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Experiences        []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Note      *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

type Skill struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Level              string    `gorm:"type:varchar(100)"`
	CertificateURL     *string   `gorm:"type:varchar(512)"`
	IsCertificateValid bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
}

type Language struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Level     string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

type Experience struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Company         string    `gorm:"type:varchar(255)"`
	Period          string    `gorm:"type:varchar(100)"`
	SupervisorName  *string   `gorm:"type:varchar(255)"`
	SupervisorEmail *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateRecord struct - one submitted profile as stored by the relational record store
type CandidateRecord struct {
	ID              *uuid.UUID `gorm:"type:uuid;primary_key;"`
	FullName        string     `gorm:"type:varchar(255);not null;"`
	Email           string     `gorm:"type:varchar(255);not null;"`
	Phone           string     `gorm:"type:varchar(64);not null;"`
	Experience      int        `gorm:"not null;"`
	DesiredPosition string     `gorm:"type:varchar(255);not null;"`
	Location        string     `gorm:"type:varchar(255);not null;"`
	CreatedAt       *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (r *CandidateRecord) TableName() string {
	return "candidate_records"
}

// BeforeCreate hook - generates UUID before creating
func (r *CandidateRecord) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// NewCandidateRecord maps a profile onto its table row
func NewCandidateRecord(p CandidateProfile) CandidateRecord {
	return CandidateRecord{
		FullName:        p.FullName,
		Email:           p.Email,
		Phone:           p.Phone,
		Experience:      p.Experience,
		DesiredPosition: p.DesiredPosition,
		Location:        p.Location,
	}
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	return db.AutoMigrate(&CandidateRecord{})
}

package postgres

import (
	"fmt"

	"talentscout/internal/domain"
	"talentscout/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure CandidateRepository implements output.CandidateRepository
var _ output.CandidateRepository = (*CandidateRepository)(nil)

// CandidateRepository struct - Secondary/Driven adapter for PostgreSQL.
// Rows are only ever inserted; nothing updates or deletes them.
type CandidateRepository struct {
	dbGorm *gorm.DB
}

// NewCandidateRepository func - Creates new PostgreSQL repository and migrates its table
func NewCandidateRepository(dbGorm *gorm.DB) (*CandidateRepository, error) {
	logrus.Info("Migrate database ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		return nil, fmt.Errorf("failed to migrate candidate records: %w", err)
	}
	return &CandidateRepository{
		dbGorm: dbGorm,
	}, nil
}

// Append func - Inserts one candidate record
func (p *CandidateRepository) Append(profile domain.CandidateProfile) error {
	record := domain.NewCandidateRecord(profile)
	if err := p.dbGorm.Create(&record).Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("failed to insert candidate record: %w", err)
	}
	logrus.Infof("Inserted candidate record %s", record.ID)
	return nil
}

// Ping func - Checks the database connection
func (p *CandidateRepository) Ping() error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

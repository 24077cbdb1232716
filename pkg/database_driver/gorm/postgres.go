package gorm

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// Options struct - connection settings
type Options struct {
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SSLMode  bool
}

// DSN builds the connection string
func (o Options) DSN() string {
	sslmode := "disable"
	if o.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=0",
		o.Host, o.Username, o.Password, o.DbName, o.Port, sslmode)
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(opts Options) (*DB, error) {
	if opts.Host == "" && opts.Port == "" && opts.DbName == "" {
		return nil, errors.New("cannot establish the connection")
	}

	pg, err := gorm.Open(postgres.Open(opts.DSN()), &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Infof("Connected to postgres at %s:%s/%s", opts.Host, opts.Port, opts.DbName)
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}

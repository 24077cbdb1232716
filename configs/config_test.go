package configs

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

var testEnvKeys = []string{
	"APP_PORT",
	"INTERVIEW_QUESTION_COUNT",
	"INTERVIEW_SEED",
	"INTERVIEW_ALLOW_ZERO_EXPERIENCE",
	"RECORD_DRIVER",
	"RECORD_PATH",
	"SESSION_DRIVER",
	"SESSION_TIMEOUT",
	"REDIS_ADDR",
	"REDIS_DB",
}

// cleanupTestEnv cleans up environment variables and viper state between tests
func cleanupTestEnv() {
	for _, k := range testEnvKeys {
		os.Unsetenv(k)
	}
	viper.Reset()
	config = Config{}
}

// TestDefaultsWithoutConfigFile tests that a missing file falls back to defaults
func TestDefaultsWithoutConfigFile(t *testing.T) {
	cleanupTestEnv()

	// there is no config.test.yaml, so only defaults apply
	InitViper(".", "test")
	cfg := GetViper()

	if cfg.App.Port != "9089" {
		t.Errorf("Expected App.Port to be 9089, got %s", cfg.App.Port)
	}
	if cfg.Interview.QuestionCount != 5 {
		t.Errorf("Expected Interview.QuestionCount to be 5, got %d", cfg.Interview.QuestionCount)
	}
	if cfg.Record.Driver != RecordDriverFile || cfg.Record.Path != "candidates.json" {
		t.Errorf("Expected file records at candidates.json, got %s at %s", cfg.Record.Driver, cfg.Record.Path)
	}
	if cfg.Session.Driver != SessionDriverMemory || cfg.Session.Timeout != 30 {
		t.Errorf("Expected memory sessions with 30 minute timeout, got %s/%d", cfg.Session.Driver, cfg.Session.Timeout)
	}
	if cfg.Interview.AllowZeroExperience {
		t.Error("Expected zero experience to be rejected by default")
	}
}

// TestEnvironmentOverrides tests that environment variables win over defaults
func TestEnvironmentOverrides(t *testing.T) {
	cleanupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("APP_PORT", "8080")
	os.Setenv("INTERVIEW_QUESTION_COUNT", "3")
	os.Setenv("INTERVIEW_SEED", "42")
	os.Setenv("INTERVIEW_ALLOW_ZERO_EXPERIENCE", "true")
	os.Setenv("RECORD_DRIVER", "postgres")
	os.Setenv("SESSION_DRIVER", "redis")
	os.Setenv("SESSION_TIMEOUT", "45")
	os.Setenv("REDIS_ADDR", "cache:6379")
	os.Setenv("REDIS_DB", "2")

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}
	if cfg.Interview.QuestionCount != 3 {
		t.Errorf("Expected Interview.QuestionCount to be 3, got %d", cfg.Interview.QuestionCount)
	}
	if cfg.Interview.Seed != 42 {
		t.Errorf("Expected Interview.Seed to be 42, got %d", cfg.Interview.Seed)
	}
	if !cfg.Interview.AllowZeroExperience {
		t.Error("Expected Interview.AllowZeroExperience to be true")
	}
	if cfg.Record.Driver != RecordDriverPostgres {
		t.Errorf("Expected Record.Driver to be postgres, got %s", cfg.Record.Driver)
	}
	if cfg.Session.Driver != SessionDriverRedis || cfg.Session.Timeout != 45 {
		t.Errorf("Expected redis sessions with 45 minute timeout, got %s/%d", cfg.Session.Driver, cfg.Session.Timeout)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Expected redis cache:6379 db 2, got %s db %d", cfg.Redis.Addr, cfg.Redis.DB)
	}
}

// TestConfigFileIsRead tests loading the shipped config.yaml
func TestConfigFileIsRead(t *testing.T) {
	cleanupTestEnv()

	InitViper(".", "")
	cfg := GetViper()

	if cfg.App.Env != "local" {
		t.Errorf("Expected App.Env to be local, got %s", cfg.App.Env)
	}
	if cfg.Postgres.DbName != "talentscout" {
		t.Errorf("Expected Postgres.DbName to be talentscout, got %s", cfg.Postgres.DbName)
	}
}

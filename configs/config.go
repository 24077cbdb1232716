package configs

import (
	"errors"
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App       `mapstructure:"app"`
	Interview `mapstructure:"interview"`
	Record    `mapstructure:"record"`
	Session   `mapstructure:"session"`
	Postgres  `mapstructure:"postgres"`
	Redis     `mapstructure:"redis"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Interview struct
type Interview struct {
	QuestionCount       int    `mapstructure:"question_count"`
	QuestionBankPath    string `mapstructure:"question_bank_path"`
	Seed                uint64 `mapstructure:"seed"`
	AllowZeroExperience bool   `mapstructure:"allow_zero_experience"`
}

// Record struct - where candidate profiles are stored
type Record struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// Session struct - where interview sessions live; Timeout is in minutes
type Session struct {
	Driver  string `mapstructure:"driver"`
	Timeout int    `mapstructure:"timeout"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Redis struct
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Record and session drivers
const (
	RecordDriverFile     = "file"
	RecordDriverPostgres = "postgres"
	SessionDriverMemory  = "memory"
	SessionDriverRedis   = "redis"
)

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.env", "")
	viper.SetDefault("app.port", "9089")

	viper.SetDefault("interview.question_count", 5)
	viper.SetDefault("interview.question_bank_path", "")
	viper.SetDefault("interview.seed", 0)
	viper.SetDefault("interview.allow_zero_experience", false)

	viper.SetDefault("record.driver", RecordDriverFile)
	viper.SetDefault("record.path", "candidates.json")

	viper.SetDefault("session.driver", SessionDriverMemory)
	viper.SetDefault("session.timeout", 30)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.username", "")
	viper.SetDefault("postgres.password", "")
	viper.SetDefault("postgres.database", "")
	viper.SetDefault("postgres.sslmode", false)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
}

func getConfig(path, env string) {
	name := "config"
	if env != "" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Println("Config file has changed: ", e.Name)
		})
	case errors.As(err, &notFound):
		log.Printf("No %s file in %s, using defaults and environment", name, path)
	default:
		panic(err)
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

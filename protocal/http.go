package protocal

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"talentscout/configs"
	httpAdapter "talentscout/internal/adapters/input/http"
	"talentscout/internal/adapters/output/bank"
	"talentscout/internal/adapters/output/jsonl"
	"talentscout/internal/adapters/output/memory"
	"talentscout/internal/adapters/output/postgres"
	redisAdapter "talentscout/internal/adapters/output/redis"
	"talentscout/internal/application"
	"talentscout/internal/ports/output"
	"talentscout/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultSessionTimeout = 30 * time.Minute

type config struct {
	ENV string `mapstructure:"env"`
}

// closer is run on shutdown
type closer func()

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Failed to load .env: %v", err)
	}
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logrus.Info(conf.App.Env)
	if conf.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Wire up the hexagonal architecture layers
	// Output adapters (record store, session store, question bank)
	records, closeRecords, err := newCandidateRepository(conf)
	if err != nil {
		return err
	}
	sessions, closeSessions, err := newSessionStore(conf)
	if err != nil {
		closeRecords()
		return err
	}
	questions, err := bank.Load(conf.Interview.QuestionBankPath)
	if err != nil {
		closeSessions()
		closeRecords()
		return err
	}

	// Application service (use case)
	srv := application.NewInterviewService(sessions, records, questions, application.InterviewConfig{
		QuestionCount:       conf.Interview.QuestionCount,
		Seed:                conf.Interview.Seed,
		AllowZeroExperience: conf.Interview.AllowZeroExperience,
	})
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, records)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			closeSessions()
			closeRecords()
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listening on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

func newCandidateRepository(conf *configs.Config) (output.CandidateRepository, closer, error) {
	switch conf.Record.Driver {
	case "", configs.RecordDriverFile:
		repo := jsonl.NewCandidateRepository(conf.Record.Path)
		logrus.Infof("Storing candidate records in %s", repo.Path())
		return repo, func() {}, nil

	case configs.RecordDriverPostgres:
		dbConGorm, err := gorm.ConnectToPostgreSQL(gorm.Options{
			Host:     conf.Postgres.Host,
			Port:     conf.Postgres.Port,
			Username: conf.Postgres.Username,
			Password: conf.Postgres.Password,
			DbName:   conf.Postgres.DbName,
			SSLMode:  conf.Postgres.SSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewCandidateRepository(dbConGorm.Postgres)
		if err != nil {
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			return nil, nil, err
		}
		return repo, func() { gorm.DisconnectPostgres(dbConGorm.Postgres) }, nil
	}
	return nil, nil, fmt.Errorf("unknown record driver %q", conf.Record.Driver)
}

func newSessionStore(conf *configs.Config) (output.SessionStore, closer, error) {
	timeout := time.Duration(conf.Session.Timeout) * time.Minute
	if timeout <= 0 {
		timeout = defaultSessionTimeout
	}

	switch conf.Session.Driver {
	case "", configs.SessionDriverMemory:
		return memory.NewMemorySessionStore(timeout), func() {}, nil

	case configs.SessionDriverRedis:
		client, err := redisAdapter.Connect(conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisAdapter.NewRedisSessionStore(client, timeout), func() {
			if err := client.Close(); err != nil {
				logrus.Errorln(err)
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown session driver %q", conf.Session.Driver)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/francislub/busines-consultant-sub001/api"
	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/config"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/models"
	"github.com/francislub/busines-consultant-sub001/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg := config.New()
	cfg = config.LoadSSMOverlay(context.Background(), cfg)

	connStr := config.GetString(cfg, "DATABASE_URL", "")
	if connStr == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	gormLogger := logger.New(
		&zerologWriter{},
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// gen_random_uuid lives in pgcrypto on older Postgres versions
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		log.Fatal().Err(err).Msg("Error enabling pgcrypto extension")
	}

	// Route reads to a replica when one is configured
	if replicaStr := config.GetString(cfg, "REPLICA_DATABASE_URL", ""); replicaStr != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replicaStr)},
		}))
		if err != nil {
			log.Fatal().Err(err).Msg("Error registering read replica")
		}
		log.Info().Msg("Read replica registered")
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Story{},
		&models.TeamMember{},
		&models.Comment{},
		&models.Contact{},
		&models.Inquiry{},
		&models.Consultation{},
		&models.Message{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Error migrating database schema")
	}

	currentDB := database.New(db)

	viewCache := cache.New(cfg)
	imageStore := services.NewImageStore(context.Background(), cfg)
	notifier := services.NewNotifier(
		services.NewEmailSender(cfg),
		services.NewSMSSender(cfg),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, cfg, notifier, imageStore, viewCache)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// zerologWriter adapts the global zerolog logger to GORM's logger interface
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

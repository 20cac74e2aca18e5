package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-api/internal/config"
	"marketplace-api/internal/controller"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/service"
	"marketplace-api/pkg/filestore"
	"marketplace-api/pkg/http_server"
	"marketplace-api/pkg/mailer"
	"marketplace-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func newMailer(cfg config.Config) service.Mailer {
	if cfg.SmtpHost == "" {
		log.Println("SMTP is not configured, seller notifications are disabled")
		return mailer.Noop{}
	}

	return mailer.NewSmtpMailer(cfg.SmtpHost, cfg.SmtpPort, cfg.SmtpUsername, cfg.SmtpPassword, cfg.SmtpFrom)
}

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config: ", err)
	}

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	runMigrations(postgresDB, cfg.MigrationURL)

	tokens, err := service.NewTokenManager(cfg.JwtSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	files, err := filestore.New(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal(err)
	}

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, tokens, newMailer(cfg))
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, tokens, files)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Println("Ready to process requests...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Fatal("Shutdown error: ", err)
	}

	log.Println("Successful shutdown")
}

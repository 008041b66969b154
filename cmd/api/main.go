package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"

	"autoexport-srv/config"
	minioCfg "autoexport-srv/config/minio"
	"autoexport-srv/config/postgre"
	authUC "autoexport-srv/internal/auth/usecase"
	dashboardUC "autoexport-srv/internal/dashboard/usecase"
	documentPostgres "autoexport-srv/internal/document/repository/postgre"
	documentUC "autoexport-srv/internal/document/usecase"
	"autoexport-srv/internal/httpserver"
	inquiryPostgres "autoexport-srv/internal/inquiry/repository/postgre"
	inquiryUC "autoexport-srv/internal/inquiry/usecase"
	jobPostgres "autoexport-srv/internal/job/repository/postgre"
	jobUC "autoexport-srv/internal/job/usecase"
	uploadUC "autoexport-srv/internal/upload/usecase"
	vehiclePostgres "autoexport-srv/internal/vehicle/repository/postgre"
	vehicleUC "autoexport-srv/internal/vehicle/usecase"
	"autoexport-srv/migrations"
	"autoexport-srv/pkg/discord"
	"autoexport-srv/pkg/log"
	"autoexport-srv/pkg/mailer"
	"autoexport-srv/pkg/session"
)

// @Name AutoExport API
// @description B2B automotive export catalog and back office API.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := runMigrations(postgresDB); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Database schema is up to date")

	minioClient, err := minioCfg.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer minioCfg.Disconnect(ctx)
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Discord: ", err)
		return
	}

	mailClient := mailer.New(logger, mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		From:     cfg.SMTP.From,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		TLS:      cfg.IsProduction(),
	})

	creds := cfg.Credentials()
	codec := session.New(cfg.Session.Codec, creds, creds.SharedSecret(cfg.Session.SecretKey))

	vehicleRepo := vehiclePostgres.New(logger, postgresDB)
	documentRepo := documentPostgres.New(logger, postgresDB)
	jobRepo := jobPostgres.New(logger, postgresDB)
	inquiryRepo := inquiryPostgres.New(logger, postgresDB)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		Codec:         codec,
		SecureCookies: cfg.IsProduction(),

		AuthUC:      authUC.New(logger, creds, codec),
		VehicleUC:   vehicleUC.New(logger, vehicleRepo),
		DocumentUC:  documentUC.New(logger, documentRepo),
		JobUC:       jobUC.New(logger, jobRepo),
		InquiryUC:   inquiryUC.New(logger, inquiryRepo, vehicleRepo, mailClient, cfg.SMTP.SalesAddr),
		DashboardUC: dashboardUC.New(logger, vehicleRepo, documentRepo, jobRepo, inquiryRepo),
		UploadUC:    uploadUC.New(logger, minioClient, cfg.MinIO, cfg.Upload, uuid.NewString),

		DB:      postgresDB,
		Storage: minioClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

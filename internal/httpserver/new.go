package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"autoexport-srv/internal/auth"
	"autoexport-srv/internal/dashboard"
	"autoexport-srv/internal/document"
	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/job"
	"autoexport-srv/internal/upload"
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/pkg/discord"
	"autoexport-srv/pkg/log"
	"autoexport-srv/pkg/minio"
	"autoexport-srv/pkg/session"
)

// HTTPServer wires the HTTP transport. New() only assembles and validates
// dependencies; Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	port   int
	mode   string

	codec         session.Codec
	secureCookies bool

	authUC      auth.UseCase
	vehicleUC   vehicle.UseCase
	documentUC  document.UseCase
	jobUC       job.UseCase
	inquiryUC   inquiry.UseCase
	dashboardUC dashboard.UseCase
	uploadUC    upload.UseCase

	db      *sql.DB
	storage minio.MinIO
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	Codec         session.Codec
	SecureCookies bool

	AuthUC      auth.UseCase
	VehicleUC   vehicle.UseCase
	DocumentUC  document.UseCase
	JobUC       job.UseCase
	InquiryUC   inquiry.UseCase
	DashboardUC dashboard.UseCase
	UploadUC    upload.UseCase

	DB      *sql.DB
	Storage minio.MinIO
	Discord discord.IDiscord
}

func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:           gin.New(),
		logger:        logger,
		port:          cfg.Port,
		mode:          cfg.Mode,
		codec:         cfg.Codec,
		secureCookies: cfg.SecureCookies,
		authUC:        cfg.AuthUC,
		vehicleUC:     cfg.VehicleUC,
		documentUC:    cfg.DocumentUC,
		jobUC:         cfg.JobUC,
		inquiryUC:     cfg.InquiryUC,
		dashboardUC:   cfg.DashboardUC,
		uploadUC:      cfg.UploadUC,
		db:            cfg.DB,
		storage:       cfg.Storage,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.codec == nil {
		return errors.New("session codec is required")
	}
	if s.authUC == nil || s.vehicleUC == nil || s.documentUC == nil ||
		s.jobUC == nil || s.inquiryUC == nil || s.dashboardUC == nil || s.uploadUC == nil {
		return errors.New("all usecases are required")
	}
	if s.db == nil {
		return errors.New("database handle is required")
	}

	return nil
}

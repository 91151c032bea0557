// Package main initializes and starts the site server, setting up
// configuration, logging, the database connection, repositories, services
// and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"github.com/henriquetec/site/internal/captcha"
	"github.com/henriquetec/site/internal/config"
	"github.com/henriquetec/site/internal/credentials"
	"github.com/henriquetec/site/internal/db"
	"github.com/henriquetec/site/internal/logger"
	"github.com/henriquetec/site/internal/repository"
	"github.com/henriquetec/site/internal/server/handler/http"
	"github.com/henriquetec/site/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.AdminPassword == "" {
		zapLogger.Fatal("ADMIN_PASSWORD must be set; the admin account is reset from it on every start")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	contentRepo := repository.NewPostgresContentRepository(postgresDB)

	// Credential primitives and the optional captcha check.
	verifier := credentials.NewVerifier(options.TOTPIssuer)
	captchaVerifier := captcha.New(options.CaptchaSecret)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, verifier, captchaVerifier)
	userService := service.NewUserService(userRepo, verifier)
	contentService := service.NewContentService(contentRepo)

	// The admin password always tracks configuration, overwriting any
	// manually-set value.
	if err := userService.ResetAdminPassword(context.Background(), options.AdminPassword); err != nil {
		zapLogger.Fatal("cannot reset admin password", zap.Error(err))
	}

	// Create HTTP handlers for the public site and the back-office.
	publicHandler := &http.PublicHandler{Content: contentService}
	authHandler := &http.AuthHandler{Auth: authService, CaptchaEnabled: captchaVerifier.Enabled()}
	adminHandler := &http.AdminHandler{Auth: authService, Users: userService, Content: contentService}

	// Build the router with middleware and routes.
	router := http.NewRouter(publicHandler, authHandler, adminHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}

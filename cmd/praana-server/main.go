package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/praana/praana-care/internal/config"
	"github.com/praana/praana-care/internal/domain/assistant"
	"github.com/praana/praana-care/internal/domain/health"
	"github.com/praana/praana-care/internal/domain/identity"
	"github.com/praana/praana-care/internal/domain/patient"
	"github.com/praana/praana-care/internal/platform/auth"
	"github.com/praana/praana-care/internal/platform/middleware"
	"github.com/praana/praana-care/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "praana-server",
		Short: "Praana Care occupational-health tracking API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate the synthetic demo dataset and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			identitySvc, patientSvc, _ := buildServices()
			seeder := sandbox.NewSeeder(identitySvc, patientSvc)
			result, err := seeder.Seed(context.Background(), cfg.SeedRandSeed)
			if err != nil {
				return err
			}

			p, err := patientSvc.GetPatient(context.Background(), result.PatientID)
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"seeded":  result,
				"patient": p,
			})
		},
	}
}

// buildServices wires the in-memory stores and domain services.
func buildServices() (*identity.Service, *patient.Service, *assistant.Engine) {
	patientSvc := patient.NewService(patient.NewMemRepo())
	identitySvc := identity.NewService(identity.NewMemRepo(), patientSvc)
	chatEngine := assistant.NewEngine(assistant.ScriptResponder{})
	return identitySvc, patientSvc, chatEngine
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	identitySvc, patientSvc, chatEngine := buildServices()

	if cfg.SeedDemoData {
		seeder := sandbox.NewSeeder(identitySvc, patientSvc)
		result, err := seeder.Seed(context.Background(), cfg.SeedRandSeed)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().
			Str("patient_id", result.PatientID).
			Int("vitals", result.VitalCount).
			Msg("seeded demo data")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(auth.Identity(auth.UserResolverFunc(func(ctx context.Context, userID string) (string, error) {
		u, err := identitySvc.GetUser(ctx, userID)
		if err != nil {
			return "", err
		}
		return u.Role, nil
	})))

	// API group
	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Domain handlers
	identity.NewHandler(identitySvc).RegisterRoutes(api)
	patient.NewHandler(patientSvc, health.DeriveAlerts).RegisterRoutes(api)
	health.NewHandler(patientSvc).RegisterRoutes(api)
	assistant.NewHandler(chatEngine).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()
	logger.Info().Str("port", cfg.Port).Msg("praana care backend running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

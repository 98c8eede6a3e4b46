package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/safetynet/alerts/internal/config"
	"github.com/safetynet/alerts/internal/domain/alert"
	"github.com/safetynet/alerts/internal/domain/firestation"
	"github.com/safetynet/alerts/internal/domain/medicalrecord"
	"github.com/safetynet/alerts/internal/domain/person"
	"github.com/safetynet/alerts/internal/platform/fixture"
	"github.com/safetynet/alerts/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "alerts-server",
		Short: "SafetyNet emergency alerting API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the alerting API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the data source file and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("data")
			if path == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path = cfg.DataFile
			}

			f, err := fixture.Load(path)
			if err != nil {
				return err
			}

			findings := f.Validate()
			for _, finding := range findings {
				fmt.Println("finding:", finding)
			}
			fmt.Printf("%s: %d persons, %d firestations, %d medicalrecords, %d finding(s)\n",
				path, len(f.Persons), len(f.Firestations), len(f.Medicalrecords), len(findings))
			if len(findings) > 0 {
				return fmt.Errorf("data source has %d finding(s)", len(findings))
			}
			return nil
		},
	}
	cmd.Flags().String("data", "", "Path to the data source file (defaults to DATA_FILE)")
	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Data source
	data, err := fixture.Load(cfg.DataFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataFile).Msg("failed to load data source")
	}
	for _, finding := range data.Validate() {
		logger.Warn().Err(finding).Msg("data source finding")
	}
	logger.Info().
		Str("path", cfg.DataFile).
		Int("persons", len(data.Persons)).
		Int("firestations", len(data.Firestations)).
		Int("medicalrecords", len(data.Medicalrecords)).
		Msg("data source loaded")

	// Stores
	personRepo := person.NewRepository(data.Persons)
	stationRepo := firestation.NewRepository(data.Firestations)
	recordRepo := medicalrecord.NewRepository(data.Medicalrecords)

	// Services
	recordSvc := medicalrecord.NewService(recordRepo, personRepo)
	personSvc := person.NewService(personRepo, recordSvc, logger)
	stationSvc := firestation.NewService(stationRepo)
	alertSvc := alert.NewService(personRepo, stationRepo, recordSvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Metrics(reg))
	e.Use(middleware.BodyLimit(cfg.BodyLimitBytes))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	e.Use(middleware.RateLimit(rateLimitCfg))

	// Routes
	person.NewHandler(personSvc).RegisterRoutes(e)
	firestation.NewHandler(stationSvc).RegisterRoutes(e)
	medicalrecord.NewHandler(recordSvc).RegisterRoutes(e)
	alert.NewHandler(alertSvc).RegisterRoutes(e)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

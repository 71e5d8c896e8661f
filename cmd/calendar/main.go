package main

import (
	"calendar-backend/cmd/calendar/apis"
	"calendar-backend/cmd/calendar/repository"
	"calendar-backend/cmd/calendar/service"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	Addr      string `envconfig:"ADDR" default:":8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone  string `envconfig:"TIMEZONE" default:"Local"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

func loadConfig(args []string) (EnvCfg, error) {
	var cfg EnvCfg
	if err := envconfig.Process("CALENDAR", &cfg); err != nil {
		return EnvCfg{}, err
	}

	// host:port on the command line wins over CALENDAR_ADDR.
	if len(args) > 0 {
		if !strings.Contains(args[0], ":") {
			return EnvCfg{}, fmt.Errorf("invalid listen address %q, expected host:port", args[0])
		}
		cfg.Addr = args[0]
	}

	return cfg, nil
}

func formatConnectionString(cfg EnvCfg) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

func newLogger(cfg EnvCfg, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func gormLogLevel(cfg EnvCfg) logger.LogLevel {
	if cfg.Debug {
		return logger.Info
	}
	return logger.Warn
}

func newServer(eventService *service.EventService, pinger apis.IPinger, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(apis.RequestID())
	e.Use(apis.RequestLogger(log))

	rootg := e.Group("")
	apig := rootg.Group("/api")

	apis.
		NewHealthCheckAPI(pinger).
		Setup(rootg)

	apis.
		NewEventAPI(eventService, log).
		Setup(apig)

	return e
}

func main() {

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}

	log := newLogger(cfg, os.Stdout)

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.TimeZone).Msg("invalid timezone")
	}

	db, err := gorm.Open(
		postgres.Open(formatConnectionString(cfg)),
		&gorm.Config{
			Logger: logger.Default.LogMode(gormLogLevel(cfg)),
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle")
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventRepo := repository.NewEventRepo(db)
	if err := eventRepo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("create events table")
	}

	eventService := service.NewEventService(
		eventRepo,
		service.WithLocation(loc),
		service.WithDebug(cfg.Debug),
	)

	e := newServer(eventService, sqlDB, log)

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

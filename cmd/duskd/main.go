package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/dusk/internal/config"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/dusk"
	"github.com/wheelibin/dusk/internal/garden"
	"github.com/wheelibin/dusk/internal/metrics"
	"github.com/wheelibin/dusk/internal/repos"
	"github.com/wheelibin/dusk/internal/schedule"
	"github.com/wheelibin/dusk/internal/sensors"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("duskd starting")

	// read the config file
	cfg, err := config.ReadConfig()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	logger = newLogger(*cfg)

	window, err := schedule.NewWindow(cfg.Window, cfg.GeoLocation)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	db, err := repos.OpenDB(cfg.HistoryDB)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	defer db.Close()
	historyRepo, err := repos.NewHistoryRepo(logger, db)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	// create/wire up services
	client := deconz.NewClient(*cfg, logger)
	rs := sensors.NewReadingService(logger, client, cfg.SensorThrottle)
	gc := garden.NewController(logger, client, window, cfg.GroupName, cfg.LuxThreshold)
	d := dusk.NewDusk(logger, cfg.PollInterval, os.Stdout, client, rs, gc, historyRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go metrics.Serve(ctx, cfg.MetricsAddr, logger)
	}

	logger.Info("polling hub", "url", cfg.APIURL, "interval", cfg.PollInterval, "group", cfg.GroupName, "window", cfg.Window.Start+"-"+cfg.Window.End)

	// blocks until a stop signal arrives
	d.Run(ctx)

	logger.Info("Dusk is closing")
}

func newLogger(cfg config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		})
	}
	return log.NewWithOptions(out, log.Options{
		Level:           logLevel(cfg.LogLevel),
		ReportTimestamp: true,
		ReportCaller:    true,
	})
}

func logLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

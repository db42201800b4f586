package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wheelibin/dusk/internal/models"
)

// Cycles run, labeled by outcome (ok, failed)
var Cycles = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dusk_cycles_total",
		Help: "The total number of control cycles run",
	},
	[]string{"outcome"},
)

// Switch commands sent to the light group, labeled by the state switched to
var Actuations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dusk_actuations_total",
		Help: "The total number of switch commands sent to the light group",
	},
	[]string{"on"},
)

var SensorReading = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "dusk_sensor_reading",
		Help: "The latest normalised reading per sensor category",
	},
	[]string{"category"},
)

var CycleDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "dusk_cycle_duration_seconds",
		Help:    "Time taken by a control cycle",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
)

func SetReadingGauges(readings []models.SensorReading) {
	for _, reading := range readings {
		SensorReading.WithLabelValues(reading.Category.String()).Set(float64(reading.Value))
	}
}

// Handler routes /metrics to the default prometheus registry.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string, logger *log.Logger) {
	srv := &http.Server{Addr: addr, Handler: Handler(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Prometheus metrics available", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", "err", err)
	}
}

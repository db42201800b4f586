package dusk

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wheelibin/dusk/internal/constants"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/garden"
	"github.com/wheelibin/dusk/internal/metrics"
	"github.com/wheelibin/dusk/internal/models"
	"github.com/wheelibin/dusk/internal/repos"
	"github.com/wheelibin/dusk/internal/sensors"
)

type SensorCatalog interface {
	GetSensors(ctx context.Context) (map[string]deconz.Sensor, error)
}

type ReadingService interface {
	ReadAll(ctx context.Context, ids models.SensorIDs) ([]models.SensorReading, error)
}

type Controller interface {
	Apply(ctx context.Context, result models.CycleResult, now time.Time) (garden.Actuation, error)
}

type HistoryRepo interface {
	RecordReadings(cycleID string, at time.Time, readings []models.SensorReading) error
	GetCycleReadings(cycleID string) ([]models.SensorReading, error)
	RecordActuation(cycleID string, at time.Time, group models.GroupState, on bool) error
	GetLastActuation(groupID string) (*repos.Actuation, error)
}

type Dusk struct {
	logger         *log.Logger
	interval       time.Duration
	out            io.Writer
	sensorCatalog  SensorCatalog
	readingService ReadingService
	controller     Controller
	historyRepo    HistoryRepo
}

func NewDusk(
	logger *log.Logger,
	interval time.Duration,
	out io.Writer,
	sensorCatalog SensorCatalog,
	readingService ReadingService,
	controller Controller,
	historyRepo HistoryRepo,
) *Dusk {
	return &Dusk{
		logger:         logger,
		interval:       interval,
		out:            out,
		sensorCatalog:  sensorCatalog,
		readingService: readingService,
		controller:     controller,
		historyRepo:    historyRepo,
	}
}

// Run waits for the interval, runs a cycle, and repeats until ctx is done.
// Cycles run on this goroutine so they never overlap; a cycle that outlasts
// the interval is followed straight away by the next one.
func (d *Dusk) Run(ctx context.Context) {
	d.logger.Debug("Dusk.Run")

	cycleTimer := time.NewTicker(d.interval)
	defer cycleTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Dusk.Run: stop signal received")
			return

		case t := <-cycleTimer.C:
			if ctx.Err() != nil {
				return
			}
			if err := d.RunCycle(ctx, t); err != nil {
				d.logger.Error("cycle aborted", "err", err)
			}
		}
	}
}

// RunCycle discovers the sensors, reads them, and lets the controller act on
// the light level. The first error aborts the rest of the cycle.
func (d *Dusk) RunCycle(ctx context.Context, now time.Time) error {
	result := models.CycleResult{CycleID: uuid.NewString()}
	logger := d.logger.With("cycle", result.CycleID)
	started := time.Now()

	err := d.runCycle(ctx, logger, now, &result)

	metrics.CycleDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.Cycles.WithLabelValues(constants.CycleOutcomeFailed).Inc()
		return err
	}
	metrics.Cycles.WithLabelValues(constants.CycleOutcomeOK).Inc()
	return nil
}

func (d *Dusk) runCycle(ctx context.Context, logger *log.Logger, now time.Time, result *models.CycleResult) error {
	logger.Debug("Dusk.RunCycle: discovering sensors...")

	catalog, err := d.sensorCatalog.GetSensors(ctx)
	if err != nil {
		return fmt.Errorf("error reading sensors: %w", err)
	}
	ids := sensors.Discover(catalog)
	logger.Debug("discovered sensors", "total", len(catalog), "matched", len(ids))

	readings, err := d.readingService.ReadAll(ctx, ids)
	if err != nil {
		return err
	}
	result.Readings = readings

	for _, reading := range readings {
		fmt.Fprintf(d.out, "%s: %d %s\n", reading.Category.Label(), reading.Value, reading.Category.Unit())
	}
	metrics.SetReadingGauges(readings)
	if err := d.historyRepo.RecordReadings(result.CycleID, now, readings); err != nil {
		logger.Warn(err)
	}

	logger.Debug("Dusk.RunCycle: applying light decision...")
	actuation, err := d.controller.Apply(ctx, *result, now)
	if err != nil {
		return err
	}

	switch actuation.Decision {
	case garden.SwitchOn, garden.SwitchOff:
		on := actuation.Decision == garden.SwitchOn
		metrics.Actuations.WithLabelValues(fmt.Sprint(on)).Inc()

		d.logLastActuation(logger, actuation.Group.ID, now)

		if err := d.historyRepo.RecordActuation(result.CycleID, now, actuation.Group, on); err != nil {
			logger.Warn(err)
		}
	}

	return nil
}

// logLastActuation logs when the group was last switched this run and the
// light level that triggered it.
func (d *Dusk) logLastActuation(logger *log.Logger, groupID string, now time.Time) {
	last, err := d.historyRepo.GetLastActuation(groupID)
	if err != nil {
		logger.Warn(err)
		return
	}
	if last == nil {
		return
	}

	readings, err := d.historyRepo.GetCycleReadings(last.CycleID)
	if err != nil {
		logger.Warn(err)
		return
	}
	var luxValue any = "none"
	if lux := (models.CycleResult{Readings: readings}).Lux(); lux != nil {
		luxValue = *lux
	}

	logger.Info("group last switched", "group", last.GroupName, "on", last.On, "since", now.Sub(last.RecordedAt).Round(time.Second), "lux", luxValue)
}

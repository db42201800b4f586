package sensors

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/dusk/internal/concurrency"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/models"
)

type hubClient interface {
	GetSensor(ctx context.Context, id string) (deconz.Sensor, error)
}

type ReadingService struct {
	logger   *log.Logger
	hub      hubClient
	throttle time.Duration
}

func NewReadingService(logger *log.Logger, hub hubClient, throttle time.Duration) *ReadingService {
	return &ReadingService{logger: logger, hub: hub, throttle: throttle}
}

// ReadAll fetches the current state of every discovered sensor, one after
// another. The first failure stops the run and is returned.
func (s *ReadingService) ReadAll(ctx context.Context, ids models.SensorIDs) ([]models.SensorReading, error) {

	categories := lo.Filter(models.AllCategories, func(c models.Category, _ int) bool {
		_, found := ids[c]
		return found
	})

	readings := make([]models.SensorReading, 0, len(categories))

	tw := concurrency.NewThrottledWorker(s.throttle, func(category models.Category) error {
		reading, err := s.Read(ctx, ids[category], category)
		if err != nil {
			return err
		}
		readings = append(readings, reading)
		return nil
	})

	if err := tw.Run(ctx, categories); err != nil {
		return nil, err
	}

	return readings, nil
}

func (s *ReadingService) Read(ctx context.Context, id string, category models.Category) (models.SensorReading, error) {
	sensor, err := s.hub.GetSensor(ctx, id)
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("error reading %s sensor (%s): %w", category, id, err)
	}

	reading, err := Extract(id, category, sensor)
	if err != nil {
		return models.SensorReading{}, err
	}

	s.logger.Debug("read sensor", "id", id, "category", category, "value", reading.Value)
	return reading, nil
}

// Extract pulls the category's value out of a sensor's state, normalising it
// where the hub sends it in fixed point.
func Extract(id string, category models.Category, sensor deconz.Sensor) (models.SensorReading, error) {
	var raw *int
	switch category {
	case models.Temperature:
		raw = sensor.State.Temperature
	case models.Lux:
		raw = sensor.State.Lux
	case models.Humidity:
		raw = sensor.State.Humidity
	case models.Pressure:
		raw = sensor.State.Pressure
	}
	if raw == nil {
		return models.SensorReading{}, &MissingFieldError{SensorID: id, Field: category.String()}
	}

	value := *raw
	if category.Normalized() {
		value = Normalize(value)
	}

	reading := models.SensorReading{ID: id, Category: category, Value: value}
	if sensor.State.LastUpdated != nil {
		reading.Timestamp = *sensor.State.LastUpdated
	}
	return reading, nil
}

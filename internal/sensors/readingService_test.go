package sensors_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/models"
	"github.com/wheelibin/dusk/internal/sensors"
	"github.com/wheelibin/dusk/mocks"
)

func intPtr(v int) *int {
	return &v
}

func Test_ReadAll(t *testing.T) {

	t.Run("should read and normalise every discovered sensor", func(t *testing.T) {
		t.Parallel()

		// arrange
		lastUpdated := "2023-06-01T12:00:00"
		mockHub := mocks.NewMockSensorsHubClient(t)
		mockHub.On("GetSensor", mock.Anything, "2").Return(deconz.Sensor{State: deconz.SensorState{Temperature: intPtr(2502), LastUpdated: &lastUpdated}}, nil)
		mockHub.On("GetSensor", mock.Anything, "3").Return(deconz.Sensor{State: deconz.SensorState{Humidity: intPtr(4512)}}, nil)
		mockHub.On("GetSensor", mock.Anything, "4").Return(deconz.Sensor{State: deconz.SensorState{Pressure: intPtr(1013)}}, nil)
		mockHub.On("GetSensor", mock.Anything, "5").Return(deconz.Sensor{State: deconz.SensorState{Lux: intPtr(1500)}}, nil)
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		rs := sensors.NewReadingService(logger, mockHub, 0)

		// act
		readings, err := rs.ReadAll(context.Background(), models.SensorIDs{
			models.Pressure:    "4",
			models.Temperature: "2",
			models.Lux:         "5",
			models.Humidity:    "3",
		})

		// assert
		require.NoError(t, err)
		assert.Equal(t, []models.SensorReading{
			{ID: "2", Category: models.Temperature, Value: 25, Timestamp: lastUpdated},
			{ID: "5", Category: models.Lux, Value: 1500},
			{ID: "3", Category: models.Humidity, Value: 45},
			{ID: "4", Category: models.Pressure, Value: 1013},
		}, readings)
	})

	t.Run("no sensors: should not call the hub", func(t *testing.T) {
		t.Parallel()

		mockHub := mocks.NewMockSensorsHubClient(t)
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		rs := sensors.NewReadingService(logger, mockHub, 0)

		readings, err := rs.ReadAll(context.Background(), models.SensorIDs{})

		require.NoError(t, err)
		assert.Empty(t, readings)
		mockHub.AssertNotCalled(t, "GetSensor", mock.Anything, mock.Anything)
	})

	t.Run("missing value: should return a missing field error and stop", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockSensorsHubClient(t)
		mockHub.On("GetSensor", mock.Anything, "2").Return(deconz.Sensor{State: deconz.SensorState{Lux: intPtr(10)}}, nil)
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		rs := sensors.NewReadingService(logger, mockHub, 0)

		// act
		_, err := rs.ReadAll(context.Background(), models.SensorIDs{models.Temperature: "2", models.Lux: "5"})

		// assert
		var missingErr *sensors.MissingFieldError
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, "2", missingErr.SensorID)
		assert.Equal(t, "temperature", missingErr.Field)
		mockHub.AssertNotCalled(t, "GetSensor", mock.Anything, "5")
	})

	t.Run("hub error: should return the error and stop", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockHub := mocks.NewMockSensorsHubClient(t)
		mockHub.On("GetSensor", mock.Anything, "2").Return(deconz.Sensor{}, fmt.Errorf("an error"))
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		rs := sensors.NewReadingService(logger, mockHub, 0)

		// act
		readings, err := rs.ReadAll(context.Background(), models.SensorIDs{models.Temperature: "2", models.Lux: "5"})

		// assert
		assert.ErrorContains(t, err, "an error")
		assert.Nil(t, readings)
		mockHub.AssertNotCalled(t, "GetSensor", mock.Anything, "5")
	})
}

func Test_Extract(t *testing.T) {

	t.Run("lux and pressure are not normalised", func(t *testing.T) {
		reading, err := sensors.Extract("5", models.Lux, deconz.Sensor{State: deconz.SensorState{Lux: intPtr(2502)}})
		require.NoError(t, err)
		assert.Equal(t, 2502, reading.Value)

		reading, err = sensors.Extract("4", models.Pressure, deconz.Sensor{State: deconz.SensorState{Pressure: intPtr(1013)}})
		require.NoError(t, err)
		assert.Equal(t, 1013, reading.Value)
	})

	t.Run("zero is a reading, not a missing value", func(t *testing.T) {
		reading, err := sensors.Extract("5", models.Lux, deconz.Sensor{State: deconz.SensorState{Lux: intPtr(0)}})
		require.NoError(t, err)
		assert.Equal(t, 0, reading.Value)
	})
}

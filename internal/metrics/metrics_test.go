package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/dusk/internal/metrics"
	"github.com/wheelibin/dusk/internal/models"
)

func Test_SetReadingGauges(t *testing.T) {
	metrics.SetReadingGauges([]models.SensorReading{
		{ID: "4", Category: models.Temperature, Value: 27},
		{ID: "7", Category: models.Lux, Value: 400},
	})

	assert.Equal(t, float64(27), testutil.ToFloat64(metrics.SensorReading.WithLabelValues("temperature")))
	assert.Equal(t, float64(400), testutil.ToFloat64(metrics.SensorReading.WithLabelValues("lux")))
}

func Test_Handler(t *testing.T) {

	// arrange
	metrics.Cycles.WithLabelValues("ok").Inc()
	srv := httptest.NewServer(metrics.Handler())
	defer srv.Close()

	// act
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `dusk_cycles_total{outcome="ok"}`)
}

func Test_Serve(t *testing.T) {

	t.Run("should return once the context is done", func(t *testing.T) {
		// arrange
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		ctx, cancel := context.WithCancel(context.Background())

		// act
		done := make(chan struct{})
		go func() {
			metrics.Serve(ctx, "127.0.0.1:0", logger)
			close(done)
		}()
		cancel()

		// assert
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after cancel")
		}
	})
}

package deconz_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/dusk/internal/config"
	"github.com/wheelibin/dusk/internal/deconz"
)

const apiKey = "0123456789"

func newClient(t *testing.T, handler http.HandlerFunc) *deconz.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return deconz.NewClient(config.Config{APIURL: srv.URL + "/", APIKey: apiKey, RequestTimeout: time.Second}, logger)
}

func Test_Fetch(t *testing.T) {

	t.Run("should build the url from base, key and path and decode the body", func(t *testing.T) {
		t.Parallel()

		// arrange
		requestedPaths := make(chan string, 1)
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			requestedPaths <- r.URL.Path
			_, _ = w.Write([]byte(`{
				"type": "ZHATemperature",
				"name": "Outside",
				"config": {"on": true, "reachable": true, "battery": 90},
				"state": {"lastupdated": "2023-06-01T12:00:00", "temperature": 2502}
			}`))
		})

		// act
		sensor, err := deconz.Fetch[deconz.Sensor](context.Background(), client, "/sensors/4")

		// assert
		require.NoError(t, err)
		assert.Equal(t, "/api/"+apiKey+"/sensors/4", <-requestedPaths)
		assert.Equal(t, "ZHATemperature", *sensor.Type)
		assert.Equal(t, 2502, *sensor.State.Temperature)
		assert.Nil(t, sensor.State.Lux)
		assert.Equal(t, 90, *sensor.Config.Battery)
	})

	t.Run("body with the wrong shape: should return a decode error", func(t *testing.T) {
		t.Parallel()

		// arrange
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"error": {"type": 1, "description": "unauthorized user"}}]`))
		})

		// act
		_, err := client.GetSensors(context.Background())

		// assert
		var decodeErr *deconz.DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})

	t.Run("error status: should return a transport error", func(t *testing.T) {
		t.Parallel()

		// arrange
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		// act
		_, err := client.GetGroups(context.Background())

		// assert
		var transportErr *deconz.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, http.StatusForbidden, transportErr.StatusCode)
		assert.NotContains(t, err.Error(), apiKey)
	})

	t.Run("hub unreachable: should return a transport error", func(t *testing.T) {
		t.Parallel()

		// arrange
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		client := deconz.NewClient(config.Config{APIURL: srv.URL, APIKey: apiKey, RequestTimeout: time.Second}, logger)

		// act
		_, err := client.GetSensor(context.Background(), "1")

		// assert
		var transportErr *deconz.TransportError
		assert.True(t, errors.As(err, &transportErr))
	})
}

func Test_SetGroupOn(t *testing.T) {

	t.Run("should PUT the on state to the group action", func(t *testing.T) {
		t.Parallel()

		// arrange
		type request struct {
			method string
			path   string
			body   map[string]bool
		}
		requests := make(chan request, 1)
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			req := request{method: r.Method, path: r.URL.Path}
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &req.body)
			requests <- req
			_, _ = w.Write([]byte(`[{"success": {"/groups/3/action/on": true}}]`))
		})

		// act
		err := client.SetGroupOn(context.Background(), "3", true)

		// assert
		require.NoError(t, err)
		req := <-requests
		assert.Equal(t, http.MethodPut, req.method)
		assert.Equal(t, "/api/"+apiKey+"/groups/3/action", req.path)
		assert.Equal(t, map[string]bool{"on": true}, req.body)
	})

	t.Run("failed write: should return the error", func(t *testing.T) {
		t.Parallel()

		// arrange
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		// act
		err := client.SetGroupOn(context.Background(), "3", false)

		// assert
		var transportErr *deconz.TransportError
		assert.True(t, errors.As(err, &transportErr))
	})
}

func Test_SortedIDs(t *testing.T) {
	ids := deconz.SortedIDs([]string{"10", "b", "2", "a", "1"})
	assert.Equal(t, []string{"1", "2", "10", "a", "b"}, ids)
}

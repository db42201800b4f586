package deconz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/dusk/internal/config"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(cfg config.Config, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

// Fetch reads {base}/api/{key}{path} and decodes the JSON body into T.
func Fetch[T any](ctx context.Context, c *Client, path string) (T, error) {
	var result T

	body, err := c.GET(ctx, path)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, &DecodeError{Path: path, Err: err}
	}

	return result, nil
}

func (c *Client) GET(ctx context.Context, path string) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodGet, path, nil)
}

func (c *Client) PUT(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodPut, path, body)
}

// SendAction writes body as JSON to path. Any failure, including a
// non-success status, is returned to the caller.
func (c *Client) SendAction(ctx context.Context, path string, body map[string]bool) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding action for %s: %w", path, err)
	}

	_, err = c.PUT(ctx, path, data)
	return err
}

func (c *Client) GetSensors(ctx context.Context) (map[string]Sensor, error) {
	return Fetch[map[string]Sensor](ctx, c, "/sensors")
}

func (c *Client) GetSensor(ctx context.Context, id string) (Sensor, error) {
	return Fetch[Sensor](ctx, c, fmt.Sprintf("/sensors/%s", id))
}

func (c *Client) GetGroups(ctx context.Context) (map[string]Group, error) {
	return Fetch[map[string]Group](ctx, c, "/groups")
}

func (c *Client) GetGroup(ctx context.Context, id string) (Group, error) {
	return Fetch[Group](ctx, c, fmt.Sprintf("/groups/%s", id))
}

func (c *Client) SetGroupOn(ctx context.Context, id string, on bool) error {
	c.logger.Debug("switching group", "id", id, "on", on)
	return c.SendAction(ctx, fmt.Sprintf("/groups/%s/action", id), map[string]bool{"on": on})
}

func (c *Client) requestURL(path string) string {
	return fmt.Sprintf("%s/api/%s%s", c.baseURL, c.apiKey, path)
}

func (c *Client) makeRequest(ctx context.Context, verb string, path string, body []byte) ([]byte, error) {

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, c.requestURL(path), bodyReader)
	if err != nil {
		return nil, &TransportError{Method: verb, Path: path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the url holds the api key, keep it out of errors and logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.logger.Debug("error making hub API call", "method", verb, "path", path, "err", err)
		return nil, &TransportError{Method: verb, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("unexpected hub API status", "method", verb, "path", path, "status", resp.Status)
		return nil, &TransportError{Method: verb, Path: path, StatusCode: resp.StatusCode}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: verb, Path: path, Err: err}
	}
	c.logger.Debug("hub API call", "method", verb, "path", path, "took", time.Since(started))

	return responseBody, nil
}

// SortedIDs returns hub resource ids in ascending order, numerically when
// both ids are numbers (the hub numbers its resources "1", "2", ... "10").
// Numeric ids sort before any other id.
func SortedIDs(ids []string) []string {
	sorted := append([]string(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, errA := strconv.Atoi(sorted[i])
		b, errB := strconv.Atoi(sorted[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

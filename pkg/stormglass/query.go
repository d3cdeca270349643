package stormglass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the Stormglass API base URL.
	DefaultBaseURL = "https://api.stormglass.io"

	weatherPath = "/v2/weather/point"
	tidePath    = "/v2/tide/extremes/point"

	// requestTimeout bounds every request to the API.
	requestTimeout = 10 * time.Second
)

// ErrQuotaExceeded is returned when the API answers 402, meaning the daily
// request quota is spent or the endpoint requires a paid plan.
var ErrQuotaExceeded = errors.New("stormglass: quota exceeded or payment required")

// ClientConfig holds configuration for a Client.
type ClientConfig struct {
	// APIKey authenticates every request (required).
	APIKey string

	// BaseURL overrides the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the HTTP client. Defaults to a client with a 10
	// second timeout.
	HTTPClient *http.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Stormglass API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a Stormglass client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// PointQuery requests a time series at a coordinate in a given time window.
type PointQuery struct {
	Lat, Lng float64
	Start    time.Time
	End      time.Time

	// Params names the weather fields to request. Ignored by TideExtremes.
	Params []string
}

func (q *PointQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	vals.Add("lng", strconv.FormatFloat(q.Lng, 'f', -1, 64))
	if len(q.Params) > 0 {
		vals.Add("params", strings.Join(q.Params, ","))
	}
	vals.Add("start", q.Start.UTC().Format(time.RFC3339))
	vals.Add("end", q.End.UTC().Format(time.RFC3339))
	return vals
}

// Weather fetches the hourly forecast for the queried window. The samples
// come back in chronological order, but uniqueness of timestamps is not
// guaranteed by the feed.
func (c *Client) Weather(ctx context.Context, q *PointQuery) (Hours, error) {
	var result weatherResult
	if err := c.get(ctx, weatherPath, q, &result); err != nil {
		return nil, err
	}
	if result.Hours == nil {
		return nil, fmt.Errorf("weather response missing %q key", "hours")
	}
	return result.Hours, nil
}

// TideExtremes fetches predicted low and high tide events for the queried
// window.
func (c *Client) TideExtremes(ctx context.Context, q *PointQuery) (TideEvents, error) {
	// The tide endpoint takes no params field.
	tq := *q
	tq.Params = nil

	var result tideResult
	if err := c.get(ctx, tidePath, &tq, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, fmt.Errorf("tide response missing %q key", "data")
	}
	return result.Data, nil
}

func (c *Client) get(ctx context.Context, path string, q *PointQuery, out interface{}) error {
	addr, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	addr.RawQuery = q.build().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("stormglass response")

	if resp.StatusCode == http.StatusPaymentRequired {
		return ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

package weatherapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Place is one result from the location search endpoint.
type Place struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// Client talks to the WeatherAPI.com v1 endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client for api.weatherapi.com. Requests are rate
// limited to stay inside the free-tier allowance.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: "https://api.weatherapi.com/v1",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "skycast/1.0 (github.com/skycast/skycast)",
		limiter:   rate.NewLimiter(rate.Limit(1), 3),
		logger:    logger,
	}
}

// Forecast fetches and decodes a multi-day forecast for a coordinate.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*Snapshot, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", fmt.Sprintf("%.4f,%.4f", lat, lon))
	params.Set("days", fmt.Sprintf("%d", days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	body, err := c.get(ctx, "/forecast.json", params)
	if err != nil {
		return nil, err
	}

	snapshot, err := Decode(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("forecast fetched",
		"location", snapshot.Location.Name,
		"days", len(snapshot.Days()),
		"condition", snapshot.Current.Condition.Text)

	return snapshot, nil
}

// Search resolves a free-text place query to candidate locations.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)

	body, err := c.get(ctx, "/search.json", params)
	if err != nil {
		return nil, err
	}

	places, err := decodePlaces(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("search completed", "query", query, "results", len(places))
	return places, nil
}

// get performs one rate-limited GET and returns the response bytes.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

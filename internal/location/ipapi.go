package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const ipAPIURL = "http://ip-api.com/json/"

// IPLocator resolves the machine's approximate coordinate from its
// public IP address. It emits a single fix; a terminal has no GPS to
// keep streaming from.
type IPLocator struct {
	baseURL    string
	httpClient *http.Client
	stopOnce   sync.Once
	stopped    chan struct{}
}

// NewIPLocator creates an IP-geolocation provider.
func NewIPLocator() *IPLocator {
	return &IPLocator{
		baseURL: ipAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		stopped: make(chan struct{}),
	}
}

// ipAPIResponse is the subset of the ip-api.com payload we read.
type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Region  string  `json:"regionName"`
}

// Start implements Provider. The lookup runs in the background and the
// single result is delivered on the returned channel.
func (l *IPLocator) Start(ctx context.Context) (<-chan Fix, error) {
	ch := make(chan Fix, 1)

	go func() {
		defer close(ch)

		fix, err := l.locate(ctx)
		if err != nil {
			return
		}

		select {
		case ch <- *fix:
		case <-l.stopped:
		case <-ctx.Done():
		}
	}()

	return ch, nil
}

// Stop implements Provider.
func (l *IPLocator) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopped)
	})
}

// locate performs the one-shot IP geolocation request.
func (l *IPLocator) locate(ctx context.Context) (*Fix, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", l.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch geolocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if body.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", body.Message)
	}

	name := body.City
	if name != "" && body.Region != "" {
		name = fmt.Sprintf("%s, %s", body.City, body.Region)
	}

	return &Fix{
		Latitude:  body.Lat,
		Longitude: body.Lon,
		Name:      name,
	}, nil
}

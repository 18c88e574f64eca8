package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key", nil)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.baseURL != "https://api.weatherapi.com/v1" {
		t.Errorf("baseURL = %s, want https://api.weatherapi.com/v1", client.baseURL)
	}

	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", client.httpClient.Timeout)
	}

	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}

	if client.logger == nil {
		t.Error("nil logger should be replaced with a discarding one")
	}
}

func TestClient_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast.json" {
			t.Errorf("path = %s, want /forecast.json", r.URL.Path)
		}

		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}

		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("key = %s, want test-key", q.Get("key"))
		}
		if q.Get("q") != "41.1500,-8.6200" {
			t.Errorf("q = %s, want 41.1500,-8.6200", q.Get("q"))
		}
		if q.Get("days") != "7" {
			t.Errorf("days = %s, want 7", q.Get("days"))
		}
		if q.Get("aqi") != "no" || q.Get("alerts") != "no" {
			t.Error("aqi and alerts must both be no")
		}

		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/forecast_response.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient("test-key", nil)
	client.baseURL = server.URL

	ctx := context.Background()
	snapshot, err := client.Forecast(ctx, 41.15, -8.62, 7)

	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if snapshot.Location.Name != "Porto" {
		t.Errorf("Location.Name = %s, want Porto", snapshot.Location.Name)
	}

	if len(snapshot.Days()) != 2 {
		t.Errorf("len(Days()) = %d, want 2", len(snapshot.Days()))
	}
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("path = %s, want /search.json", r.URL.Path)
		}

		if got := r.URL.Query().Get("q"); got != "Porto" {
			t.Errorf("q = %s, want Porto", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Porto", "region": "Porto", "country": "Portugal", "lat": 41.15, "lon": -8.62, "url": "porto-porto-portugal"},
			{"id": 2, "name": "Porto Alegre", "region": "Rio Grande do Sul", "country": "Brazil", "lat": -30.03, "lon": -51.22, "url": "porto-alegre-brazil"}
		]`))
	}))
	defer server.Close()

	client := NewClient("test-key", nil)
	client.baseURL = server.URL

	ctx := context.Background()
	places, err := client.Search(ctx, "Porto")

	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(places) != 2 {
		t.Fatalf("len(places) = %d, want 2", len(places))
	}

	if places[0].Name != "Porto" || places[0].Country != "Portugal" {
		t.Errorf("places[0] = %+v, want Porto, Portugal", places[0])
	}
}

func TestClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"401 unauthorized", http.StatusUnauthorized},
		{"403 key exceeded", http.StatusForbidden},
		{"500 server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error": {"code": 1002, "message": "nope"}}`))
			}))
			defer server.Close()

			client := NewClient("test-key", nil)
			client.baseURL = server.URL

			ctx := context.Background()
			if _, err := client.Forecast(ctx, 41.15, -8.62, 7); err == nil {
				t.Error("Forecast() expected error, got nil")
			}
		})
	}
}

func TestClient_DecodeFailureIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"location": {"name": "Porto"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", nil)
	client.baseURL = server.URL

	_, err := client.Forecast(context.Background(), 41.15, -8.62, 7)
	if err == nil {
		t.Fatal("Forecast() expected error, got nil")
	}

	if _, ok := err.(*DecodeError); !ok {
		t.Errorf("error type = %T, want *DecodeError", err)
	}
}

package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// scriptedProvider emits a fixed sequence of fixes and records Stop calls
type scriptedProvider struct {
	fixes   []Fix
	stopped int
}

func (p *scriptedProvider) Start(ctx context.Context) (<-chan Fix, error) {
	ch := make(chan Fix, len(p.fixes))
	for _, fix := range p.fixes {
		ch <- fix
	}
	close(ch)
	return ch, nil
}

func (p *scriptedProvider) Stop() {
	p.stopped++
}

func TestFirstFixConsumesOnlyFirst(t *testing.T) {
	provider := &scriptedProvider{fixes: []Fix{
		{Latitude: 41.15, Longitude: -8.62, Name: "Porto"},
		{Latitude: 38.72, Longitude: -9.14, Name: "Lisbon"},
		{Latitude: 40.42, Longitude: -3.70, Name: "Madrid"},
	}}

	fix, err := FirstFix(context.Background(), provider)
	if err != nil {
		t.Fatalf("FirstFix() error = %v", err)
	}

	if fix.Name != "Porto" {
		t.Errorf("fix.Name = %s, want Porto (the first emitted fix)", fix.Name)
	}

	if provider.stopped == 0 {
		t.Error("provider was not stopped after the first fix")
	}
}

func TestFirstFixNoFix(t *testing.T) {
	provider := &scriptedProvider{}

	if _, err := FirstFix(context.Background(), provider); err == nil {
		t.Error("FirstFix() expected error when provider closes without a fix")
	}
}

func TestFirstFixContextTimeout(t *testing.T) {
	// A provider that never emits
	provider := &blockingProvider{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := FirstFix(ctx, provider); err == nil {
		t.Error("FirstFix() expected error on context timeout")
	}
}

type blockingProvider struct{}

func (p *blockingProvider) Start(ctx context.Context) (<-chan Fix, error) {
	return make(chan Fix), nil
}

func (p *blockingProvider) Stop() {}

func TestStaticProvider(t *testing.T) {
	provider := &Static{Fix: Fix{Latitude: 41.15, Longitude: -8.62, Name: "Porto"}}

	fix, err := FirstFix(context.Background(), provider)
	if err != nil {
		t.Fatalf("FirstFix() error = %v", err)
	}

	if fix.Latitude != 41.15 || fix.Longitude != -8.62 {
		t.Errorf("fix = %+v, want the static coordinate", fix)
	}
}

func TestIPLocator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "success", "lat": 41.1496, "lon": -8.611, "city": "Porto", "regionName": "Porto"}`))
	}))
	defer server.Close()

	locator := NewIPLocator()
	locator.baseURL = server.URL

	fix, err := FirstFix(context.Background(), locator)
	if err != nil {
		t.Fatalf("FirstFix() error = %v", err)
	}

	if fix.Latitude != 41.1496 {
		t.Errorf("Latitude = %v, want 41.1496", fix.Latitude)
	}

	if fix.Name != "Porto, Porto" {
		t.Errorf("Name = %s, want Porto, Porto", fix.Name)
	}
}

func TestIPLocatorFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	}))
	defer server.Close()

	locator := NewIPLocator()
	locator.baseURL = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := FirstFix(ctx, locator); err == nil {
		t.Error("FirstFix() expected error on geolocation failure")
	}
}

// Package location acquires the coordinate the forecast is fetched for.
// Providers stream coordinate fixes; the application consumes exactly the
// first fix and tells the provider to stop, so one session triggers one
// forecast fetch no matter how many fixes arrive.
package location

import (
	"context"
	"fmt"
)

// Fix is a single located coordinate.
type Fix struct {
	Latitude  float64
	Longitude float64
	Name      string // human-readable place, may be empty
}

// Provider emits coordinate fixes until stopped.
type Provider interface {
	// Start begins emitting fixes on the returned channel. The channel
	// is closed when the provider stops or fails.
	Start(ctx context.Context) (<-chan Fix, error)

	// Stop halts fix delivery. Safe to call more than once.
	Stop()
}

// FirstFix consumes the first fix from a provider and stops it. Fixes
// delivered after the first are ignored.
func FirstFix(ctx context.Context, p Provider) (*Fix, error) {
	fixes, err := p.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting location provider: %w", err)
	}
	defer p.Stop()

	select {
	case fix, ok := <-fixes:
		if !ok {
			return nil, fmt.Errorf("location provider stopped without a fix")
		}
		return &fix, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for location fix: %w", ctx.Err())
	}
}

// Static is a Provider that always reports one fixed coordinate, used
// when the user supplies --lat/--lon or picks a searched place.
type Static struct {
	Fix Fix
}

// Start implements Provider.
func (s *Static) Start(ctx context.Context) (<-chan Fix, error) {
	ch := make(chan Fix, 1)
	ch <- s.Fix
	close(ch)
	return ch, nil
}

// Stop implements Provider.
func (s *Static) Stop() {}

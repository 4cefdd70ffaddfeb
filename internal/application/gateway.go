// internal/application/gateway.go
package application

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"business-registry/internal/models"

	"github.com/google/uuid"
)

// Result is the tagged success payload of a gateway call.
type Result struct {
	ID string
}

// Gateway is the remote registry the pipeline submits to. The binary picks
// HTTPGateway when a registry endpoint is configured and the simulated
// implementation otherwise.
type Gateway interface {
	Submit(ctx context.Context, app models.Application) (Result, error)
}

// SimulatedGateway stands in for the registry round trip: a fixed delay,
// then either a server-style id or an injected failure.
type SimulatedGateway struct {
	delay       time.Duration
	failureRate float64
	randFloat   func() float64
}

// SimulatedGatewayOption customizes a SimulatedGateway.
type SimulatedGatewayOption func(*SimulatedGateway)

// WithRandSource overrides the failure draw, used by tests for determinism.
func WithRandSource(f func() float64) SimulatedGatewayOption {
	return func(g *SimulatedGateway) { g.randFloat = f }
}

func NewSimulatedGateway(delay time.Duration, failureRate float64, opts ...SimulatedGatewayOption) *SimulatedGateway {
	g := &SimulatedGateway{
		delay:       delay,
		failureRate: failureRate,
		randFloat:   rand.Float64,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SimulatedGateway) Submit(ctx context.Context, _ models.Application) (Result, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	if g.failureRate > 0 && g.randFloat() < g.failureRate {
		return Result{}, fmt.Errorf("registry gateway rejected the submission")
	}
	return Result{ID: "app_" + uuid.New().String()}, nil
}

package services

import (
	"context"
	"sync"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	loadSuccess = "success"
	loadFailure = "failure"
	loadStale   = "stale"
)

var tracer = otel.Tracer("github.com/elitemotors/storefront/internal/core/services")

// Catalog holds the most recently loaded inventory. Loads are numbered in
// issuance order and a response is installed only if no later-issued load
// has been installed already.
type Catalog struct {
	source  ports.CatalogSource
	logger  ports.LoggerPort
	metrics ports.MetricsPort

	mu       sync.Mutex
	issued   uint64
	applied  uint64
	vehicles []domain.Vehicle
}

func NewCatalog(source ports.CatalogSource, logger ports.LoggerPort, metrics ports.MetricsPort) *Catalog {
	return &Catalog{
		source:   source,
		logger:   logger,
		metrics:  metrics,
		vehicles: []domain.Vehicle{},
	}
}

// Load fetches the catalog and returns the installed snapshot. A failed
// fetch installs an empty catalog; the error is returned alongside it for
// logging only. A stale response returns the newer snapshot unchanged.
func (c *Catalog) Load(ctx context.Context) ([]domain.Vehicle, error) {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	ctx, span := tracer.Start(ctx, "catalog.load")
	defer span.End()

	vehicles, err := c.source.ListCars(ctx)
	result := loadSuccess
	if err != nil {
		c.logger.Warn("Failed to load catalog, showing empty inventory", map[string]interface{}{
			"error": err.Error(),
			"seq":   seq,
		})
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog load failed")
		vehicles = []domain.Vehicle{}
		result = loadFailure
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.applied {
		c.logger.Debug("Discarding stale catalog response", map[string]interface{}{
			"seq":     seq,
			"applied": c.applied,
		})
		c.metrics.RecordCatalogLoad(loadStale, len(vehicles))
		span.SetAttributes(attribute.Bool("catalog.stale", true))
		return c.vehicles, err
	}

	c.applied = seq
	c.vehicles = vehicles
	c.metrics.RecordCatalogLoad(result, len(vehicles))
	span.SetAttributes(attribute.Int("catalog.vehicles", len(vehicles)))

	return vehicles, err
}

// Current returns the installed snapshot without fetching.
func (c *Catalog) Current() []domain.Vehicle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vehicles
}

// Loaded reports whether any load has been installed.
func (c *Catalog) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied > 0
}

package services

import (
	"context"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/inventory"
	"github.com/elitemotors/storefront/internal/core/ports"
)

// VehicleView is a displayed vehicle decorated with presentation data.
type VehicleView struct {
	domain.Vehicle
	Brand      string `json:"brand"`
	IsFavorite bool   `json:"is_favorite"`
}

// InventoryView is one render of the inventory page.
type InventoryView struct {
	Vehicles      []VehicleView      `json:"vehicles"`
	Count         int                `json:"count"`
	Total         int                `json:"total"`
	Facets        inventory.Facets   `json:"facets"`
	ActiveFilters int                `json:"active_filters"`
	Filter        domain.FilterState `json:"filter"`
	Query         string             `json:"query"`
	CanFavorite   bool               `json:"can_favorite"`
}

type InventoryService struct {
	catalog   *Catalog
	favorites *FavoritesService
	logger    ports.LoggerPort
}

func NewInventoryService(catalog *Catalog, favorites *FavoritesService, logger ports.LoggerPort) *InventoryService {
	return &InventoryService{
		catalog:   catalog,
		favorites: favorites,
		logger:    logger,
	}
}

// Browse loads the catalog and renders it through filter. session may be
// nil; it only decorates the result.
func (s *InventoryService) Browse(ctx context.Context, filter domain.FilterState, session *domain.Session) *InventoryView {
	vehicles, _ := s.catalog.Load(ctx)
	return s.render(ctx, vehicles, filter, session)
}

// Refilter renders the installed catalog without fetching, loading it
// first if nothing has been installed yet.
func (s *InventoryService) Refilter(ctx context.Context, filter domain.FilterState, session *domain.Session) *InventoryView {
	if !s.catalog.Loaded() {
		return s.Browse(ctx, filter, session)
	}
	return s.render(ctx, s.catalog.Current(), filter, session)
}

// Reload replaces the catalog and returns the new facets.
func (s *InventoryService) Reload(ctx context.Context) (inventory.Facets, int) {
	vehicles, _ := s.catalog.Load(ctx)
	s.logger.Info("Catalog reloaded", map[string]interface{}{
		"vehicles": len(vehicles),
	})
	return inventory.ExtractFacets(vehicles), len(vehicles)
}

// Facets returns options for the installed catalog.
func (s *InventoryService) Facets(ctx context.Context) inventory.Facets {
	if !s.catalog.Loaded() {
		vehicles, _ := s.catalog.Load(ctx)
		return inventory.ExtractFacets(vehicles)
	}
	return inventory.ExtractFacets(s.catalog.Current())
}

func (s *InventoryService) render(
	ctx context.Context,
	catalog []domain.Vehicle,
	filter domain.FilterState,
	session *domain.Session,
) *InventoryView {
	result := inventory.Apply(catalog, filter)
	favorites := s.favorites.Overlay(ctx, session)

	views := make([]VehicleView, len(result))
	for i, v := range result {
		views[i] = VehicleView{
			Vehicle:    v,
			Brand:      inventory.DeriveBrand(v.Name),
			IsFavorite: favorites.Contains(v.ID),
		}
	}

	return &InventoryView{
		Vehicles:      views,
		Count:         len(views),
		Total:         len(catalog),
		Facets:        inventory.ExtractFacets(catalog),
		ActiveFilters: inventory.ActiveFilterCount(filter),
		Filter:        filter,
		Query:         inventory.Encode(filter).Encode(),
		CanFavorite:   session.IsCustomer(),
	}
}

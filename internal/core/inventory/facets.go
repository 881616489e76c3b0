package inventory

import (
	"sort"

	"github.com/elitemotors/storefront/internal/core/domain"
)

// minColorOptions is the number of distinct colors needed before the
// color facet is offered at all.
const minColorOptions = 2

// Facets holds the selectable options for each filterable attribute.
// Every list starts with domain.All. Colors is nil when the facet is hidden.
type Facets struct {
	Brands        []string `json:"brands"`
	FuelTypes     []string `json:"fuel_types"`
	Transmissions []string `json:"transmissions"`
	EngineSizes   []string `json:"engine_sizes"`
	Colors        []string `json:"colors,omitempty"`
	SortKeys      []string `json:"sort_keys"`
}

// ShowColor reports whether the color facet should be rendered.
func (f Facets) ShowColor() bool {
	return f.Colors != nil
}

// ExtractFacets derives option lists from the vehicles actually present.
func ExtractFacets(vehicles []domain.Vehicle) Facets {
	brands := make(map[string]struct{})
	fuels := make(map[string]struct{})
	transmissions := make(map[string]struct{})
	colors := make(map[string]struct{})

	for _, v := range vehicles {
		brands[DeriveBrand(v.Name)] = struct{}{}
		if v.Specs.Fuel != "" {
			fuels[v.Specs.Fuel] = struct{}{}
		}
		if v.Specs.Transmission != "" {
			transmissions[v.Specs.Transmission] = struct{}{}
		}
		if v.HasColor() {
			colors[*v.Color] = struct{}{}
		}
	}

	facets := Facets{
		Brands:        options(brands),
		FuelTypes:     options(fuels),
		Transmissions: options(transmissions),
		EngineSizes:   []string{domain.All},
	}
	for _, size := range domain.EngineSizes {
		facets.EngineSizes = append(facets.EngineSizes, string(size))
	}
	for _, key := range domain.SortKeys {
		facets.SortKeys = append(facets.SortKeys, string(key))
	}
	if len(colors) >= minColorOptions {
		facets.Colors = options(colors)
	}
	return facets
}

func options(values map[string]struct{}) []string {
	sorted := make([]string, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)
	return append([]string{domain.All}, sorted...)
}

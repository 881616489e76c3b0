package inventory

import (
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBrand(t *testing.T) {
	tests := map[string]string{
		"Mercedes-Benz S-Class":    "Mercedes-Benz",
		"BMW M4 Competition":       "BMW",
		"Porsche 911 Carrera":      "Porsche",
		"Land Rover Defender 110":  "Land Rover",
		"Range Rover Sport":        "Range Rover",
		"Custom Roadster":          OtherBrand,
		"bmw lowercase is unknown": OtherBrand,
		"":                         OtherBrand,
	}
	for name, want := range tests {
		assert.Equal(t, want, DeriveBrand(name), name)
	}
}

func TestMatchesEngineSize(t *testing.T) {
	tests := []struct {
		engine string
		bucket domain.EngineSize
		want   bool
	}{
		{"2.0L Turbo I4", domain.EngineSmall, true},
		{"1.5L Hybrid", domain.EngineSmall, true},
		{"12.0L Prototype", domain.EngineSmall, true},
		{"3.0L V6", domain.EngineMedium, true},
		{"2.5L Boxer", domain.EngineMedium, true},
		{"4.4L V8", domain.EngineLarge, true},
		{"4.4L V8", domain.EngineMedium, true},
		{"6.5L W12", domain.EngineLarge, true},
		{"Dual Motor", domain.EngineLarge, false},
		{"3.0L V6", domain.EngineSize("tiny"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesEngineSize(tt.engine, tt.bucket), "%s in %s", tt.engine, tt.bucket)
	}
}

func TestExtractFacets(t *testing.T) {
	facets := ExtractFacets(wideCatalog())

	assert.Equal(t, []string{"all", "Audi", "Lamborghini", "Mercedes-Benz", "Other", "Porsche", "Tesla"}, facets.Brands)
	assert.Equal(t, []string{"all", "Diesel", "Electric", "Gasoline"}, facets.FuelTypes)
	assert.Equal(t, []string{"all", "Automatic", "Manual", "PDK"}, facets.Transmissions)
	assert.Equal(t, []string{"all", "small", "medium", "large"}, facets.EngineSizes)
	assert.Equal(t, []string{"all", "Black", "Orange", "Silver"}, facets.Colors)
	assert.True(t, facets.ShowColor())
	assert.Len(t, facets.SortKeys, len(domain.SortKeys))
}

func TestExtractFacets_HidesColorBelowTwoColors(t *testing.T) {
	catalog := []domain.Vehicle{
		{ID: 1, Name: "BMW X5", Color: domain.StringPtr("Blue"), Specs: domain.Specs{Fuel: "Gasoline"}},
		{ID: 2, Name: "BMW X3", Specs: domain.Specs{Fuel: "Gasoline"}},
		{ID: 3, Name: "BMW i4", Color: domain.StringPtr(""), Specs: domain.Specs{Fuel: "Electric"}},
		{ID: 4, Name: "BMW X7", Color: domain.StringPtr("Blue")},
	}

	facets := ExtractFacets(catalog)

	assert.Nil(t, facets.Colors)
	assert.False(t, facets.ShowColor())
	assert.Equal(t, []string{"all", "BMW"}, facets.Brands)
	assert.Equal(t, []string{"all", "Electric", "Gasoline"}, facets.FuelTypes)
}

func TestExtractFacets_FollowsCatalog(t *testing.T) {
	first := ExtractFacets(wideCatalog())
	assert.Contains(t, first.Brands, "Lamborghini")

	reloaded := ExtractFacets(scenarioCatalog())
	assert.Equal(t, []string{"all", "BMW", "Tesla"}, reloaded.Brands)
	assert.NotContains(t, reloaded.Brands, "Lamborghini")
	assert.Nil(t, reloaded.Colors)
}

func TestExtractFacets_Empty(t *testing.T) {
	facets := ExtractFacets(nil)

	assert.Equal(t, []string{"all"}, facets.Brands)
	assert.Equal(t, []string{"all"}, facets.FuelTypes)
	assert.Equal(t, []string{"all"}, facets.Transmissions)
	assert.Nil(t, facets.Colors)
}

package inventory

import (
	"errors"
	"net/url"
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterState_Defaults(t *testing.T) {
	filter, err := ParseFilterState(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFilterState(), filter)
	assert.Equal(t, 0, ActiveFilterCount(filter))
}

func TestParseFilterState_AllParams(t *testing.T) {
	q := url.Values{
		"brand":        {"BMW"},
		"price_min":    {"10000"},
		"price_max":    {"90000"},
		"year_min":     {"2018"},
		"year_max":     {"2024"},
		"mileage_max":  {"30000"},
		"fuel":         {"Gasoline"},
		"transmission": {"Automatic"},
		"engine_size":  {"Medium"},
		"color":        {"Black"},
		"sort":         {"price-high"},
	}

	filter, err := ParseFilterState(q)

	require.NoError(t, err)
	assert.Equal(t, "BMW", filter.Brand)
	assert.Equal(t, 10000, *filter.PriceMin)
	assert.Equal(t, 90000, *filter.PriceMax)
	assert.Equal(t, 2018, *filter.YearMin)
	assert.Equal(t, 2024, *filter.YearMax)
	assert.Equal(t, 30000, *filter.MileageMax)
	assert.Equal(t, "Gasoline", filter.FuelType)
	assert.Equal(t, "Automatic", filter.Transmission)
	assert.Equal(t, "medium", filter.EngineSize)
	assert.Equal(t, "Black", filter.Color)
	assert.Equal(t, domain.SortPriceHigh, filter.Sort)
	assert.Equal(t, 8, ActiveFilterCount(filter))
}

func TestParseFilterState_MalformedMeansNoConstraint(t *testing.T) {
	q := url.Values{
		"price_min":   {"cheap"},
		"year_max":    {"2020.5"},
		"engine_size": {"gigantic"},
		"sort":        {"random"},
		"fuel":        {"Electric"},
	}

	filter, err := ParseFilterState(q)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Nil(t, filter.PriceMin)
	assert.Nil(t, filter.YearMax)
	assert.Equal(t, domain.All, filter.EngineSize)
	assert.Equal(t, domain.SortNewest, filter.Sort)
	assert.Equal(t, "Electric", filter.FuelType)
	assert.Equal(t, 1, ActiveFilterCount(filter))
}

func TestEncode_OnlyActiveFacets(t *testing.T) {
	filter := domain.DefaultFilterState()
	assert.Empty(t, Encode(filter))

	filter.Brand = "Porsche"
	filter.PriceMax = domain.IntPtr(120000)
	filter.Sort = domain.SortMileageLow

	assert.Equal(t, "brand=Porsche&price_max=120000&sort=mileage-low", Encode(filter).Encode())
}

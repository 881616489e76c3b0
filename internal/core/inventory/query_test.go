package inventory

import (
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID: 1, Name: "BMW M4 Competition", Price: 78000, Year: 2023, Mileage: 3000,
			Color: domain.StringPtr("Black"),
			Specs: domain.Specs{Engine: "3.0L Twin-Turbo I6", Transmission: "Automatic", Fuel: "Gasoline"},
		},
		{
			ID: 2, Name: "Tesla Model S Plaid", Price: 95000, Year: 2023, Mileage: 1200,
			Specs: domain.Specs{Engine: "Tri-Motor Electric", Transmission: "Automatic", Fuel: "Electric"},
		},
	}
}

func wideCatalog() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 3, Name: "Porsche 911 Carrera", Price: 115000, Year: 2023, Mileage: 4000, Color: domain.StringPtr("Silver"),
			Specs: domain.Specs{Engine: "3.0L Twin-Turbo Flat-6", Transmission: "PDK", Fuel: "Gasoline"}},
		{ID: 1, Name: "Mercedes-Benz S-Class", Price: 95000, Year: 2022, Mileage: 5000, Color: domain.StringPtr("Black"),
			Specs: domain.Specs{Engine: "3.0L V6", Transmission: "Automatic", Fuel: "Gasoline"}},
		{ID: 7, Name: "Lamborghini Huracan", Price: 240000, Year: 2021, Mileage: 9000, Color: domain.StringPtr("Orange"),
			Specs: domain.Specs{Engine: "5.2L V10", Transmission: "Automatic", Fuel: "Gasoline"}},
		{ID: 4, Name: "Audi A3", Price: 38000, Year: 2020, Mileage: 22000,
			Specs: domain.Specs{Engine: "2.0L TFSI", Transmission: "Manual", Fuel: "Gasoline"}},
		{ID: 5, Name: "Custom Roadster", Price: 95000, Year: 2019, Mileage: 15000, Color: domain.StringPtr(""),
			Specs: domain.Specs{Engine: "12.0L Prototype", Transmission: "Manual", Fuel: "Diesel"}},
		{ID: 2, Name: "Tesla Model 3", Price: 45000, Year: 2023, Mileage: 800, Color: domain.StringPtr("Black"),
			Specs: domain.Specs{Engine: "Dual Motor", Transmission: "Automatic", Fuel: "Electric"}},
	}
}

func ids(vehicles []domain.Vehicle) []int64 {
	out := make([]int64, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func filterWith(mutate func(f *domain.FilterState)) domain.FilterState {
	f := domain.DefaultFilterState()
	mutate(&f)
	return f
}

func TestApply_Scenarios(t *testing.T) {
	catalog := scenarioCatalog()

	tests := []struct {
		name   string
		filter domain.FilterState
		want   []int64
	}{
		{"fuel type", filterWith(func(f *domain.FilterState) { f.FuelType = "Gasoline" }), []int64{1}},
		{"price min", filterWith(func(f *domain.FilterState) { f.PriceMin = domain.IntPtr(80000) }), []int64{2}},
		{"color skips unset", filterWith(func(f *domain.FilterState) { f.Color = "Black" }), []int64{1}},
		{"price high", filterWith(func(f *domain.FilterState) { f.Sort = domain.SortPriceHigh }), []int64{2, 1}},
		{"defaults newest first", domain.DefaultFilterState(), []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(catalog, tt.filter)))
		})
	}
}

func TestApply_Filters(t *testing.T) {
	catalog := wideCatalog()

	tests := []struct {
		name   string
		filter domain.FilterState
		want   []int64
	}{
		{"brand", filterWith(func(f *domain.FilterState) { f.Brand = "Tesla" }), []int64{2}},
		{"brand other", filterWith(func(f *domain.FilterState) { f.Brand = OtherBrand }), []int64{5}},
		{"engine small is lexical", filterWith(func(f *domain.FilterState) { f.EngineSize = "small" }), []int64{5, 4}},
		{"engine medium", filterWith(func(f *domain.FilterState) { f.EngineSize = "medium" }), []int64{3, 1}},
		{"engine large", filterWith(func(f *domain.FilterState) { f.EngineSize = "large" }), []int64{7}},
		{"year range inclusive", filterWith(func(f *domain.FilterState) {
			f.YearMin = domain.IntPtr(2021)
			f.YearMax = domain.IntPtr(2022)
		}), []int64{7, 1}},
		{"price max inclusive", filterWith(func(f *domain.FilterState) { f.PriceMax = domain.IntPtr(45000) }), []int64{4, 2}},
		{"mileage max", filterWith(func(f *domain.FilterState) { f.MileageMax = domain.IntPtr(4000) }), []int64{3, 2}},
		{"transmission", filterWith(func(f *domain.FilterState) { f.Transmission = "Manual" }), []int64{5, 4}},
		{"blank color is no constraint", filterWith(func(f *domain.FilterState) { f.Color = "" }), []int64{7, 5, 4, 3, 2, 1}},
		{"conjunctive", filterWith(func(f *domain.FilterState) {
			f.FuelType = "Gasoline"
			f.Color = "Black"
			f.EngineSize = "medium"
		}), []int64{1}},
		{"unknown bucket matches nothing", filterWith(func(f *domain.FilterState) { f.EngineSize = "huge" }), []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(catalog, tt.filter)))
		})
	}
}

func TestApply_NoFalsePositivesOrNegatives(t *testing.T) {
	catalog := wideCatalog()
	filters := []domain.FilterState{
		domain.DefaultFilterState(),
		filterWith(func(f *domain.FilterState) { f.FuelType = "Gasoline" }),
		filterWith(func(f *domain.FilterState) { f.PriceMin = domain.IntPtr(90000); f.Sort = domain.SortMileageLow }),
		filterWith(func(f *domain.FilterState) { f.Color = "Black"; f.Sort = domain.SortYearOld }),
		filterWith(func(f *domain.FilterState) { f.EngineSize = "medium"; f.MileageMax = domain.IntPtr(4500) }),
	}

	for _, filter := range filters {
		result := Apply(catalog, filter)

		seen := make(map[int64]int)
		for _, v := range result {
			assert.True(t, Matches(v, filter), "vehicle %d should satisfy filter", v.ID)
			seen[v.ID]++
		}
		for _, v := range catalog {
			if Matches(v, filter) {
				assert.Equal(t, 1, seen[v.ID], "vehicle %d should appear exactly once", v.ID)
			} else {
				assert.Zero(t, seen[v.ID])
			}
		}
	}
}

func TestApply_IdempotentAndNonMutating(t *testing.T) {
	catalog := wideCatalog()
	before := ids(catalog)
	filter := filterWith(func(f *domain.FilterState) { f.Sort = domain.SortPriceLow })

	first := Apply(catalog, filter)
	_ = Apply(catalog, filterWith(func(f *domain.FilterState) { f.Brand = "Audi" }))
	second := Apply(catalog, filter)

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(catalog), "catalog order must not change")
}

func TestApply_StableSort(t *testing.T) {
	catalog := wideCatalog()

	// ids 1 and 5 share price 95000; 1 precedes 5 in catalog order
	result := Apply(catalog, filterWith(func(f *domain.FilterState) { f.Sort = domain.SortPriceHigh }))
	assert.Equal(t, []int64{7, 3, 1, 5, 2, 4}, ids(result))

	// ids 3 and 2 share year 2023
	result = Apply(catalog, filterWith(func(f *domain.FilterState) { f.Sort = domain.SortYearNew }))
	assert.Equal(t, []int64{3, 2, 1, 7, 4, 5}, ids(result))
}

func TestApply_SortKeys(t *testing.T) {
	catalog := wideCatalog()

	tests := []struct {
		key  domain.SortKey
		want []int64
	}{
		{domain.SortNewest, []int64{7, 5, 4, 3, 2, 1}},
		{domain.SortPriceLow, []int64{4, 2, 1, 5, 3, 7}},
		{domain.SortYearOld, []int64{5, 4, 7, 1, 3, 2}},
		{domain.SortMileageLow, []int64{2, 3, 1, 7, 5, 4}},
		{domain.SortMileageHigh, []int64{4, 5, 7, 1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			result := Apply(catalog, filterWith(func(f *domain.FilterState) { f.Sort = tt.key }))
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestApply_EmptyCatalog(t *testing.T) {
	result := Apply(nil, domain.DefaultFilterState())
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(domain.DefaultFilterState()))
	assert.Equal(t, 0, ActiveFilterCount(filterWith(func(f *domain.FilterState) { f.Sort = domain.SortPriceHigh })))

	f := domain.DefaultFilterState()
	steps := []func(f *domain.FilterState){
		func(f *domain.FilterState) { f.Brand = "BMW" },
		func(f *domain.FilterState) { f.PriceMin = domain.IntPtr(10000) },
		func(f *domain.FilterState) { f.YearMax = domain.IntPtr(2024) },
		func(f *domain.FilterState) { f.MileageMax = domain.IntPtr(50000) },
		func(f *domain.FilterState) { f.FuelType = "Gasoline" },
		func(f *domain.FilterState) { f.Transmission = "Automatic" },
		func(f *domain.FilterState) { f.EngineSize = "large" },
		func(f *domain.FilterState) { f.Color = "Red" },
	}
	for i, step := range steps {
		step(&f)
		assert.Equal(t, i+1, ActiveFilterCount(f))
	}

	// the other side of an active range does not add another facet
	f.PriceMax = domain.IntPtr(90000)
	f.YearMin = domain.IntPtr(2010)
	assert.Equal(t, len(steps), ActiveFilterCount(f))
}

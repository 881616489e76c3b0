package inventory

import (
	"cmp"
	"slices"

	"github.com/elitemotors/storefront/internal/core/domain"
)

// Apply filters the catalog by every active facet and orders the result by
// the selected sort key. It never mutates the catalog; ties keep catalog order.
func Apply(catalog []domain.Vehicle, filter domain.FilterState) []domain.Vehicle {
	result := make([]domain.Vehicle, 0, len(catalog))
	for _, v := range catalog {
		if Matches(v, filter) {
			result = append(result, v)
		}
	}
	slices.SortStableFunc(result, comparator(filter.Sort))
	return result
}

// Matches reports whether v satisfies every active predicate of filter.
func Matches(v domain.Vehicle, filter domain.FilterState) bool {
	if active(filter.Brand) && DeriveBrand(v.Name) != filter.Brand {
		return false
	}
	if active(filter.EngineSize) && !MatchesEngineSize(v.Specs.Engine, domain.EngineSize(filter.EngineSize)) {
		return false
	}
	if active(filter.Color) && (!v.HasColor() || *v.Color != filter.Color) {
		return false
	}
	if !inRange(v.Price, filter.PriceMin, filter.PriceMax) {
		return false
	}
	if !inRange(v.Year, filter.YearMin, filter.YearMax) {
		return false
	}
	if !inRange(v.Mileage, nil, filter.MileageMax) {
		return false
	}
	if active(filter.FuelType) && v.Specs.Fuel != filter.FuelType {
		return false
	}
	if active(filter.Transmission) && v.Specs.Transmission != filter.Transmission {
		return false
	}
	return true
}

// ActiveFilterCount counts the facets that constrain the result. Each
// min/max pair counts once. The sort key is not a filter.
func ActiveFilterCount(filter domain.FilterState) int {
	count := 0
	for _, value := range []string{filter.Brand, filter.FuelType, filter.Transmission, filter.EngineSize, filter.Color} {
		if active(value) {
			count++
		}
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		count++
	}
	if filter.YearMin != nil || filter.YearMax != nil {
		count++
	}
	if filter.MileageMax != nil {
		count++
	}
	return count
}

func active(value string) bool {
	return value != "" && value != domain.All
}

func inRange(value int, lo, hi *int) bool {
	if lo != nil && value < *lo {
		return false
	}
	if hi != nil && value > *hi {
		return false
	}
	return true
}

func comparator(key domain.SortKey) func(a, b domain.Vehicle) int {
	switch key {
	case domain.SortPriceLow:
		return func(a, b domain.Vehicle) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceHigh:
		return func(a, b domain.Vehicle) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortYearOld:
		return func(a, b domain.Vehicle) int { return cmp.Compare(a.Year, b.Year) }
	case domain.SortYearNew:
		return func(a, b domain.Vehicle) int { return cmp.Compare(b.Year, a.Year) }
	case domain.SortMileageLow:
		return func(a, b domain.Vehicle) int { return cmp.Compare(a.Mileage, b.Mileage) }
	case domain.SortMileageHigh:
		return func(a, b domain.Vehicle) int { return cmp.Compare(b.Mileage, a.Mileage) }
	default:
		// id stands in for insertion order
		return func(a, b domain.Vehicle) int { return cmp.Compare(b.ID, a.ID) }
	}
}

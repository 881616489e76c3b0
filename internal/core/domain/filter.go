package domain

// All is the "no constraint" value for single-choice facets.
const All = "all"

type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortYearOld     SortKey = "year-old"
	SortYearNew     SortKey = "year-new"
	SortMileageLow  SortKey = "mileage-low"
	SortMileageHigh SortKey = "mileage-high"
)

// SortKeys lists the accepted sort keys in display order.
var SortKeys = []SortKey{
	SortNewest,
	SortPriceLow,
	SortPriceHigh,
	SortYearOld,
	SortYearNew,
	SortMileageLow,
	SortMileageHigh,
}

func (k SortKey) Valid() bool {
	for _, key := range SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

type EngineSize string

const (
	EngineSmall  EngineSize = "small"
	EngineMedium EngineSize = "medium"
	EngineLarge  EngineSize = "large"
)

// EngineSizes lists the selectable engine-size buckets.
var EngineSizes = []EngineSize{EngineSmall, EngineMedium, EngineLarge}

// FilterState is the read-side predicate and ordering for the inventory
// view. A nil bound means unbounded on that side.
type FilterState struct {
	Brand        string  `json:"brand"`
	PriceMin     *int    `json:"price_min,omitempty"`
	PriceMax     *int    `json:"price_max,omitempty"`
	YearMin      *int    `json:"year_min,omitempty"`
	YearMax      *int    `json:"year_max,omitempty"`
	MileageMax   *int    `json:"mileage_max,omitempty"`
	FuelType     string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	EngineSize   string  `json:"engine_size"`
	Color        string  `json:"color"`
	Sort         SortKey `json:"sort"`
}

// DefaultFilterState returns the all-defaults state a view starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		Brand:        All,
		FuelType:     All,
		Transmission: All,
		EngineSize:   All,
		Color:        All,
		Sort:         SortNewest,
	}
}

// IntPtr is a helper for optional bounds.
func IntPtr(i int) *int {
	return &i
}

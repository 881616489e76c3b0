package inventory

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/elitemotors/storefront/internal/core/domain"
)

// Query parameter names understood by ParseFilterState.
const (
	ParamBrand        = "brand"
	ParamPriceMin     = "price_min"
	ParamPriceMax     = "price_max"
	ParamYearMin      = "year_min"
	ParamYearMax      = "year_max"
	ParamMileageMax   = "mileage_max"
	ParamFuel         = "fuel"
	ParamTransmission = "transmission"
	ParamEngineSize   = "engine_size"
	ParamColor        = "color"
	ParamSort         = "sort"
)

// ParseFilterState builds a FilterState from query parameters. Malformed
// values leave their facet unconstrained; the returned error lists them
// (wrapping domain.ErrValidation) and is advisory only.
func ParseFilterState(q url.Values) (domain.FilterState, error) {
	filter := domain.DefaultFilterState()
	var errs []error

	choice := func(name string, dst *string) {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			*dst = v
		}
	}
	bound := func(name string, dst **int) {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q is not a number", domain.ErrValidation, name, raw))
			return
		}
		*dst = &n
	}

	choice(ParamBrand, &filter.Brand)
	choice(ParamFuel, &filter.FuelType)
	choice(ParamTransmission, &filter.Transmission)
	choice(ParamColor, &filter.Color)

	bound(ParamPriceMin, &filter.PriceMin)
	bound(ParamPriceMax, &filter.PriceMax)
	bound(ParamYearMin, &filter.YearMin)
	bound(ParamYearMax, &filter.YearMax)
	bound(ParamMileageMax, &filter.MileageMax)

	if raw := strings.ToLower(strings.TrimSpace(q.Get(ParamEngineSize))); raw != "" && raw != domain.All {
		if _, ok := engineTokens[domain.EngineSize(raw)]; ok {
			filter.EngineSize = raw
		} else {
			errs = append(errs, fmt.Errorf("%w: unknown engine size %q", domain.ErrValidation, raw))
		}
	}

	if raw := strings.TrimSpace(q.Get(ParamSort)); raw != "" {
		if key := domain.SortKey(raw); key.Valid() {
			filter.Sort = key
		} else {
			errs = append(errs, fmt.Errorf("%w: unknown sort key %q", domain.ErrValidation, raw))
		}
	}

	return filter, errors.Join(errs...)
}

// Encode renders the non-default parts of filter as query parameters.
func Encode(filter domain.FilterState) url.Values {
	q := url.Values{}
	set := func(name, value string) {
		if active(value) {
			q.Set(name, value)
		}
	}
	setInt := func(name string, value *int) {
		if value != nil {
			q.Set(name, strconv.Itoa(*value))
		}
	}
	set(ParamBrand, filter.Brand)
	setInt(ParamPriceMin, filter.PriceMin)
	setInt(ParamPriceMax, filter.PriceMax)
	setInt(ParamYearMin, filter.YearMin)
	setInt(ParamYearMax, filter.YearMax)
	setInt(ParamMileageMax, filter.MileageMax)
	set(ParamFuel, filter.FuelType)
	set(ParamTransmission, filter.Transmission)
	set(ParamEngineSize, filter.EngineSize)
	set(ParamColor, filter.Color)
	if filter.Sort != "" && filter.Sort != domain.SortNewest {
		q.Set(ParamSort, string(filter.Sort))
	}
	return q
}

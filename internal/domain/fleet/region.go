package fleet

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrCityNotInRegion = errors.New("city does not belong to region")
	ErrMissingRegion   = errors.New("region is required")
	ErrMissingCity     = errors.New("city is required")
)

// regionCities is the static region -> city membership table. Booking
// intake re-validates against it as a safety invariant, not a UX check.
var regionCities = map[string][]string{
	"North": {
		"Delhi", "Noida", "Gurgaon", "Chandigarh", "Jaipur",
		"Lucknow", "Agra", "Amritsar", "Dehradun",
	},
	"South": {
		"Bangalore", "Chennai", "Hyderabad", "Kochi", "Coimbatore",
		"Mysore", "Trivandrum", "Visakhapatnam", "Mangalore",
	},
	"East": {
		"Kolkata", "Bhubaneswar", "Guwahati", "Patna", "Ranchi",
		"Siliguri", "Imphal", "Shillong",
	},
	"West": {
		"Mumbai", "Pune", "Ahmedabad", "Goa", "Navi Mumbai",
	},
}

func ValidRegions() []string {
	regions := make([]string, 0, len(regionCities))
	for r := range regionCities {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

func CitiesForRegion(region string) []string {
	return regionCities[region]
}

func IsValidRegion(region string) bool {
	_, ok := regionCities[region]
	return ok
}

// ValidateRegionCity checks that the city belongs to the region,
// case-insensitively on the city name.
func ValidateRegionCity(region, city string) error {
	if region == "" {
		return ErrMissingRegion
	}
	cities, ok := regionCities[region]
	if !ok {
		return ErrUnknownRegion
	}
	if city == "" {
		return ErrMissingCity
	}
	for _, c := range cities {
		if strings.EqualFold(c, city) {
			return nil
		}
	}
	return ErrCityNotInRegion
}

//go:build unit

package fleet_test

import (
	"testing"

	"fleetbook/internal/domain/fleet"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegionCity(t *testing.T) {
	cases := []struct {
		name   string
		region string
		city   string
		errIs  error
	}{
		{"valid pair", "South", "Bangalore", nil},
		{"case-insensitive city", "West", "mumbai", nil},
		{"city from another region", "North", "Chennai", fleet.ErrCityNotInRegion},
		{"unknown region", "Central", "Delhi", fleet.ErrUnknownRegion},
		{"missing region", "", "Delhi", fleet.ErrMissingRegion},
		{"missing city", "East", "", fleet.ErrMissingCity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := fleet.ValidateRegionCity(tc.region, tc.city)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestValidRegions(t *testing.T) {
	assert.Equal(t, []string{"East", "North", "South", "West"}, fleet.ValidRegions())
	assert.True(t, fleet.IsValidRegion("North"))
	assert.False(t, fleet.IsValidRegion("north"))
	assert.Contains(t, fleet.CitiesForRegion("East"), "Kolkata")
}

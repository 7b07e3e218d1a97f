package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Validate(t *testing.T) {
	lat := 35.0
	tests := []struct {
		name      string
		location  *Location
		wantField string
	}{
		{name: "valid", location: NewLocation(37.7749, -122.4194)},
		{name: "origin is valid", location: NewLocation(0, 0)},
		{name: "boundaries are valid", location: NewLocation(-90, 180)},
		{name: "nil location", location: nil, wantField: "location"},
		{name: "missing latitude", location: &Location{}, wantField: "latitude"},
		{name: "missing longitude", location: &Location{Latitude: &lat}, wantField: "longitude"},
		{name: "latitude too large", location: NewLocation(90.0001, 0), wantField: "latitude"},
		{name: "longitude too small", location: NewLocation(0, -180.5), wantField: "longitude"},
		{name: "NaN latitude", location: NewLocation(math.NaN(), 0), wantField: "latitude"},
		{name: "infinite longitude", location: NewLocation(0, math.Inf(1)), wantField: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.location.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestLocation_ToPoint(t *testing.T) {
	point := NewLocation(37.7749, -122.4194).ToPoint()
	assert.Equal(t, 37.7749, point.Lat())
	assert.Equal(t, -122.4194, point.Lon())
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BuddyMap-App/internal/domain/model"
)

type stubLocationService struct {
	calls    int
	deadline bool
}

func (s *stubLocationService) LookupLocation(ctx context.Context, loc *model.Location) (*model.LocationResult, error) {
	s.calls++
	_, s.deadline = ctx.Deadline()
	return &model.LocationResult{Latitude: *loc.Latitude, Longitude: *loc.Longitude, Location: "Kyoto, Japan"}, nil
}

type stubNearbyPlacesFinder struct {
	calls int
	point orb.Point
}

func (s *stubNearbyPlacesFinder) FindNearbyPlaces(ctx context.Context, point orb.Point) ([]model.PlaceEntry, error) {
	s.calls++
	s.point = point
	return []model.PlaceEntry{"Restaurant: Joe's Diner"}, nil
}

func TestBuddyMapUseCase_LookupLocation(t *testing.T) {
	locationService := &stubLocationService{}
	u := NewBuddyMapUseCase(locationService, &stubNearbyPlacesFinder{}, 5*time.Second)

	result, err := u.LookupLocation(context.Background(), model.NewLocation(35.004573, 135.768799))
	require.NoError(t, err)
	assert.Equal(t, 35.004573, result.Latitude)
	assert.Equal(t, 135.768799, result.Longitude)
	assert.True(t, locationService.deadline, "request deadline should be applied")
}

func TestBuddyMapUseCase_FindNearbyPlaces(t *testing.T) {
	finder := &stubNearbyPlacesFinder{}
	u := NewBuddyMapUseCase(&stubLocationService{}, finder, 0)

	entries, err := u.FindNearbyPlaces(context.Background(), model.NewLocation(35.004573, 135.768799))
	require.NoError(t, err)
	assert.Equal(t, []model.PlaceEntry{"Restaurant: Joe's Diner"}, entries)
	assert.Equal(t, orb.Point{135.768799, 35.004573}, finder.point)
}

func TestBuddyMapUseCase_RejectsInvalidLocationBeforeCalls(t *testing.T) {
	locationService := &stubLocationService{}
	finder := &stubNearbyPlacesFinder{}
	u := NewBuddyMapUseCase(locationService, finder, time.Second)

	_, err := u.LookupLocation(context.Background(), model.NewLocation(123, 0))
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = u.FindNearbyPlaces(context.Background(), &model.Location{})
	assert.ErrorAs(t, err, &validationErr)

	assert.Zero(t, locationService.calls)
	assert.Zero(t, finder.calls)
}

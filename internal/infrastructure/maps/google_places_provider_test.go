package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BuddyMap-App/internal/domain/model"
)

var sanFrancisco = orb.Point{-122.4194, 37.7749}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GooglePlacesProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGooglePlacesProvider("test-key", 2*time.Second, WithBaseURL(server.URL))
}

func TestNearbySearchRequest_Query(t *testing.T) {
	req := NearbySearchRequest{Point: sanFrancisco, Category: model.CategoryBookStore, RadiusMeters: 1500}
	require.NoError(t, req.Validate())

	query := req.Query("secret")
	assert.Equal(t, "37.7749,-122.4194", query.Get("location"))
	assert.Equal(t, "1500", query.Get("radius"))
	assert.Equal(t, "book_store", query.Get("type"))
	assert.Equal(t, "secret", query.Get("key"))
}

func TestNearbySearchRequest_Validate(t *testing.T) {
	err := NearbySearchRequest{Point: sanFrancisco, Category: "library", RadiusMeters: 1500}.Validate()
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	err = NearbySearchRequest{Point: sanFrancisco, Category: model.CategoryRestaurant}.Validate()
	assert.Error(t, err)
}

func TestGooglePlacesProvider_SearchNearby(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		assert.Equal(t, "37.7749,-122.4194", r.URL.Query().Get("location"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"name": "Joe's Diner", "place_id": "p1"},
				{"place_id": "p2"},
				{"name": "", "place_id": "p3"},
				{"name": "Zuni Cafe", "place_id": "p4"}
			]
		}`))
	})

	venues, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryRestaurant, model.NearbySearchRadiusMeters)
	require.NoError(t, err)
	assert.Equal(t, []model.Venue{
		{Name: "Joe's Diner", PlaceID: "p1"},
		{Name: "Zuni Cafe", PlaceID: "p4"},
	}, venues)
}

func TestGooglePlacesProvider_ZeroResults(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	venues, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryShoppingMall, model.NearbySearchRadiusMeters)
	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestGooglePlacesProvider_Errors(t *testing.T) {
	t.Run("provider status", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`))
		})

		_, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryRestaurant, model.NearbySearchRadiusMeters)
		var providerErr *model.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "REQUEST_DENIED", providerErr.Status)
		assert.Equal(t, "The provided API key is invalid.", providerErr.Message)
	})

	t.Run("http status", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryRestaurant, model.NearbySearchRadiusMeters)
		var providerErr *model.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode)
	})

	t.Run("unknown category is rejected before any call", func(t *testing.T) {
		var calls int32
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		})

		_, err := provider.SearchNearby(context.Background(), sanFrancisco, "library", model.NearbySearchRadiusMeters)
		assert.ErrorIs(t, err, model.ErrUnknownCategory)
		assert.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(server.Close)
		provider := NewGooglePlacesProvider("test-key", 50*time.Millisecond, WithBaseURL(server.URL))

		_, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryRestaurant, model.NearbySearchRadiusMeters)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		var providerErr *model.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.True(t, providerErr.Timeout)
	})

	t.Run("unreachable server does not expose the api key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL
		server.Close()
		provider := NewGooglePlacesProvider("secret-places-key", time.Second, WithBaseURL(baseURL))

		_, err := provider.SearchNearby(context.Background(), sanFrancisco, model.CategoryRestaurant, model.NearbySearchRadiusMeters)
		var providerErr *model.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, model.StatusTransportError, providerErr.Status)
		assert.NotContains(t, err.Error(), "secret-places-key")
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
	})
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/paulmach/orb"

	"BuddyMap-App/internal/domain/model"
)

// fakePlacesRepository はカテゴリごとに結果・遅延・エラーを返すテスト用リポジトリ
type fakePlacesRepository struct {
	venues map[model.Category][]model.Venue
	delays map[model.Category]time.Duration
	errs   map[model.Category]error

	mu    sync.Mutex
	calls []model.Category
}

func (f *fakePlacesRepository) SearchNearby(ctx context.Context, point orb.Point, category model.Category, radiusMeters int) ([]model.Venue, error) {
	f.mu.Lock()
	f.calls = append(f.calls, category)
	f.mu.Unlock()

	if d := f.delays[category]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[category]; err != nil {
		return nil, err
	}
	return f.venues[category], nil
}

func (f *fakePlacesRepository) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeGeocodingRepository struct {
	address string
	err     error
	points  []orb.Point
}

func (f *fakeGeocodingRepository) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	f.points = append(f.points, point)
	if f.err != nil {
		return "", f.err
	}
	return f.address, nil
}

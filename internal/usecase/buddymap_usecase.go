package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/paulmach/orb"

	"BuddyMap-App/internal/domain/model"
)

type BuddyMapUseCase interface {
	// LookupLocation は座標を逆ジオコーディングして現在地情報を返す
	LookupLocation(ctx context.Context, req *model.Location) (*model.LocationResult, error)

	// FindNearbyPlaces は座標周辺の施設をカテゴリ順の表示用文字列一覧で返す
	FindNearbyPlaces(ctx context.Context, req *model.Location) ([]model.PlaceEntry, error)
}

// LocationLookupService は逆ジオコーディングを行うサービス
type LocationLookupService interface {
	LookupLocation(ctx context.Context, loc *model.Location) (*model.LocationResult, error)
}

// NearbyPlacesFinder は周辺施設を集約するサービス
type NearbyPlacesFinder interface {
	FindNearbyPlaces(ctx context.Context, point orb.Point) ([]model.PlaceEntry, error)
}

// buddyMapUseCaseImpl はBuddyMapUseCaseの実装
type buddyMapUseCaseImpl struct {
	locationService     LocationLookupService
	nearbyPlacesService NearbyPlacesFinder
	requestTimeout      time.Duration
}

// NewBuddyMapUseCase は新しいBuddyMapUseCaseインスタンスを作成
// requestTimeoutは1リクエスト内の外部API呼び出し全体に対する期限
func NewBuddyMapUseCase(locationService LocationLookupService, nearbyPlacesService NearbyPlacesFinder, requestTimeout time.Duration) BuddyMapUseCase {
	return &buddyMapUseCaseImpl{
		locationService:     locationService,
		nearbyPlacesService: nearbyPlacesService,
		requestTimeout:      requestTimeout,
	}
}

// LookupLocation は座標を逆ジオコーディングして現在地情報を返す
func (u *buddyMapUseCaseImpl) LookupLocation(ctx context.Context, req *model.Location) (*model.LocationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := u.withDeadline(ctx)
	defer cancel()

	log.Printf("📍 現在地取得開始 (lat=%f, lng=%f)", *req.Latitude, *req.Longitude)
	result, err := u.locationService.LookupLocation(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("現在地の取得に失敗: %w", err)
	}

	log.Printf("✅ 現在地取得完了: %s", result.Location)
	return result, nil
}

// FindNearbyPlaces は座標周辺の施設をカテゴリ順の表示用文字列一覧で返す
func (u *buddyMapUseCaseImpl) FindNearbyPlaces(ctx context.Context, req *model.Location) ([]model.PlaceEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := u.withDeadline(ctx)
	defer cancel()

	entries, err := u.nearbyPlacesService.FindNearbyPlaces(ctx, req.ToPoint())
	if err != nil {
		return nil, fmt.Errorf("周辺施設の取得に失敗: %w", err)
	}
	return entries, nil
}

func (u *buddyMapUseCaseImpl) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.requestTimeout)
}

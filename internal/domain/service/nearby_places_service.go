package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"BuddyMap-App/internal/domain/model"
	"BuddyMap-App/internal/domain/repository"
)

// NearbyPlacesService はカテゴリごとの周辺検索を並行実行し、表示順に集約する
type NearbyPlacesService struct {
	placesRepo     repository.PlacesRepository
	maxGoroutines  int
	callTimeout    time.Duration
	failureCounter metric.Int64Counter
}

// NewNearbyPlacesService は新しいNearbyPlacesServiceインスタンスを作成
func NewNearbyPlacesService(placesRepo repository.PlacesRepository, maxGoroutines int, callTimeout time.Duration) *NearbyPlacesService {
	if maxGoroutines <= 0 {
		maxGoroutines = len(model.AllCategories())
	}

	meter := otel.Meter("BuddyMap-App/internal/domain/service")
	failureCounter, err := meter.Int64Counter("buddymap.places.provider_failures",
		metric.WithDescription("Number of category searches skipped because the places provider failed"),
		metric.WithUnit("{failure}"))
	if err != nil {
		log.Printf("⚠️ メトリクスの初期化に失敗: %v", err)
	}

	return &NearbyPlacesService{
		placesRepo:     placesRepo,
		maxGoroutines:  maxGoroutines,
		callTimeout:    callTimeout,
		failureCounter: failureCounter,
	}
}

// categoryResult はカテゴリ単位の検索結果
type categoryResult struct {
	index    int
	category model.Category
	venues   []model.Venue
	err      error
}

// FindNearbyPlaces は全カテゴリの周辺施設を「カテゴリ表示名: 施設名」の一覧で返す
// 並び順はカテゴリの定義順、カテゴリ内はプロバイダの返却順
func (s *NearbyPlacesService) FindNearbyPlaces(ctx context.Context, point orb.Point) ([]model.PlaceEntry, error) {
	categories := model.AllCategories()
	log.Printf("🚀 周辺施設検索開始: %dカテゴリを並行検索 (lat=%f, lng=%f)", len(categories), point.Lat(), point.Lon())
	start := time.Now()

	// セマフォを使用して同時実行数を制限
	semaphore := make(chan struct{}, s.maxGoroutines)
	results := make(chan categoryResult, len(categories))
	var wg sync.WaitGroup

	for i, category := range categories {
		wg.Add(1)
		go func(idx int, c model.Category) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results <- categoryResult{index: idx, category: c, err: ctx.Err()}
				return
			}
			defer func() { <-semaphore }()

			results <- s.searchCategory(ctx, idx, c, point)
		}(i, category)
	}

	// 別のgoroutineでwaitしてチャンネルを閉じる
	go func() {
		wg.Wait()
		close(results)
	}()

	// 完了順ではなくカテゴリのインデックスで格納する
	venuesByCategory := make([][]model.Venue, len(categories))
	successCount := 0
	errorCount := 0
	for result := range results {
		if result.err != nil {
			errorCount++
			log.Printf("⚠️ カテゴリ %s の検索に失敗、スキップします: %v", result.category, result.err)
			if s.failureCounter != nil {
				s.failureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", string(result.category))))
			}
			continue
		}
		successCount++
		venuesByCategory[result.index] = result.venues
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, fmt.Errorf("周辺施設検索が中断されました: %w", ctx.Err())
	}

	entries := mergeVenues(categories, venuesByCategory)
	log.Printf("✅ 周辺施設検索完了: %v (成功:%d, 失敗:%d, %d件)", time.Since(start), successCount, errorCount, len(entries))
	return entries, nil
}

func (s *NearbyPlacesService) searchCategory(ctx context.Context, idx int, category model.Category, point orb.Point) categoryResult {
	callCtx := ctx
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	venues, err := s.placesRepo.SearchNearby(callCtx, point, category, model.NearbySearchRadiusMeters)
	if err != nil {
		return categoryResult{index: idx, category: category, err: err}
	}
	return categoryResult{index: idx, category: category, venues: venues}
}

// mergeVenues はカテゴリ順に施設を連結する（重複排除はしない）
func mergeVenues(categories []model.Category, venuesByCategory [][]model.Venue) []model.PlaceEntry {
	entries := make([]model.PlaceEntry, 0)
	for i, venues := range venuesByCategory {
		for _, venue := range venues {
			if venue.Name == "" {
				continue
			}
			entries = append(entries, model.NewPlaceEntry(categories[i], venue.Name))
		}
	}
	return entries
}

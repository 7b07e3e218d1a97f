package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"BuddyMap-App/internal/domain/model"
	"BuddyMap-App/internal/domain/repository"
)

// LocationService は座標から現在地の住所を解決する
type LocationService struct {
	geocodingRepo  repository.GeocodingRepository
	requestCounter metric.Int64Counter
}

// NewLocationService は新しいLocationServiceインスタンスを作成
func NewLocationService(geocodingRepo repository.GeocodingRepository) *LocationService {
	meter := otel.Meter("BuddyMap-App/internal/domain/service")
	requestCounter, err := meter.Int64Counter("buddymap.geocode.requests",
		metric.WithDescription("Number of reverse geocoding lookups by outcome"),
		metric.WithUnit("{request}"))
	if err != nil {
		log.Printf("⚠️ メトリクスの初期化に失敗: %v", err)
	}

	return &LocationService{
		geocodingRepo:  geocodingRepo,
		requestCounter: requestCounter,
	}
}

// LookupLocation は逆ジオコーディングを行い、入力座標をそのまま含む結果を返す
func (s *LocationService) LookupLocation(ctx context.Context, loc *model.Location) (*model.LocationResult, error) {
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return nil, &model.ValidationError{Field: "location", Message: "latitude and longitude are required"}
	}

	address, err := s.geocodingRepo.ReverseGeocode(ctx, loc.ToPoint())
	if err != nil {
		outcome := "error"
		if errors.Is(err, model.ErrGeocodeNoResult) {
			outcome = "no_result"
		}
		s.record(ctx, outcome)
		return nil, fmt.Errorf("逆ジオコーディングに失敗: %w", err)
	}
	s.record(ctx, "ok")

	return &model.LocationResult{
		Latitude:  *loc.Latitude,
		Longitude: *loc.Longitude,
		Location:  address,
	}, nil
}

func (s *LocationService) record(ctx context.Context, outcome string) {
	if s.requestCounter == nil {
		return
	}
	s.requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

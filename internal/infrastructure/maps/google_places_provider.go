package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"BuddyMap-App/internal/domain/model"
)

const (
	defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	providerName         = "google_places"
)

var tracer = otel.Tracer("BuddyMap-App/internal/infrastructure/maps")

// GooglePlacesProvider はGoogle Places API (Nearby Search) を使用した周辺施設検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option はプロバイダの設定を変更する
type Option func(*GooglePlacesProvider)

// WithBaseURL はエンドポイントを差し替える（テスト用）
func WithBaseURL(baseURL string) Option {
	return func(g *GooglePlacesProvider) {
		g.baseURL = baseURL
	}
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string, timeout time.Duration, opts ...Option) *GooglePlacesProvider {
	g := &GooglePlacesProvider{
		apiKey:  apiKey,
		baseURL: defaultPlacesBaseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SearchNearby はNearby Searchを呼び出して指定カテゴリの施設一覧を取得する
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, point orb.Point, category model.Category, radiusMeters int) ([]model.Venue, error) {
	ctx, span := tracer.Start(ctx, "google_places.nearby_search")
	defer span.End()
	span.SetAttributes(
		attribute.String("places.category", string(category)),
		attribute.Int("places.radius_meters", radiusMeters),
	)

	venues, err := g.searchNearby(ctx, NearbySearchRequest{
		Point:        point,
		Category:     category,
		RadiusMeters: radiusMeters,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("places.result_count", len(venues)))
	return venues, nil
}

func (g *GooglePlacesProvider) searchNearby(ctx context.Context, searchReq NearbySearchRequest) ([]model.Venue, error) {
	// 1. リクエストの検証
	if err := searchReq.Validate(); err != nil {
		return nil, err
	}
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, searchReq.Query(g.apiKey).Encode())

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, model.NewTransportError(providerName, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, model.NewTransportError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProviderError{Provider: providerName, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	// 3. JSONレスポンスをパース
	var apiResp googlePlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	switch apiResp.Status {
	case "", "OK", "ZERO_RESULTS":
	default:
		return nil, &model.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Status:     apiResp.Status,
			Message:    apiResp.ErrorMessage,
		}
	}

	// 4. 名前のない施設を除外してドメインモデルに変換
	venues := make([]model.Venue, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		if result.Name == "" {
			continue
		}
		venues = append(venues, model.Venue{Name: result.Name, PlaceID: result.PlaceID})
	}
	return venues, nil
}

// --- Google Places APIのレスポンスをパースするための構造体 ---

type googlePlacesResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
type placeResult struct {
	Name     string `json:"name"`
	PlaceID  string `json:"place_id"`
	Vicinity string `json:"vicinity,omitempty"`
}

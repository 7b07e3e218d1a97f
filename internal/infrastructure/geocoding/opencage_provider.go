package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"BuddyMap-App/internal/domain/model"
)

const (
	defaultOpenCageBaseURL = "https://api.opencagedata.com/geocode/v1/json"
	providerName           = "opencage"
)

var tracer = otel.Tracer("BuddyMap-App/internal/infrastructure/geocoding")

// OpenCageProvider はOpenCage Geocoding APIを使用した逆ジオコーディングの実装
type OpenCageProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option はプロバイダの設定を変更する
type Option func(*OpenCageProvider)

// WithBaseURL はエンドポイントを差し替える（テスト用）
func WithBaseURL(baseURL string) Option {
	return func(p *OpenCageProvider) {
		p.baseURL = baseURL
	}
}

// NewOpenCageProvider は新しいプロバイダを生成する
func NewOpenCageProvider(apiKey string, timeout time.Duration, opts ...Option) *OpenCageProvider {
	p := &OpenCageProvider{
		apiKey:  apiKey,
		baseURL: defaultOpenCageBaseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReverseGeocode は座標から住所を取得する（最上位の結果のみ使用）
func (p *OpenCageProvider) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	ctx, span := tracer.Start(ctx, "opencage.reverse_geocode")
	defer span.End()

	address, err := p.reverseGeocode(ctx, point)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return address, nil
}

func (p *OpenCageProvider) reverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	reqURL := fmt.Sprintf("%s?%s", p.baseURL, p.buildQuery(point).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", model.NewTransportError(providerName, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", model.NewTransportError(providerName, err)
	}
	defer resp.Body.Close()

	var apiResp openCageResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp)

	if resp.StatusCode != http.StatusOK {
		providerErr := &model.ProviderError{Provider: providerName, StatusCode: resp.StatusCode, Status: resp.Status}
		if decodeErr == nil {
			providerErr.Message = apiResp.Status.Message
		}
		return "", providerErr
	}
	if decodeErr != nil {
		return "", fmt.Errorf("JSONのパースに失敗: %w", decodeErr)
	}

	if len(apiResp.Results) == 0 || apiResp.Results[0].Formatted == "" {
		return "", model.ErrGeocodeNoResult
	}
	return apiResp.Results[0].Formatted, nil
}

func (p *OpenCageProvider) buildQuery(point orb.Point) url.Values {
	params := url.Values{}
	params.Set("q", strconv.FormatFloat(point.Lat(), 'f', -1, 64)+","+strconv.FormatFloat(point.Lon(), 'f', -1, 64))
	params.Set("key", p.apiKey)
	params.Set("no_annotations", "1")
	params.Set("limit", "1")
	return params
}

// --- OpenCage APIのレスポンスをパースするための構造体 ---

type openCageResponse struct {
	Results []openCageResult `json:"results"`
	Status  openCageStatus   `json:"status"`
}
type openCageResult struct {
	Formatted  string `json:"formatted"`
	Confidence int    `json:"confidence"`
}
type openCageStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

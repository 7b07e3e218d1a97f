package maps

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"

	"BuddyMap-App/internal/domain/model"
)

// NearbySearchRequest はPlaces API Nearby Searchのリクエストパラメータ
type NearbySearchRequest struct {
	Point        orb.Point
	Category     model.Category
	RadiusMeters int
}

// Validate はカテゴリと半径をチェックする
func (r NearbySearchRequest) Validate() error {
	if !r.Category.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, r.Category)
	}
	if r.RadiusMeters <= 0 {
		return fmt.Errorf("radiusは正の値が必要です: %d", r.RadiusMeters)
	}
	return nil
}

// Query はクエリパラメータを構築する
func (r NearbySearchRequest) Query(apiKey string) url.Values {
	params := url.Values{}
	params.Set("location", formatLatLng(r.Point))
	params.Set("radius", strconv.Itoa(r.RadiusMeters))
	params.Set("type", string(r.Category))
	params.Set("key", apiKey)
	return params
}

// formatLatLng は orb.Point を "lat,lng" 形式に変換する
func formatLatLng(p orb.Point) string {
	return strconv.FormatFloat(p.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}

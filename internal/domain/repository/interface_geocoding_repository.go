package repository

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocodingRepository は逆ジオコーディングの責務を持つリポジトリインターフェース
type GeocodingRepository interface {
	// ReverseGeocode は座標から最上位の住所文字列を取得する
	// 結果が0件の場合は model.ErrGeocodeNoResult を返す
	ReverseGeocode(ctx context.Context, point orb.Point) (string, error)
}

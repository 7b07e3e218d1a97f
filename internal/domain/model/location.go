package model

import (
	"math"

	"github.com/paulmach/orb"
)

// Location 端末から送信される緯度経度
// 0は有効な座標なのでポインタで未指定と区別する
type Location struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// NewLocation は緯度経度からLocationを作成
func NewLocation(lat, lng float64) *Location {
	return &Location{Latitude: &lat, Longitude: &lng}
}

// Validate は緯度経度の存在と範囲をチェックする
func (l *Location) Validate() error {
	if l == nil {
		return &ValidationError{Field: "location", Message: "latitude and longitude are required"}
	}
	if l.Latitude == nil {
		return &ValidationError{Field: "latitude", Message: "latitude is required"}
	}
	if l.Longitude == nil {
		return &ValidationError{Field: "longitude", Message: "longitude is required"}
	}

	lat, lng := *l.Latitude, *l.Longitude
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}
	return nil
}

// ToPoint Location を orb.Point（[lng, lat]）に変換
func (l *Location) ToPoint() orb.Point {
	if l.Latitude == nil || l.Longitude == nil {
		return orb.Point{}
	}
	return orb.Point{*l.Longitude, *l.Latitude}
}

// LocationResult /location のレスポンス
type LocationResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location"`
}

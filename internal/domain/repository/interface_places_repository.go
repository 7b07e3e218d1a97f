package repository

import (
	"context"

	"github.com/paulmach/orb"

	"BuddyMap-App/internal/domain/model"
)

// PlacesRepository は周辺施設検索の責務を持つリポジトリインターフェース
type PlacesRepository interface {
	// SearchNearby は指定カテゴリの周辺施設をプロバイダの順序のまま返す
	// 名前のない施設は含まない
	SearchNearby(ctx context.Context, point orb.Point, category model.Category, radiusMeters int) ([]model.Venue, error)
}

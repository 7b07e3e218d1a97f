package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NearbySearchRadiusMeters は周辺検索の半径（メートル）
const NearbySearchRadiusMeters = 1500

// Category はプレイス検索で使用する施設タイプ
type Category string

// CategoryConstants は周辺検索の対象カテゴリ
const (
	CategoryRestaurant           Category = "restaurant"
	CategorySupermarket          Category = "supermarket"
	CategoryBookStore            Category = "book_store"
	CategoryGroceryOrSupermarket Category = "grocery_or_supermarket"
	CategoryBeautySalon          Category = "beauty_salon"
	CategoryShoppingMall         Category = "shopping_mall"
)

// 表示順はこの並びで固定
var categoryOrder = []Category{
	CategoryRestaurant,
	CategorySupermarket,
	CategoryBookStore,
	CategoryGroceryOrSupermarket,
	CategoryBeautySalon,
	CategoryShoppingMall,
}

// AllCategories は全カテゴリを表示順で返す（呼び出し側で変更しても共有リストには影響しない）
func AllCategories() []Category {
	categories := make([]Category, len(categoryOrder))
	copy(categories, categoryOrder)
	return categories
}

// IsValid は既知のカテゴリかどうかを判定する
func (c Category) IsValid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName はカテゴリIDを表示名に変換する（例: book_store → Book Store）
func (c Category) DisplayName() string {
	words := strings.ReplaceAll(string(c), "_", " ")
	// cases.Caserはgoroutine間で共有できないため都度生成する
	return cases.Title(language.Und).String(words)
}

// PlaceEntry は「カテゴリ表示名: 施設名」形式の表示用文字列
type PlaceEntry string

// NewPlaceEntry はカテゴリと施設名から表示用エントリを作成
func NewPlaceEntry(category Category, name string) PlaceEntry {
	return PlaceEntry(category.DisplayName() + ": " + name)
}

// Venue はプレイス検索で返された施設
type Venue struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id,omitempty"`
}

package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"BuddyMap-App/internal/domain/model"
	"BuddyMap-App/internal/usecase"
)

// LocationHandler は現在地・周辺施設APIのハンドラー
type LocationHandler struct {
	useCase usecase.BuddyMapUseCase
}

// NewLocationHandler は新しいLocationHandlerインスタンスを作成
func NewLocationHandler(useCase usecase.BuddyMapUseCase) *LocationHandler {
	return &LocationHandler{
		useCase: useCase,
	}
}

// PostLocation POST /location - 座標から現在地の住所を取得
func (h *LocationHandler) PostLocation(c *gin.Context) {
	req, ok := bindLocation(c)
	if !ok {
		return
	}

	result, err := h.useCase.LookupLocation(c.Request.Context(), req)
	if err != nil {
		log.Printf("❌ [%s] 現在地取得失敗: %v", RequestID(c), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PostPlaces POST /places - 座標周辺の施設一覧を取得
func (h *LocationHandler) PostPlaces(c *gin.Context) {
	req, ok := bindLocation(c)
	if !ok {
		return
	}

	entries, err := h.useCase.FindNearbyPlaces(c.Request.Context(), req)
	if err != nil {
		log.Printf("❌ [%s] 周辺施設取得失敗: %v", RequestID(c), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// bindLocation はリクエストボディを解析し、外部API呼び出し前に座標を検証する
func bindLocation(c *gin.Context) (*model.Location, bool) {
	var req model.Location
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "latitude and longitude are required: " + err.Error(),
		})
		return nil, false
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return nil, false
	}
	return &req, true
}

// respondError はユースケースのエラーをHTTPステータスに変換する
func respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var providerErr *model.ProviderError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": validationErr.Error(),
		})
	case errors.Is(err, model.ErrGeocodeNoResult):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to get location details",
		})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error":   "provider_timeout",
			"message": "external provider did not respond in time",
		})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_error",
			"message": providerErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "internal server error",
		})
	}
}

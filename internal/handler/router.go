package handler

import (
	"github.com/gin-gonic/gin"

	"BuddyMap-App/internal/config"
	"BuddyMap-App/internal/usecase"
)

// NewRouter はGinルーターをセットアップする
func NewRouter(useCase usecase.BuddyMapUseCase) *gin.Engine {
	locationHandler := NewLocationHandler(useCase)

	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), TracingMiddleware(config.ServiceName), AccessLogMiddleware())

	r.GET("/", GetIndex)
	r.POST("/location", locationHandler.PostLocation)
	r.POST("/places", locationHandler.PostPlaces)

	api := r.Group("/api")
	{
		api.GET("/health", GetHealth)
	}

	return r
}

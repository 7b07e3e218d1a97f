package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"BuddyMap-App/internal/config"
)

//go:embed static/index.html
var indexHTML []byte

// GetIndex GET / - 位置情報取得ページを返す
func GetIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// GetHealth GET /api/health - ヘルスチェック
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": config.ServiceName,
	})
}

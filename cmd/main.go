package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"BuddyMap-App/internal/config"
	"BuddyMap-App/internal/domain/service"
	"BuddyMap-App/internal/handler"
	"BuddyMap-App/internal/infrastructure/geocoding"
	"BuddyMap-App/internal/infrastructure/maps"
	"BuddyMap-App/internal/infrastructure/telemetry"
	"BuddyMap-App/internal/usecase"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: GOOGLE_MAPS_API_KEY, OPENCAGE_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatalf("設定エラー: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	tracerProvider, err := telemetry.InitTracerProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("トレーサー初期化失敗: %v", err)
	}
	meterProvider, err := telemetry.InitMeterProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("メトリクス初期化失敗: %v", err)
	}

	// Dependency injection
	geocodingProvider := geocoding.NewOpenCageProvider(cfg.OpenCageAPIKey, cfg.ProviderTimeout)
	placesProvider := maps.NewGooglePlacesProvider(cfg.GoogleMapsAPIKey, cfg.ProviderTimeout)
	locationService := service.NewLocationService(geocodingProvider)
	nearbyPlacesService := service.NewNearbyPlacesService(placesProvider, cfg.PlacesConcurrency, cfg.ProviderTimeout)
	buddyMapUseCase := usecase.NewBuddyMapUseCase(locationService, nearbyPlacesService, cfg.RequestTimeout)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(buddyMapUseCase),
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	go func() {
		fmt.Printf("%s server starting on %s...\n", config.ServiceName, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバー起動失敗: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Received termination signal, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ HTTPサーバーの停止に失敗: %v", err)
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ メータープロバイダの停止に失敗: %v", err)
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ トレーサープロバイダの停止に失敗: %v", err)
	}

	log.Println("✅ サーバーを停止しました")
}

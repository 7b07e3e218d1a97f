package telemetry

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"

	"BuddyMap-App/internal/config"
)

// InitMeterProvider はメータープロバイダを初期化してグローバルに登録する
func InitMeterProvider(ctx context.Context, cfg *config.Config) (*metric.MeterProvider, error) {
	options := []metric.Option{
		metric.WithResource(serviceResource()),
	}

	if cfg.OTELCollectorURL != "" {
		exporterOpts := exporterOptions(cfg, otlpmetricgrpc.WithEndpoint, otlpmetricgrpc.WithInsecure, otlpmetricgrpc.WithTLSCredentials)
		metricExporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("OTELメトリクスエクスポーターの初期化に失敗: %w", err)
		}
		options = append(options, metric.WithReader(
			metric.NewPeriodicReader(metricExporter, metric.WithInterval(cfg.OTELMeterInterval)),
		))
		log.Printf("📡 メトリクスを %s に送信します", cfg.OTELCollectorURL)
	}

	meterProvider := metric.NewMeterProvider(options...)
	otel.SetMeterProvider(meterProvider)

	return meterProvider, nil
}

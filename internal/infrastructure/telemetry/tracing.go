package telemetry

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	"BuddyMap-App/internal/config"
)

// InitTracerProvider はトレーサープロバイダを初期化してグローバルに登録する
// OTEL_EXPORTER_OTLP_ENDPOINT が未設定の場合はエクスポートしない
func InitTracerProvider(ctx context.Context, cfg *config.Config) (*trace.TracerProvider, error) {
	options := []trace.TracerProviderOption{
		trace.WithSampler(trace.ParentBased(trace.AlwaysSample())),
		trace.WithResource(serviceResource()),
	}

	if cfg.OTELCollectorURL != "" {
		exporterOpts := exporterOptions(cfg, otlptracegrpc.WithEndpoint, otlptracegrpc.WithInsecure, otlptracegrpc.WithTLSCredentials)
		traceExporter, err := otlptracegrpc.New(ctx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("OTELトレースエクスポーターの初期化に失敗: %w", err)
		}
		options = append(options, trace.WithBatcher(traceExporter))
		log.Printf("📡 トレースを %s に送信します", cfg.OTELCollectorURL)
	}

	tracerProvider := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	)

	return tracerProvider, nil
}

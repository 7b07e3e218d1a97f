package telemetry

import (
	"google.golang.org/grpc/credentials"

	"BuddyMap-App/internal/config"
)

// exporterOptions はトレース・メトリクス共通のOTLP gRPC接続オプションを組み立てる
func exporterOptions[O any](
	cfg *config.Config,
	withEndpoint func(string) O,
	withInsecure func() O,
	withTLS func(credentials.TransportCredentials) O,
) []O {
	options := []O{withEndpoint(cfg.OTELCollectorURL)}

	if cfg.OTELExporterInsecure {
		return append(options, withInsecure())
	}
	return append(options, withTLS(credentials.NewClientTLSFromCert(nil, "")))
}

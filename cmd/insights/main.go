package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/ecoshop/backend/internal/adapters/tokenstore"
	"github.com/zatekoja/ecoshop/backend/internal/application/services"
	"github.com/zatekoja/ecoshop/backend/internal/domain/providers"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/clients/trackingapi"
	"github.com/zatekoja/ecoshop/backend/internal/infrastructure/observability"
	"github.com/zatekoja/ecoshop/backend/pkg/config"
	"github.com/zatekoja/ecoshop/backend/pkg/secrets"
)

func main() {
	var opts runOptions
	flag.IntVar(&opts.days, "days", 30, "lookback window in days")
	flag.StringVar(&opts.query, "query", "", "track a product search for this query and fetch suggestions")
	flag.IntVar(&opts.recommendations, "recommendations", 0, "number of recommendations to include (0 skips)")
	flag.BoolVar(&opts.clear, "clear", false, "clear search history for the lookback window first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	tokens, closeTokens, err := buildTokenSource(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.TokenStore.Backend).Msg("Failed to initialize token store")
	}
	defer closeTokens()

	client := trackingapi.NewClient(cfg.TrackingAPI.BaseURL, tokens,
		trackingapi.WithTimeout(cfg.TrackingAPI.Timeout),
		trackingapi.WithClientID(cfg.TrackingAPI.ClientID),
		trackingapi.WithSuggestionLimit(cfg.TrackingAPI.SuggestionLimit),
		trackingapi.WithMetrics(metrics),
	)
	insights := services.NewSearchInsightsService(client, metrics)

	log.Debug().Str("session_id", client.SessionID()).Str("base_url", cfg.TrackingAPI.BaseURL).Msg("Tracking client ready")

	if err := run(ctx, client, insights, opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Search insights report failed")
	}
}

// buildTokenSource wires the SecretStore selected by TOKEN_STORE. The
// returned func releases any connection it opened.
func buildTokenSource(ctx context.Context, cfg *config.Config) (providers.TokenSource, func(), error) {
	noop := func() {}

	switch cfg.TokenStore.Backend {
	case config.TokenStoreRedis:
		client, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		closer := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing Redis client")
			}
		}
		return tokenstore.NewKeyedTokenSource(tokenstore.NewRedisStore(client), cfg.TokenStore.Keys...), closer, nil
	case config.TokenStoreVault:
		client, err := secrets.NewVaultClient(&cfg.Vault)
		if err != nil {
			return nil, noop, err
		}
		return tokenstore.NewKeyedTokenSource(tokenstore.NewVaultStore(client), cfg.TokenStore.Keys...), noop, nil
	default:
		return tokenstore.NewKeyedTokenSource(tokenstore.NewEnvStore(), cfg.TokenStore.Keys...), noop, nil
	}
}

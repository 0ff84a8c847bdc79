package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Swelo-ui/guvi-project-1/internal/api/router"
	appconfig "github.com/Swelo-ui/guvi-project-1/internal/config"
	"github.com/Swelo-ui/guvi-project-1/internal/conversation"
	"github.com/Swelo-ui/guvi-project-1/internal/llm"
	"github.com/Swelo-ui/guvi-project-1/internal/observability/metrics"
	"github.com/Swelo-ui/guvi-project-1/internal/report"
	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting honeypot engine",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	providers, cleanup := buildProviders(ctx, cfg, logger)
	defer cleanup()
	if len(providers) == 0 {
		logger.Warn("no generation providers configured, running on canned replies only")
	}
	racer := llm.NewRacer(providers, cfg.PrimaryProvider, cfg.RaceEarlyAccept, cfg.RaceDeadline, cfg.ReplyLengthFloor, logger.Component("llm"))

	var snapshots conversation.SnapshotStore
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, session snapshots disabled", "error", err)
		} else {
			snapshots = conversation.NewRedisSnapshotStore(client, cfg.SessionTTL, nil)
			logger.Info("session snapshots enabled", "addr", cfg.RedisAddr)
		}
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, archiving disabled", "error", err)
			db = nil
		} else {
			defer db.Close()
			logger.Info("session archiving enabled")
		}
	}

	var reporter conversation.Reporter
	if cfg.ReportCallbackURL != "" {
		reporter = report.NewClient(cfg.ReportCallbackURL, cfg.ReportTimeout, logger.Component("report"))
		logger.Info("intelligence reporting enabled", "url", cfg.ReportCallbackURL)
	}

	engineMetrics := metrics.NewEngineMetrics(nil)

	responder := conversation.NewResponder(conversation.ResponderConfig{
		ExtractionAskCap:  cfg.ExtractionAskCap,
		FingerprintWindow: cfg.FingerprintWindow,
		PersonalizeChance: cfg.PersonalizeChance,
		UrgencyThreshold:  cfg.UrgencyThreshold,
	}, time.Now().UnixNano())

	service := conversation.NewService(
		conversation.ServiceConfig{
			Phase: conversation.PhaseConfig{
				InitialTurns: cfg.PhaseInitialTurns,
				PersistTurns: cfg.PhasePersistTurns,
				FinalTurns:   cfg.PhaseFinalTurns,
			},
			Sanitize: conversation.SanitizeConfig{
				MaxSentences: cfg.MaxReplySentences,
				MaxChars:     cfg.MaxReplyChars,
			},
			HistoryCap:        cfg.HistoryCap,
			GenMaxTokens:      int32(cfg.GenMaxTokens),
			GenTemperature:    float32(cfg.GenTemperature),
			FingerprintWindow: cfg.FingerprintWindow,
			ReportTimeout:     cfg.ReportTimeout,
		},
		conversation.NewSessionStore(cfg.SessionTTL),
		racer,
		responder,
		snapshots,
		conversation.NewArchiveStore(db),
		reporter,
		engineMetrics,
		logger.Component("conversation"),
	)

	r := router.New(&router.Config{
		Logger:          logger.Component("http"),
		Honeypot:        conversation.NewHandler(service, logger.Component("http")),
		APIKey:          cfg.APIKey,
		AdminAuthSecret: cfg.AdminJWTSecret,
		MetricsHandler:  promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}

// buildProviders constructs every configured generation backend. The
// returned cleanup closes clients that hold connections.
func buildProviders(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) ([]llm.Provider, func()) {
	var providers []llm.Provider
	var closers []func()

	priority := func(name string) int {
		if name == cfg.PrimaryProvider {
			return 0
		}
		return len(providers) + 1
	}

	if cfg.OpenRouterAPIKey != "" {
		p, err := llm.NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModelID, priority("openrouter"))
		if err != nil {
			logger.Warn("openrouter provider disabled", "error", err)
		} else {
			providers = append(providers, p)
		}
	}

	if cfg.GeminiAPIKey != "" {
		p, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, priority("gemini"))
		if err != nil {
			logger.Warn("gemini provider disabled", "error", err)
		} else {
			providers = append(providers, p)
			closers = append(closers, func() { _ = p.Close() })
		}
	}

	if cfg.BedrockModelID != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Warn("bedrock provider disabled", "error", err)
		} else {
			p, err := llm.NewBedrockProvider(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID, priority("bedrock"))
			if err != nil {
				logger.Warn("bedrock provider disabled", "error", err)
			} else {
				providers = append(providers, p)
			}
		}
	}

	return providers, func() {
		for _, c := range closers {
			c()
		}
	}
}

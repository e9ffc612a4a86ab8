package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/api/rest"
	"github.com/subvault/subvault-api/internal/api/server"
	"github.com/subvault/subvault-api/internal/api/shared/executor"
	"github.com/subvault/subvault-api/internal/auth"
	"github.com/subvault/subvault-api/internal/config"
	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/messaging"
	"github.com/subvault/subvault-api/internal/providers/jetstream"
	"github.com/subvault/subvault-api/internal/ratelimit"
	"github.com/subvault/subvault-api/internal/siwe"
	"github.com/subvault/subvault-api/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting SubVault API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Connect to the RPC endpoints used for smart account signatures
	endpoints := rpcEndpoints(cfg.RPC)
	if len(endpoints) == 0 {
		logger.WarnCtx(ctx, "No RPC endpoints configured, every sign-in will be rejected as unsupported chain")
	}
	clients, err := siwe.Connect(ctx, adapter.NewEthClientDialer(), endpoints)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to RPC endpoints", zap.Error(err))
	}
	defer func() {
		for _, c := range clients {
			c.Close()
		}
	}()
	verifier, err := siwe.NewVerifier(clients)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create signature verifier", zap.Error(err))
	}

	// Event publishing is optional
	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			PublishTimeout: cfg.NATS.PublishTimeout,
			Workers:        cfg.NATS.Workers,
			QueueSize:      cfg.NATS.QueueSize,
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, events will not be published")
	}
	defer publisher.Close()

	sessions, err := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, cfg.Auth.SessionIssuer, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create session manager", zap.Error(err))
	}

	authService, err := auth.NewService(auth.Config{
		NonceTTL:         cfg.Auth.NonceTTL,
		CredentialSecret: cfg.Auth.CredentialSecret,
		ExpectedDomain:   cfg.Auth.ExpectedDomain,
		BcryptCost:       cfg.Auth.BcryptCost,
	}, dataStore, verifier, sessions, clock, publisher)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create auth service", zap.Error(err))
	}

	limiter := newRateLimiter(ctx, cfg, clock)
	if limiter != nil {
		defer func() {
			_ = limiter.Close()
		}()
	}

	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		TrustedProxies:     cfg.Server.TrustedProxies,
	}

	exec := executor.NewExecutor(dataStore, publisher, clock)
	srv := server.New(serverConfig, exec, authService, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// rpcEndpoints converts the configured RPC URLs in chain ID order
func rpcEndpoints(cfg config.RPCConfig) []siwe.Endpoint {
	urls := cfg.Endpoints()
	endpoints := make([]siwe.Endpoint, 0, len(urls))
	for chainID, url := range urls {
		endpoints = append(endpoints, siwe.Endpoint{ChainID: chainID, RPCURL: url})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].ChainID < endpoints[j].ChainID
	})
	return endpoints
}

// newRateLimiter builds the sign-in rate limiter. It returns nil when rate
// limiting is disabled; without Redis the limits are enforced per process.
func newRateLimiter(ctx context.Context, cfg *config.APIConfig, clock adapter.Clock) ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		logger.WarnCtx(ctx, "Rate limiting disabled")
		return nil
	}

	var rc adapter.RedisClient
	if cfg.Redis.URL != "" {
		client, err := adapter.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create Redis client", zap.Error(err))
		}
		rc = client
	}

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{
		KeyPrefix: cfg.RateLimit.KeyPrefix,
		Policies: []ratelimit.Policy{
			{
				Name:              rest.POLICY_NONCE,
				RequestsPerMinute: cfg.RateLimit.NonceRequestsPerMinute,
				Burst:             cfg.RateLimit.NonceBurst,
			},
			{
				Name:              rest.POLICY_VERIFY,
				RequestsPerMinute: cfg.RateLimit.VerifyRequestsPerMinute,
				Burst:             cfg.RateLimit.VerifyBurst,
			},
		},
		LocalFallbackMultiplier: cfg.RateLimit.LocalFallbackMultiplier,
		MaxLocalKeys:            cfg.RateLimit.MaxLocalKeys,
	}, rc, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}

	return limiter
}

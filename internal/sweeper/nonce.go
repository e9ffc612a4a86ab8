package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/store"
)

const (
	DEFAULT_NONCE_SWEEP_INTERVAL = time.Minute
	DEFAULT_NONCE_BATCH_SIZE     = 1000
)

// NonceSweeperConfig holds configuration for the nonce sweeper
type NonceSweeperConfig struct {
	Interval    time.Duration // Time to sleep between sweep cycles
	BatchSize   int           // Nonces deleted per statement
	GracePeriod time.Duration // Nonces are kept this long past their expiry
}

// NonceSweeper garbage collects expired sign-in nonces
type NonceSweeper interface {
	Sweeper

	// SweepOnce deletes every nonce that expired before now minus the grace
	// period and returns the number of rows removed
	SweepOnce(ctx context.Context) (int64, error)
}

type nonceSweeper struct {
	config    NonceSweeperConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewNonceSweeper creates a new nonce sweeper
func NewNonceSweeper(config NonceSweeperConfig, st store.Store, clock adapter.Clock) NonceSweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_NONCE_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_NONCE_BATCH_SIZE
	}
	if config.GracePeriod < 0 {
		config.GracePeriod = 0
	}

	return &nonceSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *nonceSweeper) Name() string {
	return "nonce-sweeper"
}

// Start runs a sweep every interval until the context is canceled or Stop is called
func (s *nonceSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting nonce sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("grace_period", s.config.GracePeriod),
	)

	for {
		if _, err := s.SweepOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Nonce sweeper stopping due to context cancellation")
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Nonce sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop signals the loop to exit and waits for the current sweep to finish
func (s *nonceSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Not running
	}

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Nonce sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Nonce sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *nonceSweeper) SweepOnce(ctx context.Context) (int64, error) {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.GracePeriod)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		deleted, err := s.store.DeleteExpiredNonces(ctx, cutoff, s.config.BatchSize)
		if err != nil {
			return total, fmt.Errorf("failed to delete expired nonces: %w", err)
		}
		total += deleted

		if deleted < int64(s.config.BatchSize) {
			break
		}
	}

	if total > 0 {
		logger.InfoCtx(ctx, "Expired nonces deleted",
			zap.Int64("count", total),
			zap.Time("cutoff", cutoff),
			zap.Duration("duration", s.clock.Since(startTime)),
		)
	}

	return total, nil
}

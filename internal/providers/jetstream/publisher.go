package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/logger"
	"github.com/subvault/subvault-api/internal/messaging"
)

// ErrQueueFull is returned when the publish queue cannot take another event
var ErrQueueFull = errors.New("publish queue full")

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishTimeout time.Duration
	Workers        int
	QueueSize      int
}

type publisher struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	pool    pond.Pool
	prefix  string
	timeout time.Duration
}

// NewPublisher connects to NATS, makes sure the stream exists and returns an
// asynchronous publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := js.EnsureStream(ctx, cfg.StreamName, []string{cfg.SubjectPrefix + ".>"}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return newPublisher(nc, js, cfg), nil
}

func newPublisher(nc adapter.NatsConn, js adapter.JetStream, cfg Config) *publisher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1000
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &publisher{
		nc:      nc,
		js:      js,
		pool:    pond.NewPool(workers, pond.WithQueueSize(queueSize), pond.WithNonBlocking(true)),
		prefix:  cfg.SubjectPrefix,
		timeout: timeout,
	}
}

// Publish marshals the event and hands it to the worker pool. The request
// context is not used for delivery so that publishing outlives the request.
func (p *publisher) Publish(ctx context.Context, event *messaging.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.subject(event.Type)
	logger.DebugCtx(ctx, "Publishing NATS event",
		zap.String("subject", subject),
		zap.String("eventID", event.ID))

	_, ok := p.pool.TrySubmit(func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		if _, err := p.js.Publish(pubCtx, subject, data, jetstream.WithMsgID(event.ID)); err != nil {
			logger.Error(fmt.Errorf("failed to publish event: %w", err),
				zap.String("subject", subject),
				zap.String("eventID", event.ID))
		}
	})
	if !ok {
		return ErrQueueFull
	}
	return nil
}

func (p *publisher) subject(eventType messaging.EventType) string {
	return fmt.Sprintf("%s.%s", p.prefix, eventType)
}

// Close waits for queued events and drains the connection
func (p *publisher) Close() {
	p.pool.StopAndWait()

	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}

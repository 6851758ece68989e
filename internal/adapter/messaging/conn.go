// Package messaging connects the ledger to NATS JetStream: chain events are
// consumed into the reconciler and post-commit notifications are published.
package messaging

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/config"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// Publisher is the publish half of jetstream.JetStream.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Message is the part of jetstream.Msg the consumer needs.
type Message interface {
	Data() []byte
	Subject() string
	Metadata() (*jetstream.MsgMetadata, error)
	Ack() error
	NakWithDelay(delay time.Duration) error
	Term() error
}

// Connect dials NATS and opens a JetStream context.
func Connect(cfg config.NATSConfig, log zerolog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Error().Err(err).Msg("disconnected from NATS")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("reconnected to NATS")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info().Msg("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to NATS: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("NATS connection established")
	return nc, js, nil
}

// HealthCheck implements ports.HealthChecker for NATS.
type HealthCheck struct {
	nc *nats.Conn
}

func NewHealthCheck(nc *nats.Conn) *HealthCheck {
	return &HealthCheck{nc: nc}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if !h.nc.IsConnected() {
		return fmt.Errorf("nats status %s", h.nc.Status())
	}
	return h.nc.FlushWithContext(ctx)
}

func (h *HealthCheck) Name() string {
	return "nats"
}

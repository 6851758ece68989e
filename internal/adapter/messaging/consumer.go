package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// EventConsumer feeds chain events from a durable JetStream consumer into the
// reconciler. Messages are acknowledged only after the ledger commit.
type EventConsumer struct {
	js         jetstream.JetStream
	reconciler ports.Reconciler
	cfg        config.NATSConfig
	log        zerolog.Logger
}

func NewEventConsumer(js jetstream.JetStream, reconciler ports.Reconciler, cfg config.NATSConfig, log zerolog.Logger) *EventConsumer {
	return &EventConsumer{js: js, reconciler: reconciler, cfg: cfg, log: log}
}

// Run consumes until ctx is cancelled. Messages are handled one at a time so
// events for a wexel are applied in stream order.
func (c *EventConsumer) Run(ctx context.Context) error {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, c.cfg.EventStream, jetstream.ConsumerConfig{
		Durable:       c.cfg.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.cfg.AckWait,
		MaxDeliver:    c.cfg.MaxDeliver,
		FilterSubject: c.cfg.EventSubject,
	})
	if err != nil {
		return fmt.Errorf("create/update consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		c.Handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}
	defer cc.Stop()

	c.log.Info().
		Str("stream", c.cfg.EventStream).
		Str("consumer", c.cfg.ConsumerName).
		Str("subject", c.cfg.EventSubject).
		Msg("event consumer started")

	<-ctx.Done()
	c.log.Info().Msg("event consumer stopping")
	return nil
}

// Handle applies one message. Applied and duplicate events are acked.
// Malformed events and business rejections are terminated since redelivery
// cannot change the outcome. Infrastructure failures and events whose
// prerequisite has not been applied yet are nak'ed with a delay; max_deliver
// bounds how long an out-of-order event waits.
func (c *EventConsumer) Handle(ctx context.Context, msg Message) {
	log := c.log.With().Str("subject", msg.Subject()).Logger()
	var delivered uint64 = 1
	if md, err := msg.Metadata(); err == nil {
		delivered = md.NumDelivered
		log = log.With().Uint64("stream_seq", md.Sequence.Stream).Uint64("delivered", delivered).Logger()
	}

	var ev domain.LedgerEvent
	if err := json.Unmarshal(msg.Data(), &ev); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal event")
		c.settle(log, msg.Term, "term")
		return
	}
	if ev.ObservedAt.IsZero() {
		if md, err := msg.Metadata(); err == nil {
			ev.ObservedAt = md.Timestamp.UTC()
		}
	}

	out, err := c.reconciler.Apply(ctx, ev)
	if err != nil {
		log = log.With().Str("kind", string(ev.Kind)).Int64("wexel_id", ev.WexelID).Str("tx_hash", ev.TxHash).Logger()
		switch {
		case !retryable(ev, err):
			if apperror.KindOf(err) == apperror.KindOverflow {
				log.Error().Err(err).Msg("event rejected")
			} else {
				log.Warn().Err(err).Msg("event rejected")
			}
			c.settle(log, msg.Term, "term")
		case c.cfg.MaxDeliver > 0 && delivered >= uint64(c.cfg.MaxDeliver):
			log.Error().Err(err).Msg("event failed on its last delivery, giving up")
			c.settle(log, msg.Term, "term")
		default:
			delay := redeliveryDelay(delivered)
			log.Warn().Err(err).Dur("delay", delay).Msg("event failed, will be redelivered")
			c.settle(log, func() error { return msg.NakWithDelay(delay) }, "nak")
		}
		return
	}

	log.Debug().Str("key", out.Key.String()).Bool("duplicate", out.Duplicate).Msg("event acknowledged")
	c.settle(log, msg.Ack, "ack")
}

func (c *EventConsumer) settle(log zerolog.Logger, fn func() error, op string) {
	if err := fn(); err != nil {
		log.Error().Err(err).Str("op", op).Msg("failed to settle message")
	}
}

// retryable reports whether redelivering ev may succeed. Besides transient
// failures this covers events that arrived ahead of their prerequisite: a
// record they reference is missing, or the collateral flag has not been
// flipped by the preceding open or repay yet.
func retryable(ev domain.LedgerEvent, err error) bool {
	switch apperror.KindOf(err) {
	case apperror.KindInternal, apperror.KindPriceUnavailable, apperror.KindRateLimited, apperror.KindNotFound:
		return true
	}
	switch code := apperror.CodeOf(err); ev.Kind {
	case domain.EventCollateralOpened:
		return code == apperror.ErrAlreadyCollateralized().Code
	case domain.EventCollateralRepaid:
		return code == apperror.ErrAlreadyRepaid().Code
	}
	return false
}

// redeliveryDelay spaces out retries of a failing event exponentially by
// delivery attempt, from one second up to a minute.
func redeliveryDelay(delivered uint64) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = time.Minute
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.NextBackOff()
	for i := uint64(1); i < delivered && delay < b.MaxInterval; i++ {
		delay = b.NextBackOff()
	}
	return delay
}

package pricing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"wexel-ledger/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// fetcher performs GET requests against one price API with retry.
type fetcher struct {
	name       string
	client     *http.Client
	maxRetries uint64
	backoff    func() *backoff.ExponentialBackOff
	log        zerolog.Logger
}

func newFetcher(name string, cfg config.PricingConfig, log zerolog.Logger) fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return fetcher{
		name:       name,
		client:     &http.Client{Timeout: timeout},
		maxRetries: uint64(retries),
		backoff: func() *backoff.ExponentialBackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			b.MaxElapsedTime = 30 * time.Second
			return b
		},
		log: log.With().Str("source", name).Logger(),
	}
}

// get retries on transport errors, 429 and 5xx. Other statuses are
// permanent.
func (f *fetcher) get(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("performing request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				f.log.Warn().Err(err).Msg("failed to close response body")
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%s status %d", f.name, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("%s status %d: %s", f.name, resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("reading response body: %w", err))
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		f.log.Warn().Err(err).Dur("retry_in", wait).Msg("price request failed, retrying")
	}

	b := backoff.WithContext(backoff.WithMaxRetries(f.backoff(), f.maxRetries), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", f.name, err)
	}
	return body, nil
}

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryBase = 200 * time.Millisecond
	maxRetryDelay    = 5 * time.Second
)

// retryPolicy повтор только идемпотентных GET запросов и только при KindTransportFailure.
// Ответ сервера (любой статус) никогда не повторяется.
type retryPolicy struct {
	attempts  uint64
	baseDelay time.Duration
}

func (p retryPolicy) do(ctx context.Context, method string, fn retry.RetryFunc) error {
	if p.attempts == 0 || method != http.MethodGet {
		return fn(ctx)
	}

	base := p.baseDelay
	if base <= 0 {
		base = defaultRetryBase
	}

	b := retry.NewExponential(base)
	b = retry.WithCappedDuration(maxRetryDelay, b)
	b = retry.WithMaxRetries(p.attempts, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, ErrTransportFailure) && ctx.Err() == nil {
			return retry.RetryableError(err)
		}
		return err
	})
}

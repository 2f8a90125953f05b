package txscope

import (
	"context"
	crand "crypto/rand"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"net"
	"time"

	"github.com/lib/pq"
	"github.com/omeid/pgerror"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// connectionExceptionClass is the SQLSTATE class for connection failures.
const connectionExceptionClass = "08"

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// openWithRetry opens a root transaction, retrying connection-level failures
// with exponential backoff and jitter.
func (m *Manager) openWithRetry(ctx context.Context) (*shared, error) {
	attempts := max(m.retry.maxAttempts, 1)

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := m.waitForRetry(ctx, attempt, attempts, lastErr); err != nil {
				return nil, err
			}
		}

		sh, err := m.open(ctx)
		if err == nil {
			return sh, nil
		}
		lastErr = err
		if !isRetryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (m *Manager) waitForRetry(ctx context.Context, attempt, attempts int, lastErr error) error {
	delay := backoff(attempt, m.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying transaction open",
		slog.String("operation", "txscope.Init"),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a 1-indexed retry attempt.
func backoff(attempt int, p retryPolicy) time.Duration {
	multiplier := p.multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	delay := float64(p.initialInterval) * math.Pow(multiplier, float64(attempt-1))
	if p.maxInterval > 0 && delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)
	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether opening a transaction failed for a reason a
// fresh connection could fix. Caller cancellation never is.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgerror.ConnectionException(pqErr) != nil || pqErr.Code.Class() == connectionExceptionClass
	}
	return false
}

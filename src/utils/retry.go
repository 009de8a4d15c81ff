package utils

import (
	"context"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// maxBackOffShift keeps BaseDelay << attempt from overflowing.
const maxBackOffShift = 30

type RetryPolicy struct {
	// Retries is the number of additional attempts made after the first one.
	Retries   int
	BaseDelay time.Duration
	MaxJitter time.Duration
}

func NewRetryPolicy(retries int, baseDelay, maxJitter time.Duration) RetryPolicy {
	return RetryPolicy{
		Retries:   retries,
		BaseDelay: baseDelay,
		MaxJitter: maxJitter,
	}
}

// exponentialJitterBackOff waits BaseDelay * 2^attempt plus a uniform jitter
// in [0, MaxJitter) before each retry.
type exponentialJitterBackOff struct {
	policy  RetryPolicy
	attempt int
	random  func() float64
}

func (b *exponentialJitterBackOff) NextBackOff() time.Duration {
	shift := b.attempt
	if shift > maxBackOffShift {
		shift = maxBackOffShift
	}

	delay := b.policy.BaseDelay * time.Duration(1<<uint(shift))
	if b.policy.MaxJitter > 0 {
		delay += time.Duration(b.random() * float64(b.policy.MaxJitter))
	}

	b.attempt++

	return delay
}

func (b *exponentialJitterBackOff) Reset() {
	b.attempt = 0
}

func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOffContext {
	// backoff.WithMaxRetries treats 0 as unlimited
	if p.Retries <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	policy := &exponentialJitterBackOff{
		policy: p,
		random: rand.Float64,
	}

	return backoff.WithContext(backoff.WithMaxRetries(policy, uint64(p.Retries)), ctx)
}

// Retry calls operation until it succeeds or policy.Retries retries have
// failed, in which case the error of the last attempt is returned as is.
func Retry[T any](ctx context.Context, policy RetryPolicy, operation func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0

	return RetryNotify(ctx, policy, func(ctx context.Context) (T, error) {
		attempt++
		return operation(ctx)
	}, func(err error, delay time.Duration) {
		log.WithFields(log.Fields{
			"attempt": attempt,
			"delay":   delay,
		}).Warnf("Retry: attempt failed: %v", err)
	})
}

// RetryNotify is Retry with a callback invoked before every backoff sleep.
func RetryNotify[T any](ctx context.Context, policy RetryPolicy, operation func(ctx context.Context) (T, error), notify func(err error, delay time.Duration)) (T, error) {
	op := func() (T, error) {
		return operation(ctx)
	}

	return backoff.RetryNotifyWithData(op, policy.newBackOff(ctx), notify)
}

// Package batcher buffers items and hands them to a flush callback in
// groups, either when a group is full or when the interval elapses.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc receives a batch. The slice is reused after the call returns.
type FlushFunc[T any] func(context.Context, []T) error

// Config sizes a Batcher. RPS caps flushes per second; zero means no cap.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = 100
	}
	if c.Interval <= 0 {
		c.Interval = time.Second
	}
	return c
}

// Batcher groups items for a FlushFunc. Items queued when Stop is called
// are flushed before Stop returns.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	items   chan T
	cfg     Config
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Start must be called before items are flushed.
func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) *Batcher[T] {
	cfg = cfg.withDefaults()
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, cfg.Size*2),
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start launches the flush loop. It ends when ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the flush loop and waits for the final flush. Safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	push := func(ctx context.Context, item T) {
		buf = append(buf, item)
		if len(buf) >= b.cfg.Size {
			flush(ctx)
		}
	}

	for {
		select {
		case <-ctx.Done():
			b.drain(context.WithoutCancel(ctx), push)
			flush(context.WithoutCancel(ctx))
			return
		case <-b.stop:
			b.drain(ctx, push)
			flush(ctx)
			return
		case item := <-b.items:
			push(ctx, item)
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// drain moves everything already queued into the buffer.
func (b *Batcher[T]) drain(ctx context.Context, push func(context.Context, T)) {
	for {
		select {
		case item := <-b.items:
			push(ctx, item)
		default:
			return
		}
	}
}

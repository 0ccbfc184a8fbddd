package walk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, agg *Aggregator, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(agg.Progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks opt.Roots and returns sizes grouped by opt.GroupBy, with hard
// links counted once.
//
// Filesystem failures do not stop the walk; they are returned in
// Result.Errors. The returned error is non-nil only for invalid options or
// when ctx is cancelled before the walk completes.
//
// Progress updates are sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	opt = opt.withDefaults()

	var traverse func(context.Context, Options, *walker)

	switch opt.Engine {
	case Native:
		traverse = walkNative
	case FastWalk:
		traverse = walkFast
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEngine, opt.Engine)
	}

	log := opt.Logger.With(zap.String("run", uuid.NewString()))

	log.Debug("walk starting",
		zap.Strings("roots", opt.Roots),
		zap.Int("threads", opt.Threads),
		zap.String("engine", string(opt.Engine)),
		zap.Stringer("size_mode", opt.SizeMode),
		zap.Stringer("group_by", opt.GroupBy),
	)

	agg := NewAggregator(opt.GroupBy)
	msgs := make(chan Message, opt.ChannelBuffer)
	results := make(chan Result, 1)

	go func() {
		results <- agg.Drain(msgs)
	}()

	// Child context so the progress reporter stops with the walk.
	progressCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(progressCtx, agg, progressHook, opt.ProgressInterval)

	start := time.Now()

	traverse(ctx, opt, &walker{mode: opt.SizeMode, out: msgs, log: log})
	close(msgs)

	result := <-results
	result.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil {
		log.Debug("walk cancelled", zap.Error(err))

		return nil, fmt.Errorf("walking %v: %w", opt.Roots, err)
	}

	log.Debug("walk finished",
		zap.Duration("elapsed", result.Elapsed),
		zap.Uint64("total", result.Total),
		zap.Uint64("files", result.Files),
		zap.Int("groups", len(result.Groups)),
		zap.Int("errors", len(result.Errors)),
	)

	return &result, nil
}

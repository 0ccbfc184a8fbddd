package walk

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/idelchi/fss/internal/groups"
)

// ErrInvalidEngine is returned for an unknown walk engine name.
var ErrInvalidEngine = errors.New("engine is not one of [native, fastwalk]")

// Engine selects the traversal implementation.
type Engine string

const (
	// Native walks with a pool of goroutines sharing an explicit directory worklist.
	Native Engine = "native"
	// FastWalk delegates traversal to github.com/charlievieth/fastwalk.
	FastWalk Engine = "fastwalk"
)

// String implements pflag.Value.
func (e *Engine) String() string {
	return string(*e)
}

// Set implements pflag.Value.
func (e *Engine) Set(s string) error {
	switch v := Engine(strings.ToLower(strings.TrimSpace(s))); v {
	case Native, FastWalk:
		*e = v

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEngine, s)
	}
}

// Type implements pflag.Value.
func (e *Engine) Type() string {
	return "engine"
}

const (
	// DefaultProgressInterval is the default interval for progress updates.
	DefaultProgressInterval = 500 * time.Millisecond
	// DefaultChannelBuffer is the default capacity of the message channel.
	DefaultChannelBuffer = 4096
)

// DefaultThreads is three times the number of CPUs: a compromise between
// cold caches, where deep I/O queues help, and warm caches, where extra
// goroutines only add contention.
func DefaultThreads() int {
	return 3 * runtime.NumCPU()
}

// Options configures a walk.
type Options struct {
	// Roots are the paths to walk. Defaults to the current directory.
	Roots []string
	// Threads is the number of concurrent walkers.
	Threads int
	// SizeMode selects apparent size or disk usage.
	SizeMode SizeMode
	// GroupBy selects the group key of each counted file.
	GroupBy groups.GroupBy
	// Engine selects the traversal implementation. Defaults to Native.
	Engine Engine
	// ChannelBuffer is the capacity of the message channel.
	ChannelBuffer int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if len(o.Roots) == 0 {
		o.Roots = []string{"."}
	}

	if o.Threads <= 0 {
		o.Threads = DefaultThreads()
	}

	if o.Engine == "" {
		o.Engine = Native
	}

	if o.ChannelBuffer <= 0 {
		o.ChannelBuffer = DefaultChannelBuffer
	}

	if o.ProgressInterval <= 0 {
		o.ProgressInterval = DefaultProgressInterval
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}

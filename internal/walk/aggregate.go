package walk

import (
	"sync/atomic"
	"time"

	"github.com/idelchi/fss/internal/groups"
)

// Result holds the outcome of a walk.
type Result struct {
	// Total is the size of all distinct files counted.
	Total uint64 `json:"total" yaml:"total"`
	// Files is the number of distinct files counted.
	Files uint64 `json:"files" yaml:"files"`
	// Groups maps a group key to the accumulated size of its files.
	Groups map[string]uint64 `json:"groups" yaml:"groups"`
	// Counts maps a group key to the number of files counted under it.
	Counts map[string]uint64 `json:"counts" yaml:"counts"`
	// Errors lists recovered filesystem failures in the order they were received.
	Errors []Error `json:"errors" yaml:"errors"`
	// Elapsed is the wall time of the walk.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Aggregator consumes walk messages. It is the sole owner of the dedup set and
// the group maps, so it must only be driven from one goroutine.
//
// When two hard links resolve to different group keys, the group of whichever
// link is received first is credited.
type Aggregator struct {
	groupBy groups.GroupBy
	seen    map[Identity]struct{}
	result  Result

	// Running counters for progress reporting; safe to read concurrently.
	files  atomic.Int64
	bytes  atomic.Int64
	errors atomic.Int64
}

// NewAggregator creates an Aggregator that groups counted files by groupBy.
func NewAggregator(groupBy groups.GroupBy) *Aggregator {
	return &Aggregator{
		groupBy: groupBy,
		seen:    make(map[Identity]struct{}),
		result: Result{
			Groups: make(map[string]uint64),
			Counts: make(map[string]uint64),
			Errors: make([]Error, 0),
		},
	}
}

// Add applies one message. It reports whether the message changed the totals.
func (a *Aggregator) Add(msg Message) bool {
	if msg.Error != nil {
		a.result.Errors = append(a.result.Errors, *msg.Error)
		a.errors.Add(1)

		return false
	}

	if msg.ID != nil {
		if _, dup := a.seen[*msg.ID]; dup {
			return false
		}

		a.seen[*msg.ID] = struct{}{}
	}

	key := a.groupBy.Key(msg.Path)

	a.result.Total += msg.Size
	a.result.Files++
	a.result.Groups[key] += msg.Size
	a.result.Counts[key]++

	a.files.Add(1)
	a.bytes.Add(int64(msg.Size)) //nolint:gosec // Totals stay far below MaxInt64

	return true
}

// Drain applies every message from msgs until the channel is closed, then
// returns the final result.
func (a *Aggregator) Drain(msgs <-chan Message) Result {
	for msg := range msgs {
		a.Add(msg)
	}

	return a.result
}

// Progress returns the number of files and bytes counted so far.
func (a *Aggregator) Progress() (files, bytes int64) {
	return a.files.Load(), a.bytes.Load()
}

// ErrorCount returns the number of errors received so far.
func (a *Aggregator) ErrorCount() int64 {
	return a.errors.Load()
}

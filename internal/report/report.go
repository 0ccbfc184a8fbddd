// Package report turns a walk result into sorted, filtered group rows.
package report

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/idelchi/fss/internal/filter"
	"github.com/idelchi/fss/internal/walk"
)

// Row is one group of the report.
type Row struct {
	// Key is the group key.
	Key string `json:"key" yaml:"key"`
	// Size is the accumulated size in bytes.
	Size uint64 `json:"size" yaml:"size"`
	// Files is the number of files counted under the key.
	Files uint64 `json:"files" yaml:"files"`
}

// Report is the presentable form of a walk.
type Report struct {
	// Total is the size of every counted file, independent of filtering.
	Total uint64 `json:"total" yaml:"total"`
	// Files is the number of distinct files counted.
	Files uint64 `json:"files" yaml:"files"`
	// Rows holds the groups that passed the filters, largest first.
	Rows []Row `json:"groups" yaml:"groups"`
	// Errors lists the filesystem failures of the walk.
	Errors []walk.Error `json:"errors" yaml:"errors"`
}

// Build keeps the groups whose size satisfies every filter and sorts them by
// size, largest first, breaking ties by key. If top is positive only the
// first top rows are kept. The total is never affected by filtering.
func Build(result *walk.Result, filters filter.List, top int) Report {
	rows := lo.FilterMap(lo.Entries(result.Groups), func(e lo.Entry[string, uint64], _ int) (Row, bool) {
		return Row{Key: e.Key, Size: e.Value, Files: result.Counts[e.Key]}, filters.Matches(e.Value)
	})

	slices.SortFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}

	return Report{
		Total:  result.Total,
		Files:  result.Files,
		Rows:   rows,
		Errors: result.Errors,
	}
}

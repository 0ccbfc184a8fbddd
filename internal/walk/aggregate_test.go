package walk

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/fss/internal/groups"
)

func TestAggregator_DeduplicatesByIdentity(t *testing.T) {
	agg := NewAggregator(groups.Extension)
	id := &Identity{Dev: 1, Ino: 42}

	assert.True(t, agg.Add(sizeEntry(id, "/a/first.txt", 100)))
	assert.False(t, agg.Add(sizeEntry(&Identity{Dev: 1, Ino: 42}, "/b/second.jpg", 100)))
	assert.True(t, agg.Add(sizeEntry(&Identity{Dev: 2, Ino: 42}, "/c/third.txt", 50)))

	result := agg.Drain(closed())

	assert.Equal(t, uint64(150), result.Total)
	assert.Equal(t, uint64(2), result.Files)
	assert.Equal(t, map[string]uint64{"txt": 150}, result.Groups)
}

func TestAggregator_WithoutIdentityAlwaysCounts(t *testing.T) {
	agg := NewAggregator(groups.FileName)

	agg.Add(sizeEntry(nil, "/x/same", 10))
	agg.Add(sizeEntry(nil, "/x/same", 10))

	result := agg.Drain(closed())

	assert.Equal(t, uint64(20), result.Total)
	assert.Equal(t, map[string]uint64{"same": 20}, result.Groups)
	assert.Equal(t, map[string]uint64{"same": 2}, result.Counts)
}

func TestAggregator_ErrorsKeepArrivalOrder(t *testing.T) {
	msgs := make(chan Message, 4)
	msgs <- errorEntry(CouldNotReadDir, "/b", fs.ErrPermission)
	msgs <- sizeEntry(nil, "/a.txt", 5)
	msgs <- errorEntry(NoMetadataForPath, "/a", fs.ErrNotExist)
	close(msgs)

	result := NewAggregator(groups.Extension).Drain(msgs)

	assert.Equal(t, uint64(5), result.Total)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, Error{Kind: CouldNotReadDir, Path: "/b", Err: fs.ErrPermission}, result.Errors[0])
	assert.Equal(t, Error{Kind: NoMetadataForPath, Path: "/a", Err: fs.ErrNotExist}, result.Errors[1])
	assert.True(t, errors.Is(result.Errors[0], fs.ErrPermission))
}

func TestAggregator_Progress(t *testing.T) {
	agg := NewAggregator(groups.Type)

	agg.Add(sizeEntry(nil, "/a.png", 7))
	agg.Add(sizeEntry(nil, "/b.mp3", 3))
	agg.Add(errorEntry(NoMetadataForPath, "/c", nil))

	files, bytes := agg.Progress()

	assert.Equal(t, int64(2), files)
	assert.Equal(t, int64(10), bytes)
	assert.Equal(t, int64(1), agg.ErrorCount())
}

func TestError_Message(t *testing.T) {
	assert.Equal(t,
		"could not retrieve metadata for path '/tmp/x'",
		Error{Kind: NoMetadataForPath, Path: "/tmp/x"}.Error(),
	)
	assert.Equal(t,
		"could not read contents of directory '/tmp/y'",
		Error{Kind: CouldNotReadDir, Path: "/tmp/y"}.Error(),
	)
}

func TestWorklist(t *testing.T) {
	t.Run("empty worklist is exhausted", func(t *testing.T) {
		_, ok := newWorklist().pop()
		assert.False(t, ok)
	})

	t.Run("pops last pushed first", func(t *testing.T) {
		w := newWorklist()
		w.push("a")
		w.push("b")

		dir, ok := w.pop()
		require.True(t, ok)
		assert.Equal(t, "b", dir)

		w.done()

		dir, ok = w.pop()
		require.True(t, ok)
		assert.Equal(t, "a", dir)

		w.done()

		_, ok = w.pop()
		assert.False(t, ok)
	})
}

func closed() <-chan Message {
	ch := make(chan Message)
	close(ch)

	return ch
}

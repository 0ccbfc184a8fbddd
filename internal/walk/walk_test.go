package walk_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/idelchi/fss/internal/groups"
	"github.com/idelchi/fss/internal/walk"
)

//nolint:gochecknoglobals // Test table
var engines = []walk.Engine{walk.Native, walk.FastWalk}

// writeFile creates root/rel with size bytes, creating parent directories.
func writeFile(t *testing.T, root, rel string, size int) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644))

	return path
}

func run(t *testing.T, engine walk.Engine, groupBy groups.GroupBy, roots ...string) *walk.Result {
	t.Helper()

	result, err := walk.Run(context.Background(), walk.Options{
		Roots:    roots,
		Threads:  4,
		SizeMode: walk.ApparentSize,
		GroupBy:  groupBy,
		Engine:   engine,
		Logger:   zap.NewNop(),
	}, nil)
	require.NoError(t, err)

	return result
}

func sum(m map[string]uint64) uint64 {
	var total uint64
	for _, v := range m {
		total += v
	}

	return total
}

func TestRun_GroupByExtension(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "a.txt", 100)
			writeFile(t, root, "b.jpg", 200)

			result := run(t, engine, groups.Extension, root)

			assert.Equal(t, uint64(300), result.Total)
			assert.Equal(t, uint64(2), result.Files)
			assert.Equal(t, map[string]uint64{"txt": 100, "jpg": 200}, result.Groups)
			assert.Equal(t, map[string]uint64{"txt": 1, "jpg": 1}, result.Counts)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_GroupByType(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "a.txt", 100)
			writeFile(t, root, "b.jpg", 200)
			writeFile(t, root, "Makefile", 7)

			result := run(t, engine, groups.Type, root)

			assert.Equal(t, uint64(307), result.Total)
			assert.Equal(t, map[string]uint64{"Document": 100, "Image": 200, "Other": 7}, result.Groups)
		})
	}
}

func TestRun_ExtensionIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "upper/FILE.TXT", 10)
	writeFile(t, root, "lower/file.txt", 5)

	result := run(t, walk.Native, groups.Extension, root)

	assert.Equal(t, map[string]uint64{"txt": 15}, result.Groups)
}

func TestRun_NoExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README", 3)
	writeFile(t, root, ".bashrc", 4)

	assert.Equal(t, map[string]uint64{"": 7}, run(t, walk.Native, groups.Extension, root).Groups)
	assert.Equal(t, map[string]uint64{"Other": 7}, run(t, walk.Native, groups.Type, root).Groups)
}

func TestRun_GroupByFileNameAndDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "one/report.pdf", 10)
	writeFile(t, root, "two/report.pdf", 20)
	writeFile(t, root, "two/notes.md", 5)

	byName := run(t, walk.Native, groups.FileName, root)
	assert.Equal(t, map[string]uint64{"report.pdf": 30, "notes.md": 5}, byName.Groups)

	byDir := run(t, walk.Native, groups.Directory, root)
	assert.Equal(t, map[string]uint64{"one": 10, "two": 25}, byDir.Groups)
}

func TestRun_DirectoriesAreNotSized(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "nested"), 0o755))

	result := run(t, walk.Native, groups.Extension, root)

	assert.Zero(t, result.Total)
	assert.Empty(t, result.Groups)
	assert.Empty(t, result.Errors)
}

func TestRun_FileRoot(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "single.go", 42)

			result := run(t, engine, groups.Extension, path)

			assert.Equal(t, uint64(42), result.Total)
			assert.Equal(t, map[string]uint64{"go": 42}, result.Groups)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_MissingRoot(t *testing.T) {
	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "kept.txt", 9)
			missing := filepath.Join(root, "does-not-exist")

			result := run(t, engine, groups.Extension, missing, root)

			assert.Equal(t, uint64(9), result.Total)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, walk.NoMetadataForPath, result.Errors[0].Kind)
			assert.Equal(t, missing, result.Errors[0].Path)
			require.ErrorIs(t, result.Errors[0], os.ErrNotExist)
		})
	}
}

func TestRun_MultipleRoots(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, first, "a/b/c.log", 11)
	writeFile(t, second, "d.log", 22)

	result := run(t, walk.Native, groups.Extension, first, second)

	assert.Equal(t, map[string]uint64{"log": 33}, result.Groups)
}

func TestRun_DeepTree(t *testing.T) {
	root := t.TempDir()
	rel := strings.Repeat("d/", 100) + "leaf.bin"
	writeFile(t, root, rel, 64)

	for _, engine := range engines {
		t.Run(string(engine), func(t *testing.T) {
			result := run(t, engine, groups.Directory, root)

			assert.Equal(t, map[string]uint64{"d": 64}, result.Groups)
		})
	}
}

func TestRun_SingleThread(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"a/1.c", "a/b/2.c", "a/b/c/3.c", "x/4.c"} {
		writeFile(t, root, rel, 10)
	}

	result, err := walk.Run(context.Background(), walk.Options{
		Roots:    []string{root},
		Threads:  1,
		SizeMode: walk.ApparentSize,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(40), result.Total)
}

func TestRun_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := walk.Run(ctx, walk.Options{Roots: []string{root}}, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestRun_InvalidEngine(t *testing.T) {
	_, err := walk.Run(context.Background(), walk.Options{Engine: "bogus"}, nil)

	require.ErrorIs(t, err, walk.ErrInvalidEngine)
}

func TestRun_ProgressHook(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", 1)

	var maxFiles atomic.Int64

	_, err := walk.Run(context.Background(), walk.Options{
		Roots:            []string{root},
		ProgressInterval: time.Millisecond,
	}, func(files, _ int64) {
		if files > maxFiles.Load() {
			maxFiles.Store(files)
		}
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, maxFiles.Load(), int64(1))
}

func TestRun_TotalEqualsSumOfGroups(t *testing.T) {
	exts := []string{"txt", "TXT", "jpg", "go", "", "tar.gz"}
	modes := []groups.GroupBy{groups.Extension, groups.Type, groups.FileName, groups.Directory}

	rapid.Check(t, func(rt *rapid.T) {
		root, err := os.MkdirTemp(t.TempDir(), "tree")
		require.NoError(rt, err)

		numFiles := rapid.IntRange(0, 20).Draw(rt, "numFiles")

		var want uint64

		for i := range numFiles {
			depth := rapid.IntRange(0, 3).Draw(rt, "depth")
			ext := rapid.SampledFrom(exts).Draw(rt, "ext")
			size := rapid.IntRange(0, 512).Draw(rt, "size")

			name := "f" + strings.Repeat("x", i)
			if ext != "" {
				name += "." + ext
			}

			writeFile(t, root, strings.Repeat("sub/", depth)+name, size)
			want += uint64(size)
		}

		mode := rapid.SampledFrom(modes).Draw(rt, "mode")
		engine := rapid.SampledFrom(engines).Draw(rt, "engine")

		result := run(t, engine, mode, root)

		assert.Equal(rt, want, result.Total)
		assert.Equal(rt, result.Total, sum(result.Groups))
		assert.Equal(rt, uint64(numFiles), result.Files)
	})
}

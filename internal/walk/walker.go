package walk

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// worklist is an unbounded LIFO of directories waiting to be listed.
// pending counts directories pushed but not yet marked done; once it reaches
// zero no worker can produce more work and pop reports exhaustion.
type worklist struct {
	mu      sync.Mutex
	cond    *sync.Cond
	dirs    []string
	pending int
}

func newWorklist() *worklist {
	w := &worklist{}
	w.cond = sync.NewCond(&w.mu)

	return w
}

func (w *worklist) push(dir string) {
	w.mu.Lock()
	w.dirs = append(w.dirs, dir)
	w.pending++
	w.mu.Unlock()
	w.cond.Signal()
}

// pop blocks until a directory is available or all work is done.
func (w *worklist) pop() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for len(w.dirs) == 0 && w.pending > 0 {
		w.cond.Wait()
	}

	if len(w.dirs) == 0 {
		return "", false
	}

	last := len(w.dirs) - 1
	dir := w.dirs[last]
	w.dirs[last] = ""
	w.dirs = w.dirs[:last]

	return dir, true
}

// done marks one popped directory as fully processed.
func (w *worklist) done() {
	w.mu.Lock()
	w.pending--
	finished := w.pending == 0
	w.mu.Unlock()

	if finished {
		w.cond.Broadcast()
	}
}

// walker holds what every traversal engine shares: how sizes are measured,
// where messages go and where events are logged.
type walker struct {
	mode SizeMode
	out  chan<- Message
	log  *zap.Logger
}

func (w *walker) fail(kind ErrorKind, path string, err error) {
	w.log.Debug("filesystem error",
		zap.Stringer("kind", kind),
		zap.String("path", path),
		zap.Error(err),
	)
	w.out <- errorEntry(kind, path, err)
}

func (w *walker) emit(path string, info os.FileInfo) {
	w.out <- sizeEntry(IdentityOf(info), path, w.mode.Size(info))
}

// visit lstats path and emits it unless it is a directory, in which case the
// directory is returned for listing.
func (w *walker) visit(path string) (isDir bool) {
	info, err := os.Lstat(path)
	if err != nil {
		w.fail(NoMetadataForPath, path, err)

		return false
	}

	if info.IsDir() {
		return true
	}

	w.emit(path, info)

	return false
}

// walkNative traverses roots with opt.Threads goroutines serving one shared
// worklist, so fan-out is spread across the whole tree rather than per root.
// Depth is bounded by memory, not by the goroutine stack.
func walkNative(ctx context.Context, opt Options, w *walker) {
	work := newWorklist()

	for _, root := range opt.Roots {
		if w.visit(root) {
			work.push(root)
		}
	}

	var wg sync.WaitGroup

	for range opt.Threads {
		wg.Go(func() {
			for {
				dir, ok := work.pop()
				if !ok {
					return
				}

				if ctx.Err() == nil {
					w.list(dir, work)
				}

				work.done()
			}
		})
	}

	wg.Wait()
}

// list visits every child of dir. Children read before a listing failure are
// still visited.
func (w *walker) list(dir string, work *worklist) {
	names, err := readDirNames(dir)
	if err != nil {
		w.fail(CouldNotReadDir, dir, err)
	}

	for _, name := range names {
		child := filepath.Join(dir, name)
		if w.visit(child) {
			work.push(child)
		}
	}
}

func readDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

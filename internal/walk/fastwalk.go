package walk

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charlievieth/fastwalk"
)

// walkFast traverses each directory root with fastwalk. Non-directory roots
// are visited directly since fastwalk reports them as unreadable directories.
func walkFast(ctx context.Context, opt Options, w *walker) {
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Threads,
	}

	for _, root := range opt.Roots {
		if ctx.Err() != nil {
			return
		}

		if !w.visit(root) {
			continue
		}

		//nolint:varnamelen // d is standard for DirEntry
		err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					w.fail(CouldNotReadDir, path, err)
				} else {
					w.fail(NoMetadataForPath, path, err)
				}

				return nil
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if d.IsDir() {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				w.fail(NoMetadataForPath, path, err)

				return nil
			}

			w.emit(path, info)

			return nil
		})

		switch {
		case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		default:
			// The root vanished between visit and the walk's own lstat.
			w.fail(NoMetadataForPath, root, err)
		}
	}
}

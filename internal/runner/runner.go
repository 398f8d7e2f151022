package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/matfmt/matfmt/internal/reflow"
)

// ErrFilesChanged reports that at least one file was rewritten. It makes
// the process exit non-zero for the calling hook framework; it is not a
// fault.
var ErrFilesChanged = errors.New("files were reflowed")

// FileResult is the outcome of processing a single file.
type FileResult struct {
	Path    string
	Changed bool
	Err     error
}

// Process reflows the named files in place. Files are independent, so
// they are handled concurrently by at most jobs workers (0 means one per
// CPU). The returned slice is index-aligned with paths; per-file errors
// never stop the other files.
func Process(ctx context.Context, paths []string, opts reflow.Options, jobs int) []FileResult {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = FileResult{Path: path, Err: gctx.Err()}
				return nil
			default:
			}
			changed, err := processFile(path, opts)
			results[i] = FileResult{Path: path, Changed: changed, Err: err}
			return nil
		})
	}
	// Workers never fail the group; per-file errors live in results.
	_ = g.Wait()
	return results
}

func processFile(path string, opts reflow.Options) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read file %q: %w", path, err)
	}
	if !utf8.Valid(src) {
		return false, fmt.Errorf("file %q is not valid UTF-8 text", path)
	}

	reflowed := reflow.Text(string(src), opts)
	if reflowed == string(src) {
		return false, nil
	}

	mode := os.FileMode(0o644)
	if st, statErr := os.Stat(path); statErr == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(reflowed), mode); err != nil {
		return false, fmt.Errorf("write file %q: %w", path, err)
	}
	return true, nil
}

package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CheckResult is the outcome of validating one document.
type CheckResult struct {
	Path   string
	Result *LoadResult
}

// CheckPaths validates every named document concurrently. Directory
// arguments are expanded to the .hz files beneath them. Each document
// is loaded independently (loading itself stays single-threaded);
// results come back sorted by path so output is stable.
func CheckPaths(ctx context.Context, paths []string, maxDiagnostics int) ([]CheckResult, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}

	results := make([]CheckResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Load(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = CheckResult{Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// expandPaths resolves directories to the sorted .hz files inside
// them; file arguments pass through untouched.
func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := listHazardFiles(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	sort.Strings(files)
	return files, nil
}

func listHazardFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".hz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

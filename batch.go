package sketchify

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/esimov/sketchify/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// DefaultPrefix is prepended to the file name of every generated sketch.
const DefaultPrefix = "sketch_"

// Result holds the outcome of converting a single file.
type Result struct {
	Path string
	Out  string
	Err  error
}

// Batch converts every image found in a directory tree into a sketch.
type Batch struct {
	Processor *Processor
	// Workers is the number of files converted concurrently. Out of range
	// values fall back to the number of CPUs.
	Workers int
	Prefix  string
	// OnResult, if set, is called from the Run goroutine after every file.
	OnResult func(Result)
}

// Run walks src recursively and writes the sketch of every supported image
// into dst, mirroring the directory layout of src. When dst is empty the
// sketches are placed in a "sketches" folder inside src. The walk stops once
// ctx is cancelled. The results are sorted by source path.
func (b *Batch) Run(ctx context.Context, src, dst string) ([]Result, error) {
	if dst == "" {
		dst = filepath.Join(src, "sketches")
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create the destination directory: %w", err)
	}

	workers := b.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = min(runtime.NumCPU(), maxWorkers)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths, errc := walkDir(ctx, src, dst, utils.ImageExtensions)

	ch := make(chan Result)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			b.consumer(ctx, src, dst, ch, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var results []Result
	for res := range ch {
		results = append(results, res)
		if b.OnResult != nil {
			b.OnResult(res)
		}
	}
	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(a.Path, b.Path)
	})

	if err := <-errc; err != nil {
		return results, err
	}
	return results, nil
}

// consumer reads the path names from the paths channel and converts each of
// the source images.
func (b *Batch) consumer(
	ctx context.Context,
	src, dst string,
	res chan<- Result,
	paths <-chan string,
) {
	for path := range paths {
		out := b.outputPath(src, dst, path)
		err := b.process(path, out)

		select {
		case <-ctx.Done():
			return
		case res <- Result{Path: path, Out: out, Err: err}:
		}
	}
}

// outputPath places the sketch of path under dst, keeping its position
// relative to src. Sources in formats without an encoder get a PNG sketch.
func (b *Batch) outputPath(src, dst, path string) string {
	prefix := b.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	rel, err := filepath.Rel(src, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.Join(dst, filepath.Dir(rel), sketchName(prefix+filepath.Base(rel)))
}

// process converts a single file. The output is removed in case of an error.
func (b *Batch) process(in, out string) (err error) {
	if !utils.IsImageFile(in) {
		return fmt.Errorf("%s: not an image file", in)
	}

	p := b.Processor
	if p == nil {
		p = NewProcessor()
	}

	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("unable to open the source file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	return p.Process(src, dst)
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new
// channel. The skip directory is left out. It finishes once ctx is done.
func walkDir(
	ctx context.Context,
	src, skip string,
	exts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	if abs, err := filepath.Abs(skip); err == nil {
		skip = abs
	}

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if abs, err := filepath.Abs(path); err == nil && path != src && abs == skip {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !utils.HasExtension(path, exts) {
				return nil
			}

			if err := ctx.Err(); err != nil {
				return fmt.Errorf("directory walk cancelled: %w", err)
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("directory walk cancelled: %w", ctx.Err())
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

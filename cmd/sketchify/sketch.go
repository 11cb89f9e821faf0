package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/sketchify"
	"github.com/esimov/sketchify/utils"
	"github.com/spf13/cobra"
)

func newSketchCmd(opts *rootOptions) *cobra.Command {
	var (
		in, out, prefix string
		flags           sketchFlags
	)

	cmd := &cobra.Command{
		Use:   "sketch",
		Short: "Convert an image, or a directory of images, into pencil sketches",
		Example: `  sketchify sketch -i photo.jpg -o sketch.png
  sketchify sketch -i photos/ -o sketches/
  cat photo.jpg | sketchify sketch -i - -o - > sketch.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := newProcessor(cmd, opts.conf, &flags)
			if err != nil {
				return err
			}

			var fi os.FileInfo
			if in == pipeName {
				fi, err = os.Stdin.Stat()
			} else {
				fi, err = os.Stat(in)
			}
			if err != nil {
				return fmt.Errorf("failed to load the source image: %w", err)
			}

			if fi.IsDir() {
				if !cmd.Flags().Changed("prefix") {
					prefix = opts.conf.Sketch.Prefix
				}
				workers := opts.conf.Sketch.Workers
				if cmd.Flags().Changed("workers") {
					workers = flags.workers
				}
				dst := out
				if dst == pipeName {
					dst = ""
				}
				return runBatch(cmd, proc, in, dst, prefix, workers)
			}
			return runSketch(cmd, proc, in, out)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", pipeName, "source image or directory (- for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", pipeName, "destination image or directory (- for stdout)")
	cmd.Flags().StringVar(&prefix, "prefix", sketchify.DefaultPrefix, "file name prefix of the sketches in directory mode")
	flags.register(cmd)

	return cmd
}

// runSketch converts a single image. The destination is removed on failure.
func runSketch(cmd *cobra.Command, proc *sketchify.Processor, in, out string) (err error) {
	logger := loggerFromContext(cmd.Context())

	if out != pipeName && !utils.HasExtension(out, []string{".png", ".jpg", ".jpeg", ".bmp"}) {
		return fmt.Errorf("%v file type not supported", filepath.Ext(out))
	}

	src, err := openInput(in)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := createOutput(out)
	if err != nil {
		return err
	}
	defer func() {
		if out == pipeName {
			return
		}
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	now := time.Now()
	stop := startSpinner(os.Stderr, "is sketching the image...")
	err = proc.Process(src, dst)
	stop(err == nil)
	if err != nil {
		return err
	}

	if out != pipeName {
		logger.Info("sketch saved", "file", out, "took", utils.FormatTime(time.Since(now)))
	}
	return nil
}

// runBatch converts every image found under the src directory.
func runBatch(cmd *cobra.Command, proc *sketchify.Processor, src, dst, prefix string, workers int) error {
	logger := loggerFromContext(cmd.Context())
	now := time.Now()

	failed := 0
	batch := &sketchify.Batch{
		Processor: proc,
		Workers:   workers,
		Prefix:    prefix,
		OnResult: func(r sketchify.Result) {
			if r.Err != nil {
				failed++
				logger.Error("sketch failed", "file", r.Path, "err", r.Err)
				return
			}
			logger.Info("sketch saved", "file", r.Out)
		},
	}

	results, err := batch.Run(cmd.Context(), src, dst)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errors.New("no supported image found in " + src)
	}

	logger.Info("batch done",
		"files", len(results),
		"failed", failed,
		"took", utils.FormatTime(time.Since(now)),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d images could not be converted", failed, len(results))
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/esimov/sketchify"
	"github.com/esimov/sketchify/config"
	"github.com/esimov/sketchify/media"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags and the loaded configuration.
type rootOptions struct {
	verbose    bool
	configPath string
	conf       *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sketchify",
		Short:         "Turn photos into pencil sketches and animate them",
		Long:          fmt.Sprintf(HelpBanner, Version),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.conf = conf
			logger.Debug("configuration loaded",
				"kernel", conf.Sketch.KernelSize,
				"blur", conf.Sketch.Blur,
				"canvas", conf.Animation.Canvas,
				"fps", conf.Animation.FPS,
			)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "directory holding "+config.FileName)

	root.AddCommand(newSketchCmd(opts))
	root.AddCommand(newAnimateCmd(opts))
	root.AddCommand(newEffectsCmd())

	return root
}

// sketchFlags are shared by the commands producing sketches.
type sketchFlags struct {
	kernel  int
	blur    string
	workers int
}

func (f *sketchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.kernel, "kernel", sketchify.DefaultKernelSize, "blur kernel size")
	cmd.Flags().StringVar(&f.blur, "blur", "gaussian", "blur method: gaussian or stack")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of concurrent workers (0 uses all CPUs)")
}

// newProcessor builds a Processor from the configuration. Flags explicitly
// set on the command line take precedence.
func newProcessor(cmd *cobra.Command, conf *config.Config, f *sketchFlags) (*sketchify.Processor, error) {
	kernel, blur := conf.Sketch.KernelSize, conf.Sketch.Blur
	if cmd.Flags().Changed("kernel") {
		kernel = f.kernel
	}
	if cmd.Flags().Changed("blur") {
		blur = f.blur
	}
	method, err := sketchify.ParseBlurMethod(blur)
	if err != nil {
		return nil, err
	}
	if kernel < 1 {
		return nil, fmt.Errorf("kernel size must be positive, got %d", kernel)
	}

	p := sketchify.NewProcessor()
	p.Sketcher = &sketchify.Sketcher{KernelSize: kernel, Method: method}
	p.Encoder = &media.Encoder{Quality: conf.Video.Quality, ScratchDir: conf.Video.ScratchDir}
	p.CanvasSize = conf.Animation.Canvas
	p.Params.FPS = conf.Animation.FPS
	p.Params.FrameCount = conf.Animation.FrameCount
	p.Params.ParticleCount = conf.Animation.ParticleCount
	p.Params.Duration = conf.Animation.Duration
	p.Params.Workers = conf.Animation.Workers

	return p, nil
}

// openInput returns the reader of the named file or stdin for the pipe name.
func openInput(in string) (*os.File, error) {
	if in == pipeName {
		if isTerminal(os.Stdin) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// createOutput returns the writer of the named file or stdout for the pipe name.
func createOutput(out string) (*os.File, error) {
	if out == pipeName {
		if isTerminal(os.Stdout) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

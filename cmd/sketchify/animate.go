package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/esimov/sketchify/effect"
	"github.com/esimov/sketchify/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type animateFlags struct {
	sketchFlags

	in, out   string
	effect    string
	fps       int
	frames    int
	particles int
	canvas    int
	duration  time.Duration
	seed      uint64
	base64    bool
}

func newAnimateCmd(opts *rootOptions) *cobra.Command {
	var f animateFlags

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate the transition from the sketch of an image to its colors",
		Long: `Animate renders one of the effects listed by "sketchify effects", carrying the
pencil sketch of the source image into the original colors. Still effects are
written as animated GIF, transitions as MJPEG AVI video.`,
		Example: `  sketchify animate -i photo.jpg -e "3D Rotation"
  sketchify animate -i photo.jpg -e "MP4 Transition" --duration 3s -o clip.avi
  sketchify animate -i photo.jpg -e glitch-effect --seed 42 --base64 -o - | pbcopy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnimate(cmd, opts, &f)
		},
	}

	cmd.Flags().StringVarP(&f.in, "in", "i", pipeName, "source image (- for stdin)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "destination file (- for stdout); generated when empty")
	cmd.Flags().StringVarP(&f.effect, "effect", "e", "Smooth Transition", "effect name")
	cmd.Flags().IntVar(&f.fps, "fps", effect.DefaultFPS, "frames per second")
	cmd.Flags().IntVar(&f.frames, "frames", 0, "number of frames (0 uses the effect default)")
	cmd.Flags().IntVar(&f.particles, "particles", effect.DefaultParticleCount, "number of particles")
	cmd.Flags().IntVar(&f.canvas, "canvas", 500, "side of the square canvas (0 keeps the source size)")
	cmd.Flags().DurationVar(&f.duration, "duration", effect.DefaultDuration, "duration of transition effects")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed of the random effects (0 picks a random one)")
	cmd.Flags().BoolVar(&f.base64, "base64", false, "write the base64 text encoding of the media")
	f.register(cmd)

	return cmd
}

func runAnimate(cmd *cobra.Command, opts *rootOptions, f *animateFlags) error {
	logger := loggerFromContext(cmd.Context())

	entry, err := effect.Resolve(f.effect)
	if err != nil {
		return fmt.Errorf("%w (run `sketchify effects` for the list)", err)
	}

	proc, err := newProcessor(cmd, opts.conf, &f.sketchFlags)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if err := checkAnimateFlags(flags, f); err != nil {
		return err
	}
	if flags.Changed("fps") {
		proc.Params.FPS = f.fps
	}
	if flags.Changed("frames") {
		proc.Params.FrameCount = f.frames
	}
	if flags.Changed("particles") {
		proc.Params.ParticleCount = f.particles
	}
	if flags.Changed("duration") {
		proc.Params.Duration = f.duration
	}
	if flags.Changed("canvas") {
		proc.CanvasSize = f.canvas
	}
	if flags.Changed("workers") {
		proc.Params.Workers = f.workers
	}
	if f.seed != 0 {
		proc.Params.Rand = rand.New(rand.NewPCG(f.seed, f.seed))
	}

	params := proc.EffectParams(entry)
	logger.Debug("rendering",
		"effect", entry.Name,
		"frames", params.FrameCount,
		"fps", params.FPS,
		"container", entry.Container,
	)

	src, err := openInput(f.in)
	if err != nil {
		return err
	}
	defer src.Close()

	now := time.Now()
	stop := startSpinner(os.Stderr, "is rendering the "+strings.ToLower(entry.Name)+"...")
	res, err := proc.Animate(src, entry.Name)
	stop(err == nil)
	if err != nil {
		return err
	}

	out := f.out
	if out == "" {
		out = outputName(res.Ext(), f.base64)
	}
	data := res.Bytes
	if f.base64 {
		data = []byte(res.Base64())
	}
	if err := writeOutput(out, data); err != nil {
		return err
	}

	if out != pipeName {
		logger.Info("animation saved",
			"file", out,
			"type", res.MIMEType(),
			"bytes", len(data),
			"took", utils.FormatTime(time.Since(now)),
		)
	}
	return nil
}

// checkAnimateFlags rejects explicitly set values the effects cannot work
// with, instead of letting them fall back to the defaults.
func checkAnimateFlags(flags *pflag.FlagSet, f *animateFlags) error {
	invalid := func(name string, v any) error {
		return fmt.Errorf("%w: --%s must be positive, got %v", effect.ErrInvalidParameters, name, v)
	}

	switch {
	case flags.Changed("fps") && f.fps < 1:
		return invalid("fps", f.fps)
	case flags.Changed("particles") && f.particles < 1:
		return invalid("particles", f.particles)
	case flags.Changed("duration") && f.duration <= 0:
		return invalid("duration", f.duration)
	case flags.Changed("frames") && f.frames < 0:
		return fmt.Errorf("%w: --frames must not be negative, got %d", effect.ErrInvalidParameters, f.frames)
	case flags.Changed("canvas") && f.canvas < 0:
		return fmt.Errorf("%w: --canvas must not be negative, got %d", effect.ErrInvalidParameters, f.canvas)
	}
	return nil
}

// outputName generates a unique file name for the encoded media.
func outputName(ext string, base64 bool) string {
	name := "sketchify-" + strings.Split(uuid.NewString(), "-")[0] + ext
	if base64 {
		name += ".b64"
	}
	return name
}

func writeOutput(out string, data []byte) (err error) {
	dst, err := createOutput(out)
	if err != nil {
		return err
	}
	if out == pipeName {
		_, err = dst.Write(data)
		return err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	_, err = dst.Write(data)
	return err
}

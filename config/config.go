// Package config loads the sketchify settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kkyr/fig"
)

// EnvPrefix is the prefix of the environment variables overriding the
// file settings, e.g. SKETCHIFY_ANIMATION_FPS.
const EnvPrefix = "SKETCHIFY"

// FileName is the name of the configuration file searched for.
const FileName = "sketchify.yaml"

// Config holds the settings of the command line tool. A zero frame count
// lets every effect use its own default.
type Config struct {
	Sketch struct {
		KernelSize int    `fig:"kernel_size" default:"21"`
		Blur       string `fig:"blur" default:"gaussian"`
		Workers    int    `fig:"workers"`
		Prefix     string `fig:"prefix" default:"sketch_"`
	} `fig:"sketch"`
	Animation struct {
		Canvas        int           `fig:"canvas" default:"500"`
		FPS           int           `fig:"fps" default:"30"`
		FrameCount    int           `fig:"frame_count"`
		ParticleCount int           `fig:"particle_count" default:"1000"`
		Duration      time.Duration `fig:"duration" default:"5s"`
		Workers       int           `fig:"workers"`
	} `fig:"animation"`
	Video struct {
		Quality    int    `fig:"quality" default:"90"`
		ScratchDir string `fig:"scratch_dir"`
	} `fig:"video"`
}

// Load reads the configuration. The path param specifies a custom
// directory holding the configuration file; otherwise the working
// directory, ./configs and ~/.sketchify are searched. A missing file is
// not an error: the defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	var conf Config

	dirs := []string{path}
	if path == "" {
		dirs = []string{".", "configs"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".sketchify"))
		}
	}

	err := fig.Load(&conf, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		conf = Config{}
		err = loadDefaults(&conf)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// loadDefaults fills conf from the struct tags and the environment only.
// fig always reads a file, so an empty one is staged in a temporary
// directory.
func loadDefaults(conf *Config) (err error) {
	dir, err := os.MkdirTemp("", "sketchify-config-")
	if err != nil {
		return err
	}
	defer func() {
		if rerr := os.RemoveAll(dir); rerr != nil {
			err = multierror.Append(err, rerr).ErrorOrNil()
		}
	}()

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{}\n"), 0o600); err != nil {
		return err
	}
	return fig.Load(conf, fig.File(FileName), fig.Dirs(dir), fig.UseEnv(EnvPrefix))
}

// Validate checks the settings for out of range values and reports all of
// them at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			result = multierror.Append(result, fmt.Errorf(format, args...))
		}
	}

	check(c.Sketch.KernelSize >= 1, "sketch.kernel_size must be >= 1, got %d", c.Sketch.KernelSize)
	check(c.Sketch.Blur == "gaussian" || c.Sketch.Blur == "stack",
		"sketch.blur must be gaussian or stack, got %q", c.Sketch.Blur)
	check(c.Sketch.Workers >= 0, "sketch.workers must be >= 0, got %d", c.Sketch.Workers)
	check(c.Animation.Canvas >= 0, "animation.canvas must be >= 0, got %d", c.Animation.Canvas)
	check(c.Animation.FPS >= 1, "animation.fps must be >= 1, got %d", c.Animation.FPS)
	check(c.Animation.FrameCount == 0 || c.Animation.FrameCount >= 2,
		"animation.frame_count must be 0 or >= 2, got %d", c.Animation.FrameCount)
	check(c.Animation.ParticleCount >= 1, "animation.particle_count must be >= 1, got %d", c.Animation.ParticleCount)
	check(c.Animation.Duration > 0, "animation.duration must be positive, got %v", c.Animation.Duration)
	check(c.Animation.Workers >= 0, "animation.workers must be >= 0, got %d", c.Animation.Workers)
	check(c.Video.Quality >= 1 && c.Video.Quality <= 100, "video.quality must be in [1, 100], got %d", c.Video.Quality)

	return result.ErrorOrNil()
}

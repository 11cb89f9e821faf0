// Package effect generates animated frame sequences that carry one raster
// into another: cross fades, zoom and pan, picture in picture, parallax,
// glitches, a simulated card flip and a particle transition.
package effect

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/esimov/sketchify/raster"
)

var (
	// ErrInvalidParameters is returned for out of range effect parameters.
	ErrInvalidParameters = errors.New("effect: invalid parameters")
	// ErrUnknownEffect is returned when an effect name or kind is not recognized.
	ErrUnknownEffect = errors.New("effect: unknown effect")
)

// Kind identifies a frame generation strategy.
type Kind int

const (
	Smooth Kind = iota
	PictureInPicture
	KenBurns
	Parallax
	Glitch
	Rotation3D
	Particles
)

var kindNames = map[Kind]string{
	Smooth:           "smooth",
	PictureInPicture: "picture-in-picture",
	KenBurns:         "ken-burns",
	Parallax:         "parallax",
	Glitch:           "glitch",
	Rotation3D:       "rotation-3d",
	Particles:        "particles",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Default effect parameters.
const (
	DefaultFrameCount    = 150
	DefaultFPS           = 30
	DefaultParticleCount = 1000
	DefaultDuration      = 5 * time.Second
)

// Params configures a frame sequence.
type Params struct {
	// FrameCount is the number of frames to render; at least 2.
	FrameCount int
	// FPS is the playback rate handed over to the encoder.
	FPS int
	// ParticleCount is only used by the Particles effect.
	ParticleCount int
	// Duration sets the frame count of transition effects to FPS*Duration.
	Duration time.Duration
	// Workers bounds the number of frames rendered concurrently.
	// Zero or less means runtime.NumCPU().
	Workers int
	// Rand is the random source of the Glitch and Particles effects.
	// A time seeded source is used when nil.
	Rand *rand.Rand
}

// DefaultParams returns the parameters of a still effect.
func DefaultParams() Params {
	return Params{
		FrameCount:    DefaultFrameCount,
		FPS:           DefaultFPS,
		ParticleCount: DefaultParticleCount,
		Duration:      DefaultDuration,
	}
}

// TransitionFrames returns the number of frames a transition of the given
// duration needs at the given frame rate.
func TransitionFrames(fps int, d time.Duration) int {
	return int(math.Round(float64(fps) * d.Seconds()))
}

func (p Params) validate(kind Kind) error {
	if p.FrameCount < 2 {
		return fmt.Errorf("%w: frame count must be at least 2, got %d", ErrInvalidParameters, p.FrameCount)
	}
	if p.FPS < 1 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidParameters, p.FPS)
	}
	if kind == Particles && p.ParticleCount < 1 {
		return fmt.Errorf("%w: particle count must be positive, got %d", ErrInvalidParameters, p.ParticleCount)
	}
	return nil
}

// renderFunc renders the i-th frame of a sequence. It must not modify the
// source rasters and must not draw random numbers, since frames are
// rendered concurrently and in no particular order.
type renderFunc func(i int) *raster.Image

// newRenderer prepares the sequence scoped state of an effect. Random
// numbers are only drawn here, serially, so a seeded source always
// produces the same frames.
type newRenderer func(from, to *raster.Image, p Params, rng *rand.Rand) (renderFunc, error)

var renderers = map[Kind]newRenderer{
	Smooth:           smooth,
	PictureInPicture: pictureInPicture,
	KenBurns:         kenBurns,
	Parallax:         parallax,
	Glitch:           glitch,
	Rotation3D:       rotation3D,
	Particles:        particles,
}

// Generate renders p.FrameCount frames carrying from into to with the
// strategy selected by kind. Both rasters must be 3 channel images of the
// same size. The returned sequence is in temporal order.
func Generate(kind Kind, from, to *raster.Image, p Params) (*raster.Sequence, error) {
	build, ok := renderers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEffect, kind)
	}
	if err := checkSources(from, to); err != nil {
		return nil, err
	}
	if err := p.validate(kind); err != nil {
		return nil, err
	}

	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	render, err := build(from, to, p, rng)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}

	return raster.NewSequence(renderAll(render, p.FrameCount, p.Workers)), nil
}

func checkSources(from, to *raster.Image) error {
	for _, img := range []*raster.Image{from, to} {
		if err := img.Validate(); err != nil {
			return err
		}
		if img.Channels != raster.RGB {
			return fmt.Errorf("%w: effects need %d color channels, got %d",
				raster.ErrChannel, raster.RGB, img.Channels)
		}
	}
	if !from.SameSize(to) {
		return fmt.Errorf("%w: %dx%d and %dx%d",
			raster.ErrDimensionMismatch, from.Width, from.Height, to.Width, to.Height)
	}
	return nil
}

// renderAll fans the frame indices out over a fixed pool of workers.
// Each worker writes into its own slot, so the result keeps index order.
func renderAll(render renderFunc, n, workers int) []*raster.Image {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, n)

	frames := make([]*raster.Image, n)
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				frames[i] = render(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return frames
}

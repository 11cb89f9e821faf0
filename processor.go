package sketchify

import (
	"fmt"
	"image"
	"io"

	"github.com/esimov/sketchify/effect"
	"github.com/esimov/sketchify/media"
	"github.com/esimov/sketchify/raster"
)

// DefaultCanvasSize is the side of the square canvas animations are rendered on.
const DefaultCanvasSize = 500

// Processor options
type Processor struct {
	Sketcher *Sketcher
	Encoder  *media.Encoder
	// CanvasSize is the side of the square animation canvas. Zero or less
	// renders animations at the source resolution.
	CanvasSize int
	// Params overrides the default parameters of an effect. Zero valued
	// fields keep the defaults.
	Params effect.Params
}

// NewProcessor returns a Processor with the default settings.
func NewProcessor() *Processor {
	return &Processor{
		Sketcher:   NewSketcher(),
		Encoder:    media.NewEncoder(),
		CanvasSize: DefaultCanvasSize,
	}
}

// Process decodes the image read from r and writes its pencil sketch to w.
// Files are encoded in the format given by their extension, other writers
// receive PNG.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, err := decodeImg(r)
	if err != nil {
		return err
	}
	sketch, err := p.SketchImage(src)
	if err != nil {
		return err
	}
	return encodeImg(w, sketch.GrayImage())
}

// SketchImage converts a decoded image into a single channel sketch at the
// source resolution.
func (p *Processor) SketchImage(src image.Image) (*raster.Image, error) {
	return p.sketcher().Convert(raster.FromImage(src))
}

// Animate decodes the image read from r and animates it with the named
// effect. See AnimateImage.
func (p *Processor) Animate(r io.Reader, effectName string) (*media.Encoded, error) {
	src, err := decodeImg(r)
	if err != nil {
		return nil, err
	}
	return p.AnimateImage(src, effectName)
}

// AnimateImage sketches src and renders the named effect carrying the
// sketch into the original colors. Both layers are resized to the canvas
// first. The result is encoded in the container declared by the effect.
func (p *Processor) AnimateImage(src image.Image, effectName string) (*media.Encoded, error) {
	entry, err := effect.Resolve(effectName)
	if err != nil {
		return nil, err
	}

	color := raster.FromImage(src)
	sketch, err := p.sketcher().Convert(color)
	if err != nil {
		return nil, err
	}

	from := fitCanvas(sketch.ToRGB(), p.CanvasSize)
	to := fitCanvas(color, p.CanvasSize)

	params := p.EffectParams(entry)
	seq, err := effect.Generate(entry.Kind, from, to, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Name, err)
	}

	return p.encoder().Encode(seq, params.FPS, entry.Container)
}

// EffectParams merges the Processor overrides into the defaults of e. Zero
// valued overrides keep the defaults; out of range ones are passed on and
// rejected by effect.Generate. Transitions derive their frame count from
// the duration unless the frame count is overridden explicitly.
func (p *Processor) EffectParams(e effect.Entry) effect.Params {
	params := e.DefaultParams()
	o := p.Params

	if o.FPS != 0 {
		params.FPS = o.FPS
	}
	if o.Duration != 0 {
		params.Duration = o.Duration
	}
	if e.Transition {
		params.FrameCount = effect.TransitionFrames(params.FPS, params.Duration)
	}
	if o.FrameCount != 0 {
		params.FrameCount = o.FrameCount
	}
	if o.ParticleCount != 0 {
		params.ParticleCount = o.ParticleCount
	}
	params.Workers = o.Workers
	params.Rand = o.Rand

	return params
}

func (p *Processor) sketcher() *Sketcher {
	if p.Sketcher == nil {
		return NewSketcher()
	}
	return p.Sketcher
}

func (p *Processor) encoder() *media.Encoder {
	if p.Encoder == nil {
		return media.NewEncoder()
	}
	return p.Encoder
}

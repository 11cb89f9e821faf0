package sketchify

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/gift"
	"github.com/esimov/sketchify/imop"
	"github.com/esimov/sketchify/raster"
)

// DefaultKernelSize is the side of the blur window used to build the dodge layer.
const DefaultKernelSize = 21

// BlurMethod selects the low-pass filter applied to the inverted gray plane.
type BlurMethod int

const (
	// GaussianBlur applies a true Gaussian kernel.
	GaussianBlur BlurMethod = iota
	// StackBlur approximates the Gaussian with a faster triangular kernel.
	StackBlur
)

func (m BlurMethod) String() string {
	switch m {
	case GaussianBlur:
		return "gaussian"
	case StackBlur:
		return "stack"
	}
	return fmt.Sprintf("BlurMethod(%d)", int(m))
}

// ParseBlurMethod converts a name like "gaussian" or "stack" into a BlurMethod.
func ParseBlurMethod(name string) (BlurMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gaussian", "gauss":
		return GaussianBlur, nil
	case "stack", "stackblur":
		return StackBlur, nil
	}
	return 0, fmt.Errorf("unknown blur method: %q", name)
}

// Sketcher converts color rasters into pencil sketches.
// The zero value is not usable; use NewSketcher.
type Sketcher struct {
	KernelSize int
	Method     BlurMethod
}

// NewSketcher returns a Sketcher with the default 21x21 Gaussian kernel.
func NewSketcher() *Sketcher {
	return &Sketcher{KernelSize: DefaultKernelSize, Method: GaussianBlur}
}

// ConvertToSketch converts img using the default Sketcher.
func ConvertToSketch(img *raster.Image) (*raster.Image, error) {
	return NewSketcher().Convert(img)
}

// Convert turns a 3 channel color raster into a single channel pencil sketch.
//
// The luma plane is inverted and blurred, and the blurred negative is used
// as the blend layer of a color dodge over the original luma. Flat regions
// burn out to white while edges keep their darker strokes.
func (s *Sketcher) Convert(src *raster.Image) (*raster.Image, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Channels != raster.RGB {
		return nil, fmt.Errorf("%w: sketch needs %d color channels, got %d",
			raster.ErrChannel, raster.RGB, src.Channels)
	}
	if s.KernelSize < 1 {
		return nil, errors.New("sketch kernel size must be positive")
	}

	gray := grayscale(src)
	blurred := s.blur(invert(gray), src.Width, src.Height)

	dst := raster.New(src.Width, src.Height, raster.Gray)
	blend := imop.NewBlend()
	if err := blend.Set(imop.ColorDodge); err != nil {
		return nil, err
	}
	blend.Planes(dst.Pix, gray, blurred)

	return dst, nil
}

func (s *Sketcher) blur(plane []uint8, width, height int) []uint8 {
	switch s.Method {
	case StackBlur:
		return stackBlur(plane, width, height, s.KernelSize/2)
	default:
		src := &image.Gray{Pix: plane, Stride: width, Rect: image.Rect(0, 0, width, height)}
		g := gift.New(gift.GaussianBlur(kernelSigma(s.KernelSize)))
		dst := image.NewGray(g.Bounds(src.Bounds()))
		g.Draw(dst, src)
		return dst.Pix
	}
}

// kernelSigma derives the Gaussian standard deviation from the kernel size
// the same way OpenCV does when no explicit sigma is provided.
func kernelSigma(size int) float32 {
	return float32(0.3*(float64(size-1)*0.5-1) + 0.8)
}

package imop

import (
	"fmt"
	"image"
	"math"
	"slices"
)

const (
	// Copy replaces the backdrop with the source.
	Copy = "copy"
	// SrcOver draws the source over the backdrop, weighted by its alpha.
	SrcOver = "src_over"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a Composite with SrcOver as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops:     []string{Copy, SrcOver},
	}
}

// Set activates a composition operation.
func (op *Composite) Set(cop string) error {
	if !slices.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop weights.
func (op *Composite) factors(as float64) (fa, fb float64) {
	if op.current == Copy {
		return 1, 0
	}
	return 1, 1 - as
}

// Draw composites src onto the backdrop dst, with the top-left corner of src
// placed at the at point of dst. Only the overlapping area is touched; src
// pixels falling outside dst are clipped.
func (op *Composite) Draw(dst, src *image.NRGBA, at image.Point) {
	sb := src.Bounds()
	area := sb.Sub(sb.Min).Add(at).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		di := dst.PixOffset(area.Min.X, y)
		si := src.PixOffset(sb.Min.X+area.Min.X-at.X, sb.Min.Y+y-at.Y)

		for x := area.Min.X; x < area.Max.X; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			as := float64(s[3]) / 255
			ab := float64(d[3]) / 255
			fa, fb := op.factors(as)

			ao := fa*as + fb*ab
			if ao <= 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			} else {
				for c := 0; c < 3; c++ {
					// premultiplied result divided back by the output alpha
					v := (fa*as*float64(s[c]) + fb*ab*float64(d[c])) / ao
					d[c] = uint8(math.Min(255, math.Round(v)))
				}
				d[3] = uint8(math.Min(255, math.Round(ao*255)))
			}
			si += 4
			di += 4
		}
	}
}

// Package imop implements the color dodge blend which produces the pencil
// sketch shading, and the Porter-Duff composition of a graphic element
// placed at an offset over its backdrop.
package imop

import (
	"fmt"
	"slices"

	"github.com/esimov/sketchify/utils"
)

// ColorDodge brightens the base layer by the inverse of the top layer.
const ColorDodge = "color_dodge"

var blendModes = []string{ColorDodge}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if !slices.Contains(blendModes, opType) {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// Apply blends a single channel value of the top layer over the base layer.
// With no active mode the top layer is returned unchanged.
func (o *Blend) Apply(base, top uint8) uint8 {
	if o.OpType == ColorDodge {
		return Dodge(base, top)
	}
	return top
}

// Planes blends the top plane over the base plane into dst.
// All three slices must have the same length.
func (o *Blend) Planes(dst, base, top []uint8) {
	for i := range dst {
		dst[i] = o.Apply(base[i], top[i])
	}
}

// Dodge brightens base by the inverse of the blend value:
// base*256 / (255-blend), rounded and saturated to 255.
// A zero divisor is treated as one, so any non-black base burns out to white.
func Dodge(base, blend uint8) uint8 {
	d := utils.Max(255-int(blend), 1)
	return uint8(utils.Min(255, (int(base)*256+d/2)/d))
}

package effect

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/raster"
)

// rotation3D fakes a card flip around the vertical axis. The front face
// shows from, the back face shows to.
func rotation3D(from, to *raster.Image, p Params, _ *rand.Rand) (renderFunc, error) {
	var (
		front = from.NRGBA()
		back  = to.NRGBA()
		w, h  = from.Width, from.Height
		n     = float64(p.FrameCount)
	)

	return func(i int) *raster.Image {
		angle := 360 * float64(i) / n

		face := back
		if isFrontFace(angle) {
			face = front
		}

		// Rotate expands the canvas to fit, so cut it back to the frame size.
		rotated := imaging.CropCenter(imaging.Rotate(face, angle, color.Black), w, h)

		width := max(1, int(float64(w)*math.Abs(math.Cos(angle*math.Pi/180))))
		squashed := imaging.Resize(rotated, width, h, imaging.Lanczos)

		dst := imaging.Paste(imaging.New(w, h, color.Black), squashed, image.Pt((w-width)/2, 0))
		return raster.FromImage(dst)
	}, nil
}

// isFrontFace reports whether the card shows its front at the given angle.
func isFrontFace(angle float64) bool {
	return angle < 90 || angle >= 270
}

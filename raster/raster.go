// Package raster defines the in-memory pixel buffers shared by the sketch
// converter, the frame sequencer and the media encoder.
//
// An Image is a row-major, interleaved buffer with a fixed channel count.
// Gray (1 channel) and RGB (3 channels) buffers are produced by the
// pipeline; RGBA (4 channels) is accepted only as a conversion source.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

var (
	// ErrDecode is returned when a buffer cannot be interpreted as a raster.
	ErrDecode = errors.New("raster: invalid image buffer")
	// ErrChannel is returned when an image has an unexpected channel count.
	ErrChannel = errors.New("raster: unsupported channel count")
	// ErrDimensionMismatch is returned when paired images differ in size.
	ErrDimensionMismatch = errors.New("raster: image dimensions differ")
)

// Channel counts understood by the package.
const (
	Gray = 1
	RGB  = 3
	RGBA = 4
)

// Image is a rectangular pixel buffer.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

var _ image.Image = (*Image)(nil)

// New allocates a zeroed (black) image.
func New(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// FromImage copies any image.Image into a new 3 channel RGB raster.
// Alpha is discarded; the source is expected to be opaque.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := New(b.Dx(), b.Dy(), RGB)

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < dst.Height; y++ {
			si := s.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Width * RGB
			for x := 0; x < dst.Width; x++ {
				dst.Pix[di+0] = s.Pix[si+0]
				dst.Pix[di+1] = s.Pix[si+1]
				dst.Pix[di+2] = s.Pix[si+2]
				si += 4
				di += RGB
			}
		}
	case *image.Gray:
		for y := 0; y < dst.Height; y++ {
			si := s.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Width * RGB
			for x := 0; x < dst.Width; x++ {
				v := s.Pix[si+x]
				dst.Pix[di+0], dst.Pix[di+1], dst.Pix[di+2] = v, v, v
				di += RGB
			}
		}
	default:
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.Pix[i+0] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				i += RGB
			}
		}
	}
	return dst
}

// Validate checks the buffer against the declared geometry.
func (m *Image) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrDecode)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: zero sized image %dx%d", ErrDecode, m.Width, m.Height)
	}
	switch m.Channels {
	case Gray, RGB, RGBA:
	default:
		return fmt.Errorf("%w: %d", ErrChannel, m.Channels)
	}
	if want := m.Width * m.Height * m.Channels; len(m.Pix) != want {
		return fmt.Errorf("%w: buffer holds %d bytes, %dx%dx%d needs %d",
			ErrDecode, len(m.Pix), m.Width, m.Height, m.Channels, want)
	}
	return nil
}

// SameSize reports whether m and o share width and height.
func (m *Image) SameSize(o *Image) bool {
	return m.Width == o.Width && m.Height == o.Height
}

// Offset returns the index of the first byte of the pixel at (x, y).
func (m *Image) Offset(x, y int) int {
	return (y*m.Width + x) * m.Channels
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Width: m.Width, Height: m.Height, Channels: m.Channels, Pix: pix}
}

// ToRGB expands a gray image to three channels. RGB images are cloned.
func (m *Image) ToRGB() *Image {
	switch m.Channels {
	case RGB:
		return m.Clone()
	case Gray:
		dst := New(m.Width, m.Height, RGB)
		for i, v := range m.Pix {
			dst.Pix[i*RGB+0] = v
			dst.Pix[i*RGB+1] = v
			dst.Pix[i*RGB+2] = v
		}
		return dst
	default:
		return FromImage(m.NRGBA())
	}
}

// NRGBA converts m into an opaque *image.NRGBA which does not alias m.
func (m *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	n := m.Width * m.Height
	for i := 0; i < n; i++ {
		si, di := i*m.Channels, i*4
		switch m.Channels {
		case Gray:
			v := m.Pix[si]
			dst.Pix[di+0], dst.Pix[di+1], dst.Pix[di+2] = v, v, v
			dst.Pix[di+3] = 0xff
		case RGB:
			dst.Pix[di+0] = m.Pix[si+0]
			dst.Pix[di+1] = m.Pix[si+1]
			dst.Pix[di+2] = m.Pix[si+2]
			dst.Pix[di+3] = 0xff
		case RGBA:
			copy(dst.Pix[di:di+4], m.Pix[si:si+4])
		}
	}
	return dst
}

// GrayImage returns the single channel image as *image.Gray.
func (m *Image) GrayImage() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	if m.Channels == Gray {
		copy(dst.Pix, m.Pix)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), m.NRGBA(), image.Point{}, draw.Src)
	return dst
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	if m.Channels == Gray {
		return color.GrayModel
	}
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	i := m.Offset(x, y)
	switch m.Channels {
	case Gray:
		return color.Gray{Y: m.Pix[i]}
	case RGB:
		return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: 0xff}
	default:
		return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
	}
}

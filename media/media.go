// Package media encodes frame sequences into shareable containers held in
// memory: animated GIF images and MJPEG AVI videos.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/esimov/sketchify/raster"
	"github.com/esimov/sketchify/utils"
)

// ErrEncoding is returned when a sequence cannot be encoded.
var ErrEncoding = errors.New("media: encoding failed")

// Container is the output media type.
type Container int

const (
	// AnimatedImage is an infinitely looping GIF.
	AnimatedImage Container = iota
	// Video is a Motion JPEG stream in an AVI container.
	Video
)

func (c Container) String() string {
	switch c {
	case AnimatedImage:
		return "animated-image"
	case Video:
		return "video"
	}
	return fmt.Sprintf("Container(%d)", int(c))
}

// Ext returns the file extension of the container, including the dot.
func (c Container) Ext() string {
	switch c {
	case AnimatedImage:
		return ".gif"
	case Video:
		return ".avi"
	}
	return ""
}

// MIMEType returns the media type of the container.
func (c Container) MIMEType() string {
	switch c {
	case AnimatedImage:
		return "image/gif"
	case Video:
		return "video/x-msvideo"
	}
	return "application/octet-stream"
}

// Encoded is a fully encoded media file.
type Encoded struct {
	Bytes     []byte
	Container Container
	FPS       int
}

// Base64 returns the standard base64 text encoding of the media bytes.
func (e *Encoded) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Bytes)
}

// MIMEType returns the media type of the encoded bytes.
func (e *Encoded) MIMEType() string { return e.Container.MIMEType() }

// Ext returns the file extension matching the encoded bytes.
func (e *Encoded) Ext() string { return e.Container.Ext() }

// DefaultQuality is the JPEG quality of video frames.
const DefaultQuality = 90

// maxDimension is the largest frame side the containers can describe.
const maxDimension = 65535

// Encoder converts frame sequences into media containers.
type Encoder struct {
	// Quality is the JPEG quality of video frames, in the range [1, 100].
	Quality int
	// ScratchDir is the parent of the private scratch directories used for
	// video encoding. The system temporary directory is used when empty.
	ScratchDir string
}

// NewEncoder returns an Encoder with the default settings.
func NewEncoder() *Encoder {
	return &Encoder{Quality: DefaultQuality}
}

// Encode encodes seq with the default Encoder.
func Encode(seq *raster.Sequence, fps int, c Container) (*Encoded, error) {
	return NewEncoder().Encode(seq, fps, c)
}

// Encode encodes the frames of seq, in order, at the given frame rate.
// All frames must share the size of the first one.
func (e *Encoder) Encode(seq *raster.Sequence, fps int, c Container) (*Encoded, error) {
	if seq.Len() == 0 {
		return nil, fmt.Errorf("%w: empty frame sequence", ErrEncoding)
	}
	if fps < 1 {
		return nil, fmt.Errorf("%w: fps must be positive, got %d", ErrEncoding, fps)
	}
	if err := checkFrames(seq); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch c {
	case AnimatedImage:
		data, err = encodeGIF(seq, fps)
	case Video:
		data, err = encodeVideo(seq, fps, e.quality(), e.ScratchDir)
	default:
		return nil, fmt.Errorf("%w: unsupported container %v", ErrEncoding, c)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %v encoder produced no output", ErrEncoding, c)
	}

	return &Encoded{Bytes: data, Container: c, FPS: fps}, nil
}

func (e *Encoder) quality() int {
	if e.Quality == 0 {
		return DefaultQuality
	}
	return utils.Clamp(e.Quality, 1, 100)
}

func checkFrames(seq *raster.Sequence) error {
	frames := seq.Frames()
	for _, f := range frames {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: frame %d: %w", ErrEncoding, f.Index, err)
		}
	}

	w, h := seq.Size()
	if w > maxDimension || h > maxDimension {
		return fmt.Errorf("%w: unsupported resolution %dx%d", ErrEncoding, w, h)
	}
	for _, f := range frames[1:] {
		if f.Width != w || f.Height != h {
			return fmt.Errorf("%w: frame %d is %dx%d, expected %dx%d",
				ErrEncoding, f.Index, f.Width, f.Height, w, h)
		}
	}
	return nil
}

package raster

// Frame is an image tagged with its position inside a sequence.
type Frame struct {
	*Image
	Index int
}

// Sequence is an ordered, immutable list of frames.
type Sequence struct {
	frames []Frame
}

// NewSequence tags the images with their ordinal index. The images are
// owned by the sequence afterwards and must not be modified by the caller.
// Frame sizes are not checked here; encoders reject inconsistent sequences.
func NewSequence(images []*Image) *Sequence {
	frames := make([]Frame, len(images))
	for i, img := range images {
		frames[i] = Frame{Image: img, Index: i}
	}
	return &Sequence{frames: frames}
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Frame returns the i-th frame.
func (s *Sequence) Frame(i int) Frame { return s.frames[i] }

// Frames returns the frames in temporal order.
func (s *Sequence) Frames() []Frame {
	frames := make([]Frame, len(s.frames))
	copy(frames, s.frames)
	return frames
}

// Size returns the dimensions of the first frame.
func (s *Sequence) Size() (width, height int) {
	if s.Len() == 0 {
		return 0, 0
	}
	return s.frames[0].Width, s.frames[0].Height
}

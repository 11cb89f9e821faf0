package effect

import (
	"fmt"
	"strings"

	"github.com/esimov/sketchify/media"
)

// Entry describes an effect offered to the user.
type Entry struct {
	// Name is the human readable label.
	Name string
	Kind Kind
	// Container is the media type the effect is delivered in.
	Container media.Container
	// Transition effects derive their frame count from a duration.
	Transition bool
}

// DefaultParams returns the parameters the effect runs with when the
// caller does not override them.
func (e Entry) DefaultParams() Params {
	p := DefaultParams()
	if e.Transition {
		p.FrameCount = TransitionFrames(p.FPS, p.Duration)
	}
	return p
}

var catalog = []Entry{
	{Name: "Smooth Transition", Kind: Smooth, Container: media.AnimatedImage},
	{Name: "Picture in Picture", Kind: PictureInPicture, Container: media.AnimatedImage},
	{Name: "Ken Burns Effect", Kind: KenBurns, Container: media.AnimatedImage},
	{Name: "Parallax Effect", Kind: Parallax, Container: media.AnimatedImage},
	{Name: "Glitch Effect", Kind: Glitch, Container: media.AnimatedImage},
	{Name: "3D Rotation", Kind: Rotation3D, Container: media.AnimatedImage},
	{Name: "Particles Transition", Kind: Particles, Container: media.AnimatedImage},
	{Name: "MP4 Transition", Kind: Smooth, Container: media.Video, Transition: true},
}

var index = func() map[string]Entry {
	m := make(map[string]Entry, len(catalog))
	for _, e := range catalog {
		m[normalize(e.Name)] = e
	}
	return m
}()

// Catalog returns every effect in presentation order.
func Catalog() []Entry {
	entries := make([]Entry, len(catalog))
	copy(entries, catalog)
	return entries
}

// Resolve looks an effect up by its label. The match ignores case,
// whitespace, dashes and underscores, so "ken-burns effect" finds
// "Ken Burns Effect".
func Resolve(name string) (Entry, error) {
	e, ok := index[normalize(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return e, nil
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

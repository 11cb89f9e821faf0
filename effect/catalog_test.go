package effect

import (
	"errors"
	"testing"

	"github.com/esimov/sketchify/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name       string
		kind       Kind
		container  media.Container
		transition bool
	}{
		{name: "Smooth Transition", kind: Smooth, container: media.AnimatedImage},
		{name: "Picture in Picture", kind: PictureInPicture, container: media.AnimatedImage},
		{name: "Ken Burns Effect", kind: KenBurns, container: media.AnimatedImage},
		{name: "Parallax Effect", kind: Parallax, container: media.AnimatedImage},
		{name: "Glitch Effect", kind: Glitch, container: media.AnimatedImage},
		{name: "3D Rotation", kind: Rotation3D, container: media.AnimatedImage},
		{name: "Particles Transition", kind: Particles, container: media.AnimatedImage},
		{name: "MP4 Transition", kind: Smooth, container: media.Video, transition: true},
		{name: "ken-burns_effect", kind: KenBurns, container: media.AnimatedImage},
		{name: "  3d rotation ", kind: Rotation3D, container: media.AnimatedImage},
		{name: "mp4transition", kind: Smooth, container: media.Video, transition: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Resolve(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind)
			assert.Equal(t, tc.container, e.Container)
			assert.Equal(t, tc.transition, e.Transition)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, name := range []string{"", "Sepia", "Smooth"} {
		_, err := Resolve(name)
		assert.True(t, errors.Is(err, ErrUnknownEffect), name)
	}
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	entries := Catalog()
	assert.Len(entries, 8)
	assert.Equal("Smooth Transition", entries[0].Name)

	// The returned slice is a copy.
	entries[0].Name = "changed"
	assert.Equal("Smooth Transition", Catalog()[0].Name)
}

func TestEntry_DefaultParams(t *testing.T) {
	assert := assert.New(t)

	still, err := Resolve("Glitch Effect")
	require.NoError(t, err)
	p := still.DefaultParams()
	assert.Equal(DefaultFrameCount, p.FrameCount)
	assert.Equal(DefaultFPS, p.FPS)
	assert.Equal(DefaultParticleCount, p.ParticleCount)

	transition, err := Resolve("MP4 Transition")
	require.NoError(t, err)
	p = transition.DefaultParams()
	assert.Equal(DefaultFPS*5, p.FrameCount)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ken-burns", KenBurns.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

package sketchify

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestBatch_Run(t *testing.T) {
	assert := assert.New(t)

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.png"), pngBytes(t, 12, 8))
	writeFile(t, filepath.Join(src, "nested", "b.png"), pngBytes(t, 6, 6))
	writeFile(t, filepath.Join(src, "notes.txt"), []byte("skip me"))
	// Has an image extension, but no image inside.
	writeFile(t, filepath.Join(src, "fake.jpg"), []byte("plain text"))

	var (
		mu       sync.Mutex
		reported int
	)
	b := &Batch{
		Processor: NewProcessor(),
		Workers:   2,
		OnResult: func(Result) {
			mu.Lock()
			reported++
			mu.Unlock()
		},
	}

	results, err := b.Run(context.Background(), src, "")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(3, reported)

	dst := filepath.Join(src, "sketches")
	byPath := map[string]Result{}
	for _, r := range results {
		byPath[r.Path] = r
	}

	a := byPath[filepath.Join(src, "a.png")]
	assert.NoError(a.Err)
	assert.Equal(filepath.Join(dst, "sketch_a.png"), a.Out)
	assert.FileExists(a.Out)

	nested := byPath[filepath.Join(src, "nested", "b.png")]
	assert.NoError(nested.Err)
	assert.Equal(filepath.Join(dst, "nested", "sketch_b.png"), nested.Out)
	assert.FileExists(nested.Out)

	fake := byPath[filepath.Join(src, "fake.jpg")]
	assert.Error(fake.Err)
	assert.NoFileExists(filepath.Join(dst, "sketch_fake.jpg"))

	// A second run does not pick up the sketches of the first one.
	results, err = b.Run(context.Background(), src, "")
	require.NoError(t, err)
	assert.Len(results, 3)
}

func TestBatch_CustomPrefix(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "photo.png"), pngBytes(t, 10, 10))

	b := &Batch{Prefix: "pencil-"}
	results, err := b.Run(context.Background(), src, dst)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.FileExists(t, filepath.Join(dst, "pencil-photo.png"))
}

func TestBatch_WebPSourceGetsPNGSketch(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	// The content is sniffed, so PNG bytes under a .webp name are decoded.
	writeFile(t, filepath.Join(src, "photo.webp"), pngBytes(t, 10, 10))

	results, err := (&Batch{}).Run(context.Background(), src, dst)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	out := filepath.Join(dst, "sketch_photo.png")
	assert.Equal(t, out, results[0].Out)
	assert.NoFileExists(t, filepath.Join(dst, "sketch_photo.webp"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestBatch_Cancelled(t *testing.T) {
	src := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		writeFile(t, filepath.Join(src, name), pngBytes(t, 4, 4))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Batch{}).Run(ctx, src, t.TempDir())
	assert.Error(t, err)
}

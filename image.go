package sketchify

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/sketchify/raster"
	_ "golang.org/x/image/webp"
)

// jpegQuality is the quality of JPEG encoded sketches.
const jpegQuality = 95

// decodeImg decodes any registered image format. JPEG files are rotated
// according to their EXIF orientation tag.
func decodeImg(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", raster.ErrDecode, err)
	}
	return img, nil
}

// outputFormat returns the encoding matching the file name extension,
// falling back to PNG for unknown extensions and streams.
func outputFormat(name string) imaging.Format {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return imaging.PNG
	}
	return format
}

// sketchName returns name with its extension replaced by ".png" when the
// extension names a format the sketch cannot be written in, such as WebP.
func sketchName(name string) string {
	if _, err := imaging.FormatFromFilename(name); err == nil {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}

// encodeImg encodes an image to a destination of type io.Writer. Files are
// encoded in the format given by their extension, anything else as PNG.
func encodeImg(w io.Writer, img image.Image) error {
	format := imaging.PNG
	if f, ok := w.(*os.File); ok {
		format = outputFormat(f.Name())
	}
	return encodeAs(w, img, format)
}

func encodeAs(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encoding %v: %w", format, err)
	}
	return nil
}

// fitCanvas resizes img to a size x size square. A non positive size keeps
// the original dimensions.
func fitCanvas(img *raster.Image, size int) *raster.Image {
	if size <= 0 || (img.Width == size && img.Height == size) {
		return img
	}
	return raster.FromImage(imaging.Resize(img.NRGBA(), size, size, imaging.Lanczos))
}

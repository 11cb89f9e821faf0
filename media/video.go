package media

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/icza/mjpeg"

	"github.com/esimov/sketchify/raster"
)

// encodeVideo writes the frames as a Motion JPEG AVI. The AVI writer only
// works on files, so the video is staged in a scratch directory and read
// back into memory.
func encodeVideo(seq *raster.Sequence, fps, quality int, scratch string) ([]byte, error) {
	var data []byte

	err := withScratch(scratch, func(dir string) error {
		path := filepath.Join(dir, uuid.NewString()+Video.Ext())
		if err := writeAVI(path, seq, fps, quality); err != nil {
			return err
		}

		var err error
		if data, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("%w: reading video: %w", ErrEncoding, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func writeAVI(path string, seq *raster.Sequence, fps, quality int) (err error) {
	w, h := seq.Size()

	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return fmt.Errorf("%w: avi: %w", ErrEncoding, err)
	}
	defer func() {
		if cerr := aw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: avi: %w", ErrEncoding, cerr)
		}
	}()

	var buf bytes.Buffer
	for _, f := range seq.Frames() {
		buf.Reset()
		if err := jpeg.Encode(&buf, f.NRGBA(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("%w: frame %d: %w", ErrEncoding, f.Index, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("%w: frame %d: %w", ErrEncoding, f.Index, err)
		}
	}
	return nil
}

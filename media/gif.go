package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"runtime"
	"sync"

	"github.com/esimov/sketchify/raster"
)

// gifDelay converts a frame rate into the per frame delay of a GIF,
// expressed in hundredths of a second.
func gifDelay(fps int) int {
	return max(1, int(math.Round(100/float64(fps))))
}

// encodeGIF builds an infinitely looping GIF. Every frame covers the whole
// canvas and is dithered to the Plan9 palette.
func encodeGIF(seq *raster.Sequence, fps int) ([]byte, error) {
	frames := seq.Frames()
	delay := gifDelay(fps)

	anim := &gif.GIF{
		Image:     quantize(frames),
		Delay:     make([]int, len(frames)),
		Disposal:  make([]byte, len(frames)),
		LoopCount: 0,
	}
	for i := range frames {
		anim.Delay[i] = delay
		anim.Disposal[i] = gif.DisposalNone
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("%w: gif: %w", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// quantize converts the frames to paletted images using all the CPU cores.
func quantize(frames []raster.Frame) []*image.Paletted {
	out := make([]*image.Paletted, len(frames))
	jobs := make(chan int)
	workers := min(runtime.NumCPU(), len(frames))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				src := frames[i].NRGBA()
				dst := image.NewPaletted(src.Bounds(), palette.Plan9)
				draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, image.Point{})
				out[i] = dst
			}
		}()
	}
	for i := range frames {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}

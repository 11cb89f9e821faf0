// Single channel implementation of the StackBlur algorithm described here:
// http://incubator.quasimondo.com/processing/fast_blur_deluxe.php

package sketchify

// stackBlur blurs a width x height gray plane with the given radius and
// returns the result in a new slice. Pixels outside the plane are clamped
// to the nearest edge.
func stackBlur(plane []uint8, width, height, radius int) []uint8 {
	if radius < 1 {
		out := make([]uint8, len(plane))
		copy(out, plane)
		return out
	}

	tmp := make([]uint8, len(plane))
	out := make([]uint8, len(plane))
	stack := make([]uint32, 2*radius+1)

	for y := 0; y < height; y++ {
		blurLine(plane, tmp, y*width, 1, width, radius, stack)
	}
	for x := 0; x < width; x++ {
		blurLine(tmp, out, x, width, height, radius, stack)
	}
	return out
}

// blurLine runs one stack blur pass over n samples starting at start and
// spaced by stride. The triangular kernel weights sum up to (radius+1)^2.
func blurLine(src, dst []uint8, start, stride, n, radius int, stack []uint32) {
	var (
		div     = 2*radius + 1
		last    = n - 1
		divisor = uint32((radius + 1) * (radius + 1))

		sum, inSum, outSum uint32
	)

	at := func(i int) uint32 {
		if i > last {
			i = last
		}
		return uint32(src[start+i*stride])
	}

	first := at(0)
	for i := 0; i <= radius; i++ {
		stack[i] = first
		sum += first * uint32(i+1)
		outSum += first
	}
	for i := 1; i <= radius; i++ {
		p := at(i)
		stack[i+radius] = p
		sum += p * uint32(radius+1-i)
		inSum += p
	}

	sp := radius
	for x := 0; x < n; x++ {
		dst[start+x*stride] = uint8((sum + divisor/2) / divisor)

		sum -= outSum

		stackStart := sp + div - radius
		if stackStart >= div {
			stackStart -= div
		}
		outSum -= stack[stackStart]

		p := at(x + radius + 1)
		stack[stackStart] = p
		inSum += p
		sum += inSum

		sp++
		if sp >= div {
			sp = 0
		}
		outSum += stack[sp]
		inSum -= stack[sp]
	}
}

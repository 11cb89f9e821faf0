/*
Package sketchify turns photos into pencil sketches and animates the sketch
back into the original colors.

The sketch is obtained by dodging the luma of the image with a blurred copy
of its own negative. The animations are rendered by the effect package and
encoded by the media package into an animated GIF or an MJPEG video.

The package provides a command line interface, supporting various flags for
the different operations. To check the supported commands type:

	$ sketchify --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/sketchify"
	)

	func main() {
		p := sketchify.NewProcessor()

		in, _ := os.Open("photo.jpg")
		defer in.Close()

		out, err := p.Animate(in, "3D Rotation")
		if err != nil {
			fmt.Printf("Error animating image: %s", err.Error())
			return
		}
		os.WriteFile("photo"+out.Ext(), out.Bytes, 0o644)
	}
*/
package sketchify

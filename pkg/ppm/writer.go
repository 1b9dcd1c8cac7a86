// Package ppm writes renders as portable pixmaps, in the plain (P3) and
// raw (P6) variants.
package ppm

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

const maxColorValue = 255

// PixelSource yields the color for a pixel coordinate. The writers pass
// the outer (row) loop index as the first argument, matching the axis
// convention the camera expects.
type PixelSource interface {
	Width() int
	Height() int
	PixelColor(x, y int) color.RGBA
}

// WriteASCII writes the render as a plain-text P3 pixmap: a header
// followed by one "r g b" decimal triple per pixel, row-major.
func WriteASCII(w io.Writer, src PixelSource) error {
	bw := bufio.NewWriter(w)

	if err := writeHeader(bw, "P3", src); err != nil {
		return err
	}
	for i := 0; i < src.Height(); i++ {
		for j := 0; j < src.Width(); j++ {
			c := src.PixelColor(i, j)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteBinary writes the render as a raw P6 pixmap: the same header
// followed by packed RGB bytes, row-major.
func WriteBinary(w io.Writer, src PixelSource) error {
	bw := bufio.NewWriter(w)

	if err := writeHeader(bw, "P6", src); err != nil {
		return err
	}
	for i := 0; i < src.Height(); i++ {
		for j := 0; j < src.Width(); j++ {
			c := src.PixelColor(i, j)
			if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, magic string, src PixelSource) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", magic, src.Width(), src.Height(), maxColorValue)
	return err
}

// Package render draws a filled region over the field it was taken from.
//
// Each pixel is one cell. The red channel marks cells covered by a
// clump of the region and the blue channel marks safe cells, so a
// correct fill shows magenta on black. Blue pixels are safe cells the
// fill missed and red pixels are mines it covered.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/vancomm/minefield/internal/mines"
	"golang.org/x/image/colornames"
)

var palette = [4]color.RGBA{
	colornames.Black,   // mine
	colornames.Red,     // covered mine
	colornames.Blue,    // safe, not covered
	colornames.Magenta, // safe, covered
}

const (
	covered = 1 << iota
	safe
)

// Image rasterises the bounds of region plus a one cell margin. The
// image origin is the top left cell of that area.
func Image(field mines.Field, region *mines.Region) *image.RGBA {
	bounds := region.Bounds().Inset(-1)
	w, h := bounds.Dx(), bounds.Dy()

	cells := make([]uint8, w*h)
	for _, c := range region.Clumps {
		row := (c.Y - bounds.Min.Y) * w
		for x := c.X; x < c.End(); x++ {
			cells[row+x-bounds.Min.X] |= covered
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := range h {
		for col := range w {
			i := row*w + col
			if field.SafeAt(bounds.Min.X+col, bounds.Min.Y+row) {
				cells[i] |= safe
			}
			img.SetRGBA(col, row, palette[cells[i]])
		}
	}
	return img
}

func WritePNG(w io.Writer, field mines.Field, region *mines.Region) error {
	return png.Encode(w, Image(field, region))
}

package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Fill sets every pixel of buf to fg.
func Fill(buf *Buffer, fg Color) {
	FillRect(buf, buf.Bounds(), fg)
}

// FillRect fills the part of r that lies inside buf with fg.
func FillRect(buf *Buffer, r image.Rectangle, fg Color) {
	r = r.Intersect(buf.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(buf, r, image.NewUniform(fg), image.Point{}, draw.Src)
}

// Stripes paints 45° diagonal bands of thickness tile. Even bands get bg,
// odd bands fg.
func Stripes(buf *Buffer, fg, bg Color, tile int) {
	mustTile(tile)
	for y := 0; y < buf.Height; y++ {
		row := y * buf.Width
		for x := 0; x < buf.Width; x++ {
			c := bg
			if ((x+y)/tile)%2 != 0 {
				c = fg
			}
			buf.Pix[row+x] = uint32(c)
		}
	}
}

// Checker paints axis-aligned tile×tile squares, bg on the top-left tile.
func Checker(buf *Buffer, fg, bg Color, tile int) {
	mustTile(tile)
	for y := 0; y < buf.Height; y++ {
		row := y * buf.Width
		by := y / tile
		for x := 0; x < buf.Width; x++ {
			c := bg
			if (x/tile+by)%2 != 0 {
				c = fg
			}
			buf.Pix[row+x] = uint32(c)
		}
	}
}

func mustTile(tile int) {
	if tile < 1 {
		panic(fmt.Sprintf("raster: tile size must be at least 1, got %d", tile))
	}
}

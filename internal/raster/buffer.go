package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a fixed-size, row-major store of packed colors.
// Pixel (x, y) lives at Pix[y*Width+x].
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewBuffer allocates a zeroed (black) buffer. Dimensions must be positive.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("raster: buffer dimensions must be positive, got %dx%d", w, h))
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}
}

// Offset returns the linear index of (x, y).
func (b *Buffer) Offset(x, y int) int {
	return y*b.Width + x
}

// PixelAt returns the color at (x, y). The caller guarantees the
// coordinates are in range; anything else is an index panic.
func (b *Buffer) PixelAt(x, y int) Color {
	b.check(x, y)
	return Color(b.Pix[b.Offset(x, y)])
}

// SetPixel stores c at (x, y). Same contract as PixelAt.
func (b *Buffer) SetPixel(x, y int, c Color) {
	b.check(x, y)
	b.Pix[b.Offset(x, y)] = uint32(c)
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.Pix {
		b.Pix[i] = uint32(c)
	}
}

// x overflowing into the next row would not trip the slice bound.
func (b *Buffer) check(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic(fmt.Sprintf("raster: pixel (%d, %d) out of range %dx%d", x, y, b.Width, b.Height))
	}
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return ColorModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// At implements image.Image. Points outside the buffer read as black.
func (b *Buffer) At(x, y int) color.Color {
	if !image.Pt(x, y).In(b.Bounds()) {
		return Color(0)
	}
	return Color(b.Pix[b.Offset(x, y)])
}

// Set implements draw.Image. Points outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(b.Bounds()) {
		return
	}
	b.Pix[b.Offset(x, y)] = uint32(ColorModel.Convert(c).(Color))
}

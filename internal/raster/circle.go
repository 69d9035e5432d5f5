package raster

import "fmt"

// SolidCircle paints a filled disk of the given radius centered in buf.
//
// Distances are measured in doubled coordinates so the test stays in
// integers: the buffer center is (W, H) and pixel (x, y) has its center
// at (2x+1, 2y+1).
func SolidCircle(buf *Buffer, radius int, fg, bg Color) {
	mustRadius(radius)
	r := 2 * radius
	r2 := r * r
	cx, cy := buf.Width, buf.Height
	for y := 0; y < buf.Height; y++ {
		dy := cy - (2*y + 1)
		row := y * buf.Width
		for x := 0; x < buf.Width; x++ {
			dx := cx - (2*x + 1)
			c := bg
			if dx*dx+dy*dy <= r2 {
				c = fg
			}
			buf.Pix[row+x] = uint32(c)
		}
	}
}

// HaloCircle clears buf to bg and draws a one-pixel circle outline of the
// given radius around the buffer center.
//
// One octant is stepped in float32 and each point is mirrored into the
// other seven. Horizontal reflections use the width and vertical ones the
// height, so non-square buffers are fine; for square buffers this matches
// the classic W-d / H-d mirroring exactly.
func HaloCircle(buf *Buffer, radius int, fg, bg Color) {
	mustRadius(radius)
	buf.Clear(bg)

	w := float32(buf.Width)
	h := float32(buf.Height)
	cx := w / 2
	cy := h / 2

	for _, p := range haloOctant(radius) {
		px := p.x + cx
		py := p.y + cy
		if px < 0 || px >= w || py < 0 || py >= h {
			continue
		}
		colX, rowY := int(px), int(py)
		colY, rowX := int(p.y+cx), int(p.x+cy)
		W, H := buf.Width, buf.Height

		plot(buf, colX, rowY, fg)
		plot(buf, colY, rowX, fg)

		plot(buf, colX, H-rowY, fg)
		plot(buf, colY, H-rowX, fg)

		plot(buf, W-colX, rowY, fg)
		plot(buf, W-colY, rowX, fg)

		plot(buf, W-colX, H-rowY, fg)
		plot(buf, W-colY, H-rowX, fg)
	}
}

type octantPoint struct {
	x, y float32
}

// haloOctant walks the octant from (0, r-0.5) while x <= y, stepping x by
// one and dropping y whenever the point leaves the circle.
func haloOctant(radius int) []octantPoint {
	r := float32(radius)
	x := float32(0)
	y := r - 0.5

	var pts []octantPoint
	for x <= y {
		pts = append(pts, octantPoint{x, y})
		x++
		if x*x+y*y > r*r {
			y--
		}
	}
	return pts
}

// plot sets (x, y) if it lies inside buf.
func plot(buf *Buffer, x, y int, c Color) {
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return
	}
	buf.Pix[y*buf.Width+x] = uint32(c)
}

func mustRadius(radius int) {
	if radius < 0 {
		panic(fmt.Sprintf("raster: radius must not be negative, got %d", radius))
	}
}

package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value, 0xRRGGBB. The high byte is ignored.
type Color uint32

// RGB splits c into its 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. Packed colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// String formats c as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses "RRGGBB", "#RRGGBB" or "0xRRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		hex = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("raster: invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("raster: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// ColorModel converts any color to a packed Color, dropping alpha.
var ColorModel = color.ModelFunc(toPacked)

func toPacked(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Color((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

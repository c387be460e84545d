package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"driftboard/hal"
)

// fbDisplayer adapts the framebuffer to the displayer interface tinyfont
// draws through.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

// drawText draws one line with y as the top of the glyph box.
func drawText(fb hal.Framebuffer, f tinyfont.Fonter, ascent int, x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: fb}
	tinyfont.WriteLine(d, f, int16(x), int16(y+ascent), s, c)
}

func fillRect(fb hal.Framebuffer, x0, y0, w, h int, pixel uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	stride := fb.StrideBytes()
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := 0; y < h; y++ {
		row := (y0+y)*stride + x0*2
		for x := 0; x < w; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func drawRectOutline(fb hal.Framebuffer, x0, y0, w, h int, pixel uint16) {
	if w <= 0 || h <= 0 {
		return
	}
	drawHLine(fb, x0, x0+w-1, y0, pixel)
	drawHLine(fb, x0, x0+w-1, y0+h-1, pixel)
	drawVLine(fb, x0, y0, y0+h-1, pixel)
	drawVLine(fb, x0+w-1, y0, y0+h-1, pixel)
}

func drawHLine(fb hal.Framebuffer, x0, x1, y int, pixel uint16) {
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	if y < 0 || stride <= 0 || buf == nil {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	row := y * stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off < 0 || off+1 >= len(buf) {
			continue
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

func drawVLine(fb hal.Framebuffer, x, y0, y1 int, pixel uint16) {
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	if x < 0 || stride <= 0 || buf == nil {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for y := y0; y <= y1; y++ {
		off := y*stride + x*2
		if off < 0 || off+1 >= len(buf) {
			continue
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

func textWidth(f tinyfont.Fonter, s string) int {
	w, _ := tinyfont.LineWidth(f, s)
	return int(w)
}

func truncateToWidth(f tinyfont.Fonter, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if textWidth(f, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if textWidth(f, string(r)+"...") <= maxW {
			return string(r) + "..."
		}
	}
	return ""
}

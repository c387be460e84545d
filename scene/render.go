package scene

import (
	"image"
	"math"
	"sort"

	"driftboard/hal"
)

// Render draws every label into the framebuffer, farthest first so nearer
// labels paint over farther ones. It also advances the float animation.
func (s *Scene) Render(fb hal.Framebuffer) {
	if fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	s.tick++
	if len(s.labels) == 0 {
		return
	}

	for _, l := range s.labels {
		l.bob = bobAmp * math.Sin(float64(s.tick)*bobSpeed+l.phase)
	}

	order := make([]*label, len(s.labels))
	copy(order, s.labels)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].pos.z > order[j].pos.z
	})

	for _, l := range order {
		s.drawLabel(fb, l)
	}
}

func (s *Scene) drawLabel(fb hal.Framebuffer, l *label) {
	cx, cy, depth, ok := s.cam.project(vec3{x: l.pos.x, y: l.pos.y + l.bob, z: l.pos.z})
	if !ok {
		return
	}
	f := s.cam.focalPx()
	wPx := l.w * f / depth
	hPx := l.h * f / depth
	if wPx < 1 || hPx < 1 {
		return
	}
	blitScaled(fb, l.pix, int(cx-wPx/2), int(cy-hPx/2), int(wPx), int(hPx))
}

// blitScaled draws src into the framebuffer at the destination rectangle with
// nearest-neighbor sampling, blending by source alpha. src pixels are
// premultiplied (image.RGBA), so blending is src + dst*(1-a).
func blitScaled(fb hal.Framebuffer, src *image.RGBA, x0, y0, w, h int) {
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	buf := fb.Buffer()
	if buf == nil {
		return
	}
	stride := fb.StrideBytes()
	fbW := fb.Width()
	fbH := fb.Height()

	sb := src.Bounds()
	sw := sb.Dx()
	sh := sb.Dy()
	if sw <= 0 || sh <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		dy := y0 + y
		if dy < 0 || dy >= fbH {
			continue
		}
		sy := y * sh / h
		row := dy * stride
		srow := sy * src.Stride

		for x := 0; x < w; x++ {
			dx := x0 + x
			if dx < 0 || dx >= fbW {
				continue
			}
			si := srow + (x*sw/w)*4
			a := src.Pix[si+3]
			if a == 0 {
				continue
			}

			off := row + dx*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}

			sr := src.Pix[si]
			sg := src.Pix[si+1]
			sbl := src.Pix[si+2]
			if a < 255 {
				dr, dg, db := hal.RGB888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
				ia := 255 - int(a)
				sr = uint8(int(sr) + int(dr)*ia/255)
				sg = uint8(int(sg) + int(dg)*ia/255)
				sbl = uint8(int(sbl) + int(db)*ia/255)
			}

			pixel := hal.RGB565(sr, sg, sbl)
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
}

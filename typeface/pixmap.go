package typeface

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// labelPad is the transparent border around rendered label text, in pixels.
const labelPad = 2

// RenderLabel rasterizes text into a fresh RGBA pixmap tinted with the given
// color. The pixmap is transparent outside the glyphs so the scene can blend
// it over whatever is behind the label.
func (f *Face) RenderLabel(text string, tint color.RGBA) *image.RGBA {
	if text == "" {
		text = " "
	}

	m := f.face.Metrics()
	adv := font.MeasureString(f.face, text)
	w := adv.Ceil() + 2*labelPad
	h := (m.Ascent + m.Descent).Ceil() + 2*labelPad
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(tint),
		Face: f.face,
		Dot: fixed.Point26_6{
			X: fixed.I(labelPad),
			Y: fixed.I(labelPad) + m.Ascent,
		},
	}
	d.DrawString(text)
	return img
}

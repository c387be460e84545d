package typeface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRenderLabelProducesOpaqueGlyphs(t *testing.T) {
	f, err := Parse(goregular.TTF, 24)
	require.NoError(t, err)

	tint := color.RGBA{R: 0xF0, G: 0xEA, B: 0xD0, A: 0xFF}
	pix := f.RenderLabel("Buy milk", tint)
	require.NotNil(t, pix)

	b := pix.Bounds()
	assert.Greater(t, b.Dx(), 2*labelPad)
	assert.Greater(t, b.Dy(), 2*labelPad)

	covered := 0
	for i := 3; i < len(pix.Pix); i += 4 {
		if pix.Pix[i] > 0 {
			covered++
		}
	}
	assert.Greater(t, covered, 0, "glyphs must leave non-transparent pixels")
	assert.Less(t, covered, len(pix.Pix)/4, "the padding border stays transparent")
}

func TestRenderLabelWiderTextWiderPixmap(t *testing.T) {
	f, err := Parse(goregular.TTF, 24)
	require.NoError(t, err)

	tint := color.RGBA{A: 0xFF}
	short := f.RenderLabel("a", tint)
	long := f.RenderLabel("a much longer task text", tint)
	assert.Greater(t, long.Bounds().Dx(), short.Bounds().Dx())
	assert.Equal(t, short.Bounds().Dy(), long.Bounds().Dy(), "height depends only on the face metrics")
}

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window host runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
}

const (
	minSurfaceW = 160
	minSurfaceH = 120
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard and pointer input. It blocks until the window closes,
// then tears the app down.
func RunWindow(cfg WindowConfig, newApp func(HAL) App) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	h := newHost(cfg.Width, cfg.Height)
	app := newApp(h)
	defer app.Close()

	g := &hostGame{h: h, app: app, scale: cfg.Scale}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	app     App
	scale   int
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte

	wantW int
	wantH int
}

func (g *hostGame) Update() error {
	if g.wantW > 0 && (g.wantW != g.h.fb.Width() || g.wantH != g.h.fb.Height()) {
		g.h.fb.resize(g.wantW, g.wantH)
	}
	g.h.kbd.poll()
	g.h.ptr.poll()
	g.h.t.step(1)
	return g.app.Step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth / g.scale
	h := outsideHeight / g.scale
	if w < minSurfaceW {
		w = minSurfaceW
	}
	if h < minSurfaceH {
		h = minSurfaceH
	}
	g.wantW, g.wantH = w, h
	return w, h
}

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan ClickEvent
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan ClickEvent, 16)}
}

func (p *hostPointer) Clicks() <-chan ClickEvent { return p.ch }

func (p *hostPointer) poll() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	// Cursor coordinates are in logical (framebuffer) space because the game
	// layout matches the framebuffer size.
	x, y := ebiten.CursorPosition()
	select {
	case p.ch <- ClickEvent{X: x, Y: y}:
	default:
	}
}

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		select {
		case k.ch <- KeyEvent{Press: true, Rune: r}:
		default:
		}
	}

	type binding struct {
		key  ebiten.Key
		code KeyCode
	}
	for _, b := range []binding{
		{ebiten.KeyArrowUp, KeyUp},
		{ebiten.KeyArrowDown, KeyDown},
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
		{ebiten.KeyDelete, KeyDelete},
	} {
		if inpututil.IsKeyJustPressed(b.key) {
			emit(b.code, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			emit(b.code, false)
		}
	}
}

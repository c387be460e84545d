package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// ClickEvent is a pointer click in framebuffer pixel coordinates.
type ClickEvent struct {
	X int
	Y int
}

// Pointer provides pointer click events.
type Pointer interface {
	Clicks() <-chan ClickEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in the app.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the app and the host platform.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
}

// App is what the host runners drive: one step per host tick, plus an
// explicit teardown hook that must release every held resource.
type App interface {
	Step() error
	Close()
}

package hal

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
	t   *hostTime
}

// New returns a host HAL implementation with a framebuffer of the given size.
func New(width, height int) HAL {
	return newHost(width, height)
}

func newHost(width, height int) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
		ptr: newHostPointer(),
		t:   newHostTime(),
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

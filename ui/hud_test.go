package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftboard/hal"
	"driftboard/store"
)

func typeText(h *HUD, s string) {
	for _, r := range s {
		h.HandleKey(hal.KeyEvent{Press: true, Rune: r}, 0)
	}
}

func center(r rect) (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

func sampleTasks(n int) []store.Task {
	out := make([]store.Task, n)
	for i := range out {
		out[i] = store.Task{ID: string(rune('a' + i)), Text: "task", Priority: store.PriorityMedium}
	}
	return out
}

func TestTypingEditsComposeField(t *testing.T) {
	h := New()
	typeText(h, "Buy milk")
	assert.Equal(t, "Buy milk", h.InputText())

	h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyBackspace}, 0)
	assert.Equal(t, "Buy mil", h.InputText())

	h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyEscape}, 0)
	assert.Equal(t, "", h.InputText())

	// Releases and control runes are ignored.
	h.HandleKey(hal.KeyEvent{Press: false, Rune: 'x'}, 0)
	h.HandleKey(hal.KeyEvent{Press: true, Rune: 0x1B}, 0)
	assert.Equal(t, "", h.InputText())
}

func TestEnterAndTabEmitCommands(t *testing.T) {
	h := New()
	typeText(h, "water plants")

	ev := h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyEnter}, 0)
	assert.Equal(t, CmdAdd, ev.Cmd)
	assert.Equal(t, "water plants", ev.Text)

	ev = h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyTab}, 0)
	assert.Equal(t, CmdSuggest, ev.Cmd)
	assert.Equal(t, "water plants", ev.Text)
}

func TestInputLengthClamped(t *testing.T) {
	h := New()
	for i := 0; i < maxInputRunes+40; i++ {
		h.HandleKey(hal.KeyEvent{Press: true, Rune: 'a'}, 0)
	}
	assert.Len(t, []rune(h.InputText()), maxInputRunes)
}

func TestScrollClamped(t *testing.T) {
	h := New()
	h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyUp}, 6)
	assert.Equal(t, 0, h.scroll)

	for i := 0; i < 10; i++ {
		h.HandleKey(hal.KeyEvent{Press: true, Code: hal.KeyDown}, 6)
	}
	assert.Equal(t, 6-visibleRows, h.scroll)
}

func TestClickButtons(t *testing.T) {
	h := New()
	typeText(h, "hi")
	lay := h.layout(480, 360)

	x, y := center(lay.addBtn)
	ev, consumed := h.Click(x, y, 480, 360, nil)
	require.True(t, consumed)
	assert.Equal(t, CmdAdd, ev.Cmd)
	assert.Equal(t, "hi", ev.Text)

	x, y = center(lay.suggestBtn)
	ev, consumed = h.Click(x, y, 480, 360, nil)
	require.True(t, consumed)
	assert.Equal(t, CmdSuggest, ev.Cmd)
}

func TestClickBarIsConsumedWithoutCommand(t *testing.T) {
	h := New()
	lay := h.layout(480, 360)

	x, y := center(lay.inputField)
	ev, consumed := h.Click(x, y, 480, 360, nil)
	assert.True(t, consumed)
	assert.Equal(t, CmdNone, ev.Cmd)
}

func TestClickCanvasIsNotConsumed(t *testing.T) {
	h := New()
	_, consumed := h.Click(240, 180, 480, 360, sampleTasks(2))
	assert.False(t, consumed, "mid-surface clicks belong to the 3D canvas")
}

func TestClickListRows(t *testing.T) {
	h := New()
	tasks := sampleTasks(6)
	lay := h.layout(480, 360)

	// Checkbox zone of the first visible row toggles.
	ev, consumed := h.Click(lay.list.x+5, lay.list.y+4, 480, 360, tasks)
	require.True(t, consumed)
	assert.Equal(t, CmdToggle, ev.Cmd)
	assert.Equal(t, tasks[0].ID, ev.ID)

	// Far right edge of the second row deletes.
	ev, consumed = h.Click(lay.list.x+lay.list.w-5, lay.list.y+4+lay.rowH, 480, 360, tasks)
	require.True(t, consumed)
	assert.Equal(t, CmdDelete, ev.Cmd)
	assert.Equal(t, tasks[1].ID, ev.ID)

	// Scrolling offsets which task a row refers to.
	h.scrollBy(2, len(tasks))
	ev, consumed = h.Click(lay.list.x+5, lay.list.y+4, 480, 360, tasks)
	require.True(t, consumed)
	assert.Equal(t, CmdToggle, ev.Cmd)
	assert.Equal(t, tasks[2].ID, ev.ID)

	// Rows past the end of the list do nothing.
	h.scroll = 0
	ev, consumed = h.Click(lay.list.x+5, lay.list.y+4, 480, 360, sampleTasks(0))
	assert.True(t, consumed)
	assert.Equal(t, CmdNone, ev.Cmd)
}

func TestRenderPaintsChrome(t *testing.T) {
	h := New()
	typeText(h, "visible text")
	h.SetStatus("Added.")

	fb := hal.New(480, 360).Display().Framebuffer()
	fb.ClearRGB(0, 0, 0)
	h.Render(fb, sampleTasks(6), true, store.PriorityHigh, false, 12)

	painted := false
	for _, b := range fb.Buffer() {
		if b != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted)
}

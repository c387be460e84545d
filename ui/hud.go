// Package ui draws the HUD chrome (compose bar, task list strip, status)
// over the 3D canvas and translates key and click input into commands.
package ui

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"driftboard/hal"
	"driftboard/store"
)

// Command identifies what an input event asks the app to do.
type Command uint8

const (
	CmdNone Command = iota
	CmdAdd
	CmdSuggest
	CmdToggle
	CmdDelete
)

// Event is one decoded input action.
type Event struct {
	Cmd  Command
	ID   string // task identifier for CmdToggle / CmdDelete
	Text string // compose text for CmdAdd / CmdSuggest
}

const (
	maxInputRunes = 160
	visibleRows   = 4
)

var (
	colPanel   = color.RGBA{R: 0x10, G: 0x14, B: 0x1E}
	colBorder  = color.RGBA{R: 0x2B, G: 0x33, B: 0x44}
	colText    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colDim     = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colAccent  = color.RGBA{R: 0x9A, G: 0xC6, B: 0xFF, A: 0xFF}
	colPrioLow = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colPrioMed = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colPrioHi  = color.RGBA{R: 0xFF, G: 0x7F, B: 0x7F, A: 0xFF}
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// hudLayout positions the chrome for one surface size. Hit testing and
// rendering share it so clicks always match what is on screen.
type hudLayout struct {
	bar        rect // whole compose bar
	inputField rect
	addBtn     rect
	suggestBtn rect
	indicator  rect // suggestion state readout
	list       rect // task list strip
	rowH       int
	rows       int
	statusY    int
}

// HUD holds the compose input and list scroll state.
type HUD struct {
	font   tinyfont.Fonter
	fontW  int
	lineH  int
	ascent int

	input  []rune
	scroll int
	status string
}

// New returns a HUD using the bundled monospace bitmap font.
func New() *HUD {
	f := &freemono.Regular9pt7b
	_, outboxWidth := tinyfont.LineWidth(f, "0")
	lineH := int(f.GetYAdvance())
	return &HUD{
		font:   f,
		fontW:  int(outboxWidth),
		lineH:  lineH,
		ascent: lineH * 3 / 4,
	}
}

// InputText returns the current compose text.
func (h *HUD) InputText() string { return string(h.input) }

// ClearInput empties the compose field.
func (h *HUD) ClearInput() { h.input = h.input[:0] }

// SetStatus replaces the status line.
func (h *HUD) SetStatus(s string) { h.status = s }

func (h *HUD) layout(fbW, fbH int) hudLayout {
	margin := 4
	barH := h.lineH + 10

	btnW := h.fontW*3 + 10
	suggestBtn := rect{x: fbW - margin - btnW, y: margin + 2, w: btnW, h: barH - 4}
	addBtn := rect{x: suggestBtn.x - margin - btnW, y: margin + 2, w: btnW, h: barH - 4}
	indicatorW := h.fontW * 8
	inputField := rect{
		x: margin,
		y: margin,
		w: addBtn.x - indicatorW - 3*margin,
		h: barH,
	}
	if inputField.w < h.fontW*4 {
		inputField.w = h.fontW * 4
	}
	indicator := rect{
		x: inputField.x + inputField.w + margin,
		y: margin,
		w: indicatorW,
		h: barH,
	}

	rowH := h.lineH + 2
	listH := visibleRows*rowH + 6
	list := rect{x: margin, y: fbH - margin - listH, w: fbW - 2*margin, h: listH}

	return hudLayout{
		bar:        rect{x: 0, y: 0, w: fbW, h: barH + 2*margin},
		inputField: inputField,
		addBtn:     addBtn,
		suggestBtn: suggestBtn,
		indicator:  indicator,
		list:       list,
		rowH:       rowH,
		rows:       visibleRows,
		statusY:    list.y - h.lineH - 2,
	}
}

// HandleKey decodes one keyboard event into a command. Printable runes edit
// the compose field; Enter adds, Tab requests a suggestion, Escape clears,
// Up/Down scroll the list.
func (h *HUD) HandleKey(ev hal.KeyEvent, taskCount int) Event {
	if !ev.Press {
		return Event{}
	}

	switch ev.Code {
	case hal.KeyEnter:
		return Event{Cmd: CmdAdd, Text: string(h.input)}
	case hal.KeyTab:
		return Event{Cmd: CmdSuggest, Text: string(h.input)}
	case hal.KeyEscape:
		h.ClearInput()
		return Event{}
	case hal.KeyBackspace:
		if len(h.input) > 0 {
			h.input = h.input[:len(h.input)-1]
		}
		return Event{}
	case hal.KeyUp:
		h.scrollBy(-1, taskCount)
		return Event{}
	case hal.KeyDown:
		h.scrollBy(1, taskCount)
		return Event{}
	}

	if ev.Rune >= 0x20 && len(h.input) < maxInputRunes {
		h.input = append(h.input, ev.Rune)
	}
	return Event{}
}

func (h *HUD) scrollBy(delta, taskCount int) {
	h.scroll += delta
	max := taskCount - visibleRows
	if max < 0 {
		max = 0
	}
	if h.scroll > max {
		h.scroll = max
	}
	if h.scroll < 0 {
		h.scroll = 0
	}
}

// Click resolves a pointer click against the chrome. consumed=false means
// the click landed on the 3D canvas and should be ray-picked instead.
func (h *HUD) Click(x, y, fbW, fbH int, tasks []store.Task) (ev Event, consumed bool) {
	lay := h.layout(fbW, fbH)

	switch {
	case lay.addBtn.contains(x, y):
		return Event{Cmd: CmdAdd, Text: string(h.input)}, true
	case lay.suggestBtn.contains(x, y):
		return Event{Cmd: CmdSuggest, Text: string(h.input)}, true
	case lay.bar.contains(x, y):
		return Event{}, true
	case lay.list.contains(x, y):
		return h.clickList(lay, x, y, tasks), true
	}
	return Event{}, false
}

func (h *HUD) clickList(lay hudLayout, x, y int, tasks []store.Task) Event {
	row := (y - lay.list.y - 3) / lay.rowH
	if row < 0 || row >= lay.rows {
		return Event{}
	}
	idx := h.scroll + row
	if idx < 0 || idx >= len(tasks) {
		return Event{}
	}
	t := tasks[idx]

	if x < lay.list.x+4+h.fontW*3+4 {
		return Event{Cmd: CmdToggle, ID: t.ID}
	}
	if x >= lay.list.x+lay.list.w-4-h.fontW-6 {
		return Event{Cmd: CmdDelete, ID: t.ID}
	}
	return Event{Cmd: CmdToggle, ID: t.ID}
}

// Render draws the chrome over the current frame.
func (h *HUD) Render(fb hal.Framebuffer, tasks []store.Task, pending bool, suggested store.Priority, hasSuggested bool, tick uint64) {
	if fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	lay := h.layout(fb.Width(), fb.Height())

	h.renderComposeBar(fb, lay, pending, suggested, hasSuggested, tick)
	h.renderList(fb, lay, tasks)

	if h.status != "" && lay.statusY > lay.bar.h {
		drawText(fb, h.font, h.ascent, lay.list.x+2, lay.statusY,
			truncateToWidth(h.font, h.status, lay.list.w-4), colDim)
	}
}

func (h *HUD) renderComposeBar(fb hal.Framebuffer, lay hudLayout, pending bool, suggested store.Priority, hasSuggested bool, tick uint64) {
	panel := hal.RGB565(colPanel.R, colPanel.G, colPanel.B)
	border := hal.RGB565(colBorder.R, colBorder.G, colBorder.B)

	fillRect(fb, lay.bar.x, lay.bar.y, lay.bar.w, lay.bar.h, panel)
	drawRectOutline(fb, lay.inputField.x, lay.inputField.y, lay.inputField.w, lay.inputField.h, border)

	text := string(h.input)
	maxW := lay.inputField.w - 8
	shown := text
	if textWidth(h.font, shown) > maxW {
		// Keep the tail visible while typing.
		r := []rune(shown)
		for len(r) > 0 && textWidth(h.font, string(r)) > maxW {
			r = r[1:]
		}
		shown = string(r)
	}
	tx := lay.inputField.x + 4
	ty := lay.inputField.y + (lay.inputField.h-h.lineH)/2
	if shown == "" {
		drawText(fb, h.font, h.ascent, tx, ty, "new task...", colDim)
	} else {
		drawText(fb, h.font, h.ascent, tx, ty, shown, colText)
	}
	if (tick/30)%2 == 0 {
		cx := tx + textWidth(h.font, shown)
		fillRect(fb, cx+1, ty, 2, h.lineH, hal.RGB565(0xFF, 0xFF, 0xFF))
	}

	h.renderButton(fb, lay.addBtn, "add")
	h.renderButton(fb, lay.suggestBtn, "sug")

	ix := lay.indicator.x
	iy := lay.indicator.y + (lay.indicator.h-h.lineH)/2
	switch {
	case pending:
		spinner := []string{"|", "/", "-", "\\"}[(tick/10)%4]
		drawText(fb, h.font, h.ascent, ix, iy, spinner+" sug", colAccent)
	case hasSuggested:
		drawText(fb, h.font, h.ascent, ix, iy,
			truncateToWidth(h.font, suggested.String(), lay.indicator.w), priorityColor(suggested))
	}
}

func (h *HUD) renderButton(fb hal.Framebuffer, r rect, text string) {
	border := hal.RGB565(colBorder.R, colBorder.G, colBorder.B)
	drawRectOutline(fb, r.x, r.y, r.w, r.h, border)
	tw := textWidth(h.font, text)
	drawText(fb, h.font, h.ascent, r.x+(r.w-tw)/2, r.y+(r.h-h.lineH)/2, text, colAccent)
}

func (h *HUD) renderList(fb hal.Framebuffer, lay hudLayout, tasks []store.Task) {
	panel := hal.RGB565(colPanel.R, colPanel.G, colPanel.B)
	border := hal.RGB565(colBorder.R, colBorder.G, colBorder.B)

	fillRect(fb, lay.list.x, lay.list.y, lay.list.w, lay.list.h, panel)
	drawRectOutline(fb, lay.list.x, lay.list.y, lay.list.w, lay.list.h, border)

	if len(tasks) == 0 {
		drawText(fb, h.font, h.ascent, lay.list.x+4, lay.list.y+3,
			"(empty) type and press Enter", colDim)
		return
	}

	maxTextW := lay.list.w - h.fontW*5 - 24
	for row := 0; row < lay.rows; row++ {
		idx := h.scroll + row
		if idx >= len(tasks) {
			break
		}
		t := tasks[idx]
		yy := lay.list.y + 3 + row*lay.rowH

		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		drawText(fb, h.font, h.ascent, lay.list.x+4, yy, check, colText)

		drawText(fb, h.font, h.ascent, lay.list.x+4+h.fontW*3+4, yy, "!", priorityColor(t.Priority))

		textCol := colText
		if t.Completed {
			textCol = colDim
		}
		drawText(fb, h.font, h.ascent, lay.list.x+4+h.fontW*4+8, yy,
			truncateToWidth(h.font, t.Text, maxTextW), textCol)

		drawText(fb, h.font, h.ascent, lay.list.x+lay.list.w-4-h.fontW, yy, "x", colPrioHi)
	}

	if len(tasks) > lay.rows {
		pos := truncateToWidth(h.font, scrollHint(h.scroll, lay.rows, len(tasks)), h.fontW*8)
		drawText(fb, h.font, h.ascent, lay.list.x+lay.list.w-4-textWidth(h.font, pos),
			lay.list.y-h.lineH-2, pos, colDim)
	}
}

func scrollHint(scroll, rows, total int) string {
	lo := scroll + 1
	hi := scroll + rows
	if hi > total {
		hi = total
	}
	return fmt.Sprintf("%d-%d/%d", lo, hi, total)
}

func priorityColor(p store.Priority) color.RGBA {
	switch p {
	case store.PriorityLow:
		return colPrioLow
	case store.PriorityHigh:
		return colPrioHi
	}
	return colPrioMed
}

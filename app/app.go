// Package app wires the task store, scene synchronizer, HUD, suggestion
// service, and typeface loader into one stepped application.
//
// All state mutation happens inside Step, which the host runner calls once
// per tick on a single goroutine. Background work (typeface fetch, the
// suggestion call) communicates exclusively through channels drained here.
package app

import (
	"context"
	"strings"

	"driftboard/config"
	"driftboard/hal"
	"driftboard/logging"
	"driftboard/scene"
	"driftboard/store"
	"driftboard/suggest"
	"driftboard/typeface"
	"driftboard/ui"
)

// App is the top-level application instance. It is the sole owner of the
// task store; every collaborator gets the store by handle.
type App struct {
	log *logging.Logger

	fb  hal.Framebuffer
	kbd hal.Keyboard
	ptr hal.Pointer

	store     *store.Store
	scene     *scene.Scene
	hud       *ui.HUD
	suggester *suggest.Suggester

	faceCh <-chan typeface.Result
	ticks  <-chan uint64

	ctx    context.Context
	cancel context.CancelFunc

	lastW, lastH int
	sceneDirty   bool
	ms           uint64
	tick         uint64
}

// New builds the application on the given HAL and kicks off the typeface
// load. The provider backs priority suggestions; pass suggest.Unavailable{}
// when none is configured.
func New(h hal.HAL, cfg config.Config, log *logging.Logger, provider suggest.Provider) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		log:    log.WithComponent("app"),
		fb:     h.Display().Framebuffer(),
		kbd:    h.Input().Keyboard(),
		ptr:    h.Input().Pointer(),
		ticks:  h.Time().Ticks(),
		store:  store.New(),
		hud:    ui.New(),
		ctx:    ctx,
		cancel: cancel,
	}

	a.scene = scene.New(scene.Layout{
		SpacingX:    cfg.Scene.SpacingX,
		SpacingY:    cfg.Scene.SpacingY,
		CameraDist:  cfg.Scene.CameraDist,
		DepthOffset: cfg.Scene.DepthOffset,
	}, log.WithComponent("scene"))

	a.suggester = suggest.New(provider, log.WithComponent("suggest"))

	// The scene is rebuilt after every store mutation; the flag makes the
	// coupling explicit instead of hiding it in a render hook.
	a.store.OnChange(func() { a.sceneDirty = true })

	loader := typeface.NewLoader(cfg.Typeface.Source, cfg.Typeface.SizePx)
	a.faceCh = loader.Results()
	loader.Load(ctx)

	return a
}

// Step runs one frame: drain events, apply mutations, resynchronize the
// scene if anything changed, and redraw.
func (a *App) Step() error {
	a.drainTime()

	if w, h := a.fb.Width(), a.fb.Height(); w != a.lastW || h != a.lastH {
		a.lastW, a.lastH = w, h
		a.scene.SetViewport(w, h)
	}

	a.drainAsync()
	a.drainKeyboard()
	a.drainClicks()

	if a.sceneDirty {
		a.scene.Rebuild(a.store.Tasks())
		a.sceneDirty = false
	}

	a.draw()
	return nil
}

// Close releases scene resources and stops background work.
func (a *App) Close() {
	a.cancel()
	a.scene.Release()
	a.log.Info("shutdown complete")
}

// drainTime consumes the millisecond tick stream and derives the animation
// clock the HUD blinks and spins on (one unit per ~16ms, a 60Hz frame).
func (a *App) drainTime() {
	for {
		select {
		case t := <-a.ticks:
			a.ms = t
		default:
			a.tick = a.ms / 16
			return
		}
	}
}

func (a *App) drainAsync() {
	select {
	case res := <-a.faceCh:
		if res.Err != nil {
			// Terminal: the scene stays without task labels.
			a.hud.SetStatus("Label font failed to load.")
			a.log.Error("label typeface unavailable", map[string]interface{}{
				"error": res.Err.Error(),
			})
			break
		}
		a.scene.SetFace(res.Face)
		a.sceneDirty = true
		a.log.Info("label typeface ready")
	default:
	}

	for {
		select {
		case res := <-a.suggester.Results():
			if !a.store.ResolveSuggestion(res.Seq, res.Priority) {
				a.log.Debug("stale suggestion discarded", map[string]interface{}{
					"seq": res.Seq,
				})
			}
		default:
			return
		}
	}
}

func (a *App) drainKeyboard() {
	for {
		select {
		case ev := <-a.kbd.Events():
			a.apply(a.hud.HandleKey(ev, a.store.Len()))
		default:
			return
		}
	}
}

func (a *App) drainClicks() {
	for {
		select {
		case c := <-a.ptr.Clicks():
			ev, consumed := a.hud.Click(c.X, c.Y, a.fb.Width(), a.fb.Height(), a.store.Tasks())
			if consumed {
				a.apply(ev)
				continue
			}
			if id, ok := a.scene.Pick(c.X, c.Y); ok {
				a.store.Toggle(id)
			}
		default:
			return
		}
	}
}

func (a *App) apply(ev ui.Event) {
	switch ev.Cmd {
	case ui.CmdAdd:
		// Blank text is rejected silently; no user-visible error.
		if _, ok := a.store.Add(ev.Text); ok {
			a.hud.ClearInput()
			a.hud.SetStatus("Added.")
		}
	case ui.CmdSuggest:
		text := strings.TrimSpace(ev.Text)
		if text == "" {
			return
		}
		seq := a.store.BeginSuggestion()
		a.suggester.Request(a.ctx, seq, text)
	case ui.CmdToggle:
		a.store.Toggle(ev.ID)
	case ui.CmdDelete:
		if a.store.Delete(ev.ID) {
			a.hud.SetStatus("Deleted.")
		}
	}
}

func (a *App) draw() {
	a.fb.ClearRGB(0x08, 0x0B, 0x10)
	a.scene.Render(a.fb)

	suggested, hasSuggested := a.store.SuggestedPriority()
	a.hud.Render(a.fb, a.store.Tasks(), a.store.SuggestionPending(), suggested, hasSuggested, a.tick)

	_ = a.fb.Present()
}

package suggest

import (
	"context"
	"time"

	"driftboard/logging"
	"driftboard/store"
)

// Result is one resolved suggestion, delivered to the app's event loop.
// Seq ties it back to the store request that produced it.
type Result struct {
	Seq      uint64
	Priority store.Priority
}

// Suggester runs priority-suggestion calls off the UI thread and funnels
// results back through a channel the app drains once per frame.
type Suggester struct {
	provider Provider
	log      *logging.Logger
	timeout  time.Duration
	results  chan Result
}

// New creates a suggester backed by the given provider.
func New(p Provider, log *logging.Logger) *Suggester {
	return &Suggester{
		provider: p,
		log:      log,
		timeout:  15 * time.Second,
		results:  make(chan Result, 8),
	}
}

// Results is the channel the app drains each frame.
func (s *Suggester) Results() <-chan Result { return s.results }

// Request issues one suggestion call in the background. Any failure, whether
// network, non-success status, or an unrecognized reply, resolves to the
// Medium default; nothing is surfaced as a user-facing error.
func (s *Suggester) Request(ctx context.Context, seq uint64, text string) {
	go func() {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		prio := store.DefaultPriority
		reply, err := s.provider.Complete(cctx, Prompt(text))
		if err != nil {
			s.log.Warn("priority suggestion failed", map[string]interface{}{
				"seq":   seq,
				"error": err.Error(),
			})
		} else if parsed, ok := store.ParsePriority(reply); ok {
			prio = parsed
		} else {
			s.log.Warn("unrecognized priority reply", map[string]interface{}{
				"seq":   seq,
				"reply": clip(reply, 64),
			})
		}

		select {
		case s.results <- Result{Seq: seq, Priority: prio}:
		case <-ctx.Done():
		}
	}()
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

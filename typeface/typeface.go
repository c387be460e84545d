// Package typeface loads the label typeface asset and renders label pixmaps.
//
// The asset is fetched once, asynchronously; until it arrives the scene has
// nothing to render labels with. A failed load is terminal: the loader
// reports the error and no labels ever appear (no retry, no fallback face).
package typeface

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// maxAssetBytes bounds a fetched font file.
const maxAssetBytes = 16 << 20

// Face is a parsed typeface at a fixed pixel size.
//
// Not safe for concurrent use; the app renders labels only on its step
// goroutine after the loader hands the face off.
type Face struct {
	face   font.Face
	sizePx float64
}

// SizePx returns the nominal glyph size in pixels.
func (f *Face) SizePx() float64 { return f.sizePx }

// Parse builds a Face from raw TrueType/OpenType bytes.
func Parse(data []byte, sizePx float64) (*Face, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("typeface: invalid size %v", sizePx)
	}
	sfnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: parse: %w", err)
	}
	face, err := opentype.NewFace(sfnt, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("typeface: face: %w", err)
	}
	return &Face{face: face, sizePx: sizePx}, nil
}

// Result is the outcome of the one-shot asset load.
type Result struct {
	Face *Face
	Err  error
}

// Loader fetches and parses the typeface asset in the background.
type Loader struct {
	source  string
	sizePx  float64
	client  *http.Client
	results chan Result
}

// NewLoader creates a loader for the given source: a file path, an http(s)
// URL, or empty for the bundled face.
func NewLoader(source string, sizePx float64) *Loader {
	return &Loader{
		source:  source,
		sizePx:  sizePx,
		client:  http.DefaultClient,
		results: make(chan Result, 1),
	}
}

// Results delivers exactly one Result per Load call.
func (l *Loader) Results() <-chan Result { return l.results }

// Load fetches and parses the asset in a goroutine.
func (l *Loader) Load(ctx context.Context) {
	go func() {
		data, err := l.fetch(ctx)
		if err != nil {
			l.results <- Result{Err: err}
			return
		}
		face, err := Parse(data, l.sizePx)
		if err != nil {
			l.results <- Result{Err: err}
			return
		}
		l.results <- Result{Face: face}
	}()
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	switch {
	case l.source == "":
		return goregular.TTF, nil
	case strings.HasPrefix(l.source, "http://"), strings.HasPrefix(l.source, "https://"):
		return l.fetchHTTP(ctx)
	default:
		data, err := os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("typeface: read %s: %w", l.source, err)
		}
		return data, nil
	}
}

func (l *Loader) fetchHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("typeface: request %s: %w", l.source, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("typeface: fetch %s: %w", l.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("typeface: fetch %s: status %d", l.source, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("typeface: read body: %w", err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("typeface: asset exceeds %d bytes", maxAssetBytes)
	}
	return data, nil
}

package typeface

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func awaitResult(t *testing.T, l *Loader) Result {
	t.Helper()
	select {
	case res := <-l.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("loader produced no result")
		return Result{}
	}
}

func TestParseBundledFace(t *testing.T) {
	f, err := Parse(goregular.TTF, 28)
	require.NoError(t, err)
	assert.Equal(t, 28.0, f.SizePx())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("definitely not a font"), 28)
	assert.Error(t, err)
}

func TestParseRejectsBadSize(t *testing.T) {
	_, err := Parse(goregular.TTF, 0)
	assert.Error(t, err)
	_, err = Parse(goregular.TTF, -3)
	assert.Error(t, err)
}

func TestLoaderBundledSource(t *testing.T) {
	l := NewLoader("", 24)
	l.Load(context.Background())

	res := awaitResult(t, l)
	require.NoError(t, res.Err)
	require.NotNil(t, res.Face)
	assert.Equal(t, 24.0, res.Face.SizePx())
}

func TestLoaderFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	l := NewLoader(path, 20)
	l.Load(context.Background())

	res := awaitResult(t, l)
	require.NoError(t, res.Err)
	assert.NotNil(t, res.Face)
}

func TestLoaderMissingFileIsTerminal(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.ttf"), 20)
	l.Load(context.Background())

	res := awaitResult(t, l)
	assert.Error(t, res.Err)
	assert.Nil(t, res.Face)
}

func TestLoaderHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(goregular.TTF)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, 20)
	l.Load(context.Background())

	res := awaitResult(t, l)
	require.NoError(t, res.Err)
	assert.NotNil(t, res.Face)
}

func TestLoaderHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, 20)
	l.Load(context.Background())

	res := awaitResult(t, l)
	assert.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "status 404")
}

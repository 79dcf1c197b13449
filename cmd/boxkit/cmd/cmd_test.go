package cmd

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/boxkit/cmd/boxkit/internal/config"
	"github.com/go-drift/boxkit/pkg/errors"
)

var homeDoc = filepath.Join("..", "..", "..", "pkg", "document", "testdata", "home.yaml")

// capture redirects command output into a buffer for the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func captureErrors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := errors.SetHandler(&errors.LogHandler{Out: &buf})
	t.Cleanup(func() { errors.SetHandler(prev) })
	return &buf
}

func resolveYAML(t *testing.T, args ...string) resolvedOutput {
	t.Helper()
	buf := capture(t)
	require.NoError(t, run(append([]string{"resolve"}, args...)))
	var out resolvedOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	return out
}

func byID(out resolvedOutput) map[string]placementOutput {
	m := make(map[string]placementOutput, len(out.Placements))
	for _, p := range out.Placements {
		m[p.ID] = p
	}
	return m
}

func TestParseDocArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     docOptions
		wantRest []string
		wantErr  bool
	}{
		{"path only", []string{"a.yaml"}, docOptions{path: "a.yaml"}, nil, false},
		{"flags both forms", []string{"--flag", "promo", "a.yaml", "--flag=!beta"},
			docOptions{path: "a.yaml", flags: []string{"promo", "!beta"}}, nil, false},
		{"canvas override", []string{"a.yaml", "--width=200", "--height", "100"},
			docOptions{path: "a.yaml", width: 200, height: 100}, nil, false},
		{"rest kept", []string{"--yaml", "a.yaml", "-o", "out.png"},
			docOptions{path: "a.yaml"}, []string{"--yaml", "-o", "out.png"}, false},
		{"missing path", []string{"--yaml"}, docOptions{}, nil, true},
		{"two paths", []string{"a.yaml", "b.yaml"}, docOptions{}, nil, true},
		{"bad width", []string{"a.yaml", "--width", "wide"}, docOptions{}, nil, true},
		{"zero height", []string{"a.yaml", "--height=0"}, docOptions{}, nil, true},
		{"dangling flag", []string{"a.yaml", "--flag"}, docOptions{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := parseDocArgs(tt.args, "-o")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestRun_Version(t *testing.T) {
	buf := capture(t)
	require.NoError(t, run([]string{"--version"}))
	assert.Contains(t, buf.String(), "boxkit version "+Version)
}

func TestRun_Help(t *testing.T) {
	buf := capture(t)
	require.NoError(t, run(nil))
	for _, name := range []string{"resolve", "render", "check", "watch"} {
		assert.Contains(t, buf.String(), name)
	}

	buf.Reset()
	require.NoError(t, run([]string{"render", "--help"}))
	assert.Contains(t, buf.String(), "boxkit render <doc>")
}

func TestRun_UnknownCommand(t *testing.T) {
	capture(t)
	assert.Error(t, run([]string{"explode"}))
	assert.Error(t, run([]string{"--config"}))
}

func TestResolve_YAML(t *testing.T) {
	out := resolveYAML(t, homeDoc, "--yaml")

	assert.Equal(t, "home", out.Name)
	assert.Equal(t, []float64{320, 480}, out.Canvas)
	assert.Equal(t, 1, out.Passes)
	require.Len(t, out.Placements, 10)
	assert.Equal(t, "column", out.Placements[0].ID)

	got := byID(out)
	assert.Equal(t, []float64{0, 0, 320, 480}, got["column"].Frame)
	assert.True(t, got["banner?"].Hidden)
	assert.NotContains(t, got, "banner")
	assert.Equal(t, []float64{136, 98, 48, 48}, got["badge"].Screen)
}

func TestResolve_FlagShowsBanner(t *testing.T) {
	got := byID(resolveYAML(t, homeDoc, "--yaml", "--flag", "promo"))

	require.Contains(t, got, "banner")
	assert.False(t, got["banner?"].Hidden)
	assert.Equal(t, []float64{0, 52, 320, 100}, got["banner"].Frame)
	assert.Equal(t, 160.0, got["tabs"].Frame[1])
}

func TestResolve_CanvasOverride(t *testing.T) {
	got := byID(resolveYAML(t, homeDoc, "--yaml", "--width", "200", "--height=300"))
	assert.Equal(t, []float64{0, 0, 200, 300}, got["column"].Frame)
	assert.Equal(t, []float64{0, 0, 200, 44}, got["header"].Frame)
}

func TestResolve_ConfigCanvas(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "card.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(`
version: "1"
root: {kind: view, id: card, fill: both}
`), 0o644))
	cfgPath := filepath.Join(dir, "alt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("canvas: {width: 200, height: 100}\n"), 0o644))

	out := resolveYAML(t, "--config", cfgPath, doc, "--yaml")
	assert.Equal(t, []float64{200, 100}, out.Canvas)
	assert.Equal(t, []float64{0, 0, 200, 100}, byID(out)["card"].Frame)

	out = resolveYAML(t, doc, "--yaml")
	assert.Equal(t, []float64{config.DefaultCanvasWidth, config.DefaultCanvasHeight}, out.Canvas)
}

func TestResolve_Table(t *testing.T) {
	buf := capture(t)
	require.NoError(t, run([]string{"--no-color", "resolve", homeDoc, "--screen"}))

	text := buf.String()
	assert.Contains(t, text, "home v1.0 (320 x 480, 1 passes)")
	assert.Contains(t, text, "  header")
	assert.Contains(t, text, "(hidden)")
	assert.NotContains(t, text, "\x1b[")
}

func TestResolve_Errors(t *testing.T) {
	capture(t)
	assert.Error(t, run([]string{"resolve"}))
	assert.Error(t, run([]string{"resolve", homeDoc, "--bogus"}))
	assert.Error(t, run([]string{"resolve", homeDoc, "--flag", "promo=maybe"}))

	err := run([]string{"resolve", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

func TestRender_WritesPNG(t *testing.T) {
	buf := capture(t)
	out := filepath.Join(t.TempDir(), "home.png")
	require.NoError(t, run([]string{"render", homeDoc, "-o", out, "--scale", "2", "--no-labels"}))
	assert.Contains(t, buf.String(), "Wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 960, img.Bounds().Dy())
}

func TestRender_DefaultOutputDir(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	doc := filepath.Join(dir, "tile.yaml")
	require.NoError(t, os.WriteFile(doc, []byte(`
version: "1"
canvas: {width: 40, height: 30}
root: {kind: view, id: tile, fill: both}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("output: {dir: shots}\n"), 0o644))

	require.NoError(t, run([]string{"render", doc}))
	assert.FileExists(t, filepath.Join(dir, "shots", "tile.png"))
}

func TestRender_BadScale(t *testing.T) {
	capture(t)
	assert.Error(t, run([]string{"render", homeDoc, "--scale", "-1"}))
	assert.Error(t, run([]string{"render", homeDoc, "-o"}))
}

func TestCheck(t *testing.T) {
	buf := capture(t)
	errBuf := captureErrors(t)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: \"2\"\nroot: {kind: view}\n"), 0o644))

	require.NoError(t, run([]string{"check", homeDoc}))
	assert.Contains(t, buf.String(), "ok   "+homeDoc+": 10 nodes")
	assert.Contains(t, buf.String(), "view=4, when=1")

	err := run([]string{"check", homeDoc, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents failed")
	assert.Contains(t, errBuf.String(), "[boxkit error]")
}

func TestReportError_WrapsPlainErrors(t *testing.T) {
	errBuf := captureErrors(t)
	reportError("check", "a.yaml", &errors.NodeError{Node: "root", Reason: "missing root node"})
	assert.Contains(t, errBuf.String(), "[boxkit error] check: root: missing root node")
}

func TestWatchLoop(t *testing.T) {
	target := filepath.Join(t.TempDir(), "home.yaml")
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	errBuf := captureErrors(t)

	reloads := 0
	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		done <- watchLoop(ctx, events, errs, target, func() { reloads++ })
	}()

	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: target, Op: fsnotify.Create}
	errs <- assert.AnError
	close(events)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}
	assert.Equal(t, 2, reloads)
	assert.Contains(t, errBuf.String(), "[boxkit error] watch")
}

func TestWatchLoop_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := watchLoop(ctx, make(chan fsnotify.Event), make(chan error), "x", func() { t.Fatal("unexpected reload") })
	assert.NoError(t, err)
}

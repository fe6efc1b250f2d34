package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LEIA_LIBRARY", "")
	t.Setenv("LEIA_LIBRARY_PATH", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePNG(t *testing.T, name string, w, h int, at func(x, y int) color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, at(x, y))
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDetectSplitsFrame(t *testing.T) {
	sbsFrame := writePNG(t, "sbs.png", 128, 64, func(x, y int) color.Color {
		if x < 64 {
			return color.White
		}
		return color.Black
	})
	out, err := run(t, "detect", sbsFrame)
	require.NoError(t, err)
	assert.Contains(t, out, "similarity=0.000")
	assert.Contains(t, out, "result=SBS")

	flat := writePNG(t, "flat.png", 128, 64, func(int, int) color.Color { return color.Gray{Y: 90} })
	out, err = run(t, "detect", flat)
	require.NoError(t, err)
	assert.Contains(t, out, "similarity=1.000")
	assert.Contains(t, out, "result=2D")
}

func TestDetectTwoFiles(t *testing.T) {
	left := writePNG(t, "l.png", 32, 32, func(int, int) color.Color { return color.White })
	right := writePNG(t, "r.png", 40, 40, func(int, int) color.Color { return color.White })
	out, err := run(t, "detect", left, right)
	require.NoError(t, err)
	assert.Contains(t, out, "result=2D")
}

func TestDetectErrors(t *testing.T) {
	_, err := run(t, "detect", filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))
	_, err = run(t, "detect", garbage)
	require.ErrorContains(t, err, "decode")

	thin := writePNG(t, "thin.png", 1, 8, func(int, int) color.Color { return color.White })
	_, err = run(t, "detect", thin)
	require.ErrorContains(t, err, "too small")
}

func TestProbeMissingLibrary(t *testing.T) {
	out, err := run(t, "probe", "--library", filepath.Join(t.TempDir(), "libleia-missing.so"))
	require.NoError(t, err)
	assert.Contains(t, out, "available: no")
	assert.Contains(t, out, "library unavailable")
}

func TestModeRequiresLibrary(t *testing.T) {
	_, err := run(t, "mode", "on", "--library", filepath.Join(t.TempDir(), "libleia-missing.so"))
	require.ErrorContains(t, err, "cannot change mode")
}

func TestParseStates(t *testing.T) {
	got, err := parseStates([]string{"on", "OFF", "3d", "0"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, got)

	_, err = parseStates([]string{"sideways"})
	require.ErrorContains(t, err, "sideways")
}

func TestConfigFlagPrecedence(t *testing.T) {
	t.Setenv("LEIA_LIBRARY", "from-env.so")
	cfgPath := filepath.Join(t.TempDir(), "leia.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("library_name: from-file.so\n"), 0o600))

	g := globalFlags{configPath: cfgPath}
	cfg, err := g.config()
	require.NoError(t, err)
	assert.Equal(t, "from-env.so", cfg.LibraryName)

	g.library = "from-flag.so"
	cfg, err = g.config()
	require.NoError(t, err)
	assert.Equal(t, "from-flag.so", cfg.LibraryName)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "leia3d v0.0.0-in-progress")
}

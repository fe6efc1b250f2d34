package sbs

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSimilarityBounds(t *testing.T) {
	var d Detector
	black := solid(32, 32, color.Black)
	white := solid(32, 32, color.White)

	assert.InDelta(t, 1.0, d.Similarity(black, black), 1e-9)
	assert.InDelta(t, 0.0, d.Similarity(black, white), 1e-9)
}

func TestIsStereoPair(t *testing.T) {
	var d Detector
	gray := solid(100, 80, color.Gray{Y: 128})
	near := solid(100, 80, color.Gray{Y: 130})
	far := solid(100, 80, color.Gray{Y: 20})

	assert.False(t, d.IsStereoPair(gray, gray))
	assert.False(t, d.IsStereoPair(gray, near))
	assert.True(t, d.IsStereoPair(gray, far))
}

func TestCustomThreshold(t *testing.T) {
	a := solid(16, 16, color.Gray{Y: 100})
	b := solid(16, 16, color.Gray{Y: 110})
	// 10/255 difference, similarity ~0.961.
	assert.False(t, Detector{}.IsStereoPair(a, b))
	assert.True(t, Detector{Size: 8, Threshold: 0.99}.IsStereoPair(a, b))
}

func TestEmptyInputs(t *testing.T) {
	var d Detector
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	full := solid(4, 4, color.White)

	assert.False(t, d.IsStereoPair(empty, full))
	assert.False(t, d.IsStereoPair(full, nil))
	assert.Equal(t, 1.0, d.Similarity(nil, full))
}

func TestSplit(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if x < 2 {
				frame.Set(x, y, color.White)
			} else {
				frame.Set(x, y, color.Black)
			}
		}
	}

	left, right, err := Split(frame)
	require.NoError(t, err)
	assert.Equal(t, 2, left.Bounds().Dx())
	assert.Equal(t, 2, right.Bounds().Dx())
	assert.Equal(t, 3, right.Bounds().Dy())

	r, g, b, _ := left.At(left.Bounds().Min.X, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
	r, g, b, _ = right.At(right.Bounds().Min.X, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
}

type plainImage struct{ image.Image }

func TestSplitWithoutSubImage(t *testing.T) {
	frame := plainImage{solid(6, 2, color.White)}
	left, right, err := Split(frame)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), left.Bounds())
	assert.Equal(t, image.Rect(0, 0, 3, 2), right.Bounds())
}

func TestSplitTooSmall(t *testing.T) {
	_, _, err := Split(solid(1, 10, color.White))
	require.ErrorIs(t, err, ErrFrameTooSmall)

	_, _, err = Split(nil)
	require.ErrorIs(t, err, ErrFrameTooSmall)
}

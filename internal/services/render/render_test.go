package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestColumnPositions(t *testing.T) {
	expecteds := []image.Point{{0, 0}, {33, 0}, {66, 0}}
	for n := 0; n <= len(expecteds); n++ {
		assert.Equal(t, expecteds[0:n], ColumnPositions(100, 10, 3, n))
	}

	assert.Equal(t,
		[]image.Point{{0, 0}, {0, 10}, {33, 0}, {66, 0}},
		ColumnPositions(100, 10, 3, 4))
	assert.Equal(t,
		[]image.Point{{0, 0}, {0, 10}, {33, 0}, {33, 10}, {66, 0}},
		ColumnPositions(100, 10, 3, 5))
	assert.Equal(t,
		[]image.Point{{0, 0}, {0, 10}, {33, 0}, {33, 10}, {66, 0}, {66, 10}},
		ColumnPositions(100, 10, 3, 6))
}

func TestColumnPositionsNoColumns(t *testing.T) {
	assert.Empty(t, ColumnPositions(100, 10, 0, 4))
}

func TestStrideGrowsWithSize(t *testing.T) {
	r := newRenderer(t)

	small, err := r.Stride(10)
	require.NoError(t, err)
	large, err := r.Stride(40)
	require.NoError(t, err)
	assert.Greater(t, large, small)
}

func TestFitFontSize(t *testing.T) {
	r := newRenderer(t)

	for _, desired := range []int{12, 25, 40, 100} {
		size, err := r.FitFontSize(desired)
		require.NoError(t, err, "stride %d", desired)

		stride, err := r.Stride(size)
		require.NoError(t, err)
		assert.LessOrEqual(t, stride, desired)
	}
}

func TestFitFontSizeTooSmall(t *testing.T) {
	r := newRenderer(t)

	_, err := r.FitFontSize(0)
	assert.ErrorIs(t, err, ErrNoFontSize)
}

func TestRender(t *testing.T) {
	r := newRenderer(t)
	rows := []string{"CATX", "XDOG", "QWER", "ASDF"}

	img, err := r.Render(rows, []string{"CAT", "DOG"}, 300, 400)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 400), img.Bounds())

	// Bottom right corner stays background
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(299, 399))

	// Something was drawn over the grid area
	inked := false
	for y := 0; y < 300 && !inked; y++ {
		for x := 0; x < 300; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked)
}

func TestRenderRejectsBadInput(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Render(nil, nil, 100, 100)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = r.Render([]string{"AB"}, nil, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidImageSize)

	_, err = r.Render([]string{"AB"}, nil, 100000, 100000)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = r.Render([]string{"AB"}, nil, 100, MaxImageSide+1)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestCheckImageSize(t *testing.T) {
	assert.NoError(t, CheckImageSize(MaxImageSide, MaxImageSide))
	assert.ErrorIs(t, CheckImageSize(-1, 10), ErrInvalidImageSize)
	assert.ErrorIs(t, CheckImageSize(MaxImageSide+1, 10), ErrImageTooLarge)
}

func TestEncodePNG(t *testing.T) {
	r := newRenderer(t)
	img, err := r.Render([]string{"AB", "CD"}, []string{"AB"}, 120, 160)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

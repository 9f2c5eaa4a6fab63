// Package render draws a finished word search grid and its word legend into
// an image.
//
// Letter size is chosen by binary-searching a font size whose cell stride
// matches the space available per grid cell. The legend is laid out in fixed
// width columns beneath the grid.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Padding widens the horizontal space given to each letter
	Padding = 1.3
	// LegendScale is the legend font size relative to the grid font size
	LegendScale = 0.8
	// LegendColumns is the number of legend columns
	LegendColumns = 3
	// MaxImageSide is the largest image width or height, in pixels
	MaxImageSide = 4096

	minFontSize = 1.0
	maxFontSize = 300.0
	dpi         = 72
)

// Render errors
var (
	ErrNoFontSize       = errors.New("unable to find a font size")
	ErrEmptyGrid        = errors.New("grid has no cells")
	ErrInvalidImageSize = errors.New("image size must be positive")
	ErrImageTooLarge    = fmt.Errorf("image sides must be at most %d pixels", MaxImageSide)
)

// Renderer draws puzzles using the Go Regular font
type Renderer struct {
	font *opentype.Font
}

// New creates a Renderer, parsing the embedded font
func New() (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{font: f}, nil
}

func (r *Renderer) face(size float64) (font.Face, error) {
	return opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Stride returns the square cell size, in pixels, used per letter at size
func (r *Renderer) Stride(size float64) (int, error) {
	face, err := r.face(size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return strideOf(face), nil
}

func strideOf(face font.Face) int {
	width := font.MeasureString(face, "M").Ceil()
	height := face.Metrics().Height.Ceil()
	return max(int(float64(width)*Padding), height)
}

// FitFontSize binary-searches the font size whose stride equals desiredStride.
// If no size lands exactly on it, the largest size found that still fits is
// returned. Fails with ErrNoFontSize when even the smallest size is too big.
func (r *Renderer) FitFontSize(desiredStride int) (float64, error) {
	lo, hi := minFontSize, maxFontSize
	for hi-lo > 1 {
		guess := (lo + hi) / 2
		stride, err := r.Stride(guess)
		if err != nil {
			return 0, err
		}
		switch {
		case stride < desiredStride:
			lo = guess
		case stride > desiredStride:
			hi = guess
		default:
			return guess, nil
		}
	}

	stride, err := r.Stride(lo)
	if err != nil {
		return 0, err
	}
	if stride > desiredStride {
		return 0, ErrNoFontSize
	}
	return lo, nil
}

// CheckImageSize rejects non-positive sizes and sides above MaxImageSide
func CheckImageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidImageSize
	}
	if width > MaxImageSide || height > MaxImageSide {
		return ErrImageTooLarge
	}
	return nil
}

// Render draws rows as a letter grid on a white width x height canvas, with
// words listed underneath as a legend.
func (r *Renderer) Render(rows []string, words []string, width, height int) (*image.RGBA, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if err := CheckImageSize(width, height); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	desiredStride := min(width/len(rows[0]), height/len(rows))
	size, err := r.FitFontSize(desiredStride)
	if err != nil {
		return nil, err
	}

	face, err := r.face(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	stride := strideOf(face)
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: img, Src: image.Black, Face: face}

	for y, row := range rows {
		for x, letter := range []rune(row) {
			s := string(letter)
			letterWidth := font.MeasureString(face, s).Ceil()
			d.Dot = fixed.P(x*stride+(stride-letterWidth)/2, y*stride+ascent)
			d.DrawString(s)
		}
	}

	legendFace, err := r.face(size * LegendScale)
	if err != nil {
		return nil, err
	}
	defer legendFace.Close()

	d.Face = legendFace
	legendAscent := legendFace.Metrics().Ascent.Ceil()
	yStride := legendFace.Metrics().Height.Ceil()
	keyY0 := (len(rows) + 1) * stride

	for i, pos := range ColumnPositions(width, yStride, LegendColumns, len(words)) {
		d.Dot = fixed.P(pos.X, keyY0+pos.Y+legendAscent)
		d.DrawString(words[i])
	}

	return img, nil
}

// EncodePNG writes img to w as a PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// ColumnPositions returns top-left offsets for length items laid out top to
// bottom in numColumns columns of equal width. Earlier columns take the
// remainder when length does not divide evenly.
func ColumnPositions(imageWidth, yStride, numColumns, length int) []image.Point {
	result := make([]image.Point, 0, max(length, 0))
	if numColumns <= 0 {
		return result
	}
	colWidth := imageWidth / numColumns
	for column := 0; column < numColumns; column++ {
		numRows := length / numColumns
		if length%numColumns > column {
			numRows++
		}
		for row := 0; row < numRows; row++ {
			result = append(result, image.Point{X: column * colWidth, Y: row * yStride})
		}
	}
	return result
}

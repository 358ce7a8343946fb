package draw

import (
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LoadFontFace parses a TrueType font file and returns a face at the
// given point size.
func LoadFontFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ft, &truetype.Options{Size: points}), nil
}

// Text draws s onto dst with the baseline starting at (x, y).
func Text(dst Image, face font.Face, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextWidth returns the advance width of s in pixels when rendered
// with face.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

package draw

import (
	"image"
	"image/color"
	"testing"
)

var ink = color.RGBA{A: 0xff}

func testCanvas(w, h int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range canvas.Pix {
		canvas.Pix[i] = 0xff
	}
	return canvas
}

func isInk(t *testing.T, canvas *image.RGBA, x, y int) bool {
	t.Helper()
	r, g, b, _ := canvas.At(x, y).RGBA()
	return r == 0 && g == 0 && b == 0
}

func TestLine(t *testing.T) {
	canvas := testCanvas(16, 16)
	Line(canvas, image.Pt(0, 0), image.Pt(15, 15), ink)
	for i := 0; i < 16; i++ {
		if !isInk(t, canvas, i, i) {
			t.Errorf("diagonal pixel (%d,%d) is not set", i, i)
		}
	}
}

func TestHorizontalLine(t *testing.T) {
	canvas := testCanvas(16, 16)
	HorizontalLine(canvas, 2, 5, 10, ink)
	for x := 2; x < 12; x++ {
		if !isInk(t, canvas, x, 5) {
			t.Errorf("pixel (%d,5) is not set", x)
		}
	}
	if isInk(t, canvas, 1, 5) || isInk(t, canvas, 12, 5) {
		t.Error("line leaks past its endpoints")
	}
}

func TestRectangle(t *testing.T) {
	canvas := testCanvas(16, 16)
	rect := image.Rect(2, 3, 12, 10)
	Rectangle(canvas, rect, ink)

	for _, p := range []image.Point{
		{2, 3}, {11, 3}, {2, 9}, {11, 9}, // corners
		{6, 3}, {6, 9}, {2, 6}, {11, 6}, // edge midpoints
	} {
		if !isInk(t, canvas, p.X, p.Y) {
			t.Errorf("outline pixel %s is not set", p)
		}
	}
	if isInk(t, canvas, 6, 6) {
		t.Error("rectangle interior is filled")
	}
}

func TestBox(t *testing.T) {
	canvas := testCanvas(16, 16)
	rect := image.Rect(4, 4, 8, 8)
	Box(canvas, rect, ink)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			in := image.Pt(x, y).In(rect)
			if got := isInk(t, canvas, x, y); got != in {
				t.Errorf("pixel (%d,%d) ink=%v, expected %v", x, y, got, in)
			}
		}
	}
}

func TestCircle(t *testing.T) {
	canvas := testCanvas(32, 32)
	Circle(canvas, 16, 16, 8, ink)

	for _, p := range []image.Point{
		{16, 24}, {16, 8}, {24, 16}, {8, 16},
	} {
		if !isInk(t, canvas, p.X, p.Y) {
			t.Errorf("cardinal point %s is not set", p)
		}
	}
	if isInk(t, canvas, 16, 16) {
		t.Error("circle center is filled")
	}
}

func TestDisc(t *testing.T) {
	canvas := testCanvas(32, 32)
	Disc(canvas, 16, 16, 8, ink)

	for _, p := range []image.Point{
		{16, 16}, {16, 24}, {16, 8}, {24, 16}, {8, 16}, {12, 12},
	} {
		if !isInk(t, canvas, p.X, p.Y) {
			t.Errorf("disc pixel %s is not set", p)
		}
	}
	if isInk(t, canvas, 0, 0) || isInk(t, canvas, 31, 31) {
		t.Error("disc leaks outside its radius")
	}
}

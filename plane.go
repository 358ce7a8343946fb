package epaper

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/quietpaper/epaper/pixel"
)

// Plane is one of the two ink planes of a two-color panel. It is a
// drawable canvas in logical (rotated) coordinates backed by the packed
// physical buffer that is sent to device RAM verbatim.
//
// Bit semantics follow the panel's electrical convention: a set bit is
// background (white), a cleared bit is the plane's ink. Drawing with
// color.Black (or pixel.Off) marks a pixel; color.White (pixel.On)
// erases it.
type Plane struct {
	img  *pixel.MonoImage
	rect image.Rectangle
	xfrm mapFunc
}

func newPlane(width, height int, rotation Rotation) *Plane {
	w, h := rotation.Size(width, height)
	return &Plane{
		img:  pixel.NewMonoImage(width, height),
		rect: image.Rect(0, 0, w, h),
		xfrm: rotation.mapper(width, height),
	}
}

func (p *Plane) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds is the drawable bounding box in logical coordinates.
func (p *Plane) Bounds() image.Rectangle {
	return p.rect
}

func (p *Plane) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.rect) {
		return color.Transparent
	}
	return p.img.At(p.xfrm(x, y))
}

func (p *Plane) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.rect) {
		return
	}
	px, py := p.xfrm(x, y)
	p.img.Set(px, py, c)
}

// Fill overwrites every byte of the packed buffer with value. 0xff is
// all background, 0x00 is all ink.
func (p *Plane) Fill(value byte) {
	p.img.FillByte(value)
}

// Pix is the packed physical buffer. The driver borrows it read-only
// during transfer; callers must not resize it.
func (p *Plane) Pix() []byte {
	return p.img.Pix
}

// Interface check.
var _ draw.Image = (*Plane)(nil)

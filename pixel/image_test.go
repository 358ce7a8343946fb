package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoImage(t *testing.T) {
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(8, 8),
		image.Pt(122, 250),
		image.Pt(250, 122),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewMonoImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := MonoModel.Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for _, p := range []image.Point{
					image.Pt(-1, 0),
					image.Pt(0, -1),
					image.Pt(test.X, 0),
					image.Pt(0, test.Y),
				} {
					i.Set(p.X, p.Y, On)
					if v := i.At(p.X, p.Y); v != color.Transparent {
						itt.Fatalf("pixel %s is %#+v, expected transparent", p, v)
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != On {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), On)
							return
						}
					}
				}
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != Off {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), Off)
							return
						}
					}
				}
			})
		})
	}
}

func TestMonoImageStride(t *testing.T) {
	testCases := []struct {
		w, h   int
		stride int
	}{
		{8, 1, 1},
		{9, 1, 2},
		{122, 250, 16},
		{250, 122, 32},
	}
	for _, test := range testCases {
		i := NewMonoImage(test.w, test.h)
		if i.Stride != test.stride {
			t.Errorf("%dx%d image has stride %d, expected %d", test.w, test.h, i.Stride, test.stride)
		}
		if len(i.Pix) != test.stride*test.h {
			t.Errorf("%dx%d image has %d pixel bytes, expected %d", test.w, test.h, len(i.Pix), test.stride*test.h)
		}
	}
}

func TestMonoImagePacking(t *testing.T) {
	i := NewMonoImage(16, 2)

	// MSB-first: pixel (0,0) is the top bit of the first byte.
	i.Set(0, 0, On)
	if i.Pix[0] != 0x80 {
		t.Errorf("first byte is %#02x, expected 0x80", i.Pix[0])
	}
	i.Set(7, 0, On)
	if i.Pix[0] != 0x81 {
		t.Errorf("first byte is %#02x, expected 0x81", i.Pix[0])
	}
	i.Set(8, 1, On)
	if i.Pix[3] != 0x80 {
		t.Errorf("byte 3 is %#02x, expected 0x80", i.Pix[3])
	}

	if v := i.PixOffset(8, 1); v != 3 {
		t.Errorf("PixOffset(8,1) is %d, expected 3", v)
	}
}

func TestMonoImageFillByte(t *testing.T) {
	i := NewMonoImage(122, 2)
	i.FillByte(0xa5)
	for _, v := range i.Pix {
		if v != 0xa5 {
			t.Fatalf("pixel byte is %#02x, expected 0xa5", v)
		}
	}
}

func testRandomColor() color.Color {
	return color.RGBA64{
		R: uint16(rand.Intn(1 << 16)),
		G: uint16(rand.Intn(1 << 16)),
		B: uint16(rand.Intn(1 << 16)),
		A: 0xffff,
	}
}

package pixel

import (
	"image/color"
	"testing"
)

func TestMonoModel(t *testing.T) {
	testCases := []struct {
		color color.Color
		want  Mono
	}{
		{color.White, On},
		{color.Black, Off},
		{On, On},
		{Off, Off},
		{color.Gray{Y: 0x80}, On},
		// Saturated red is below the luma threshold, so it marks ink.
		{color.RGBA{R: 0xff, A: 0xff}, Off},
	}
	for _, test := range testCases {
		if v := MonoModel.Convert(test.color); v != test.want {
			t.Errorf("%#+v converts to %#+v, expected %#+v", test.color, v, test.want)
		}
	}
}

func TestMonoRGBA(t *testing.T) {
	if r, g, b, a := On.RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("On is %04x%04x%04x%04x, expected white", r, g, b, a)
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("Off is %04x%04x%04x%04x, expected black", r, g, b, a)
	}
}

package epaper

// Size returns the logical (drawable) dimensions for a panel of w×h
// physical pixels under this rotation. Quarter turns swap the axes.
func (r Rotation) Size(w, h int) (int, int) {
	switch r % 4 {
	case Rotate90, Rotate270:
		return h, w
	default:
		return w, h
	}
}

// mapFunc converts a logical pixel coordinate into the physical pixel
// coordinate scanned out by the controller.
type mapFunc func(x, y int) (int, int)

// mapper returns the logical→physical coordinate transform for a panel
// of w×h physical pixels. The transform is pure and a total bijection
// over the logical pixel space, so a rotated plane covers the physical
// buffer with no gaps or overlaps.
func (r Rotation) mapper(w, h int) mapFunc {
	switch r % 4 {
	case Rotate90:
		return func(x, y int) (int, int) { return y, h - 1 - x }
	case Rotate180:
		return func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case Rotate270:
		return func(x, y int) (int, int) { return w - 1 - y, x }
	default:
		return func(x, y int) (int, int) { return x, y }
	}
}

// Package epaper contains a driver for two-color (black/red)
// electrophoretic display panels.
//
// The driver owns two independent 1-bit planes, one per ink color.
// Applications draw into the planes through the standard [image/draw]
// interfaces and push both to the panel with Refresh. A full panel
// refresh is a multi-second hardware operation; Refresh blocks until
// the controller reports completion on its busy line.
package epaper

import (
	"errors"
	"image"
)

// Errors
var (
	ErrBusyTimeout = errors.New("epaper: busy line did not clear in time")
	ErrAsleep      = errors.New("epaper: display is in deep sleep")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Display is a two-plane e-paper display.
type Display interface {
	String() string

	// Close puts the panel to sleep if needed and closes the connection.
	Close() error

	// Bounds is the drawable bounding box in logical (rotated) coordinates.
	Bounds() image.Rectangle

	// Black is the black ink plane.
	Black() *Plane

	// Red is the red ink plane.
	Red() *Plane

	// Clear fills both planes with the given byte patterns and refreshes
	// the panel. Use 0xff for both to blank the panel to white.
	Clear(black, red byte) error

	// Refresh pushes both planes to the device and triggers a full
	// refresh. It blocks until the panel is done updating.
	Refresh() error

	// Sleep puts the panel into deep sleep. The device ignores all
	// further commands until it is hardware-reset, so every later call
	// on this Display fails with ErrAsleep.
	Sleep() error
}

// Config is the display configuration.
type Config struct {
	// Width of the panel in physical pixels.
	Width int

	// Height of the panel in physical pixels.
	Height int

	// Rotation of the drawable planes.
	Rotation Rotation
}

type baseDisplay struct {
	c        Conn
	width    int
	height   int
	rotation Rotation
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *baseDisplay) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *baseDisplay) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

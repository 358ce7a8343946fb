package epaper

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Physical geometry of the 2.13" B panel. The controller scans whole
// bytes, so the 122 pixel width is padded to a 16 byte row stride.
const (
	epd2in13bWidth  = 122
	epd2in13bHeight = 250
)

// SSD1680 command set, values per the 2.13" B V4 reference code.
const (
	ssd1680DriverOutput   = 0x01
	ssd1680DeepSleep      = 0x10
	ssd1680DataEntryMode  = 0x11
	ssd1680SoftReset      = 0x12
	ssd1680TempSensor     = 0x18
	ssd1680MasterActivate = 0x20
	ssd1680UpdateControl  = 0x21
	ssd1680WriteRAMBlack  = 0x24
	ssd1680WriteRAMRed    = 0x26
	ssd1680BorderWaveform = 0x3C
	ssd1680RAMXRange      = 0x44
	ssd1680RAMYRange      = 0x45
	ssd1680RAMXCounter    = 0x4E
	ssd1680RAMYCounter    = 0x4F
)

// A full refresh takes over ten seconds; the timeout only has to catch
// a wedged controller, not pace the poll loop.
const (
	epd2in13bBusyInterval = 10 * time.Millisecond
	epd2in13bBusyTimeout  = 30 * time.Second
)

type epd2in13b struct {
	baseDisplay
	black *Plane
	red   *Plane
	rect  image.Rectangle

	busyInterval time.Duration
	busyTimeout  time.Duration
	delay        func(time.Duration)

	asleep bool
}

// EPD2in13B is a driver for the Waveshare 2.13" black/red e-paper
// panel (SSD1680 class controller).
//
// Construction resets and initializes the panel; the returned display
// is immediately ready for drawing and Refresh.
func EPD2in13B(c Conn, config *Config) (Display, error) {
	d := newEPD2in13B(c, config)
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// newEPD2in13B allocates the driver and its planes without touching
// the bus.
func newEPD2in13B(c Conn, config *Config) *epd2in13b {
	if config == nil {
		config = new(Config)
	}
	if config.Width == 0 {
		config.Width = epd2in13bWidth
	}
	if config.Height == 0 {
		config.Height = epd2in13bHeight
	}

	d := &epd2in13b{
		baseDisplay: baseDisplay{
			c:        c,
			width:    config.Width,
			height:   config.Height,
			rotation: config.Rotation,
		},
		black:        newPlane(config.Width, config.Height, config.Rotation),
		red:          newPlane(config.Width, config.Height, config.Rotation),
		busyInterval: epd2in13bBusyInterval,
		busyTimeout:  epd2in13bBusyTimeout,
		delay:        time.Sleep,
	}
	d.rect = d.black.Bounds()
	return d
}

func (d *epd2in13b) String() string {
	return fmt.Sprintf("EPD2in13B %dx%d", d.rect.Dx(), d.rect.Dy())
}

// Bounds is the drawable bounding box in logical (rotated) coordinates.
func (d *epd2in13b) Bounds() image.Rectangle {
	return d.rect
}

// Black is the black ink plane.
func (d *epd2in13b) Black() *Plane {
	return d.black
}

// Red is the red ink plane.
func (d *epd2in13b) Red() *Plane {
	return d.red
}

// reset drives the reset line through the timed pulse that forces the
// controller into a known state.
func (d *epd2in13b) reset() error {
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	d.delay(50 * time.Millisecond)
	if err := d.c.Reset(gpio.Low); err != nil {
		return err
	}
	d.delay(2 * time.Millisecond)
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	d.delay(50 * time.Millisecond)
	return nil
}

// init runs the panel's documented power-on command table. No pixel
// transfer is valid before it completes.
func (d *epd2in13b) init() (err error) {
	if err = d.reset(); err != nil {
		return
	}
	if err = d.waitUntilIdle(); err != nil {
		return
	}
	if err = d.command(ssd1680SoftReset); err != nil {
		return
	}
	if err = d.waitUntilIdle(); err != nil {
		return
	}

	if err = d.commands([][]byte{
		{ssd1680DriverOutput, 0xf9, 0x00, 0x00},
		{ssd1680DataEntryMode, 0x03},
	}...); err != nil {
		return
	}

	// The RAM window spans the padded width, not the visible one.
	padded := (d.width + 7) &^ 7
	if err = d.setWindow(0, 0, padded-1, d.height-1); err != nil {
		return
	}
	if err = d.setCursor(0, 0); err != nil {
		return
	}

	if err = d.commands([][]byte{
		{ssd1680BorderWaveform, 0x05},
		{ssd1680TempSensor, 0x80},
		{ssd1680UpdateControl, 0x80, 0x80},
	}...); err != nil {
		return
	}
	return d.waitUntilIdle()
}

func (d *epd2in13b) setWindow(x0, y0, x1, y1 int) error {
	if err := d.command(ssd1680RAMXRange, byte(x0>>3), byte(x1>>3)); err != nil {
		return err
	}
	return d.command(ssd1680RAMYRange, byte(y0), byte(y0>>8), byte(y1), byte(y1>>8))
}

func (d *epd2in13b) setCursor(x, y int) error {
	if err := d.command(ssd1680RAMXCounter, byte(x>>3)); err != nil {
		return err
	}
	return d.command(ssd1680RAMYCounter, byte(y), byte(y>>8))
}

// waitUntilIdle polls the busy line until the controller releases it.
// There is no protocol-level way to abort; a line that never clears
// within the deadline means the device is wedged.
func (d *epd2in13b) waitUntilIdle() error {
	deadline := time.Now().Add(d.busyTimeout)
	for d.c.Busy() == gpio.High {
		if time.Now().After(deadline) {
			return ErrBusyTimeout
		}
		d.delay(d.busyInterval)
	}
	return nil
}

// writePlane streams one full plane into device RAM as a single
// command/data transaction.
func (d *epd2in13b) writePlane(cmd byte, pix []byte) error {
	return d.command(cmd, pix...)
}

// turnOn triggers the physical refresh and blocks until it finishes.
func (d *epd2in13b) turnOn() error {
	if err := d.command(ssd1680MasterActivate); err != nil {
		return err
	}
	return d.waitUntilIdle()
}

func (d *epd2in13b) Refresh() error {
	if d.asleep {
		return ErrAsleep
	}
	if err := d.writePlane(ssd1680WriteRAMBlack, d.black.Pix()); err != nil {
		return err
	}
	if err := d.writePlane(ssd1680WriteRAMRed, d.red.Pix()); err != nil {
		return err
	}
	return d.turnOn()
}

func (d *epd2in13b) Clear(black, red byte) error {
	if d.asleep {
		return ErrAsleep
	}
	d.black.Fill(black)
	d.red.Fill(red)
	return d.Refresh()
}

func (d *epd2in13b) Sleep() error {
	if d.asleep {
		return ErrAsleep
	}
	if err := d.command(ssd1680DeepSleep, 0x01); err != nil {
		return err
	}
	d.asleep = true
	d.delay(2 * time.Second)
	// Holding reset low keeps the panel from floating out of sleep.
	return d.c.Reset(gpio.Low)
}

func (d *epd2in13b) Close() error {
	if !d.asleep {
		if err := d.Sleep(); err != nil {
			return err
		}
	}
	return d.c.Close()
}

// Interface check.
var _ Display = (*epd2in13b)(nil)

// Command epd-test pushes a demo frame to a 2.13" black/red e-paper
// panel and puts it back to sleep.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/quietpaper/epaper"
	"github.com/quietpaper/epaper/draw"
	"github.com/quietpaper/epaper/pixel"
)

func main() {
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	speedFlag := flag.Uint("speed", uint(epaper.DefaultSPIConfig.SpeedHz), "SPI speed in Hz")
	resetPinFlag := flag.String("reset", "GPIO17", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO25", "Data/Command GPIO pin (DC)")
	busyPinFlag := flag.String("busy", "GPIO24", "Busy GPIO pin")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin (empty: use the bus CS)")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	fontFlag := flag.String("font", "", "TrueType font for the demo text")
	clearFlag := flag.Bool("clear", false, "Blank the panel and exit")
	flag.Parse()

	var rotation epaper.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = epaper.NoRotation
	case "90", "right", "cw":
		rotation = epaper.Rotate90
	case "180", "flip":
		rotation = epaper.Rotate180
	case "270", "left", "ccw":
		rotation = epaper.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	config := epaper.DefaultSPIConfig
	config.Bus = *spiBusFlag
	config.Device = *spiDeviceFlag
	config.SpeedHz = uint32(*speedFlag)
	config.Reset = gpioreg.ByName(*resetPinFlag)
	config.DC = gpioreg.ByName(*dcPinFlag)
	config.Busy = gpioreg.ByName(*busyPinFlag)
	if *cePinFlag != "" {
		config.CE = gpioreg.ByName(*cePinFlag)
	}

	c, err := epaper.OpenSPI(&config)
	if err != nil {
		fatal(err)
	}
	fmt.Println("connected using", c)

	display, err := epaper.EPD2in13B(c, &epaper.Config{Rotation: rotation})
	if err != nil {
		fatal(err)
	}
	fmt.Println("initialized", display)

	if *clearFlag {
		if err = display.Clear(0xff, 0xff); err != nil {
			fatal(err)
		}
		if err = display.Close(); err != nil {
			fatal(err)
		}
		return
	}

	// White background on both planes.
	display.Black().Fill(0xff)
	display.Red().Fill(0xff)

	bounds := display.Bounds()
	draw.Rectangle(display.Black(), bounds, pixel.Off)
	draw.Disc(display.Red(), bounds.Dx()/2, bounds.Dy()/2, bounds.Dx()/4, pixel.Off)
	draw.Circle(display.Black(), bounds.Dx()/2, bounds.Dy()/2, bounds.Dx()/3, pixel.Off)
	draw.Line(display.Black(), bounds.Min, image.Pt(bounds.Max.X-1, bounds.Max.Y-1), pixel.Off)

	if *fontFlag != "" {
		face, err := draw.LoadFontFace(*fontFlag, 14)
		if err != nil {
			fatal(err)
		}
		draw.Text(display.Black(), face, 4, 18, "epaper", pixel.Off)
	}

	fmt.Println("refreshing (this takes a while)")
	if err = display.Refresh(); err != nil {
		fatal(err)
	}

	if err = display.Close(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal:", err)
	os.Exit(1)
}

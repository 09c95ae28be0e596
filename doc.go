// Package st7920 controls an ST7920 based 128x64 LCD ("12864" module) over
// its 2-wire serial interface.
//
// The ST7920 combines a character display with a built-in font ROM (ASCII
// and a double-byte character set) and a graphics RAM overlay. This driver
// bit-bangs the serial protocol on two GPIO outputs and implements the
// display.Drawer interface from periph.io for the graphics layer.
//
// # Display Characteristics
//
// - 4 text rows of 8 cells; each 16x16 cell holds one double-byte character
// or two ASCII characters
// - Monochrome graphics RAM, written in 16-pixel words
// - Write-only serial link: there is no busy flag, so every transfer is
// preceded by a fixed 1ms gap
//
// # Hardware Connection
//
// Put the module in serial mode and connect two GPIO outputs:
//
//	Module Pin → System Pin
//	VSS        → GND
//	VDD        → 5V
//	RS (CS)    → 5V (chip always selected)
//	R/W (SID)  → GPIO (serial data)
//	E (SCLK)   → GPIO (serial clock)
//	PSB        → GND (selects serial mode)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/st7920"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Look up the serial pins
//		sid := gpioreg.ByName("GPIO23")
//		sclk := gpioreg.ByName("GPIO24")
//
//		// Create and initialize the device
//		dev, _ := st7920.NewSerial(sid, sclk, nil)
//		defer dev.Halt()
//
//		// Text goes on a 4x8 cell grid
//		dev.WriteString(0, 0, "Hello")
//	}
//
// # Serial Protocol
//
// Each instruction or data byte is sent as three bytes, MSB first, with the
// display sampling SID on the rising edge of SCLK:
//
//	11111 RW RS 0   sync byte: 0xF8 for instructions, 0xFA for data
//	D7 D6 D5 D4 0 0 0 0
//	D3 D2 D1 D0 0 0 0 0
//
// # Text
//
// WriteText and WriteString take a row (0-3) and a column (0-7). Text must
// already be in the display's native encoding; the driver sends the bytes
// as they are and stops at the first zero byte. A double-byte character
// must start on a cell boundary, which is the caller's responsibility.
//
// The text rows are interleaved in DDRAM: row 2 continues row 0 and row 3
// continues row 1. CellAddress returns the address used for a cell.
//
// # Graphics
//
// WritePicture (and Write) upload exactly 512 bytes to the upper graphics
// bank: 32 rows of 8 words, each word high byte first, leftmost pixel in
// the MSB. The image1bit package provides an image type with this layout:
//
//	img := image1bit.NewHorizontalMSB(dev.Bounds())
//	img.SetBit(10, 10, image1bit.On)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// Any other image is converted to monochrome before upload. Draw always
// uploads the whole bank; it does not diff frames.
//
// Only the upper bank is written, so the graphics layer covers 128x32.
//
// # Timing
//
// The driver blocks for the whole duration of each operation. A picture
// upload is 1028 frames and takes a little over one second with the 1ms
// gap. Delays go through the Delayer in Opts; tests can pass a DelayFunc
// that records durations instead of waiting.
//
// # Concurrency
//
// A Dev must not be used from more than one goroutine at a time.
//
// # Datasheet
//
// https://www.lcd-module.de/eng/pdf/zubehoer/st7920_chinese.pdf
package st7920

// Package st7920 controls an ST7920 based 128x64 LCD over its 2-wire serial interface.
//
// The SID and SCLK lines are bit-banged on two GPIO outputs; CS is expected
// to be tied high. The display has no readable busy flag on this wiring so
// every transfer is paced with fixed worst-case delays.
//
// See the examples for how to use this package.
package st7920

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/st7920/image1bit"
)

// Instruction codes. The basic set is active after Init; the graphics
// commands are only understood in the extended set.
const (
	cmdClear       byte = 0x01 // Clear DDRAM, address counter to 00H
	cmdEntryMode   byte = 0x06 // Cursor moves right after each write
	cmdDisplayOff  byte = 0x08
	cmdDisplayOn   byte = 0x0C // Display on, cursor and blink off
	cmdBasicSet    byte = 0x30 // 8-bit interface, basic instructions
	cmdExtendedSet byte = 0x34 // 8-bit interface, extended instructions, graphics off
	cmdGraphicsOn  byte = 0x36 // Extended instructions, graphics on
	cmdGDRAMAddr   byte = 0x80 // OR'ed with the vertical or horizontal address
)

// Graphics bank geometry. Only the upper bank is written, which covers a
// 128x32 area.
const (
	bankRows  = 32
	bankWords = 8
	// PictureSize is the number of bytes WritePicture expects.
	PictureSize = bankRows * bankWords * 2
)

// Init sequence timing from the datasheet, with margin.
const (
	powerOnSettle  = 50 * time.Millisecond // >40ms
	functionSettle = time.Millisecond      // >100us, then >37us
	displaySettle  = time.Millisecond      // >100us
	clearSettle    = 30 * time.Millisecond // >10ms
	clearWait      = 2 * time.Millisecond  // >1.6ms
)

// Opts is the configuration for the ST7920 display.
type Opts struct {
	// Delay paces the serial link. Nil uses a host delay that spins for
	// microsecond waits and sleeps for longer ones.
	Delay Delayer
}

// Dev is the device handle for an ST7920 display.
//
// Dev is not safe for concurrent use: interleaving two operations mixes
// their bits on the wire.
type Dev struct {
	sid   gpio.PinOut // Serial data (R/W pin on the module)
	sclk  gpio.PinOut // Serial clock (E pin on the module)
	delay Delayer

	rect   image.Rectangle
	frame  *image1bit.HorizontalMSB
	halted bool
}

// NewSerial creates a new ST7920 device driven through the SID and SCLK
// output pins and initializes it.
//
// opts can be nil to use defaults.
func NewSerial(sid, sclk gpio.PinOut, opts *Opts) (*Dev, error) {
	if sid == nil || sclk == nil {
		return nil, errors.New("st7920: SID and SCLK pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	d := &Dev{
		sid:   sid,
		sclk:  sclk,
		delay: opts.Delay,
		rect:  image.Rect(0, 0, bankWords*16, bankRows),
	}
	if d.delay == nil {
		d.delay = hostDelay{}
	}

	// The serial interface idles with both lines high.
	if err := d.sid.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("st7920: failed to pull SID high: %w", err)
	}
	if err := d.sclk.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("st7920: failed to pull SCLK high: %w", err)
	}

	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init runs the power-on sequence: basic instruction set, display on,
// clear, auto-increment entry mode.
//
// NewSerial calls Init; call it again only to bring the display back after
// Halt.
func (d *Dev) Init() error {
	d.delay.Delay(powerOnSettle)

	steps := []struct {
		cmd    byte
		settle time.Duration
	}{
		{cmdBasicSet, functionSettle},
		{cmdBasicSet, functionSettle},
		{cmdDisplayOn, displaySettle},
		{cmdClear, clearSettle},
		{cmdEntryMode, 0},
	}
	for _, s := range steps {
		if err := d.writeCommand(s.cmd); err != nil {
			return err
		}
		if s.settle > 0 {
			d.delay.Delay(s.settle)
		}
	}

	d.halted = false
	return nil
}

// WriteText writes text starting at the given text cell. Rows are 0-3 and
// columns 0-7.
//
// text must already be encoded for the display's character ROM (ASCII and
// the built-in double-byte set). Writing stops at the first zero byte or at
// the end of the slice. The driver does not check that text fits the row or
// that double-byte characters start on a cell boundary; misaligned
// characters show up as garbage.
func (d *Dev) WriteText(row, col int, text []byte) error {
	if d.halted {
		return errors.New("st7920: halted")
	}
	addr, ok := CellAddress(row, col)
	if !ok {
		return fmt.Errorf("st7920: text cell (%d, %d) out of range", row, col)
	}
	if err := d.writeCommand(addr); err != nil {
		return err
	}
	for _, b := range text {
		if b == 0 {
			break
		}
		if err := d.writeData(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteString is WriteText for a string.
func (d *Dev) WriteString(row, col int, s string) error {
	return d.WriteText(row, col, []byte(s))
}

// WritePicture uploads a 128x32 monochrome bitmap to the upper graphics
// bank.
//
// pix must be exactly PictureSize bytes: 32 rows of 8 16-bit words, each
// word high byte first, MSB the leftmost pixel. This is the Pix layout of a
// 128x32 image1bit.HorizontalMSB.
func (d *Dev) WritePicture(pix []byte) error {
	if d.halted {
		return errors.New("st7920: halted")
	}
	if len(pix) != PictureSize {
		return errors.New("st7920: invalid buffer size")
	}

	// Graphics display must be off while GDRAM is loaded.
	if err := d.writeCommands(cmdExtendedSet, cmdExtendedSet); err != nil {
		return err
	}
	i := 0
	for y := 0; y < bankRows; y++ {
		for x := 0; x < bankWords; x++ {
			if err := d.writeCommands(cmdGDRAMAddr+byte(y), cmdGDRAMAddr+byte(x)); err != nil {
				return err
			}
			if err := d.writeData(pix[i]); err != nil {
				return err
			}
			if err := d.writeData(pix[i+1]); err != nil {
				return err
			}
			i += 2
		}
	}
	if err := d.writeCommands(cmdGraphicsOn, cmdBasicSet); err != nil {
		return err
	}

	// Keep the Draw frame in sync with what GDRAM now holds.
	if d.frame == nil {
		d.frame = image1bit.NewHorizontalMSB(d.rect)
	}
	copy(d.frame.Pix, pix)
	return nil
}

// Write uploads raw GDRAM contents. See WritePicture for the layout.
func (d *Dev) Write(pix []byte) (int, error) {
	if err := d.WritePicture(pix); err != nil {
		return 0, err
	}
	return len(pix), nil
}

// Clear blanks the text layer and moves the cursor home.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("st7920: halted")
	}
	if err := d.writeCommand(cmdClear); err != nil {
		return err
	}
	d.delay.Delay(clearWait)
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the area covered by the graphics bank.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw renders src onto the display frame and uploads the whole frame.
//
// The frame persists between calls so areas outside dst keep what was last
// drawn or written there.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7920: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if d.frame == nil {
		d.frame = image1bit.NewHorizontalMSB(d.rect)
	}

	// Fast path: a full-size image in the native layout is sent as is.
	if img, ok := src.(*image1bit.HorizontalMSB); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && img.Rect == d.rect {
			copy(d.frame.Pix, img.Pix)
			return d.WritePicture(d.frame.Pix)
		}
	}

	draw.Draw(d.frame, dst, src, sp, draw.Src)
	return d.WritePicture(d.frame.Pix)
}

// Halt turns the display off. Other operations fail until Init is called.
func (d *Dev) Halt() error {
	if err := d.writeCommand(cmdDisplayOff); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7920.Dev{%s, %s}", d.sid, d.sclk)
}

var _ display.Drawer = &Dev{}

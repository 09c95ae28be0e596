package st7920

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Serial mode selectors: five sync bits, RW=0, then RS (0 command, 1 data).
const (
	syncCommand byte = 0xF8
	syncData    byte = 0xFA
)

const (
	// bitSettle is how long the clock stays low with a new data bit on SID.
	bitSettle = 5 * time.Microsecond
	// writeGap precedes every command or data frame in place of busy polling.
	writeGap = time.Millisecond
)

// sendByte shifts b out on SID, most significant bit first. The display
// samples SID on the rising edge of SCLK.
func (d *Dev) sendByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.sid.Out(gpio.Level(b&(0x80>>uint(i)) != 0)); err != nil {
			return fmt.Errorf("st7920: failed to drive SID: %w", err)
		}
		if err := d.sclk.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7920: failed to pull SCLK low: %w", err)
		}
		d.delay.Delay(bitSettle)
		if err := d.sclk.Out(gpio.High); err != nil {
			return fmt.Errorf("st7920: failed to pull SCLK high: %w", err)
		}
	}
	return nil
}

// writeFrame sends one serial frame: the sync byte followed by the payload
// split into two left-justified nibbles.
func (d *Dev) writeFrame(sync, v byte) error {
	d.delay.Delay(writeGap)
	if err := d.sendByte(sync); err != nil {
		return err
	}
	if err := d.sendByte(v & 0xF0); err != nil {
		return err
	}
	return d.sendByte(v << 4)
}

// writeCommand sends an instruction byte.
func (d *Dev) writeCommand(cmd byte) error {
	return d.writeFrame(syncCommand, cmd)
}

// writeCommands sends instruction bytes one frame each.
func (d *Dev) writeCommands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.writeCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// writeData sends a byte to DDRAM or GDRAM at the current address.
func (d *Dev) writeData(v byte) error {
	return d.writeFrame(syncData, v)
}

// Package image1bit provides a monochrome image format for the ST7920 graphics RAM.
//
// The ST7920 addresses its graphics RAM in 16-bit words, each word covering
// 16 horizontal pixels. Words are written high byte first and the most
// significant bit of each byte is the leftmost pixel, so a row of the image
// is a plain run of bytes with MSB-first bit packing.
//
// Memory layout example for a 16-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9 A B C D E F
//	Values: 1 0 1 1 0 0 0 0 | 0 0 0 0 0 0 0 1
//	Bytes:  0xB0              0x01
//
// This package provides:
//
// - Bit: a color type that is either on or off
// - BitModel: a color model converting standard Go colors to Bit
// - HorizontalMSB: an image.Image implementation matching the ST7920 layout
//
// Example usage:
//
//	// Create a 128x32 image, the size of one graphics bank
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 128, 32))
//
//	// Turn a pixel on
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit

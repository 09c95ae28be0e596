package st7920

// Text cell geometry. Each cell is 16x16 pixels and holds either one native
// double-byte character or two half-width ASCII characters.
const (
	TextRows = 4
	TextCols = 8
)

// addrMap holds the DDRAM address of each text cell.
//
// The ST7920 maps its 128x64 panel onto two 256x32 DDRAM lines, so the
// logical rows are interleaved: row 2 continues row 0 and row 3 continues
// row 1.
var addrMap = [TextRows][TextCols]byte{
	{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87},
	{0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97},
	{0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8E, 0x8F},
	{0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F},
}

// CellAddress returns the "set DDRAM address" command for the text cell at
// (row, col). ok is false when the cell is outside the 4x8 grid.
func CellAddress(row, col int) (addr byte, ok bool) {
	if row < 0 || row >= TextRows || col < 0 || col >= TextCols {
		return 0, false
	}
	return addrMap[row][col], true
}

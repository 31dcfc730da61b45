package minefair

import (
	"encoding/binary"
	"io"
	"math"
)

// Puzzles files are written on little-endian machines; every field and cell
// is stored in that order.
var ByteOrder = binary.LittleEndian

const (
	// Every header field and every grid cell is a float32.
	CellSize = 4
	// width, height, density
	HeaderSize = 3 * CellSize

	maxCells = 1 << 61
)

// ReadFloat32 returns io.EOF only if no bytes were available, and
// io.ErrUnexpectedEOF if the value was cut short.
func ReadFloat32(r io.Reader) (float32, error) {
	var x float32
	err := binary.Read(r, ByteOrder, &x)
	if err != nil {
		return 0, err
	}
	return x, nil
}

func WriteFloat32(w io.Writer, x float32) error {
	return binary.Write(w, ByteOrder, x)
}

// PayloadCells returns the number of cells in a width x height grid.  The
// product is truncated toward zero, so 1.5 x 1.5 has 2 cells.  ok is false
// if the product is negative, NaN or too large to address in bytes.
func PayloadCells(width, height float32) (cells int64, ok bool) {
	area := math.Trunc(float64(width) * float64(height))
	// maxCells*CellSize overflows int64; every float64 below it does not.
	if math.IsNaN(area) || area < 0 || area >= maxCells {
		return 0, false
	}
	return int64(area), true
}

// PayloadBytes is PayloadCells in bytes.
func PayloadBytes(width, height float32) (int64, bool) {
	cells, ok := PayloadCells(width, height)
	if !ok {
		return 0, false
	}
	return cells * CellSize, true
}

// DensityKey maps a density to the key it is counted under: equal values
// share a key, -0 counts as 0 and NaNs are told apart by their bits.
func DensityKey(density float32) uint32 {
	if density == 0 {
		return 0
	}
	return math.Float32bits(density)
}

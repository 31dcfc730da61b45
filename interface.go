package minefair

// Record is the decoded header of one puzzle in a puzzles file.  The cells
// that follow the header are skipped, never decoded.
type Record struct {
	// Position of the record in the file, starting from 0.
	Index int
	// Byte offset of the width field.
	Offset int64

	Width   float32
	Height  float32
	Density float32

	// Invariant: PayloadSize == PayloadBytes(Width, Height) for records
	// produced by a scan.
	PayloadSize int64
}

func (r1 *Record) Equals(r2 *Record) bool {
	if r1 == nil || r2 == nil {
		return r1 == r2
	}
	return *r1 == *r2
}

// Observer is called once for every record an Iterator produces, before the
// record is counted.
type Observer func(*Record)

type Iterator interface {
	// Next returns io.EOF once the input is exhausted.
	Next() (*Record, error)
	Close() error
}

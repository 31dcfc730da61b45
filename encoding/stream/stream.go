// The stream package reads and writes puzzles files: a flat sequence of
// records, each a width/height/density header followed by width*height grid
// cells.  There is no file header, index or footer, so the only way to find
// a record is to read every record before it.
//
// A file may also be a single zstd stream wrapping that sequence; scans
// detect this from the frame magic and decompress transparently.  Offsets are
// always offsets into the decompressed records.
package stream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

// maybeDecompress returns a reader over the records in r, and a Closer that
// releases any decoder it had to start.
func maybeDecompress(r *bufio.Reader) (*bufio.Reader, io.Closer, error) {
	raw := closerFunc(func() error { return nil })
	magic, err := r.Peek(len(zstdMagic))
	if err != nil || !bytes.Equal(magic, zstdMagic) {
		// Too short to be compressed; the scan reports any truncation.
		return r, raw, nil
	}
	// A raw file can start with the magic too (a width of about -1.46e37).
	// Only treat it as zstd if a frame header follows.
	header, _ := r.Peek(zstd.HeaderMaxSize)
	var h zstd.Header
	err = h.Decode(header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return r, raw, nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(d), closerFunc(func() error {
		d.Close()
		return nil
	}), nil
}

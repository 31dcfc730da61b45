package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/dropbox/godropbox/errors"
	"github.com/klauspost/compress/zstd"

	"github.com/LyricLy/minefair"
)

type write struct {
	w      *bufio.Writer
	index  int
	offset int64
	closed bool
	// Closed in order after the buffer is flushed.
	c []io.Closer
}

// NewWrite creates (or truncates) a puzzles file at path.
func NewWrite(path string) (*write, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create puzzles file %s", path)
	}
	return &write{
		w: bufio.NewWriter(f),
		c: []io.Closer{f},
	}, nil
}

// NewCompressedWrite is NewWrite with the records wrapped in a zstd stream.
func NewCompressedWrite(path string) (*write, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create puzzles file %s", path)
	}
	e, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &write{
		w: bufio.NewWriter(e),
		c: []io.Closer{e, f},
	}, nil
}

// WriteRecord appends one record and returns the Record a scan will produce
// for it.
//
// Preconditions:
//     len(cells) == minefair.PayloadCells(width, height)
func (w *write) WriteRecord(
	width float32,
	height float32,
	density float32,
	cells []float32,
) (*minefair.Record, error) {
	if w.closed {
		return nil, errors.New("Cannot call WriteRecord after write was closed")
	}
	numCells, ok := minefair.PayloadCells(width, height)
	if !ok {
		return nil, errors.Newf("Invalid dimensions %vx%v", width, height)
	}
	if int64(len(cells)) != numCells {
		return nil, errors.Newf(
			"%vx%v grid has %d cells; got %d",
			width,
			height,
			numCells,
			len(cells))
	}
	record := &minefair.Record{
		Index:       w.index,
		Offset:      w.offset,
		Width:       width,
		Height:      height,
		Density:     density,
		PayloadSize: numCells * minefair.CellSize,
	}
	for _, x := range []float32{width, height, density} {
		err := minefair.WriteFloat32(w.w, x)
		if err != nil {
			return nil, err
		}
	}
	for _, x := range cells {
		err := minefair.WriteFloat32(w.w, x)
		if err != nil {
			return nil, err
		}
	}
	w.index++
	w.offset += minefair.HeaderSize + record.PayloadSize
	return record, nil
}

func (w *write) Close() error {
	if w.closed {
		return nil
	}
	err := w.w.Flush()
	if err != nil {
		return err
	}
	defer func() {
		w.closed = true
	}()
	for _, c := range w.c {
		err = c.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

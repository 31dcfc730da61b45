package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/dropbox/godropbox/errors"

	"github.com/LyricLy/minefair"
)

type Options struct {
	// Lenient accepts a final record whose cells end before the declared
	// width*height; the scan ends after that record instead of failing.
	Lenient bool
}

type scan struct {
	r       *bufio.Reader
	lenient bool
	index   int
	offset  int64
	done    bool
	err     error
	closed  bool
	c       []io.Closer
}

var _ minefair.Iterator = (*scan)(nil)

func NewScan(path string, opts Options) (*scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open puzzles file %s", path)
	}
	s, err := newScan(f, opts)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "read puzzles file %s", path)
	}
	s.c = append(s.c, f)
	return s, nil
}

// NewReaderScan scans records from r.  Closing the scan does not close r.
func NewReaderScan(r io.Reader, opts Options) (*scan, error) {
	return newScan(r, opts)
}

func newScan(r io.Reader, opts Options) (*scan, error) {
	br, c, err := maybeDecompress(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	return &scan{
		r:       br,
		lenient: opts.Lenient,
		c:       []io.Closer{c},
	}, nil
}

// Offset returns the number of bytes consumed so far.
func (s *scan) Offset() int64 {
	return s.offset
}

func (s *scan) Next() (*minefair.Record, error) {
	if s.closed {
		return nil, errors.New("Cannot call Next after scan was closed")
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, io.EOF
	}
	record, err := s.readRecord()
	if err == io.EOF {
		s.done = true
		return nil, io.EOF
	} else if err != nil {
		s.err = err
		return nil, err
	}
	s.index++
	return record, nil
}

// readRecord returns io.EOF only if the input ended cleanly on a record
// boundary.
func (s *scan) readRecord() (*minefair.Record, error) {
	record := &minefair.Record{
		Index:  s.index,
		Offset: s.offset,
	}
	width, err := s.readField(record, "width")
	if err != nil {
		return nil, err
	}
	height, err := s.readField(record, "height")
	if err != nil {
		return nil, s.truncated(record, "height", err)
	}
	density, err := s.readField(record, "density")
	if err != nil {
		return nil, s.truncated(record, "density", err)
	}
	record.Width = width
	record.Height = height
	record.Density = density

	size, ok := minefair.PayloadBytes(width, height)
	if !ok {
		return nil, &minefair.DecodeError{
			Kind:   minefair.InvalidDimensions,
			Index:  record.Index,
			Offset: record.Offset,
			Field:  "payload",
		}
	}
	record.PayloadSize = size

	skipped, err := io.CopyN(io.Discard, s.r, size)
	s.offset += skipped
	if err == io.EOF && s.lenient {
		s.done = true
	} else if err == io.EOF {
		return nil, &minefair.DecodeError{
			Kind:   minefair.TruncatedPayload,
			Index:  record.Index,
			Offset: record.Offset,
			Field:  "payload",
			Err:    io.ErrUnexpectedEOF,
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, "skip cells of record %d", record.Index)
	}
	return record, nil
}

func (s *scan) readField(record *minefair.Record, name string) (float32, error) {
	x, err := minefair.ReadFloat32(s.r)
	if err == io.EOF {
		return 0, io.EOF
	} else if err == io.ErrUnexpectedEOF {
		return 0, s.truncated(record, name, err)
	} else if err != nil {
		return 0, errors.Wrapf(err, "read %s of record %d", name, record.Index)
	}
	s.offset += minefair.CellSize
	return x, nil
}

// truncated turns a short read of a header field into a DecodeError.  Only
// the width may end cleanly; any other field hitting EOF is a truncation.
func (s *scan) truncated(record *minefair.Record, name string, err error) error {
	if _, ok := err.(*minefair.DecodeError); ok {
		return err
	}
	if err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	return &minefair.DecodeError{
		Kind:   minefair.TruncatedRecord,
		Index:  record.Index,
		Offset: record.Offset,
		Field:  name,
		Err:    io.ErrUnexpectedEOF,
	}
}

func (s *scan) Close() error {
	if s.closed {
		return nil
	}
	defer func() {
		s.closed = true
	}()
	var firstErr error
	for _, c := range s.c {
		err := c.Close()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

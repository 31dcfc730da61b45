package executor

import (
	"io"

	"github.com/LyricLy/minefair"
)

// limit sets an upper bound on the number of Records that can be read from
// the input Iterator.
type limit struct {
	iter           minefair.Iterator
	maxRecords     int
	numRecordsRead int
}

var _ minefair.Iterator = (*limit)(nil)

func NewLimit(iter minefair.Iterator, maxRecords int) *limit {
	return &limit{
		iter:       iter,
		maxRecords: maxRecords,
	}
}

func (l *limit) Next() (*minefair.Record, error) {
	if l.numRecordsRead == l.maxRecords {
		return nil, io.EOF
	} else {
		r, err := l.iter.Next()
		if err != nil {
			return nil, err
		}
		l.numRecordsRead++
		return r, nil
	}
}

func (l *limit) Close() error {
	return l.iter.Close()
}

package minefair

import (
	"io"
	"strconv"
)

// Fold reads iter to the end, threading acc through f.  The first error
// other than io.EOF is returned together with the accumulator as it stood
// before the failing record.
func Fold[T any](iter Iterator, acc T, f func(T, *Record) T) (T, error) {
	for {
		record, err := iter.Next()
		if err == io.EOF {
			return acc, nil
		} else if err != nil {
			return acc, err
		}
		acc = f(acc, record)
	}
}

// Observe returns an Iterator that calls observe with every record read from
// iter.  A nil observe returns iter unchanged.
func Observe(iter Iterator, observe Observer) Iterator {
	if observe == nil {
		return iter
	}
	return &observed{
		iter:    iter,
		observe: observe,
	}
}

type observed struct {
	iter    Iterator
	observe Observer
}

func (o *observed) Next() (*Record, error) {
	record, err := o.iter.Next()
	if err != nil {
		return nil, err
	}
	o.observe(record)
	return record, nil
}

func (o *observed) Close() error {
	return o.iter.Close()
}

func ReadAll(iter Iterator) ([]*Record, error) {
	return Fold(iter, []*Record(nil), func(records []*Record, r *Record) []*Record {
		return append(records, r)
	})
}

// FormatFloat prints a float32 with the fewest digits that read back to the
// same value.
func FormatFloat(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

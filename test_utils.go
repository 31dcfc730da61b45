package minefair

import (
	"io"

	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"
)

// CheckIterator should only be used in tests.
func CheckIterator(c *C, iter Iterator, expected []*Record) {
	// Ensure that the Iterator contains exactly the expected Records.
	for _, record := range expected {
		actual, err := iter.Next()
		c.Assert(err, IsNil)
		c.Assert(actual.Equals(record), IsTrue, Commentf("got %+v, want %+v", actual, record))
	}
	_, err := iter.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Next should continue to return io.EOF after
	// reaching the end of the Iterator.
	_, err = iter.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Close should be handled properly.
	err = iter.Close()
	c.Assert(err, IsNil)
	err = iter.Close()
	c.Assert(err, IsNil)
}

// TestRecord builds the Record a scan would produce for the given header.
func TestRecord(index int, offset int64, width, height, density float32) *Record {
	size, _ := PayloadBytes(width, height)
	return &Record{
		Index:       index,
		Offset:      offset,
		Width:       width,
		Height:      height,
		Density:     density,
		PayloadSize: size,
	}
}

package minefair

import (
	. "gopkg.in/check.v1"
)

type InMemoryScanSuite struct{}

var _ = Suite(&InMemoryScanSuite{})

func (s *InMemoryScanSuite) TestInMemoryScan(c *C) {
	records := []*Record{
		TestRecord(0, 0, 2, 3, 1.5),
		TestRecord(1, 36, 0, 4, 0.45),
		TestRecord(2, 48, 1, 1, 0.55),
	}
	CheckIterator(c, NewInMemoryScan(records), records)
}

func (s *InMemoryScanSuite) TestEmpty(c *C) {
	CheckIterator(c, NewInMemoryScan(nil), nil)
}

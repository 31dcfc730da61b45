package executor

import (
	"bytes"
	"io"
	"math"

	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"
	"github.com/dropbox/godropbox/math2/rand2"

	"github.com/LyricLy/minefair"
)

type FrequencySuite struct{}

var _ = Suite(&FrequencySuite{})

// zeroArea builds records with no cells, one per density.
func zeroArea(densities ...float32) []*minefair.Record {
	records := make([]*minefair.Record, len(densities))
	for i, density := range densities {
		records[i] = minefair.TestRecord(
			i, int64(i*minefair.HeaderSize), 0, 0, density)
	}
	return records
}

func (s *FrequencySuite) TestEmpty(c *C) {
	table, err := CountDensities(minefair.NewInMemoryScan(nil), nil)
	c.Assert(err, IsNil)
	c.Assert(table.Len(), Equals, 0)
	c.Assert(table.Total(), Equals, 0)
	c.Assert(table.MostCommon(0), HasLen, 0)
}

func (s *FrequencySuite) TestSingleRecord(c *C) {
	records := []*minefair.Record{minefair.TestRecord(0, 0, 2, 3, 1.5)}
	table, err := CountDensities(minefair.NewInMemoryScan(records), nil)
	c.Assert(err, IsNil)
	c.Assert(table.MostCommon(0), DeepEquals, []Entry{{1.5, 1}})
}

func (s *FrequencySuite) TestRepeatedDensity(c *C) {
	table, err := CountDensities(minefair.NewInMemoryScan(zeroArea(0.45, 0.45)), nil)
	c.Assert(err, IsNil)
	c.Assert(table.MostCommon(0), DeepEquals, []Entry{{0.45, 2}})
	c.Assert(table.Count(0.45), Equals, 2)
	c.Assert(table.Count(0.55), Equals, 0)
}

func (s *FrequencySuite) TestMostCommon(c *C) {
	table, err := CountDensities(
		minefair.NewInMemoryScan(zeroArea(1, 2, 1, 3, 1, 2)), nil)
	c.Assert(err, IsNil)
	c.Assert(table.MostCommon(0), DeepEquals, []Entry{{1, 3}, {2, 2}, {3, 1}})
	c.Assert(table.MostCommon(2), DeepEquals, []Entry{{1, 3}, {2, 2}})
	c.Assert(table.MostCommon(10), HasLen, 3)
	c.Assert(table.Total(), Equals, 6)
}

func (s *FrequencySuite) TestTiesKeepFirstOccurrence(c *C) {
	table, err := CountDensities(
		minefair.NewInMemoryScan(zeroArea(3, 2, 1, 1, 2, 3, 4)), nil)
	c.Assert(err, IsNil)
	c.Assert(
		table.MostCommon(0),
		DeepEquals,
		[]Entry{{3, 2}, {2, 2}, {1, 2}, {4, 1}})
}

func (s *FrequencySuite) TestZeroValue(c *C) {
	var table FrequencyTable
	c.Assert(table.Count(0.5), Equals, 0)
	c.Assert(table.MostCommon(0), HasLen, 0)
	table.Add(0.5)
	table.Add(0.25)
	table.Add(0.5)
	c.Assert(table.Count(0.5), Equals, 2)
	c.Assert(table.Total(), Equals, 3)
	c.Assert(table.MostCommon(0), DeepEquals, []Entry{{0.5, 2}, {0.25, 1}})
}

func (s *FrequencySuite) TestSignedZero(c *C) {
	negZero := float32(math.Copysign(0, -1))
	table, err := CountDensities(
		minefair.NewInMemoryScan(zeroArea(0, negZero)), nil)
	c.Assert(err, IsNil)
	c.Assert(table.Len(), Equals, 1)
	c.Assert(table.Count(0), Equals, 2)
}

func (s *FrequencySuite) TestTotalMatchesRecords(c *C) {
	densities := make([]float32, 1000)
	for i := range densities {
		densities[i] = float32(rand2.Intn(20)) / 20
	}
	table, err := CountDensities(minefair.NewInMemoryScan(zeroArea(densities...)), nil)
	c.Assert(err, IsNil)
	c.Assert(table.Total(), Equals, len(densities))
	sum := 0
	previous := math.MaxInt
	for _, entry := range table.MostCommon(0) {
		c.Assert(entry.Count <= previous, IsTrue)
		previous = entry.Count
		sum += entry.Count
	}
	c.Assert(sum, Equals, len(densities))
}

func (s *FrequencySuite) TestObserver(c *C) {
	records := []*minefair.Record{
		minefair.TestRecord(0, 0, 2, 3, 1.5),
		minefair.TestRecord(1, 36, 1.5, 1.5, 0.5),
	}
	var buf bytes.Buffer
	table, err := CountDensities(
		minefair.NewInMemoryScan(records),
		NewDiagnosticPrinter(&buf))
	c.Assert(err, IsNil)
	c.Assert(table.Total(), Equals, 2)
	c.Assert(buf.String(), Equals, "0 0\n2 3\n1 36\n1.5 1.5\n")
}

type brokenScan struct {
	records []*minefair.Record
}

func (b *brokenScan) Next() (*minefair.Record, error) {
	if len(b.records) == 0 {
		return nil, &minefair.DecodeError{Kind: minefair.TruncatedRecord}
	}
	r := b.records[0]
	b.records = b.records[1:]
	return r, nil
}

func (b *brokenScan) Close() error {
	return nil
}

func (s *FrequencySuite) TestErrorDiscardsTable(c *C) {
	table, err := CountDensities(&brokenScan{records: zeroArea(1, 2)}, nil)
	c.Assert(minefair.IsDecodeError(err, minefair.TruncatedRecord), IsTrue)
	c.Assert(table, IsNil)
}

func (s *FrequencySuite) TestObserverWriteErrors(c *C) {
	// A broken diagnostics stream does not stop the count.
	table, err := CountDensities(
		minefair.NewInMemoryScan(zeroArea(1, 1, 2)),
		NewDiagnosticPrinter(failingWriter{}))
	c.Assert(err, IsNil)
	c.Assert(table.MostCommon(0), DeepEquals, []Entry{{1, 2}, {2, 1}})
}

func (s *FrequencySuite) TestReport(c *C) {
	var buf bytes.Buffer
	err := WriteReport(&buf, []Entry{{1, 3}, {2, 2}, {0.45, 1}})
	c.Assert(err, IsNil)
	c.Assert(buf.String(), Equals, "[(1, 3), (2, 2), (0.45, 1)]\n")

	buf.Reset()
	err = WriteReport(&buf, nil)
	c.Assert(err, IsNil)
	c.Assert(buf.String(), Equals, "[]\n")

	err = WriteReport(failingWriter{}, nil)
	c.Assert(err, Equals, io.ErrShortWrite)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}

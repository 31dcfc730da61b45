package minefair

import (
	"io"
)

type inMemoryScan struct {
	records []*Record
}

var _ Iterator = (*inMemoryScan)(nil)

func NewInMemoryScan(records []*Record) *inMemoryScan {
	return &inMemoryScan{
		records: records,
	}
}

func (m *inMemoryScan) Next() (*Record, error) {
	if len(m.records) == 0 {
		return nil, io.EOF
	}
	r := m.records[0]
	m.records = m.records[1:]
	return r, nil
}

func (m *inMemoryScan) Close() error {
	m.records = nil
	return nil
}

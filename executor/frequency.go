package executor

import (
	"github.com/LyricLy/minefair"
)

// Entry is one row of a FrequencyTable.
type Entry struct {
	Density float32
	Count   int
}

// FrequencyTable counts how many records carry each density.  Densities are
// keyed by minefair.DensityKey, and remember the order in which they were
// first seen.  The zero value is an empty table.
type FrequencyTable struct {
	positions map[uint32]int
	// In order of first occurrence.
	entries []Entry
	total   int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		positions: make(map[uint32]int),
	}
}

func (f *FrequencyTable) Add(density float32) {
	if f.positions == nil {
		f.positions = make(map[uint32]int)
	}
	key := minefair.DensityKey(density)
	i, ok := f.positions[key]
	if !ok {
		i = len(f.entries)
		f.positions[key] = i
		f.entries = append(f.entries, Entry{Density: density})
	}
	f.entries[i].Count++
	f.total++
}

func (f *FrequencyTable) Count(density float32) int {
	i, ok := f.positions[minefair.DensityKey(density)]
	if !ok {
		return 0
	}
	return f.entries[i].Count
}

// Len returns the number of distinct densities.
func (f *FrequencyTable) Len() int {
	return len(f.entries)
}

// Total returns the number of densities added, which is the sum of all
// counts.
func (f *FrequencyTable) Total() int {
	return f.total
}

// MostCommon returns the n most frequent densities, most frequent first;
// densities with equal counts keep the order in which they were first seen.
// If n <= 0 every density is returned.
func (f *FrequencyTable) MostCommon(n int) []Entry {
	entries := make([]Entry, len(f.entries))
	copy(entries, f.entries)
	sortByCount(entries)
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// CountDensities folds iter into a FrequencyTable, calling observe (if not
// nil) with each record before it is counted.  iter is not closed.
func CountDensities(
	iter minefair.Iterator,
	observe minefair.Observer,
) (*FrequencyTable, error) {
	table, err := minefair.Fold(
		minefair.Observe(iter, observe),
		NewFrequencyTable(),
		func(f *FrequencyTable, r *minefair.Record) *FrequencyTable {
			f.Add(r.Density)
			return f
		})
	if err != nil {
		return nil, err
	}
	return table, nil
}

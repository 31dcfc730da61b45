package executor

import (
	"sort"
)

type byCount []Entry

var _ sort.Interface = byCount(nil)

func (b byCount) Len() int {
	return len(b)
}

func (b byCount) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

func (b byCount) Less(i, j int) bool {
	return b[i].Count > b[j].Count
}

// sortByCount orders entries by descending count.  The sort is stable, so
// entries passed in order of first occurrence break ties that way.
func sortByCount(entries []Entry) {
	sort.Stable(byCount(entries))
}

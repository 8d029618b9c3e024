package usage

import "github.com/rivo/uniseg"

// GraphemeCount returns the number of grapheme clusters in s, counting no further than limit.
func GraphemeCount(s string, limit int) int {
	n := 0
	state := -1
	for s != "" && n < limit {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n++
	}
	return n
}

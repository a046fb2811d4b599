package ordering

import (
	"sort"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// Less is the total-order comparator shared by all three partitions:
// primary key order number ascending, secondary key byte-wise filename
// comparison. Within the unordered partition every entry carries the
// NoOrder sentinel, so the comparison degenerates to name order.
func Less(a, b scriptsort.FileEntry) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	return a.Name < b.Name
}

// Sort orders each partition in place. Names are expected to be unique
// within a directory, so the name tiebreak makes keys unique and no
// additional stability guarantee is needed.
func Sort(parts *scriptsort.Partitions) {
	sortEntries(parts.Low)
	sortEntries(parts.Unordered)
	sortEntries(parts.High)
}

func sortEntries(entries []scriptsort.FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}

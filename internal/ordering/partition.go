package ordering

import (
	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// Partition classifies entries into the three partitions against the given
// cutoff. Each entry's Order field is populated from its name.
//
// Every entry lands in exactly one partition; the partitions are disjoint
// and their union is the input set. Partitions grow without bound.
//
// The cutoff must already be validated; Partition does not reject bad
// cutoffs.
func Partition(entries []scriptsort.FileEntry, cutoff int) scriptsort.Partitions {
	var parts scriptsort.Partitions

	for _, entry := range entries {
		entry.Order = ExtractOrderNumber(entry.Name)

		switch {
		case entry.Order >= 0 && entry.Order < cutoff:
			parts.Low = append(parts.Low, entry)
		case entry.Order >= cutoff:
			parts.High = append(parts.High, entry)
		default:
			parts.Unordered = append(parts.Unordered, entry)
		}
	}

	return parts
}

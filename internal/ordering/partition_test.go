package ordering

import (
	"testing"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

func entries(names ...string) []scriptsort.FileEntry {
	out := make([]scriptsort.FileEntry, 0, len(names))
	for _, n := range names {
		out = append(out, scriptsort.FileEntry{Name: n, Order: scriptsort.NoOrder, NameBytes: len(n)})
	}
	return out
}

func names(es []scriptsort.FileEntry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name)
	}
	return out
}

func TestPartition_DefaultCutoff(t *testing.T) {
	in := entries("ordered.01.first", "fn.a", "fn.b", "ordered.52.last")

	parts := Partition(in, scriptsort.DefaultCutoff)

	if len(parts.Low) != 1 || parts.Low[0].Name != "ordered.01.first" {
		t.Errorf("Low = %v, want [ordered.01.first]", names(parts.Low))
	}
	if len(parts.Unordered) != 2 {
		t.Errorf("Unordered = %v, want [fn.a fn.b]", names(parts.Unordered))
	}
	if len(parts.High) != 1 || parts.High[0].Name != "ordered.52.last" {
		t.Errorf("High = %v, want [ordered.52.last]", names(parts.High))
	}
}

func TestPartition_CustomCutoff(t *testing.T) {
	in := entries("ordered.05.x", "ordered.15.y")

	parts := Partition(in, 10)

	if len(parts.Low) != 1 || parts.Low[0].Name != "ordered.05.x" {
		t.Errorf("Low = %v, want [ordered.05.x]", names(parts.Low))
	}
	if len(parts.High) != 1 || parts.High[0].Name != "ordered.15.y" {
		t.Errorf("High = %v, want [ordered.15.y]", names(parts.High))
	}
	if len(parts.Unordered) != 0 {
		t.Errorf("Unordered = %v, want empty", names(parts.Unordered))
	}
}

// An entry is in low iff 0 <= n < cutoff, high iff n >= cutoff, never both;
// the union of the partitions is the input set.
func TestPartition_DisjointAndComplete(t *testing.T) {
	in := entries(
		"ordered.0.a", "ordered.9.b", "ordered.10.c", "ordered.49.d",
		"ordered.50.e", "ordered.99.f", "plain", "ordered.nodigits",
	)

	for _, cutoff := range []int{1, 10, 50, 100} {
		parts := Partition(in, cutoff)

		if parts.Total() != len(in) {
			t.Fatalf("cutoff %d: Total() = %d, want %d", cutoff, parts.Total(), len(in))
		}

		for _, e := range parts.Low {
			if !e.HasOrder() || e.Order >= cutoff {
				t.Errorf("cutoff %d: %q (order %d) misplaced in Low", cutoff, e.Name, e.Order)
			}
		}
		for _, e := range parts.High {
			if !e.HasOrder() || e.Order < cutoff {
				t.Errorf("cutoff %d: %q (order %d) misplaced in High", cutoff, e.Name, e.Order)
			}
		}
		for _, e := range parts.Unordered {
			if e.HasOrder() {
				t.Errorf("cutoff %d: %q (order %d) misplaced in Unordered", cutoff, e.Name, e.Order)
			}
		}
	}
}

// Classification of names without the ordered prefix is cutoff-independent.
func TestPartition_UnorderedRegardlessOfCutoff(t *testing.T) {
	in := entries("fn.a", "setup.sh", "ordered.", "ordered.x.y")

	for _, cutoff := range []int{1, 50, 1000} {
		parts := Partition(in, cutoff)
		if len(parts.Unordered) != len(in) {
			t.Errorf("cutoff %d: Unordered = %v, want all %d entries", cutoff, names(parts.Unordered), len(in))
		}
	}
}

package ordering

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

func TestExtractOrderNumber(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     int
	}{
		{"no prefix", "fn.a", scriptsort.NoOrder},
		{"prefix mid-name", "my.ordered.01", scriptsort.NoOrder},
		{"plain ordered file", "ordered.01.first", 1},
		{"leading zeros", "ordered.07.setup", 7},
		{"zero", "ordered.0", 0},
		{"high number", "ordered.52.last", 52},
		{"multi digit", "ordered.100.late", 100},
		{"digits then suffix", "ordered.15abc", 15},
		{"prefix without digits", "ordered.setup", scriptsort.NoOrder},
		{"prefix alone", "ordered.", scriptsort.NoOrder},
		{"minus is not a digit", "ordered.-5.x", scriptsort.NoOrder},
		{"prefix case sensitive", "Ordered.01.first", scriptsort.NoOrder},
		{"overflow", "ordered." + strings.Repeat("9", 30), scriptsort.NoOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractOrderNumber(tt.filename); got != tt.want {
				t.Errorf("ExtractOrderNumber(%q) = %d, want %d", tt.filename, got, tt.want)
			}
		})
	}
}

// The extracted number must equal the integer value of the digit run for
// any digits, not just the hand-picked cases above.
func TestExtractOrderNumber_MatchesStrconv(t *testing.T) {
	for n := 0; n <= 1000; n += 7 {
		filename := "ordered." + strconv.Itoa(n) + ".script"
		if got := ExtractOrderNumber(filename); got != n {
			t.Fatalf("ExtractOrderNumber(%q) = %d, want %d", filename, got, n)
		}
	}
}

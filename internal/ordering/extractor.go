package ordering

import (
	"math"
	"strings"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// ExtractOrderNumber parses the order number from a filename.
//
// Returns the number for names of the form "ordered.<digits><rest>", and
// scriptsort.NoOrder otherwise. Parsing is longest-prefix: it consumes
// digits until the first non-digit character. A "-" is not a digit, so a
// valid order number is never negative; the only paths to NoOrder are a
// missing prefix, no digits after the prefix, or integer overflow.
func ExtractOrderNumber(filename string) int {
	rest, ok := strings.CutPrefix(filename, scriptsort.OrderedPrefix)
	if !ok {
		return scriptsort.NoOrder
	}

	num := 0
	digits := 0
	for _, c := range []byte(rest) {
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if num > (math.MaxInt-d)/10 {
			return scriptsort.NoOrder
		}
		num = num*10 + d
		digits++
	}

	if digits == 0 {
		return scriptsort.NoOrder
	}
	return num
}

package gainfolio

import (
	"fmt"
	"math"
)

// Percent is a percentage value (e.g. 5.0 for 5%). The NaN value marks an
// undefined percentage, such as a gain ratio over a zero cost basis.
type Percent float64

// PercentUndefined is the sentinel for percentages that have no defined
// value. Use IsDefined rather than comparing against it.
var PercentUndefined = Percent(math.NaN())

// IsDefined reports whether the percentage holds an actual value.
func (p Percent) IsDefined() bool { return !math.IsNaN(float64(p)) }

// Equal compares two percentages with a fixed precision. Two undefined
// percentages are equal.
func (p Percent) Equal(q Percent) bool {
	if !p.IsDefined() || !q.IsDefined() {
		return !p.IsDefined() && !q.IsDefined()
	}
	const precision = 0.0001
	diff := float64(p - q)
	return math.Abs(diff) < precision
}

func (p Percent) String() string {
	if !p.IsDefined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats with an explicit sign; zero renders as "-".
func (p Percent) SignedString() string {
	if !p.IsDefined() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

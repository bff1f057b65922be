package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// generateCode builds a resource code from a fixed prefix, the two-digit
// year and month, and a zero-padded random numeric suffix, e.g. T25081234
// or POS2508042. Uniqueness is checked by the caller; a collision is
// surfaced as a generation failure, not retried.
func generateCode(prefix string, now time.Time, digits int) string {
	suffix := rand.Intn(int(math.Pow10(digits)))
	return fmt.Sprintf("%s%s%0*d", prefix, now.Format("0601"), digits, suffix)
}

package services

import (
	"strconv"
	"strings"
)

// Operation-order keys sort in three bands: integers ascending, then any
// other text by its string form, then the "final step" sentinel.
const (
	rankNumeric = iota
	rankText
	rankFinal
)

// IsFinalStep reports whether a raw order key is the "final step" sentinel.
// Matching ignores case, whitespace and hyphens, so "Final Step",
// "finalstep" and "FINAL-STEP" all qualify.
func IsFinalStep(raw string) bool {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimSpace(s)
	return s == "finalstep"
}

func orderRank(raw string) (rank int, num int, text string) {
	if IsFinalStep(raw) {
		return rankFinal, 0, ""
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return rankNumeric, n, ""
	}
	return rankText, 0, raw
}

// CompareOrderKeys orders two raw operation-order keys. It returns a
// negative, zero or positive value as a sorts before, equal to or after b.
// Ties must be broken by input position via a stable sort at the call site.
func CompareOrderKeys(a, b string) int {
	ra, na, ta := orderRank(a)
	rb, nb, tb := orderRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankNumeric:
		return na - nb
	case rankText:
		return strings.Compare(ta, tb)
	default:
		return 0
	}
}

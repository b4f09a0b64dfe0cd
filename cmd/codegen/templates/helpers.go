package templates

import (
	"strconv"
	"strings"
)

var ordinals = []string{
	"one", "two", "three", "four",
	"five", "six", "seven", "eight",
}

func ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return strconv.Itoa(n)
}

// typeParams renders "T0, T1, ..." for a constructor of the given arity.
func typeParams(count int) string {
	return prefixedStrings("T", count)
}

// sourceList renders "s0, s1, ..." for a constructor of the given arity.
func sourceList(count int) string {
	return prefixedStrings("s", count)
}

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

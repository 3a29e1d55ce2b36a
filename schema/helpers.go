package schema

import (
	"sort"
	"strings"
	"unicode"
)

// NaturalLess compares two identifiers with numeric awareness, so that
// "Hive 2" sorts before "Hive 10". Comparison is case-insensitive; digit
// runs are compared by numeric value, everything else rune by rune.
func NaturalLess(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			// Compare the full digit runs numerically.
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}

// SortNatural sorts identifiers in place using NaturalLess.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

// FormatColonies joins colony names for compact display, truncating long
// selections with a count suffix.
func FormatColonies(names []string) string {
	const maxShown = 3
	if len(names) <= maxShown {
		return strings.Join(names, ", ")
	}
	shown := strings.Join(names[:maxShown], ", ")
	return shown + ", …"
}

// Package suggest finds the closest known name for a misspelled one.
package suggest

import (
	"fmt"
	"slices"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Closest returns the candidate with the smallest edit distance from name.
// Candidates which would need a complete rewrite are never suggested. Ties
// are broken by the longer common prefix, then by lexicographic order.
func Closest(name string, candidates []string) (string, bool) {
	nameRunes := []rune(name)

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	closest := ""
	closestDistance := len(nameRunes) + 1
	closestPrefix := 0

	for _, candidate := range sorted {
		if candidate == name {
			continue
		}

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)
		if distance >= len([]rune(candidate)) || distance > len(nameRunes) {
			continue
		}

		prefix := len([]rune(CommonPrefix([]string{name, candidate})))
		if distance < closestDistance || distance == closestDistance && prefix > closestPrefix {
			closest = candidate
			closestDistance = distance
			closestPrefix = prefix
		}
	}

	return closest, closest != ""
}

// DidYouMean formats a hint for the closest candidate. The result is empty if
// there is no candidate close enough.
//
//	DidYouMean("sbu", []string{"sub", "repr"}) => `, did you mean "sub"?`
func DidYouMean(name string, candidates []string) string {
	closest, ok := Closest(name, candidates)
	if !ok {
		return ""
	}
	return fmt.Sprintf(", did you mean %q?", closest)
}

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	// This implementation is based on os.path.commonprefix in Python.
	// https://github.com/python/cpython/blob/ed24702bd0f9925908ce48584c31dfad732208b2/Lib/genericpath.py#L105
	if len(ss) == 0 {
		return ""
	}

	// The longest common prefix of the lexicographically smallest and largest
	// strings is the longest common prefix of all.
	lo := []rune(slices.Min(ss))
	hi := []rune(slices.Max(ss))

	for i := range lo {
		if lo[i] != hi[i] {
			return string(lo[:i])
		}
	}
	return string(lo)
}

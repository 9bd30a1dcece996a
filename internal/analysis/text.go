package analysis

import "strings"

// countOccurrences suma las apariciones (sin solaparse) de cada palabra en s.
// s debe venir en minusculas.
func countOccurrences(s string, words []string) int {
	total := 0
	for _, w := range words {
		total += strings.Count(s, w)
	}
	return total
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

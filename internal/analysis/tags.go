package analysis

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTags = 5
	minTags = 3
)

var stopWordSet = toSet(StopWords)

type tagCandidate struct {
	phrase string
	weight int
}

// ExtractTags busca palabras y frases frecuentes que van mas alla del nicho declarado.
// Devuelve entre 3 y 5 tags en Title Case.
func ExtractTags(transcript, niche string) []string {
	words := strings.Fields(strings.ToLower(transcript))
	nicheWords := toSet(strings.Fields(strings.ToLower(niche)))

	// Orden de insercion para que los empates respeten la primera aparicion.
	index := make(map[string]int)
	var candidates []tagCandidate
	add := func(phrase string, weight int) {
		if i, ok := index[phrase]; ok {
			candidates[i].weight += weight
			return
		}
		index[phrase] = len(candidates)
		candidates = append(candidates, tagCandidate{phrase: phrase, weight: weight})
	}

	// La ventana arranca en cada palabra que tiene al menos una siguiente.
	for i := 0; i+1 < len(words); i++ {
		w := words[i]
		next := words[i+1]

		if !nicheWords[w] && !stopWordSet[w] && len(w) > 3 {
			add(w, 1)
		}
		if !stopWordSet[w] && !stopWordSet[next] {
			add(w+" "+next, 2)
		}
		if i+2 < len(words) && !stopWordSet[w] && !stopWordSet[words[i+2]] {
			add(w+" "+next+" "+words[i+2], 3)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})
	if len(candidates) > maxTags {
		candidates = candidates[:maxTags]
	}

	tags := make([]string, 0, maxTags)
	for _, c := range candidates {
		tags = append(tags, titleCase(c.phrase))
	}

	for _, filler := range []string{niche, FallbackTagEnthusiast, FallbackTagDeepDiver} {
		if len(tags) >= minTags {
			break
		}
		tags = append(tags, filler)
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// titleCase pone en mayuscula la primera letra de cada palabra y deja el resto igual.
func titleCase(phrase string) string {
	parts := strings.Split(phrase, " ")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

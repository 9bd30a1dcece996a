package analysis

import (
	"strings"

	"passion-match/internal/domain"
)

const (
	traitBaseline       = 50
	traitWeight         = 5
	neuroticismBaseline = 30
	neuroticismWeight   = 8
)

// EstimateBig5 estima los rasgos Big Five contando palabras clave por rasgo.
// Neuroticismo acumula lenguaje de ansiedad de forma directa: mas preocupacion, valor mas alto.
func EstimateBig5(transcript string) domain.Big5Profile {
	lower := strings.ToLower(transcript)

	return domain.Big5Profile{
		Openness:          traitScore(lower, OpennessWords, traitBaseline, traitWeight),
		Conscientiousness: traitScore(lower, ConscientiousnessWords, traitBaseline, traitWeight),
		Extraversion:      traitScore(lower, ExtraversionWords, traitBaseline, traitWeight),
		Agreeableness:     traitScore(lower, AgreeablenessWords, traitBaseline, traitWeight),
		Neuroticism:       traitScore(lower, NeuroticismWords, neuroticismBaseline, neuroticismWeight),
	}
}

func traitScore(lower string, words []string, baseline, weight int) int {
	return clamp(baseline+countOccurrences(lower, words)*weight, 0, 100)
}

package analysis

import (
	"math"
	"strings"
)

const (
	passionBaseline     = 50.0
	enthusiasmWeight    = 3
	exclamationWeight   = 2
	exclamationCap      = 15
	detailWeight        = 2
	storyWeight         = 4
	wordsPerLengthPoint = 20.0
	lengthBonusCap      = 15.0
)

// CalculatePassionScore estima el nivel de pasion (0-100) a partir de marcadores linguisticos.
func CalculatePassionScore(transcript string) int {
	lower := strings.ToLower(transcript)
	score := passionBaseline

	score += float64(countOccurrences(lower, EnthusiasmMarkers) * enthusiasmWeight)
	score += float64(min(strings.Count(transcript, "!")*exclamationWeight, exclamationCap))
	score += float64(countOccurrences(lower, DetailMarkers) * detailWeight)
	score += float64(countOccurrences(lower, StoryMarkers) * storyWeight)

	// Respuestas largas como proxy de engagement.
	wordCount := len(strings.Fields(transcript))
	score += math.Min(float64(wordCount)/wordsPerLengthPoint, lengthBonusCap)

	return clamp(int(math.Round(score)), 0, 100)
}

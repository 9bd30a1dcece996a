package analysis

import (
	"sort"
	"strings"

	"passion-match/internal/domain"
)

type archetypeScore struct {
	archetype domain.Archetype
	score     int
}

// ClassifyArchetype combina la frecuencia de palabras por categoria con bonos del Big Five.
// Empates: gana el primero en domain.Archetypes (orden estable).
func ClassifyArchetype(transcript string, big5 domain.Big5Profile) domain.Archetype {
	lower := strings.ToLower(transcript)

	storytelling := countOccurrences(lower, StorytellingWords)
	building := countOccurrences(lower, BuildingWords)
	exploring := countOccurrences(lower, ExploringWords)
	connecting := countOccurrences(lower, ConnectingWords)
	analyzing := countOccurrences(lower, AnalyzingWords)

	scores := []archetypeScore{
		{domain.ArchetypeStoryteller, storytelling*2 + bonus(big5.Extraversion > 60, 5)},
		{domain.ArchetypeQuietBuilder, building*2 + bonus(big5.Conscientiousness > 60, 5) + bonus(big5.Extraversion < 50, 3)},
		{domain.ArchetypeCuriousExplorer, exploring*2 + bonus(big5.Openness > 60, 5)},
		{domain.ArchetypeWarmConnector, connecting*2 + bonus(big5.Agreeableness > 60, 5) + bonus(big5.Extraversion > 50, 3)},
		{domain.ArchetypeCalmAnalyst, analyzing*2 + bonus(big5.Conscientiousness > 50, 3) + bonus(big5.Neuroticism < 40, 3)},
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	return scores[0].archetype
}

func bonus(cond bool, points int) int {
	if cond {
		return points
	}
	return 0
}

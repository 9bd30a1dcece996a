package main

import (
	"fmt"
	"os"

	"passion-match/internal/analysis"
	"passion-match/internal/domain"
)

// Scenario es una entrevista de referencia con el arquetipo que deberia producir.
type Scenario struct {
	Name              string
	Transcript        string
	Niche             string
	ExpectedArchetype domain.Archetype
}

var scenarios = []Scenario{
	{
		Name:              "Constructor",
		Transcript:        "I build things. I craft and build and craft every weekend, I build my own tools.",
		Niche:             "woodworking",
		ExpectedArchetype: domain.ArchetypeQuietBuilder,
	},
	{
		Name:              "Explorador",
		Transcript:        "I wonder and explore, always curious",
		Niche:             "astronomy",
		ExpectedArchetype: domain.ArchetypeCuriousExplorer,
	},
	{
		Name:              "Conector",
		Transcript:        "My friends and community share everything together",
		Niche:             "board games",
		ExpectedArchetype: domain.ArchetypeWarmConnector,
	},
	{
		Name:              "Entrevista vacia",
		Transcript:        "",
		Niche:             "knitting",
		ExpectedArchetype: domain.ArchetypeCalmAnalyst,
	},
}

func main() {
	passed := 0
	total := len(scenarios)

	for _, sc := range scenarios {
		fmt.Printf("=== Ejecutando: %s ===\n", sc.Name)
		result := analysis.AnalyzeTranscript(sc.Transcript, sc.Niche)

		if problems := checkInvariants(result); len(problems) > 0 {
			fmt.Printf("❌ FAIL [%s] invariants: %v\n\n", sc.Name, problems)
			continue
		}

		fmt.Printf("score=%d archetype=%s tags=%q\n", result.PassionScore, result.Archetype, result.Tags)
		if result.Archetype == sc.ExpectedArchetype {
			fmt.Printf("✅ PASS [%s] esperado=%s\n\n", sc.Name, sc.ExpectedArchetype)
			passed++
		} else {
			fmt.Printf("❌ FAIL [%s] esperado=%s obtenido=%s\n\n", sc.Name, sc.ExpectedArchetype, result.Archetype)
		}
	}

	fmt.Printf("Tests: %d/%d pasaron\n", passed, total)
	if passed != total {
		os.Exit(1)
	}
}

// checkInvariants revisa los limites que todo analisis debe respetar.
func checkInvariants(result domain.TraitAnalysis) []string {
	var problems []string
	inRange := func(name string, v int) {
		if v < 0 || v > 100 {
			problems = append(problems, fmt.Sprintf("%s=%d out of [0,100]", name, v))
		}
	}
	inRange("passion_score", result.PassionScore)
	inRange("openness", result.Big5.Openness)
	inRange("conscientiousness", result.Big5.Conscientiousness)
	inRange("extraversion", result.Big5.Extraversion)
	inRange("agreeableness", result.Big5.Agreeableness)
	inRange("neuroticism", result.Big5.Neuroticism)

	if n := len(result.Tags); n < 3 || n > 5 {
		problems = append(problems, fmt.Sprintf("tags=%d out of [3,5]", n))
	}
	if n := len(result.DeepHooks); n < 1 || n > 3 {
		problems = append(problems, fmt.Sprintf("deep_hooks=%d out of [1,3]", n))
	}
	if !result.Archetype.Valid() {
		problems = append(problems, fmt.Sprintf("unknown archetype %q", result.Archetype))
	}
	return problems
}

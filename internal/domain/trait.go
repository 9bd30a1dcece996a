package domain

import "time"

// Big5Profile guarda los cinco rasgos del modelo Big Five, cada uno en [0, 100].
// Los valores se calculan de forma independiente; no hay relacion entre ellos.
type Big5Profile struct {
	Openness          int `json:"openness"`          // Curiosidad, apertura a lo nuevo
	Conscientiousness int `json:"conscientiousness"` // Orden, metodo, estudio
	Extraversion      int `json:"extraversion"`      // Energia social
	Agreeableness     int `json:"agreeableness"`     // Amabilidad
	Neuroticism       int `json:"neuroticism"`       // Lenguaje de ansiedad/preocupacion (acumulacion directa)
}

// Archetype es una de las cinco etiquetas de personalidad posibles.
type Archetype string

const (
	ArchetypeStoryteller     Archetype = "Storyteller"
	ArchetypeQuietBuilder    Archetype = "Quiet Builder"
	ArchetypeCuriousExplorer Archetype = "Curious Explorer"
	ArchetypeWarmConnector   Archetype = "Warm Connector"
	ArchetypeCalmAnalyst     Archetype = "Calm Analyst"
)

// Archetypes lista los arquetipos en el orden fijo usado para desempatar.
var Archetypes = []Archetype{
	ArchetypeStoryteller,
	ArchetypeQuietBuilder,
	ArchetypeCuriousExplorer,
	ArchetypeWarmConnector,
	ArchetypeCalmAnalyst,
}

// Valid indica si el arquetipo pertenece al conjunto cerrado.
func (a Archetype) Valid() bool {
	for _, known := range Archetypes {
		if a == known {
			return true
		}
	}
	return false
}

// TraitAnalysis es el resultado del analisis de una entrevista.
type TraitAnalysis struct {
	Big5         Big5Profile `json:"big5"`
	PassionScore int         `json:"passion_score"`
	Archetype    Archetype   `json:"archetype"`
	Tags         []string    `json:"tags"`
	DeepHooks    []string    `json:"deep_hooks"`
}

// Traits es el TraitAnalysis persistido para un usuario (una fila por usuario).
type Traits struct {
	UserID       string      `json:"user_id"`
	Big5         Big5Profile `json:"big5"`
	PassionScore int         `json:"passion_score"`
	Archetype    Archetype   `json:"archetype"`
	Tags         []string    `json:"tags"`
	DeepHooks    []string    `json:"deep_hooks"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewTraits asocia un analisis a un usuario.
func NewTraits(userID string, analysis TraitAnalysis, now time.Time) Traits {
	return Traits{
		UserID:       userID,
		Big5:         analysis.Big5,
		PassionScore: analysis.PassionScore,
		Archetype:    analysis.Archetype,
		Tags:         analysis.Tags,
		DeepHooks:    analysis.DeepHooks,
		UpdatedAt:    now,
	}
}

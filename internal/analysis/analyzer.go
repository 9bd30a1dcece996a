// Package analysis puntua el transcript de una entrevista: pasion, Big Five,
// arquetipo, tags y preguntas de seguimiento.
//
// Todas las funciones son puras y totales sobre cualquier string (incluido "")
// y se pueden llamar en paralelo sin coordinacion.
package analysis

import "passion-match/internal/domain"

// AnalyzeTranscript corre todas las pasadas y arma el resultado.
func AnalyzeTranscript(transcript, niche string) domain.TraitAnalysis {
	big5 := EstimateBig5(transcript)
	tags := ExtractTags(transcript, niche)

	return domain.TraitAnalysis{
		Big5:         big5,
		PassionScore: CalculatePassionScore(transcript),
		Archetype:    ClassifyArchetype(transcript, big5),
		Tags:         tags,
		DeepHooks:    GenerateDeepHooks(transcript, tags, niche),
	}
}

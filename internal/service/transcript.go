package service

import (
	"fmt"
	"strings"

	"passion-match/internal/domain"
)

// FlattenTranscript convierte los turnos del proveedor de entrevistas en texto plano,
// una linea "rol: contenido" por turno. Los turnos sin rol o sin contenido se descartan.
func FlattenTranscript(turns []domain.TranscriptTurn) string {
	if len(turns) == 0 {
		return ""
	}

	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		if t.Role == "" || t.Content == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}

	return strings.Join(lines, "\n")
}

package domain

// TranscriptTurn es un turno de la entrevista de voz tal como lo entrega el proveedor.
type TranscriptTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

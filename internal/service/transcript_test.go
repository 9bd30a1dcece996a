package service

import (
	"testing"

	"passion-match/internal/domain"
)

func TestFlattenTranscript(t *testing.T) {
	tests := []struct {
		name  string
		turns []domain.TranscriptTurn
		want  string
	}{
		{name: "empty", turns: nil, want: ""},
		{
			name: "joins turns",
			turns: []domain.TranscriptTurn{
				{Role: "assistant", Content: "What do you love?"},
				{Role: "user", Content: "Bonsai trees!"},
			},
			want: "assistant: What do you love?\nuser: Bonsai trees!",
		},
		{
			name: "skips incomplete turns",
			turns: []domain.TranscriptTurn{
				{Role: "", Content: "orphan"},
				{Role: "user", Content: ""},
				{Role: "user", Content: "kept"},
			},
			want: "user: kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenTranscript(tt.turns); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

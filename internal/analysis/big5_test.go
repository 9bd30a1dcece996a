package analysis

import (
	"strings"
	"testing"

	"passion-match/internal/domain"
)

func TestEstimateBig5(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       domain.Big5Profile
	}{
		{
			name:       "empty transcript returns baselines",
			transcript: "",
			want:       domain.Big5Profile{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 30},
		},
		{
			name:       "neuroticism accumulates directly",
			transcript: "I worry and stress, I am anxious",
			want:       domain.Big5Profile{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 54},
		},
		{
			name:       "traits move independently",
			transcript: "I love to help people",
			want:       domain.Big5Profile{Openness: 50, Conscientiousness: 50, Extraversion: 55, Agreeableness: 60, Neuroticism: 30},
		},
		{
			name:       "substring match counts",
			transcript: "news",
			want:       domain.Big5Profile{Openness: 55, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 30},
		},
		{
			name:       "clamped to 100",
			transcript: strings.Repeat("curious ", 20),
			want:       domain.Big5Profile{Openness: 100, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBig5(tt.transcript)
			if got != tt.want {
				t.Fatalf("EstimateBig5(%q) = %+v; want %+v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestEstimateBig5StaysInRange(t *testing.T) {
	inputs := []string{
		"",
		strings.Repeat("scared afraid nervous ", 50),
		strings.Repeat("people friends community share together social group meet ", 10),
		"\n\t  ",
	}
	for _, in := range inputs {
		p := EstimateBig5(in)
		for name, v := range map[string]int{
			"openness":          p.Openness,
			"conscientiousness": p.Conscientiousness,
			"extraversion":      p.Extraversion,
			"agreeableness":     p.Agreeableness,
			"neuroticism":       p.Neuroticism,
		} {
			if v < 0 || v > 100 {
				t.Fatalf("%s out of range for %q: %d", name, in, v)
			}
		}
	}
}

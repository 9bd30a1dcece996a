package analysis

import (
	"reflect"
	"testing"
)

func TestGenerateDeepHooks(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		tags       []string
		niche      string
		want       []string
	}{
		{
			name:  "no tags only niche question",
			niche: "knitting",
			want:  []string{"If you could spend an entire day pursuing knitting, what would you do?"},
		},
		{
			name:  "fallback tags still feed the tag hooks",
			tags:  []string{"knitting", "Enthusiast", "Deep Diver"},
			niche: "knitting",
			want: []string{
				"What's the story behind your interest in knitting?",
				"How did you first discover enthusiast?",
				"If you could spend an entire day pursuing knitting, what would you do?",
			},
		},
		{
			name:       "experience hook without tags",
			transcript: "I Remember When it started",
			niche:      "birding",
			want: []string{
				"If you could spend an entire day pursuing birding, what would you do?",
				"Tell me more about your favorite birding experience!",
			},
		},
		{
			name:       "fourth hook dropped",
			transcript: "my best experience",
			tags:       []string{"Film Cameras", "Darkroom"},
			niche:      "photography",
			want: []string{
				"What's the story behind your interest in film cameras?",
				"How did you first discover darkroom?",
				"If you could spend an entire day pursuing photography, what would you do?",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateDeepHooks(tt.transcript, tt.tags, tt.niche)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GenerateDeepHooks() = %q; want %q", got, tt.want)
			}
		})
	}
}

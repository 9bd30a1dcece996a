package analysis

import (
	"fmt"
	"strings"
)

const maxDeepHooks = 3

// GenerateDeepHooks arma preguntas para iniciar conversacion a partir de tags y nicho.
func GenerateDeepHooks(transcript string, tags []string, niche string) []string {
	hooks := make([]string, 0, maxDeepHooks+1)

	if len(tags) > 0 {
		hooks = append(hooks, fmt.Sprintf("What's the story behind your interest in %s?", strings.ToLower(tags[0])))
	}
	if len(tags) > 1 {
		hooks = append(hooks, fmt.Sprintf("How did you first discover %s?", strings.ToLower(tags[1])))
	}

	hooks = append(hooks, fmt.Sprintf("If you could spend an entire day pursuing %s, what would you do?", niche))

	if containsAny(strings.ToLower(transcript), ExperienceTriggers) {
		hooks = append(hooks, fmt.Sprintf("Tell me more about your favorite %s experience!", niche))
	}

	if len(hooks) > maxDeepHooks {
		hooks = hooks[:maxDeepHooks]
	}
	return hooks
}

package bookguide

import (
	"strings"
	"testing"
)

func TestBuildSeedShape(t *testing.T) {
	persona := DefaultPersona()

	seed := persona.BuildSeed(TopicRecommendations)
	if len(seed) != len(persona.Examples)+2 {
		t.Fatalf("expected %d seed exchanges, got %d", len(persona.Examples)+2, len(seed))
	}

	if seed[0].Role != RoleUser {
		t.Fatalf("expected persona prompt to carry user role, got %q", seed[0].Role)
	}
	if !strings.Contains(seed[0].Content, "BookGuide") {
		t.Fatalf("persona prompt missing instructions:\n%s", seed[0].Content)
	}
	if !strings.Contains(seed[0].Content, "Focus on recommendations aspects") {
		t.Fatalf("persona prompt missing topic directive:\n%s", seed[0].Content)
	}

	if seed[1].Role != RoleModel {
		t.Fatalf("expected acknowledgment to carry model role, got %q", seed[1].Role)
	}
	if seed[1].Content != persona.Acknowledgment {
		t.Fatalf("unexpected acknowledgment: %q", seed[1].Content)
	}
}

func TestBuildSeedAppendsExamplesVerbatim(t *testing.T) {
	persona := DefaultPersona()

	seed := persona.BuildSeed(TopicGeneral)
	examples := seed[2:]
	if len(examples) != len(persona.Examples) {
		t.Fatalf("expected %d example exchanges, got %d", len(persona.Examples), len(examples))
	}
	for i, example := range examples {
		if example != persona.Examples[i] {
			t.Fatalf("example %d altered: %+v", i, example)
		}
	}
}

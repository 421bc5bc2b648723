package topic

import "testing"

func TestLookupKnownTopic(t *testing.T) {
	catalog := NewMemoryCatalog(Seed())

	got, ok := catalog.Lookup("siwes")
	if !ok {
		t.Fatal("expected siwes topic to exist")
	}
	if got.Acronym != "SIWES" {
		t.Fatalf("unexpected acronym: %s", got.Acronym)
	}
	if got.SystemPrompt == "" {
		t.Fatal("expected seeded topic to carry a system prompt")
	}
}

func TestLookupUnknownTopic(t *testing.T) {
	catalog := NewMemoryCatalog(Seed())

	if _, ok := catalog.Lookup("nonexistent-topic"); ok {
		t.Fatal("expected lookup miss for unknown topic")
	}
}

func TestSeedTopicsAreComplete(t *testing.T) {
	for _, item := range Seed() {
		if item.ID == "" || item.Name == "" || item.SystemPrompt == "" {
			t.Fatalf("incomplete seed topic: %+v", item)
		}
	}
}

func TestDefaultTopic(t *testing.T) {
	def := Default()
	if def.SystemPrompt != "You are a helpful assistant." {
		t.Fatalf("unexpected default prompt: %q", def.SystemPrompt)
	}
}

package pool

import "testing"

func TestDefault_Distinct(t *testing.T) {
	p := Default()
	if len(p) == 0 {
		t.Fatal("default pool is empty")
	}

	seen := make(map[string]struct{}, len(p))
	for _, c := range p {
		n := Normalize(c)
		if _, ok := seen[n]; ok {
			t.Errorf("duplicate candidate %q", c)
		}
		seen[n] = struct{}{}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0] = "mutated"
	b := Default()
	if b[0] == "mutated" {
		t.Fatal("Default exposes the backing array")
	}
}

func TestUnused_CaseAndWhitespaceInsensitive(t *testing.T) {
	p := []string{"SEO optimization techniques", "Chatbot development"}
	existing := []string{" seo optimization techniques "}

	got := Unused(p, existing)
	if len(got) != 1 || got[0] != "Chatbot development" {
		t.Fatalf("Unused = %v, want [Chatbot development]", got)
	}
}

func TestUnused_NoExisting(t *testing.T) {
	p := Default()
	got := Unused(p, nil)
	if len(got) != len(p) {
		t.Fatalf("Unused with no existing prompts = %d entries, want %d", len(got), len(p))
	}
	for i := range got {
		if got[i] != p[i] {
			t.Fatalf("pool order changed at %d: %q vs %q", i, got[i], p[i])
		}
	}
}

func TestUnused_Exhausted(t *testing.T) {
	p := Default()
	got := Unused(p, p)
	if len(got) != 0 {
		t.Fatalf("Unused with exhausted pool = %v, want empty", got)
	}
}

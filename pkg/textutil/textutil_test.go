package textutil

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("I'll review the PR #12, OK?")
	want := []string{"i'll", "review", "the", "pr", "12", "ok"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Fatalf("token %d: expected %q got %q", i, want[i], tok)
		}
	}
}

func TestJaccardSelfSimilarity(t *testing.T) {
	a := WordSet("deploy the new service to staging")
	if sim := JaccardSimilarity(a, a); sim != 1.0 {
		t.Fatalf("expected self-similarity 1.0, got %f", sim)
	}
}

func TestJaccardSymmetricAndBounded(t *testing.T) {
	a := WordSet("update the release timeline")
	b := WordSet("review the release notes before friday")

	ab := JaccardSimilarity(a, b)
	ba := JaccardSimilarity(b, a)
	if ab != ba {
		t.Fatalf("similarity not symmetric: %f vs %f", ab, ba)
	}
	if ab < 0 || ab > 1 {
		t.Fatalf("similarity out of [0,1]: %f", ab)
	}
}

func TestJaccardDisjoint(t *testing.T) {
	a := WordSet("alpha beta")
	b := WordSet("gamma delta")
	if sim := JaccardSimilarity(a, b); sim != 0 {
		t.Fatalf("expected 0 for disjoint sets, got %f", sim)
	}
}

func TestCountKeywordHits(t *testing.T) {
	tokens := Tokenize("the api calls the database and the api again")
	keywords := KeywordSet([]string{"api", "database"})
	if hits := CountKeywordHits(tokens, keywords); hits != 3 {
		t.Fatalf("expected 3 hits, got %d", hits)
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("We shipped it. Everyone agreed! What next?")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	got := Truncate("a very long piece of context text", 10)
	if len([]rune(got)) != 10 {
		t.Fatalf("expected 10 runes, got %d (%q)", len([]rune(got)), got)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(1.5, 0.1, 1.0); v != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %f", v)
	}
	if v := Clamp(-0.2, 0.1, 1.0); v != 0.1 {
		t.Fatalf("expected clamp to 0.1, got %f", v)
	}
}

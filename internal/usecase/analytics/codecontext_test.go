package analytics

import (
	"testing"
)

func TestCodeContextExtract_References(t *testing.T) {
	e := NewCodeContextExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "The `parseConfig` helper calls validator.Struct() before handler()", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	wantSome := map[string]bool{
		"parseConfig":        false,
		"validator.Struct()": false,
	}
	for _, ref := range result.CodeReferences {
		if _, ok := wantSome[ref]; ok {
			wantSome[ref] = true
		}
	}
	for ref, found := range wantSome {
		if !found {
			t.Fatalf("expected code reference %q in %v", ref, result.CodeReferences)
		}
	}
}

func TestCodeContextExtract_DeduplicatesReferences(t *testing.T) {
	e := NewCodeContextExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "call `deploy` then `deploy` again", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	count := 0
	for _, ref := range result.CodeReferences {
		if ref == "deploy" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected deploy deduplicated to 1, got %d", count)
	}
}

func TestCodeContextExtract_RepositoriesAndTerms(t *testing.T) {
	e := NewCodeContextExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "the code lives in github.com/acme/billing", 0, 5),
		seg("s2", "redis redis redis backs the api cache", 5, 10),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(result.RepositoriesMentioned) == 0 || result.RepositoriesMentioned[0] != "github.com/acme/billing" {
		t.Fatalf("expected repository mention, got %v", result.RepositoriesMentioned)
	}

	// redis appears three times, so it must rank first
	if len(result.TechnicalTerms) == 0 || result.TechnicalTerms[0] != "redis" {
		t.Fatalf("expected redis ranked first, got %v", result.TechnicalTerms)
	}
}

func TestCodeContextExtract_BugReportsAndArchitecture(t *testing.T) {
	e := NewCodeContextExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "There is a bug: the retry loop never stops. We discussed the microservice architecture split.", 0, 10),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(result.BugReports) == 0 {
		t.Fatalf("expected a bug report, got none")
	}
	if len(result.ArchitectureDecisions) == 0 {
		t.Fatalf("expected an architecture decision sentence, got none")
	}
}

func TestCodeContextExtract_APIDiscussions(t *testing.T) {
	e := NewCodeContextExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "the GET /v1/users route hits /api/users internally", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(result.APIDiscussions) < 2 {
		t.Fatalf("expected at least 2 API discussions, got %v", result.APIDiscussions)
	}
}

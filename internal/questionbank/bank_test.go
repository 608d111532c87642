package questionbank

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPick_TopicMatch(t *testing.T) {
	bank := New([]Record{
		{Topic: "Paging", Question: "What is a page fault?", Answer: "An access to an unmapped page."},
		{Topic: "Paging", Question: "What is a TLB?", Answer: "A translation cache."},
		{Topic: "Scheduling", Question: "What is round robin?", Answer: "Time-sliced FIFO."},
	})

	for range 20 {
		rec, ok := bank.Pick(testRNG(), "Paging")
		if !ok {
			t.Fatal("expected a record")
		}
		if rec.Topic != "Paging" {
			t.Fatalf("expected a topic match, got %q", rec.Topic)
		}
	}
}

func TestPick_FallsBackToWholeBank(t *testing.T) {
	bank := New([]Record{
		{Topic: "Scheduling", Question: "q", Answer: "a"},
	})

	rec, ok := bank.Pick(testRNG(), "Paging")
	if !ok {
		t.Fatal("non-empty bank must return a record")
	}
	if rec.Topic != "Scheduling" {
		t.Fatalf("expected fallback record, got %+v", rec)
	}
}

func TestPick_EmptyBank(t *testing.T) {
	bank := New(nil)
	if _, ok := bank.Pick(testRNG(), "Paging"); ok {
		t.Fatal("empty bank must signal absence")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	data := `[{"topic":"Paging","question":"What is a frame?","answer":"A physical page slot."}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	bank, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bank.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", bank.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

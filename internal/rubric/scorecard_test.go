package rubric

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const fullVerdict = `[C]: 85; Clear structure with short sections.
[I]: 90; Covers all listed knowledge points.
[D]: 70; Could push harder on page-table internals.
[P]: 80; Exercises map to real workloads.
[Pe]: 75; Mostly matched to the skill profile.
Advantage: Tight structure, good exercise selection.
Disadvantage: Depth section stays at the definition level.`

func TestParseScorecard_FiveAxes(t *testing.T) {
	card := ParseScorecard(fullVerdict)

	if card.Degraded {
		t.Fatal("expected non-degraded scorecard")
	}
	if len(card.Scores) != 5 {
		t.Fatalf("expected 5 scores, got %d: %v", len(card.Scores), card.Scores)
	}

	want := (85 + 90 + 70 + 80 + 75) / 5.0
	if math.Abs(card.Average-want) > 1e-9 {
		t.Fatalf("expected average %.2f, got %.2f", want, card.Average)
	}
	if !strings.HasPrefix(card.Feedback, "Advantage:") {
		t.Fatalf("expected feedback to start at the marker, got %q", card.Feedback)
	}
	if !strings.Contains(card.Feedback, "Disadvantage:") {
		t.Fatal("feedback blob should carry everything from the marker onward")
	}
}

func TestParseScorecard_SkipsMalformedLines(t *testing.T) {
	text := `Here is my evaluation.
[C]: 60; fine
[I]: not-a-number; broken
no colon on this line at all
[D] 50; missing colon separator
[P]: 40; ok`

	card := ParseScorecard(text)

	if card.Degraded {
		t.Fatal("two lines parsed; scorecard must not be degraded")
	}
	if len(card.Scores) != 2 {
		t.Fatalf("expected 2 parsed scores, got %v", card.Scores)
	}
	if card.Average != 50 {
		t.Fatalf("average over parsed keys only: want 50, got %.1f", card.Average)
	}
}

func TestParseScorecard_Degraded(t *testing.T) {
	card := ParseScorecard("The model refuses to follow the format today.")

	if !card.Degraded {
		t.Fatal("expected degraded flag when zero lines parse")
	}
	if card.Average != 0 {
		t.Fatalf("degraded average must be 0, got %.1f", card.Average)
	}
	if card.Feedback != NoFeedback {
		t.Fatalf("expected placeholder feedback, got %q", card.Feedback)
	}
}

func TestParseScorecard_BracketedPoints(t *testing.T) {
	// Some models echo the template's brackets around the score.
	card := ParseScorecard("[C]: [95]; echoed the template literally")

	if card.Scores["C"] != 95 {
		t.Fatalf("expected bracketed points to parse, got %v", card.Scores)
	}
}

func TestParseScorecard_NeverPanics(t *testing.T) {
	inputs := []string{"", ":", ";", "[]:", "[]: [];", "\n\n\n", "[C]:"}
	for _, in := range inputs {
		card := ParseScorecard(in)
		if !card.Degraded {
			t.Errorf("input %q should yield a degraded scorecard", in)
		}
	}
}

func TestExtractJSON(t *testing.T) {
	var m map[string][]string
	err := ExtractJSON(`{"Paging": ["confusing pages with frames"]}`, &m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m["Paging"]) != 1 {
		t.Fatalf("unexpected decode result: %v", m)
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	var m map[string]any
	err := ExtractJSON("I would rather write prose.", &m)

	var malformed *ErrMalformedJSON
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedJSON, got %T (%v)", err, err)
	}
	if malformed.Content == "" {
		t.Fatal("offending content must be preserved for diagnostics")
	}
}

func TestExtractJSON_EmptyObjectIsSuccess(t *testing.T) {
	var m map[string]any
	if err := ExtractJSON("{}", &m); err != nil {
		t.Fatalf("empty object is a successful decode, got %v", err)
	}
	if m == nil || len(m) != 0 {
		t.Fatalf("expected empty non-nil map, got %v", m)
	}
}

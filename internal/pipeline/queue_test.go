package pipeline

import (
	"fmt"
	"testing"
)

func TestRetentionQueue_BoundedAndSorted(t *testing.T) {
	q := NewRetentionQueue(5)
	scores := []float64{42, 17, 99, 3, 64, 88, 51, 70}

	for i, s := range scores {
		q.Insert(Candidate{Text: fmt.Sprintf("plan-%d", i), Score: s, Iteration: i + 1})
	}

	if q.Len() != 5 {
		t.Fatalf("expected min(N, capacity)=5 entries, got %d", q.Len())
	}

	items := q.Candidates()
	for i := 1; i < len(items); i++ {
		if items[i].Score > items[i-1].Score {
			t.Fatalf("queue not sorted descending: %v", items)
		}
	}

	best, ok := q.Best()
	if !ok || best.Score != 99 {
		t.Fatalf("head must be the maximum ever inserted, got %+v", best)
	}
}

func TestRetentionQueue_FewerThanCapacity(t *testing.T) {
	q := NewRetentionQueue(5)
	q.Insert(Candidate{Text: "a", Score: 10})
	q.Insert(Candidate{Text: "b", Score: 20})

	if q.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", q.Len())
	}
}

func TestRetentionQueue_TieKeepsFirstSeen(t *testing.T) {
	q := NewRetentionQueue(5)
	q.Insert(Candidate{Text: "first", Score: 9, Iteration: 1})
	q.Insert(Candidate{Text: "second", Score: 9, Iteration: 2})

	best, _ := q.Best()
	if best.Text != "first" {
		t.Fatalf("equal scores must keep insertion order, got %+v", best)
	}
}

func TestRetentionQueue_Empty(t *testing.T) {
	q := NewRetentionQueue(5)
	if _, ok := q.Best(); ok {
		t.Fatal("empty queue must report no best candidate")
	}
}

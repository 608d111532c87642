package pipeline

import "sort"

// Candidate is one lesson-plan draft paired with its evaluation score.
// Immutable once created; owned by the retention queue.
type Candidate struct {
	Text      string
	Score     float64
	Iteration int
}

// RetentionQueue is a capacity-bounded, score-sorted memory of the best
// candidates seen in a run. The highest-scoring candidate is always at
// index 0; equal scores keep insertion order, so the first-seen
// candidate wins ties.
type RetentionQueue struct {
	capacity int
	items    []Candidate
}

// DefaultQueueCapacity bounds the retention queue when no capacity is
// configured.
const DefaultQueueCapacity = 5

// NewRetentionQueue creates a queue holding at most capacity candidates.
func NewRetentionQueue(capacity int) *RetentionQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &RetentionQueue{capacity: capacity}
}

// Insert adds a candidate, re-sorts by score descending, and truncates
// to capacity.
func (q *RetentionQueue) Insert(c Candidate) {
	q.items = append(q.items, c)
	sort.SliceStable(q.items, func(i, j int) bool {
		return q.items[i].Score > q.items[j].Score
	})
	if len(q.items) > q.capacity {
		q.items = q.items[:q.capacity]
	}
}

// Best returns the highest-scoring candidate retained.
func (q *RetentionQueue) Best() (Candidate, bool) {
	if len(q.items) == 0 {
		return Candidate{}, false
	}
	return q.items[0], true
}

// Len returns the number of retained candidates.
func (q *RetentionQueue) Len() int {
	return len(q.items)
}

// Candidates returns a copy of the retained candidates, best first.
func (q *RetentionQueue) Candidates() []Candidate {
	return append([]Candidate(nil), q.items...)
}

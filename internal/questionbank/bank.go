// Package questionbank serves example questions to the analyst agent.
// The bank is loaded once at process start and read-only afterwards.
package questionbank

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
)

// Record is one question-bank entry.
type Record struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Bank is an immutable collection of records.
type Bank struct {
	records []Record
}

// New creates a bank from in-memory records.
func New(records []Record) *Bank {
	return &Bank{records: append([]Record(nil), records...)}
}

// Load reads a JSON array of records from path.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	return New(records), nil
}

// Len returns the number of records in the bank.
func (b *Bank) Len() int {
	return len(b.records)
}

// Pick returns a uniformly random record matching topic. When no
// record matches, it falls back to a random record from the whole
// bank. ok is false only when the bank is empty.
func (b *Bank) Pick(rng *rand.Rand, topic string) (Record, bool) {
	if len(b.records) == 0 {
		return Record{}, false
	}

	var matches []Record
	for _, r := range b.records {
		if r.Topic == topic {
			matches = append(matches, r)
		}
	}

	pool := matches
	if len(pool) == 0 {
		pool = b.records
	}
	return pool[rng.IntN(len(pool))], true
}

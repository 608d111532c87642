// Package subject seeds the static subject schema: the skill nodes the
// profile is built over, the quiz topics, and the generator focus.
package subject

// Subject describes one teachable subject.
type Subject struct {
	Name string

	// SkillNodes are the fixed profile dimensions for this subject.
	SkillNodes []string

	// QuizTopics seed post-session quiz generation.
	QuizTopics []string

	// GeneratorFocus steers the initial lesson-plan draft.
	GeneratorFocus string

	// Levels are the accepted student levels.
	Levels []string
}

// OperatingSystems is the stock subject.
func OperatingSystems() Subject {
	return Subject{
		Name: "Operating Systems",
		SkillNodes: []string{
			"Processes & Threads",
			"Memory Management",
			"Concurrency & Sync",
			"File System & I/O",
			"OS Fundamentals",
		},
		QuizTopics: []string{
			"Process Management",
			"Memory Management",
		},
		GeneratorFocus: "Focus on core concepts and examples",
		Levels:         []string{"Beginner", "Intermediate", "Advanced"},
	}
}

// ValidLevel reports whether level is one of the subject's levels.
func (s Subject) ValidLevel(level string) bool {
	for _, l := range s.Levels {
		if l == level {
			return true
		}
	}
	return false
}

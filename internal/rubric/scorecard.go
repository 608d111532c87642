// Package rubric turns free-form model output into typed scores and
// feedback. Model output drifts; every parser here degrades instead of
// failing.
package rubric

import (
	"strconv"
	"strings"
)

// Axes lists the five CIDDP axis keys in scoring order: Clarity,
// Integrity, Depth, Practicality, Pertinence.
var Axes = []string{"C", "I", "D", "P", "Pe"}

// NoFeedback is substituted when the evaluator output carries no
// recognizable advantage/disadvantage summary.
const NoFeedback = "No summary feedback provided."

// feedbackMarker starts the free-text summary section of an evaluation.
const feedbackMarker = "Advantage:"

// Scorecard is the parsed form of an evaluator verdict.
type Scorecard struct {
	// Scores holds the per-axis integer scores that parsed successfully.
	Scores map[string]int

	// Average is the arithmetic mean over parsed scores only.
	// Zero with Degraded set when nothing parsed.
	Average float64

	// Degraded marks a verdict from which no scores could be read.
	// Callers must never treat a degraded zero as a passing grade.
	Degraded bool

	// Feedback is the advantage/disadvantage summary blob, or NoFeedback.
	Feedback string
}

// ParseScorecard scans evaluator output line-by-line for the pattern
// `[KEY]: [integer]; commentary`. Lines that don't match are skipped,
// never fatal: the remote model rewords its verdicts often enough that
// a strict parser would reject most sessions. ParseScorecard never
// returns an error; a fully unparseable verdict comes back Degraded.
func ParseScorecard(text string) Scorecard {
	scores := make(map[string]int)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		key, points, ok := parseScoreLine(line)
		if !ok {
			continue
		}
		scores[key] = points
	}

	card := Scorecard{Scores: scores, Feedback: NoFeedback}

	if len(scores) == 0 {
		card.Degraded = true
	} else {
		sum := 0
		for _, s := range scores {
			sum += s
		}
		card.Average = float64(sum) / float64(len(scores))
	}

	if i := strings.Index(text, feedbackMarker); i != -1 {
		card.Feedback = text[i:]
	}

	return card
}

// parseScoreLine extracts (key, points) from one `[K]: [n]; ...` line.
func parseScoreLine(line string) (string, int, bool) {
	keyPart, rest, found := strings.Cut(line, ":")
	if !found {
		return "", 0, false
	}

	key := strings.Trim(strings.TrimSpace(keyPart), "[]*\"")
	if key == "" {
		return "", 0, false
	}

	pointsPart, _, found := strings.Cut(rest, ";")
	if !found {
		return "", 0, false
	}

	points, err := strconv.Atoi(strings.Trim(strings.TrimSpace(pointsPart), "[]"))
	if err != nil {
		return "", 0, false
	}

	return key, points, true
}

// Package skills canonicalizes free-text skill tokens against a fixed
// technology vocabulary so that "react js" and "React" compare equal in
// recommendation scoring.
package skills

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// matchThreshold is the minimum Sorensen-Dice similarity for a token to
// snap to a canonical entry. Below it the cleaned input passes through.
const matchThreshold = 0.85

var canonical = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node.js",
	"Python",
	"Java",
	"C#",
	"C++",
	"Go",
	"Ruby",
	"HTML",
	"CSS",
	"SQL",
	"MongoDB",
	"PostgreSQL",
	"AWS",
	"Azure",
	"Docker",
	"Kubernetes",
	"DevOps",
	"Machine Learning",
	"Data Science",
}

var dice = metrics.NewSorensenDice()

func init() {
	dice.CaseSensitive = false
	dice.NgramSize = 2
}

// Normalize maps a raw skill token to its canonical form, or to the
// lowercase-trimmed input when nothing in the vocabulary is close
// enough. Deterministic and side-effect-free.
func Normalize(token string) string {
	cleaned := strings.ToLower(strings.TrimSpace(token))
	if cleaned == "" {
		return cleaned
	}

	best := ""
	bestScore := 0.0
	for _, target := range canonical {
		score := strutil.Similarity(cleaned, target, dice)
		if score > bestScore {
			best = target
			bestScore = score
		}
	}

	if bestScore >= matchThreshold {
		return best
	}
	return cleaned
}

// NormalizeAll normalizes every token in the slice.
func NormalizeAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Normalize(t)
	}
	return out
}

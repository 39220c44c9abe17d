package skills_test

import (
	"testing"

	"talent-marketplace-backend/pkg/skills"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSnapsToCanonical(t *testing.T) {
	cases := map[string]string{
		"react":        "React",
		"  React  ":    "React",
		"javascript":   "JavaScript",
		"typescripts":  "TypeScript",
		"node.js":      "Node.js",
		"postgresql":   "PostgreSQL",
		"kubernetes":   "Kubernetes",
		"data science": "Data Science",
	}

	for input, want := range cases {
		assert.Equal(t, want, skills.Normalize(input), "input %q", input)
	}
}

func TestNormalizePassesThroughBelowThreshold(t *testing.T) {
	cases := map[string]string{
		"golang":            "golang", // too far from "Go" on bigrams
		"frontend wizardry": "frontend wizardry",
		"  Embedded C  ":    "embedded c",
	}

	for input, want := range cases {
		assert.Equal(t, want, skills.Normalize(input), "input %q", input)
	}
}

func TestNormalizeEmptyToken(t *testing.T) {
	assert.Equal(t, "", skills.Normalize(""))
	assert.Equal(t, "", skills.Normalize("   "))
}

func TestNormalizeAll(t *testing.T) {
	got := skills.NormalizeAll([]string{"react", "Node.js", "interpretive dance"})
	assert.Equal(t, []string{"React", "Node.js", "interpretive dance"}, got)
}

package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

func TestPrintBreakdown(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintBreakdown(scoring.Breakdown{
		Experience: 64.99,
		Skills:     100,
		Education:  80,
		Composite:  79.99,
	})

	text := out.String()
	assert.Contains(t, text, "Score Breakdown")
	assert.Contains(t, text, "64.99")
	assert.Contains(t, text, "100.00")
	assert.Contains(t, text, "79.99")
}

func TestPrintSummary_TruncatesLongLists(t *testing.T) {
	strengths := []string{"one", "two", "three", "four", "five", "six", "seven"}

	var out strings.Builder
	NewPrinter(&out).PrintSummary(types.Summary{
		OverallAssessment:  "Solid candidate",
		Strengths:          strengths,
		AreasOfImprovement: []string{"cloud certs"},
	})

	text := out.String()
	assert.Contains(t, text, "Solid candidate")
	assert.Contains(t, text, "five")
	assert.NotContains(t, text, "six")
	assert.Contains(t, text, "cloud certs")
}

func TestPrintExperiences_EmptyPrintsNothing(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintExperiences(nil)
	assert.Empty(t, out.String())
}

func TestPrintExperiences_OngoingShowsPresent(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintExperiences([]types.ExperienceRecord{{
		Position:  "Backend Engineer",
		Company:   "Acme",
		Dates:     types.ExperienceDates{StartDate: "15-01-2023"},
		MatchType: types.MatchDirect,
	}})

	text := out.String()
	assert.Contains(t, text, "Backend Engineer @ Acme [DIRECT]")
	assert.Contains(t, text, "present")
}
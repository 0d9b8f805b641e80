package utils

import (
	"github.com/hogl3g/tracker/models"
)

// CompletionPercentage returns 100*completed/planned, unrounded.
// A zero or negative plan yields 0 rather than dividing by zero.
func CompletionPercentage(completed, planned int) float64 {
	if planned <= 0 {
		return 0
	}
	return float64(completed) / float64(planned) * 100
}

// AverageQualityScore is the arithmetic mean over installations that
// carry a non-zero quality score. Unscored installations are excluded
// from both numerator and denominator; no scores at all means 0.
func AverageQualityScore(installations []models.Installation) float64 {
	var sum float64
	var n int
	for _, inst := range installations {
		if inst.QualityScore == nil || *inst.QualityScore == 0 {
			continue
		}
		sum += *inst.QualityScore
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CountIssues counts installations that recorded a non-empty
// issuesEncountered value.
func CountIssues(installations []models.Installation) int {
	count := 0
	for _, inst := range installations {
		if inst.IssuesEncountered != nil && *inst.IssuesEncountered != "" {
			count++
		}
	}
	return count
}

package evaluation

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// SurveyAverage is the mean of the eligible ratings of one survey. A survey
// answered only with NotApplicable averages to 0.
func SurveyAverage(ratings []Rating) float64 {
	eligible := lo.Filter(ratings, func(r Rating, _ int) bool { return r.Eligible() })
	if len(eligible) == 0 {
		return 0
	}
	return float64(lo.Sum(eligible)) / float64(len(eligible))
}

// StrictAverage is the mean of the non-zero survey averages. ok is false when
// no survey carries a rating.
func StrictAverage(surveyAverages []float64) (avg float64, ok bool) {
	rated := lo.Filter(surveyAverages, func(v float64, _ int) bool { return v > 0 })
	if len(rated) == 0 {
		return 0, false
	}
	return lo.Mean(rated), true
}

// NaiveAverage is the mean of every survey average, zeros included.
func NaiveAverage(surveyAverages []float64) (avg float64, ok bool) {
	if len(surveyAverages) == 0 {
		return 0, false
	}
	return lo.Mean(surveyAverages), true
}

// PooledAverage is the mean of all eligible ratings given to one question.
func PooledAverage(ratings []Rating) (avg float64, ok bool) {
	avg = SurveyAverage(ratings)
	return avg, avg > 0
}

// MeanOf averages values that have data; used for the overall figure of a
// rating report row.
func MeanOf(values []float64) (avg float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	return lo.Mean(values), true
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParticipationRate is participated/total as a percentage, 0 for empty groups.
func ParticipationRate(participated, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(participated) / float64(total) * 100
}

// Score is one professor's unrounded average.
type Score struct {
	ProfessorID uuid.UUID
	Average     float64
}

type RankedScore struct {
	Score
	Rank int
}

// RankAscending orders scores best first (lowest average) and numbers them
// from 1. Ties keep their input order.
func RankAscending(scores []Score) []RankedScore {
	sorted := make([]Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Average < sorted[j].Average
	})
	return lo.Map(sorted, func(s Score, i int) RankedScore {
		return RankedScore{Score: s, Rank: i + 1}
	})
}

package service

import (
	"math"

	"classpoint_backend/internal/model"
)

// ScoreService computes an attempt's aggregate percentage from its full
// response set. Responses that have not been graded yet contribute 0 to
// the numerator but their question's full weight to the denominator, so
// a partially graded attempt shows a provisional low score rather than
// an inflated one.
type ScoreService interface {
	ComputeAttemptScore(responses []model.TestAttemptResponse) (totalScore, totalPoints, percentage float64)
	RoundForDisplay(percentage float64) float64
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

// ComputeAttemptScore returns the raw totals and the unrounded
// percentage. A zero denominator yields 0, never NaN.
func (s *scoreService) ComputeAttemptScore(responses []model.TestAttemptResponse) (float64, float64, float64) {
	var totalScore, totalPoints float64
	for _, resp := range responses {
		totalPoints += resp.Question.MaxPoints
		if resp.PointsAwarded != nil {
			totalScore += *resp.PointsAwarded
		}
	}
	if totalPoints <= 0 {
		return totalScore, totalPoints, 0
	}
	return totalScore, totalPoints, (totalScore / totalPoints) * 100
}

// RoundForDisplay rounds to one decimal place. The aggregator itself
// never rounds; this is the presentation boundary.
func (s *scoreService) RoundForDisplay(percentage float64) float64 {
	return math.Round(percentage*10) / 10
}

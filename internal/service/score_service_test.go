package service

import (
	"math"
	"testing"

	"classpoint_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func responseWith(maxPoints float64, awarded *float64) model.TestAttemptResponse {
	return model.TestAttemptResponse{
		Question:      model.Question{MaxPoints: maxPoints},
		PointsAwarded: awarded,
	}
}

func TestComputeAttemptScore_AllUngradedIsZero(t *testing.T) {
	svc := NewScoreService()

	totalScore, totalPoints, pct := svc.ComputeAttemptScore([]model.TestAttemptResponse{
		responseWith(10, nil),
		responseWith(10, nil),
	})

	assert.Equal(t, 0.0, totalScore)
	assert.Equal(t, 20.0, totalPoints)
	assert.Equal(t, 0.0, pct)
}

func TestComputeAttemptScore_FullMarksIsHundred(t *testing.T) {
	svc := NewScoreService()

	_, _, pct := svc.ComputeAttemptScore([]model.TestAttemptResponse{
		responseWith(10, f64(10)),
		responseWith(5, f64(5)),
		responseWith(15, f64(15)),
	})

	assert.Equal(t, 100.0, pct)
}

func TestComputeAttemptScore_UngradedPullsScoreDown(t *testing.T) {
	svc := NewScoreService()

	// A graded 5/10, B not graded yet: B's full weight stays in the
	// denominator, so the attempt reads as provisional 25%, not 50%.
	totalScore, totalPoints, pct := svc.ComputeAttemptScore([]model.TestAttemptResponse{
		responseWith(10, f64(5)),
		responseWith(10, nil),
	})

	assert.Equal(t, 5.0, totalScore)
	assert.Equal(t, 20.0, totalPoints)
	assert.Equal(t, 25.0, pct)
}

func TestComputeAttemptScore_ZeroDenominator(t *testing.T) {
	svc := NewScoreService()

	totalScore, totalPoints, pct := svc.ComputeAttemptScore([]model.TestAttemptResponse{
		responseWith(0, nil),
		responseWith(0, f64(0)),
	})

	assert.Equal(t, 0.0, totalScore)
	assert.Equal(t, 0.0, totalPoints)
	assert.Equal(t, 0.0, pct)
	assert.False(t, math.IsNaN(pct))
}

func TestComputeAttemptScore_NoResponses(t *testing.T) {
	svc := NewScoreService()

	_, totalPoints, pct := svc.ComputeAttemptScore(nil)

	assert.Equal(t, 0.0, totalPoints)
	assert.Equal(t, 0.0, pct)
}

func TestComputeAttemptScore_DoesNotRound(t *testing.T) {
	svc := NewScoreService()

	_, _, pct := svc.ComputeAttemptScore([]model.TestAttemptResponse{
		responseWith(3, f64(1)),
	})

	assert.InDelta(t, 33.333333, pct, 1e-6)
	assert.NotEqual(t, 33.3, pct)
}

func TestRoundForDisplay(t *testing.T) {
	svc := NewScoreService()

	assert.Equal(t, 33.3, svc.RoundForDisplay(100.0/3.0))
	assert.Equal(t, 66.7, svc.RoundForDisplay(200.0/3.0))
	assert.Equal(t, 25.0, svc.RoundForDisplay(25.0))
	assert.Equal(t, 0.0, svc.RoundForDisplay(0))
}

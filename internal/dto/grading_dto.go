package dto

// GradeEntryDTO is one per-response grade override within a grading batch.
// Pointer fields distinguish "field absent, leave stored value alone" from
// "field present, overwrite" (partial update semantics).
type GradeEntryDTO struct {
	ResponseID     uint     `json:"response_id" binding:"required"`
	PointsAwarded  *float64 `json:"points_awarded,omitempty"`
	IsCorrect      *bool    `json:"is_correct,omitempty"`
	TeacherComment *string  `json:"teacher_comment,omitempty"`
}

// GradeAttemptDTO is the request body for grading a test attempt.
type GradeAttemptDTO struct {
	Grades []GradeEntryDTO `json:"grades" binding:"required,min=1,dive"`
}

// GradingResultDTO is returned after a successful grading or recompute
// call. TotalScore and TotalPoints are the raw values behind the
// attempt's percentage, exposed for caller transparency.
type GradingResultDTO struct {
	Attempt     AttemptDTO `json:"attempt"`
	TotalScore  float64    `json:"total_score"`
	TotalPoints float64    `json:"total_points"`
}

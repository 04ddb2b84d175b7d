package dto

import "time"

// QuestionDTO is the question view embedded in grading responses.
type QuestionDTO struct {
	ID          uint    `json:"id"`
	TestID      uint    `json:"test_id"`
	Title       string  `json:"title"`
	Prompt      string  `json:"prompt"`
	OrderInTest int     `json:"order_in_test"`
	MaxPoints   float64 `json:"max_points"`
}

// ResponseDTO is one graded or ungraded answer within an attempt.
type ResponseDTO struct {
	ID             uint        `json:"id"`
	TestAttemptID  uint        `json:"test_attempt_id"`
	QuestionID     uint        `json:"question_id"`
	Question       QuestionDTO `json:"question,omitempty"`
	Answer         string      `json:"answer"`
	PointsAwarded  *float64    `json:"points_awarded,omitempty"`
	IsCorrect      *bool       `json:"is_correct,omitempty"`
	TeacherComment *string     `json:"teacher_comment,omitempty"`
}

// AttemptDTO is the attempt view returned by grading calls. Score is the
// stored percentage; DisplayScore is the same value rounded to one
// decimal place for presentation.
type AttemptDTO struct {
	ID           uint      `json:"id"`
	TestID       uint      `json:"test_id"`
	StudentID    uint      `json:"student_id"`
	Score        *float64  `json:"score,omitempty"`
	DisplayScore *float64  `json:"display_score,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// AttemptSummaryDTO is one row of a test's grading queue. The response
// counts make partial grading visible: the attempt record itself only
// distinguishes ungraded (score null) from graded (score set).
type AttemptSummaryDTO struct {
	ID              uint      `json:"id"`
	TestID          uint      `json:"test_id"`
	StudentID       uint      `json:"student_id"`
	Score           *float64  `json:"score,omitempty"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
	ResponseCount   int       `json:"response_count"`
	GradedResponses int       `json:"graded_responses"`
}

// AttemptDetailDTO is the full grading view of one attempt: the attempt
// plus all of its responses with their questions, in question order.
type AttemptDetailDTO struct {
	Attempt   AttemptDTO    `json:"attempt"`
	TestTitle string        `json:"test_title"`
	Responses []ResponseDTO `json:"responses"`
}

package service

import (
	"testing"

	"classpoint_backend/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAttempts_GradingQueueCounts(t *testing.T) {
	f := newGradingFixture(t)

	f.grade(t, f.teacherID, dto.GradeEntryDTO{ResponseID: f.responseA.ID, PointsAwarded: f64(5)})

	attempts, err := f.tests.ListAttempts(f.teacherID, f.classroom.ID, f.test.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	byID := map[uint]dto.AttemptSummaryDTO{}
	for _, a := range attempts {
		byID[a.ID] = a
	}

	graded := byID[f.attempt.ID]
	assert.Equal(t, 2, graded.ResponseCount)
	assert.Equal(t, 1, graded.GradedResponses)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 25.0, *graded.Score)

	ungraded := byID[f.otherAttempt.ID]
	assert.Equal(t, 1, ungraded.ResponseCount)
	assert.Equal(t, 0, ungraded.GradedResponses)
	assert.Nil(t, ungraded.Score)
}

func TestListAttempts_StudentForbidden(t *testing.T) {
	f := newGradingFixture(t)

	_, err := f.tests.ListAttempts(f.studentID, f.classroom.ID, f.test.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestGetAttemptDetail(t *testing.T) {
	f := newGradingFixture(t)

	f.grade(t, f.teacherID, dto.GradeEntryDTO{ResponseID: f.responseB.ID, PointsAwarded: f64(10), TeacherComment: str("nice factoring")})

	detail, err := f.tests.GetAttemptDetail(f.teacherID, f.classroom.ID, f.attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Midterm", detail.TestTitle)
	require.Len(t, detail.Responses, 2)

	// Responses come back in question order.
	assert.Equal(t, f.questionA.ID, detail.Responses[0].QuestionID)
	assert.Equal(t, f.questionB.ID, detail.Responses[1].QuestionID)
	assert.Nil(t, detail.Responses[0].PointsAwarded)
	require.NotNil(t, detail.Responses[1].PointsAwarded)
	assert.Equal(t, 10.0, *detail.Responses[1].PointsAwarded)
	require.NotNil(t, detail.Responses[1].TeacherComment)
	assert.Equal(t, "nice factoring", *detail.Responses[1].TeacherComment)

	require.NotNil(t, detail.Attempt.DisplayScore)
	assert.Equal(t, 50.0, *detail.Attempt.DisplayScore)
}

func TestGetAttemptDetail_WrongClassroom(t *testing.T) {
	f := newGradingFixture(t)

	_, err := f.tests.GetAttemptDetail(f.teacherID, f.classroom.ID+100, f.attempt.ID)
	require.Error(t, err)
	// The caller is not a member of the other classroom, so the gate
	// fires before the attempt lookup.
	assert.Equal(t, KindNotAMember, KindOf(err))
}

package service

import (
	"testing"

	"classpoint_backend/internal/model"
	"classpoint_backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection so every session sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Classroom{},
		&model.ClassroomMember{},
		&model.Test{},
		&model.Question{},
		&model.TestAttempt{},
		&model.TestAttemptResponse{},
		&model.Notification{},
	))
	return db
}

// gradingFixture is a classroom with one two-question test (10 points
// each), one submitted ungraded attempt for studentID, and a second
// student's attempt to supply a foreign response.
type gradingFixture struct {
	db *gorm.DB

	classroom model.Classroom
	test      model.Test
	questionA model.Question
	questionB model.Question

	attempt   model.TestAttempt
	responseA model.TestAttemptResponse
	responseB model.TestAttemptResponse

	otherAttempt    model.TestAttempt
	foreignResponse model.TestAttemptResponse

	teacherID    uint
	assistantID  uint
	studentID    uint
	otherStudent uint

	membership    MembershipService
	scores        ScoreService
	notifications NotificationService
	grading       GradingService
	tests         TestService
}

func newGradingFixture(t *testing.T) *gradingFixture {
	t.Helper()
	db := newTestDB(t)

	f := &gradingFixture{
		db:           db,
		teacherID:    11,
		assistantID:  12,
		studentID:    21,
		otherStudent: 22,
	}

	f.classroom = model.Classroom{Name: "Algebra I", Subject: "math", OwnerID: f.teacherID}
	require.NoError(t, db.Create(&f.classroom).Error)

	members := []model.ClassroomMember{
		{ClassroomID: f.classroom.ID, UserID: f.teacherID, Role: model.RoleTeacher},
		{ClassroomID: f.classroom.ID, UserID: f.assistantID, Role: model.RoleAssistant},
		{ClassroomID: f.classroom.ID, UserID: f.studentID, Role: model.RoleStudent},
		{ClassroomID: f.classroom.ID, UserID: f.otherStudent, Role: model.RoleStudent},
	}
	require.NoError(t, db.Create(&members).Error)

	f.test = model.Test{ClassroomID: f.classroom.ID, Title: "Midterm"}
	require.NoError(t, db.Create(&f.test).Error)

	f.questionA = model.Question{TestID: f.test.ID, Title: "Q1", Prompt: "Solve for x", OrderInTest: 1, MaxPoints: 10}
	f.questionB = model.Question{TestID: f.test.ID, Title: "Q2", Prompt: "Factor", OrderInTest: 2, MaxPoints: 10}
	require.NoError(t, db.Create(&f.questionA).Error)
	require.NoError(t, db.Create(&f.questionB).Error)

	f.attempt = model.TestAttempt{TestID: f.test.ID, StudentID: f.studentID, Status: model.AttemptStatusSubmitted}
	require.NoError(t, db.Create(&f.attempt).Error)

	f.responseA = model.TestAttemptResponse{TestAttemptID: f.attempt.ID, QuestionID: f.questionA.ID, Answer: "x = 4"}
	f.responseB = model.TestAttemptResponse{TestAttemptID: f.attempt.ID, QuestionID: f.questionB.ID, Answer: "(x-2)(x+2)"}
	require.NoError(t, db.Create(&f.responseA).Error)
	require.NoError(t, db.Create(&f.responseB).Error)

	f.otherAttempt = model.TestAttempt{TestID: f.test.ID, StudentID: f.otherStudent, Status: model.AttemptStatusSubmitted}
	require.NoError(t, db.Create(&f.otherAttempt).Error)
	f.foreignResponse = model.TestAttemptResponse{TestAttemptID: f.otherAttempt.ID, QuestionID: f.questionA.ID, Answer: "x = 5"}
	require.NoError(t, db.Create(&f.foreignResponse).Error)

	f.membership = NewMembershipService(repository.NewMembershipRepository(db))
	f.scores = NewScoreService()
	f.notifications = NewNotificationService(repository.NewNotificationRepository(db))
	f.grading = NewGradingService(
		f.membership,
		f.scores,
		f.notifications,
		repository.NewTestRepository(db),
		repository.NewTestAttemptRepository(db),
		repository.NewResponseRepository(db),
		db,
	)
	f.tests = NewTestService(
		f.membership,
		f.scores,
		repository.NewTestRepository(db),
		repository.NewTestAttemptRepository(db),
	)
	return f
}

// withNotifier rebuilds the grading service around a replacement
// notification service.
func (f *gradingFixture) withNotifier(svc NotificationService) GradingService {
	return NewGradingService(
		f.membership,
		f.scores,
		svc,
		repository.NewTestRepository(f.db),
		repository.NewTestAttemptRepository(f.db),
		repository.NewResponseRepository(f.db),
		f.db,
	)
}

func (f *gradingFixture) reloadResponse(t *testing.T, id uint) model.TestAttemptResponse {
	t.Helper()
	var resp model.TestAttemptResponse
	require.NoError(t, f.db.First(&resp, id).Error)
	return resp
}

func (f *gradingFixture) reloadAttempt(t *testing.T, id uint) model.TestAttempt {
	t.Helper()
	var attempt model.TestAttempt
	require.NoError(t, f.db.First(&attempt, id).Error)
	return attempt
}

func (f *gradingFixture) notificationCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&model.Notification{}).Count(&count).Error)
	return count
}

func f64(v float64) *float64 { return &v }
func b(v bool) *bool         { return &v }
func str(v string) *string   { return &v }

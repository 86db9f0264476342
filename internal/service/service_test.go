package service

import (
	"fmt"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

// newTestDB opens a throwaway in-memory database with the same schema
// and error translation as production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testRepos struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	lecture      *repository.LectureRepository
	completion   *repository.CompletionRepository
	attendance   *repository.AttendanceRepository
	quiz         *repository.QuizRepository
	submission   *repository.SubmissionRepository
	vote         *repository.VoteRepository
	announcement *repository.AnnouncementRepository
	notification *repository.NotificationRepository
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		lecture:      repository.NewLectureRepository(db),
		completion:   repository.NewCompletionRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
		quiz:         repository.NewQuizRepository(db),
		submission:   repository.NewSubmissionRepository(db),
		vote:         repository.NewVoteRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func seedUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:        "Intro to Testing",
		InstructorID: instructorID,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedLecture(t *testing.T, db *gorm.DB, courseID uint, position int) *model.Lecture {
	t.Helper()
	lecture := &model.Lecture{
		CourseID: courseID,
		Title:    fmt.Sprintf("Lecture %d", position),
		Position: position,
	}
	require.NoError(t, db.Create(lecture).Error)
	return lecture
}

// seedQuiz creates a gated quiz on the lecture with two questions worth
// 2 and 1 points; the first answer of each question is the correct one.
func seedQuiz(t *testing.T, db *gorm.DB, courseID, lectureID uint) *model.Quiz {
	t.Helper()
	lid := lectureID
	quiz := &model.Quiz{
		CourseID:  courseID,
		LectureID: &lid,
		Title:     "Checkpoint",
	}
	require.NoError(t, db.Create(quiz).Error)

	for i, points := range []int{2, 1} {
		question := &model.Question{
			QuizID:   quiz.ID,
			Body:     fmt.Sprintf("Question %d", i+1),
			Points:   points,
			Position: i,
			Type:     model.QuestionTypeMCQ,
			Answers: []model.Answer{
				{Body: "right", IsCorrect: true},
				{Body: "wrong", IsCorrect: false},
			},
		}
		require.NoError(t, db.Create(question).Error)
	}
	return quiz
}

// quizContent reloads the quiz with ordered questions and answers.
func quizContent(t *testing.T, repos *testRepos, quizID uint) *model.Quiz {
	t.Helper()
	quiz, err := repos.quiz.FindWithContent(quizID)
	require.NoError(t, err)
	return quiz
}

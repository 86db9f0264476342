package service

import (
	"context"
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubmissionService(repos *testRepos) *SubmissionService {
	gate := newQuizService(repos)
	leaderboard := NewLeaderboardService(repos.user, repos.attendance, repos.submission, false, nil, 0)
	return NewSubmissionService(repos.quiz, repos.submission, gate, leaderboard)
}

// correctPairs builds a full answer set choosing the correct answer of
// every question.
func correctPairs(quiz *model.Quiz) []model.AnswerPair {
	pairs := make([]model.AnswerPair, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		for _, a := range q.Answers {
			if a.IsCorrect {
				pairs = append(pairs, model.AnswerPair{QuestionID: q.ID, AnswerID: a.ID})
				break
			}
		}
	}
	return pairs
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*SubmissionService, *testRepos, *model.User, *model.Quiz, *gormFixture) {
		db := newTestDB(t)
		repos := newTestRepos(db)
		svc := newSubmissionService(repos)

		student := seedUser(t, db, "alice", model.Student)
		course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
		lecture := seedLecture(t, db, course.ID, 1)
		quiz := seedQuiz(t, db, course.ID, lecture.ID)
		require.NoError(t, repos.completion.Upsert(student.ID, lecture.ID, time.Now()))

		return svc, repos, student, quizContent(t, repos, quiz.ID), &gormFixture{db: db, lectureID: lecture.ID}
	}

	t.Run("all correct scores full marks", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		submission, err := svc.Submit(ctx, student.ID, quiz.ID, correctPairs(quiz))
		require.NoError(t, err)

		assert.Equal(t, 3, submission.Score)
		assert.Equal(t, 3, submission.MaxScore)
		assert.Len(t, submission.Answers, 2)
	})

	t.Run("partial credit is per question", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		// Correct on the 2-point question, wrong on the 1-point one.
		pairs := []model.AnswerPair{
			{QuestionID: quiz.Questions[0].ID, AnswerID: quiz.Questions[0].Answers[0].ID},
			{QuestionID: quiz.Questions[1].ID, AnswerID: quiz.Questions[1].Answers[1].ID},
		}
		submission, err := svc.Submit(ctx, student.ID, quiz.ID, pairs)
		require.NoError(t, err)

		assert.Equal(t, 2, submission.Score)
		assert.Equal(t, 3, submission.MaxScore)
	})

	t.Run("second submit conflicts", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		_, err := svc.Submit(ctx, student.ID, quiz.ID, correctPairs(quiz))
		require.NoError(t, err)

		_, err = svc.Submit(ctx, student.ID, quiz.ID, correctPairs(quiz))
		assert.ErrorIs(t, err, util.ErrQuizAlreadySubmitted)
	})

	t.Run("duplicate row loses on the unique key", func(t *testing.T) {
		svc, repos, student, quiz, _ := setup(t)

		// Simulate a racing submit that slipped past the existence
		// check: the row is already there when ours inserts.
		require.NoError(t, repos.submission.Create(&model.Submission{
			QuizID:      quiz.ID,
			UserID:      student.ID,
			Score:       0,
			MaxScore:    3,
			SubmittedAt: time.Now(),
		}))

		_, err := svc.Submit(ctx, student.ID, quiz.ID, correctPairs(quiz))
		assert.ErrorIs(t, err, util.ErrQuizAlreadySubmitted)
	})

	t.Run("gate enforced at submit", func(t *testing.T) {
		svc, _, _, quiz, fx := setup(t)

		blocked := seedUser(t, fx.db, "mallory", model.Student)
		_, err := svc.Submit(ctx, blocked.ID, quiz.ID, correctPairs(quiz))
		assert.ErrorIs(t, err, util.ErrLectureNotCompleted)
	})

	t.Run("missing answers fail closed", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		pairs := correctPairs(quiz)[:1]
		_, err := svc.Submit(ctx, student.ID, quiz.ID, pairs)

		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "answers", vErr.Field)

		// Nothing persisted.
		exists, existsErr := svc.SubmissionRepo.Exists(student.ID, quiz.ID)
		require.NoError(t, existsErr)
		assert.False(t, exists)
	})

	t.Run("duplicate question rejected with its index", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		q := quiz.Questions[0]
		pairs := []model.AnswerPair{
			{QuestionID: q.ID, AnswerID: q.Answers[0].ID},
			{QuestionID: q.ID, AnswerID: q.Answers[1].ID},
		}
		_, err := svc.Submit(ctx, student.ID, quiz.ID, pairs)

		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "answers[1].question_id", vErr.Field)
	})

	t.Run("foreign question rejected", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		pairs := correctPairs(quiz)
		pairs[0].QuestionID = 9999
		_, err := svc.Submit(ctx, student.ID, quiz.ID, pairs)

		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "answers[0].question_id", vErr.Field)
	})

	t.Run("answer from another question rejected", func(t *testing.T) {
		svc, _, student, quiz, _ := setup(t)

		pairs := correctPairs(quiz)
		pairs[0].AnswerID = quiz.Questions[1].Answers[0].ID
		_, err := svc.Submit(ctx, student.ID, quiz.ID, pairs)

		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "answers[0].answer_id", vErr.Field)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		svc, _, student, _, _ := setup(t)
		_, err := svc.Submit(ctx, student.ID, 9999, nil)
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})
}

// gormFixture carries extra handles tests occasionally need.
type gormFixture struct {
	db        *gorm.DB
	lectureID uint
}

func TestMaxScoreFrozenAtSubmitTime(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	student := seedUser(t, db, "alice", model.Student)
	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)
	quiz := seedQuiz(t, db, course.ID, lecture.ID)
	require.NoError(t, repos.completion.Upsert(student.ID, lecture.ID, time.Now()))

	full := quizContent(t, repos, quiz.ID)
	submission, err := svc.Submit(ctx, student.ID, quiz.ID, correctPairs(full))
	require.NoError(t, err)
	require.Equal(t, 3, submission.MaxScore)

	// A question added after the fact must not rewrite history.
	later := &model.Question{
		QuizID: quiz.ID,
		Body:   "Added later",
		Points: 10,
		Type:   model.QuestionTypeMCQ,
		Answers: []model.Answer{
			{Body: "a", IsCorrect: true},
			{Body: "b", IsCorrect: false},
		},
	}
	require.NoError(t, db.Create(later).Error)

	stored, err := svc.Result(student.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.MaxScore)
	assert.Equal(t, 3, stored.Score)
}

func TestResult(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	student := seedUser(t, db, "alice", model.Student)

	_, err := svc.Result(student.ID, 42)
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)
}

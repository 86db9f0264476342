package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(repos *testRepos) *QuizService {
	return NewQuizService(repos.quiz, repos.lecture, repos.completion)
}

func TestCanStartQuiz(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newQuizService(repos)

	student := seedUser(t, db, "alice", model.Student)
	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)
	quiz := seedQuiz(t, db, course.ID, lecture.ID)

	t.Run("locked before completion", func(t *testing.T) {
		err := svc.CanStartQuiz(student.ID, quiz.ID)
		assert.ErrorIs(t, err, util.ErrLectureNotCompleted)

		_, err = svc.GetQuizForUser(student.ID, quiz.ID)
		assert.ErrorIs(t, err, util.ErrLectureNotCompleted)
	})

	t.Run("unlocked after completion and stays unlocked", func(t *testing.T) {
		require.NoError(t, repos.completion.Upsert(student.ID, lecture.ID, time.Now()))

		require.NoError(t, svc.CanStartQuiz(student.ID, quiz.ID))
		// A repeat check must never flip back.
		require.NoError(t, svc.CanStartQuiz(student.ID, quiz.ID))

		got, err := svc.GetQuizForUser(student.ID, quiz.ID)
		require.NoError(t, err)
		assert.Len(t, got.Questions, 2)
		assert.Len(t, got.Questions[0].Answers, 2)
	})

	t.Run("other student still locked", func(t *testing.T) {
		other := seedUser(t, db, "mallory", model.Student)
		err := svc.CanStartQuiz(other.ID, quiz.ID)
		assert.ErrorIs(t, err, util.ErrLectureNotCompleted)
	})

	t.Run("quiz without lecture is ungated", func(t *testing.T) {
		ungated := &model.Quiz{CourseID: course.ID, Title: "Open quiz"}
		require.NoError(t, db.Create(ungated).Error)

		fresh := seedUser(t, db, "carol", model.Student)
		assert.NoError(t, svc.CanStartQuiz(fresh.ID, ungated.ID))
	})

	t.Run("unknown quiz", func(t *testing.T) {
		err := svc.CanStartQuiz(student.ID, 9999)
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})
}

func TestGetQuizByLectureForUser(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newQuizService(repos)

	student := seedUser(t, db, "alice", model.Student)
	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)
	seedQuiz(t, db, course.ID, lecture.ID)

	_, err := svc.GetQuizByLectureForUser(student.ID, lecture.ID)
	assert.ErrorIs(t, err, util.ErrLectureNotCompleted)

	require.NoError(t, repos.completion.Upsert(student.ID, lecture.ID, time.Now()))
	quiz, err := svc.GetQuizByLectureForUser(student.ID, lecture.ID)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)

	bare := seedLecture(t, db, course.ID, 2)
	_, err = svc.GetQuizByLectureForUser(student.ID, bare.ID)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)

	_, err = svc.GetQuizByLectureForUser(student.ID, 9999)
	assert.ErrorIs(t, err, util.ErrLectureNotFound)
}

func TestCreateQuiz(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newQuizService(repos)

	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)

	t.Run("creates on lecture", func(t *testing.T) {
		quiz, err := svc.CreateQuiz(course.ID, QuizInput{Title: "Checkpoint", LectureID: lecture.ID})
		require.NoError(t, err)
		require.NotNil(t, quiz.LectureID)
		assert.Equal(t, lecture.ID, *quiz.LectureID)
	})

	t.Run("second quiz on same lecture conflicts", func(t *testing.T) {
		_, err := svc.CreateQuiz(course.ID, QuizInput{Title: "Another", LectureID: lecture.ID})
		assert.ErrorIs(t, err, util.ErrLectureHasQuiz)
	})

	t.Run("lecture of another course rejected", func(t *testing.T) {
		other := seedCourse(t, db, 1)
		foreign := seedLecture(t, db, other.ID, 1)

		_, err := svc.CreateQuiz(course.ID, QuizInput{Title: "Stray", LectureID: foreign.ID})
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "lectureId", vErr.Field)
	})

	t.Run("due before available rejected", func(t *testing.T) {
		fresh := seedLecture(t, db, course.ID, 2)
		available := time.Now().Add(time.Hour)
		due := available.Add(-time.Minute)

		_, err := svc.CreateQuiz(course.ID, QuizInput{
			Title:       "Backwards",
			LectureID:   fresh.ID,
			AvailableAt: &available,
			DueAt:       &due,
		})
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "dueAt", vErr.Field)
	})

	t.Run("unknown lecture", func(t *testing.T) {
		_, err := svc.CreateQuiz(course.ID, QuizInput{Title: "Ghost", LectureID: 9999})
		assert.ErrorIs(t, err, util.ErrLectureNotFound)
	})
}

func TestAddQuestion(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newQuizService(repos)

	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)
	quiz := seedQuiz(t, db, course.ID, lecture.ID)

	yes, no := true, false

	t.Run("creates question with answers", func(t *testing.T) {
		question, err := svc.AddQuestion(quiz.ID, QuestionInput{
			Body:   "What is 2+2?",
			Points: 3,
			Answers: []AnswerInput{
				{Body: "4", IsCorrect: &yes},
				{Body: "5", IsCorrect: &no},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, model.QuestionTypeMCQ, question.Type)
		require.Len(t, question.Answers, 2)
		assert.True(t, question.Answers[0].IsCorrect)
	})

	t.Run("points below one rejected", func(t *testing.T) {
		_, err := svc.AddQuestion(quiz.ID, QuestionInput{
			Body:   "Zero stakes",
			Points: 0,
			Answers: []AnswerInput{
				{Body: "a", IsCorrect: &yes},
				{Body: "b", IsCorrect: &no},
			},
		})
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "points", vErr.Field)
	})

	t.Run("single answer rejected", func(t *testing.T) {
		_, err := svc.AddQuestion(quiz.ID, QuestionInput{
			Body:    "Rhetorical",
			Points:  1,
			Answers: []AnswerInput{{Body: "only", IsCorrect: &yes}},
		})
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "answers", vErr.Field)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		_, err := svc.AddQuestion(9999, QuestionInput{Body: "?", Points: 1})
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})
}

package service

import (
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService owns quiz authoring, the gated quiz reads and the
// completion gate itself.
type QuizService struct {
	QuizRepo       *repository.QuizRepository
	LectureRepo    *repository.LectureRepository
	CompletionRepo *repository.CompletionRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	lectureRepo *repository.LectureRepository,
	completionRepo *repository.CompletionRepository,
) *QuizService {
	return &QuizService{
		QuizRepo:       quizRepo,
		LectureRepo:    lectureRepo,
		CompletionRepo: completionRepo,
	}
}

// CanStartQuiz is the completion gate. A quiz without an owning lecture
// is ungated; otherwise the learner must hold a completion row for the
// lecture. Read-only: callers invoke it before exposing quiz content
// and again, independently, before accepting a submission.
func (s *QuizService) CanStartQuiz(userID, quizID uint) error {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}

	if quiz.LectureID == nil {
		return nil
	}

	completed, err := s.CompletionRepo.Exists(userID, *quiz.LectureID)
	if err != nil {
		return err
	}
	if !completed {
		return util.ErrLectureNotCompleted
	}
	return nil
}

// GetQuizForUser returns the quiz with questions and answers, provided
// the gate allows it.
func (s *QuizService) GetQuizForUser(userID, quizID uint) (*model.Quiz, error) {
	if err := s.CanStartQuiz(userID, quizID); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindWithContent(quizID)
}

// GetQuizByLectureForUser resolves a lecture's quiz through the same
// gate.
func (s *QuizService) GetQuizByLectureForUser(userID, lectureID uint) (*model.Quiz, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByLecture(lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	return s.GetQuizForUser(userID, quiz.ID)
}

type QuizInput struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	LectureID   uint       `json:"lectureId" binding:"required"`
	AvailableAt *time.Time `json:"availableAt"`
	DueAt       *time.Time `json:"dueAt"`
}

// CreateQuiz attaches a quiz to a lecture of the course. One quiz per
// lecture; the unique key reports a second one as a conflict.
func (s *QuizService) CreateQuiz(courseID uint, input QuizInput) (*model.Quiz, error) {
	lecture, err := s.LectureRepo.FindByID(input.LectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}
	if lecture.CourseID != courseID {
		return nil, util.NewValidationError("lectureId", "lecture does not belong to this course")
	}

	if input.AvailableAt != nil && input.DueAt != nil && input.DueAt.Before(*input.AvailableAt) {
		return nil, util.NewValidationError("dueAt", "must not be before availableAt")
	}

	lectureID := input.LectureID
	quiz := &model.Quiz{
		CourseID:    courseID,
		LectureID:   &lectureID,
		Title:       input.Title,
		Description: input.Description,
		AvailableAt: input.AvailableAt,
		DueAt:       input.DueAt,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrLectureHasQuiz
		}
		return nil, err
	}
	return quiz, nil
}

// ListCourseQuizzes returns the course's quizzes with question counts.
func (s *QuizService) ListCourseQuizzes(courseID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByCourse(courseID)
}

type AnswerInput struct {
	Body      string `json:"body" binding:"required"`
	IsCorrect *bool  `json:"isCorrect" binding:"required"`
}

type QuestionInput struct {
	Body     string        `json:"body" binding:"required"`
	Points   int           `json:"points" binding:"required"`
	Position int           `json:"position"`
	Answers  []AnswerInput `json:"answers" binding:"required,dive"`
}

// AddQuestion creates a multiple-choice question with its answer set.
func (s *QuizService) AddQuestion(quizID uint, input QuestionInput) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	if input.Points < 1 {
		return nil, util.NewValidationError("points", "must be at least 1")
	}
	if len(input.Answers) < 2 {
		return nil, util.NewValidationError("answers", "a question needs at least 2 answers")
	}

	question := &model.Question{
		QuizID:   quizID,
		Body:     input.Body,
		Points:   input.Points,
		Position: input.Position,
		Type:     model.QuestionTypeMCQ,
	}
	for _, a := range input.Answers {
		question.Answers = append(question.Answers, model.Answer{
			Body:      a.Body,
			IsCorrect: a.IsCorrect != nil && *a.IsCorrect,
		})
	}

	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

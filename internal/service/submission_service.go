package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionService grades quiz submissions. Scoring is deterministic
// and binary per question; a submission is written at most once per
// (learner, quiz).
type SubmissionService struct {
	QuizRepo       *repository.QuizRepository
	SubmissionRepo *repository.SubmissionRepository
	Gate           *QuizService
	Leaderboard    *LeaderboardService
}

func NewSubmissionService(
	quizRepo *repository.QuizRepository,
	submissionRepo *repository.SubmissionRepository,
	gate *QuizService,
	leaderboard *LeaderboardService,
) *SubmissionService {
	return &SubmissionService{
		QuizRepo:       quizRepo,
		SubmissionRepo: submissionRepo,
		Gate:           gate,
		Leaderboard:    leaderboard,
	}
}

// Submit validates and grades an answer set, then persists one
// immutable submission row.
//
// Order matters: the gate runs again here regardless of any earlier
// content read; the payload must cover every question exactly once
// before any scoring happens; and the final insert relies on the
// (quiz, user) unique key, so a concurrent duplicate ends as a
// conflict rather than a second row. MaxScore is fixed at submission
// time and never recomputed.
func (s *SubmissionService) Submit(ctx context.Context, userID, quizID uint, pairs []model.AnswerPair) (*model.Submission, error) {
	quiz, err := s.QuizRepo.FindWithContent(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	if err := s.Gate.CanStartQuiz(userID, quizID); err != nil {
		return nil, err
	}

	exists, err := s.SubmissionRepo.Exists(userID, quizID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrQuizAlreadySubmitted
	}

	score, maxScore, err := scoreSubmission(quiz.Questions, pairs)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		QuizID:      quizID,
		UserID:      userID,
		Score:       score,
		MaxScore:    maxScore,
		Answers:     pairs,
		SubmittedAt: time.Now(),
	}
	if err := s.SubmissionRepo.Create(submission); err != nil {
		// A concurrent submit won the race on the unique key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrQuizAlreadySubmitted
		}
		return nil, err
	}

	s.Leaderboard.Invalidate(ctx)

	logger.Log.Info("quiz submitted",
		zap.Uint("user_id", userID),
		zap.Uint("quiz_id", quizID),
		zap.Int("score", score),
		zap.Int("max_score", maxScore),
	)
	return submission, nil
}

// scoreSubmission grades the pairs against the authoritative question
// set. Fail closed: an incomplete, duplicated or misreferenced payload
// is rejected before a single point is counted.
func scoreSubmission(questions []model.Question, pairs []model.AnswerPair) (score, maxScore int, err error) {
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
		maxScore += questions[i].Points
	}

	if len(pairs) != len(questions) {
		return 0, 0, util.NewValidationError("answers",
			fmt.Sprintf("quiz has %d questions, got %d answers", len(questions), len(pairs)))
	}

	answered := make(map[uint]bool, len(pairs))
	for i, pair := range pairs {
		question, ok := byID[pair.QuestionID]
		if !ok {
			return 0, 0, util.NewValidationError(
				fmt.Sprintf("answers[%d].question_id", i), "question does not belong to this quiz")
		}
		if answered[pair.QuestionID] {
			return 0, 0, util.NewValidationError(
				fmt.Sprintf("answers[%d].question_id", i), "question answered more than once")
		}
		answered[pair.QuestionID] = true

		var chosen *model.Answer
		for j := range question.Answers {
			if question.Answers[j].ID == pair.AnswerID {
				chosen = &question.Answers[j]
				break
			}
		}
		if chosen == nil {
			return 0, 0, util.NewValidationError(
				fmt.Sprintf("answers[%d].answer_id", i), "answer does not belong to this question")
		}

		if chosen.IsCorrect {
			score += question.Points
		}
	}

	return score, maxScore, nil
}

// Result returns the learner's stored submission for a quiz.
func (s *SubmissionService) Result(userID, quizID uint) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

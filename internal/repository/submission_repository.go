package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Create inserts the submission row. A second submission for the same
// (quiz, user) hits the unique key and comes back as
// gorm.ErrDuplicatedKey; callers translate that to the conflict
// outcome.
func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) Exists(userID, quizID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubmissionRepository) FindByUserAndQuiz(userID, quizID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// SumScoreByUser totals a user's submission scores for the points
// projection.
func (r *SubmissionRepository) SumScoreByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Submission{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(score), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SubmissionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

// Upsert inserts a completion or refreshes its timestamp when the
// (user, lecture) row already exists. Concurrent calls for the same key
// converge on one row via the unique index.
func (r *CompletionRepository) Upsert(userID, lectureID uint, at time.Time) error {
	completion := model.LectureCompletion{
		UserID:      userID,
		LectureID:   lectureID,
		CompletedAt: at,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lecture_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed_at", "updated_at"}),
	}).Create(&completion).Error
}

func (r *CompletionRepository) Exists(userID, lectureID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LectureCompletion{}).
		Where("user_id = ? AND lecture_id = ?", userID, lectureID).
		Count(&count).Error
	return count > 0, err
}

// CountByUserAndLectures counts the user's completions within the given
// lecture set. Distinct lectures by construction of the unique index.
func (r *CompletionRepository) CountByUserAndLectures(userID uint, lectureIDs []uint) (int64, error) {
	if len(lectureIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.LectureCompletion{}).
		Where("user_id = ? AND lecture_id IN ?", userID, lectureIDs).
		Count(&count).Error
	return count, err
}

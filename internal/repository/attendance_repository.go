package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(attendance *model.Attendance) error {
	return r.DB.Create(attendance).Error
}

func (r *AttendanceRepository) Exists(userID, lectureID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).
		Where("user_id = ? AND lecture_id = ?", userID, lectureID).
		Count(&count).Error
	return count > 0, err
}

// CountByUser counts raw attendance rows for a user.
func (r *AttendanceRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountDistinctLecturesByUser counts attendance deduplicated per
// lecture, the alternative leaderboard policy.
func (r *AttendanceRepository) CountDistinctLecturesByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).
		Where("user_id = ?", userID).
		Distinct("lecture_id").
		Count(&count).Error
	return count, err
}

func (r *AttendanceRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).Count(&count).Error
	return count, err
}

func (r *AttendanceRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

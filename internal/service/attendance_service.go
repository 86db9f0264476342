package service

import (
	"context"
	"errors"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	LectureRepo    *repository.LectureRepository
	Leaderboard    *LeaderboardService
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	lectureRepo *repository.LectureRepository,
	leaderboard *LeaderboardService,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		LectureRepo:    lectureRepo,
		Leaderboard:    leaderboard,
	}
}

// Attend records presence at a lecture; attending the same lecture
// twice is a conflict.
func (s *AttendanceService) Attend(ctx context.Context, userID, lectureID uint) (*model.Attendance, error) {
	if _, err := s.LectureRepo.FindByID(lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	exists, err := s.AttendanceRepo.Exists(userID, lectureID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyAttended
	}

	attendance := &model.Attendance{
		UserID:     userID,
		LectureID:  lectureID,
		AttendedAt: time.Now(),
	}
	if err := s.AttendanceRepo.Create(attendance); err != nil {
		return nil, err
	}

	s.Leaderboard.Invalidate(ctx)
	return attendance, nil
}

package service

import (
	"errors"
	"math"
	"time"

	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressService tracks lecture completion per course. Progress is a
// read-time projection over completion rows; the percentage is display
// data only and never feeds the quiz gate.
type ProgressService struct {
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	CompletionRepo *repository.CompletionRepository
}

func NewProgressService(
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	completionRepo *repository.CompletionRepository,
) *ProgressService {
	return &ProgressService{
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		CompletionRepo: completionRepo,
	}
}

type CourseProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type CompletionResult struct {
	LectureID   uint           `json:"lectureId"`
	IsCompleted bool           `json:"isCompleted"`
	Progress    CourseProgress `json:"progress"`
}

// MarkLectureComplete upserts the (user, lecture) completion and
// returns the freshly recomputed course progress. Calling it N times
// leaves the same observable state as calling it once.
func (s *ProgressService) MarkLectureComplete(userID, lectureID uint) (*CompletionResult, error) {
	lecture, err := s.LectureRepo.FindByID(lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLectureNotFound
		}
		return nil, err
	}

	if err := s.CompletionRepo.Upsert(userID, lectureID, time.Now()); err != nil {
		return nil, err
	}

	progress, err := s.progressData(userID, lecture.CourseID)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{
		LectureID:   lectureID,
		IsCompleted: true,
		Progress:    *progress,
	}, nil
}

// CourseProgress reports completed/total lecture counts and a
// percentage rounded half-up to one decimal (0 for an empty course).
func (s *ProgressService) CourseProgress(userID, courseID uint) (*CourseProgress, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.progressData(userID, courseID)
}

func (s *ProgressService) progressData(userID, courseID uint) (*CourseProgress, error) {
	lectureIDs, err := s.LectureRepo.IDsByCourse(courseID)
	if err != nil {
		return nil, err
	}

	completed, err := s.CompletionRepo.CountByUserAndLectures(userID, lectureIDs)
	if err != nil {
		return nil, err
	}

	total := len(lectureIDs)
	var percentage float64
	if total > 0 {
		percentage = roundToOneDecimal(float64(completed) / float64(total) * 100)
	}

	return &CourseProgress{
		Completed:  int(completed),
		Total:      total,
		Percentage: percentage,
	}, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

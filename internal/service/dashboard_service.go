package service

import (
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

// DashboardService aggregates admin-facing counts. Pure read-time
// projections, recomputed per call.
type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	LectureRepo    *repository.LectureRepository
	AttendanceRepo *repository.AttendanceRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	lectureRepo *repository.LectureRepository,
	attendanceRepo *repository.AttendanceRepository,
	submissionRepo *repository.SubmissionRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		LectureRepo:    lectureRepo,
		AttendanceRepo: attendanceRepo,
		SubmissionRepo: submissionRepo,
	}
}

type UserStats struct {
	Total       int64 `json:"total"`
	Students    int64 `json:"students"`
	Moderators  int64 `json:"moderators"`
	NewThisWeek int64 `json:"newThisWeek"`
}

type CourseStats struct {
	Total         int64 `json:"total"`
	TotalLectures int64 `json:"totalLectures"`
}

type ActivityStats struct {
	Total    int64 `json:"total"`
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"thisWeek"`
}

type SubmissionStats struct {
	Total    int64 `json:"total"`
	ThisWeek int64 `json:"thisWeek"`
}

type DashboardStats struct {
	Users          UserStats                       `json:"users"`
	Courses        CourseStats                     `json:"courses"`
	Attendance     ActivityStats                   `json:"attendance"`
	Submissions    SubmissionStats                 `json:"submissions"`
	RecentStudents []model.User                    `json:"recentStudents"`
	TopCourses     []repository.CourseLectureCount `json:"topCourses"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{}

	var err error
	if stats.Users.Total, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Users.Students, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if stats.Users.Moderators, err = s.UserRepo.CountByRole(model.Moderator); err != nil {
		return nil, err
	}
	if stats.Users.NewThisWeek, err = s.UserRepo.CountCreatedSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.Courses.Total, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Courses.TotalLectures, err = s.LectureRepo.Count(); err != nil {
		return nil, err
	}

	if stats.Attendance.Total, err = s.AttendanceRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Attendance.Today, err = s.AttendanceRepo.CountSince(midnight); err != nil {
		return nil, err
	}
	if stats.Attendance.ThisWeek, err = s.AttendanceRepo.CountSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.Submissions.Total, err = s.SubmissionRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Submissions.ThisWeek, err = s.SubmissionRepo.CountSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.RecentStudents, err = s.UserRepo.RecentStudents(5); err != nil {
		return nil, err
	}
	if stats.TopCourses, err = s.CourseRepo.TopByLectureCount(5); err != nil {
		return nil, err
	}

	return stats, nil
}

package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	attendancePointWeight = 100
	quizPointWeight       = 50

	leaderboardCacheKey = "leaderboard:v1"
)

// LeaderboardService derives the points ranking from stored attendance
// and submission facts. Nothing is persisted: every uncached call
// recomputes, so corrections to the underlying rows show up on the
// next read. The optional redis cache is invalidated explicitly by the
// attendance, submission and completion write paths.
type LeaderboardService struct {
	UserRepo       *repository.UserRepository
	AttendanceRepo *repository.AttendanceRepository
	SubmissionRepo *repository.SubmissionRepository

	// CountDistinctLectures switches attendance counting from raw rows
	// to one per lecture (see config).
	CountDistinctLectures bool

	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewLeaderboardService(
	userRepo *repository.UserRepository,
	attendanceRepo *repository.AttendanceRepository,
	submissionRepo *repository.SubmissionRepository,
	countDistinctLectures bool,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *LeaderboardService {
	return &LeaderboardService{
		UserRepo:              userRepo,
		AttendanceRepo:        attendanceRepo,
		SubmissionRepo:        submissionRepo,
		CountDistinctLectures: countDistinctLectures,
		rdb:                   rdb,
		cacheTTL:              cacheTTL,
	}
}

type LeaderboardEntry struct {
	UserID          uint   `json:"userId"`
	Name            string `json:"name"`
	Points          int64  `json:"points"`
	AttendanceCount int64  `json:"attendanceCount"`
	QuizPoints      int64  `json:"quizPoints"`
}

// Leaderboard ranks students by points = attendance×100 + quiz score
// sum×50, descending, ties broken by user id ascending.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	students, err := s.UserRepo.FindByRole(model.Student)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(students))
	for _, student := range students {
		var attendanceCount int64
		if s.CountDistinctLectures {
			attendanceCount, err = s.AttendanceRepo.CountDistinctLecturesByUser(student.ID)
		} else {
			attendanceCount, err = s.AttendanceRepo.CountByUser(student.ID)
		}
		if err != nil {
			return nil, err
		}

		scoreSum, err := s.SubmissionRepo.SumScoreByUser(student.ID)
		if err != nil {
			return nil, err
		}

		quizPoints := scoreSum * quizPointWeight
		entries = append(entries, LeaderboardEntry{
			UserID:          student.ID,
			Name:            student.Name,
			Points:          attendanceCount*attendancePointWeight + quizPoints,
			AttendanceCount: attendanceCount,
			QuizPoints:      quizPoints,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	s.toCache(ctx, entries)
	return entries, nil
}

// Invalidate drops the cached ranking. Called by writes to attendance,
// submissions and completions; a no-op when caching is off.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.rdb.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}

func (s *LeaderboardService) fromCache(ctx context.Context) ([]LeaderboardEntry, bool) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) toCache(ctx context.Context, entries []LeaderboardEntry) {
	if s.rdb == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, leaderboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}

package service

import (
	"context"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttend(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repos := newTestRepos(db)
	leaderboard := NewLeaderboardService(repos.user, repos.attendance, repos.submission, false, nil, 0)
	svc := NewAttendanceService(repos.attendance, repos.lecture, leaderboard)

	student := seedUser(t, db, "alice", model.Student)
	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	lecture := seedLecture(t, db, course.ID, 1)
	second := seedLecture(t, db, course.ID, 2)

	t.Run("records attendance", func(t *testing.T) {
		attendance, err := svc.Attend(ctx, student.ID, lecture.ID)
		require.NoError(t, err)
		assert.Equal(t, lecture.ID, attendance.LectureID)
		assert.False(t, attendance.AttendedAt.IsZero())
	})

	t.Run("same lecture twice conflicts", func(t *testing.T) {
		_, err := svc.Attend(ctx, student.ID, lecture.ID)
		assert.ErrorIs(t, err, util.ErrAlreadyAttended)
	})

	t.Run("another lecture is fine", func(t *testing.T) {
		_, err := svc.Attend(ctx, student.ID, second.ID)
		require.NoError(t, err)

		count, err := repos.attendance.CountByUser(student.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("unknown lecture", func(t *testing.T) {
		_, err := svc.Attend(ctx, student.ID, 9999)
		assert.ErrorIs(t, err, util.ErrLectureNotFound)
	})
}

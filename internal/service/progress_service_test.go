package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService(repos *testRepos) *ProgressService {
	return NewProgressService(repos.course, repos.lecture, repos.completion)
}

func TestMarkLectureComplete(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newProgressService(repos)

	student := seedUser(t, db, "alice", model.Student)
	course := seedCourse(t, db, seedUser(t, db, "prof", model.Admin).ID)
	first := seedLecture(t, db, course.ID, 1)
	seedLecture(t, db, course.ID, 2)
	seedLecture(t, db, course.ID, 3)

	t.Run("first completion advances progress", func(t *testing.T) {
		result, err := svc.MarkLectureComplete(student.ID, first.ID)
		require.NoError(t, err)

		assert.True(t, result.IsCompleted)
		assert.Equal(t, 1, result.Progress.Completed)
		assert.Equal(t, 3, result.Progress.Total)
		assert.Equal(t, 33.3, result.Progress.Percentage)
	})

	t.Run("repeat completion is idempotent", func(t *testing.T) {
		result, err := svc.MarkLectureComplete(student.ID, first.ID)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Progress.Completed)
		assert.Equal(t, 33.3, result.Progress.Percentage)

		var rows int64
		require.NoError(t, db.Model(&model.LectureCompletion{}).
			Where("user_id = ? AND lecture_id = ?", student.ID, first.ID).
			Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("unknown lecture", func(t *testing.T) {
		_, err := svc.MarkLectureComplete(student.ID, 9999)
		assert.ErrorIs(t, err, util.ErrLectureNotFound)
	})
}

func TestCourseProgress(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newProgressService(repos)

	student := seedUser(t, db, "bob", model.Student)
	admin := seedUser(t, db, "prof", model.Admin)
	course := seedCourse(t, db, admin.ID)

	t.Run("empty course reports zero percent", func(t *testing.T) {
		progress, err := svc.CourseProgress(student.ID, course.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, progress.Total)
		assert.Equal(t, 0, progress.Completed)
		assert.Equal(t, 0.0, progress.Percentage)
	})

	t.Run("all lectures completed", func(t *testing.T) {
		a := seedLecture(t, db, course.ID, 1)
		b := seedLecture(t, db, course.ID, 2)

		_, err := svc.MarkLectureComplete(student.ID, a.ID)
		require.NoError(t, err)
		_, err = svc.MarkLectureComplete(student.ID, b.ID)
		require.NoError(t, err)

		progress, err := svc.CourseProgress(student.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, progress.Completed)
		assert.Equal(t, 100.0, progress.Percentage)
	})

	t.Run("other course does not leak in", func(t *testing.T) {
		other := seedCourse(t, db, admin.ID)
		seedLecture(t, db, other.ID, 1)

		progress, err := svc.CourseProgress(student.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, progress.Completed)
		assert.Equal(t, 1, progress.Total)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.CourseProgress(student.ID, 9999)
		assert.ErrorIs(t, err, util.ErrCourseNotFound)
	})
}

func TestRoundToOneDecimal(t *testing.T) {
	assert.Equal(t, 33.3, roundToOneDecimal(100.0/3))
	assert.Equal(t, 66.7, roundToOneDecimal(200.0/3))
	assert.Equal(t, 50.0, roundToOneDecimal(50))
}

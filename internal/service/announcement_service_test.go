package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnnouncementService(repos *testRepos) *AnnouncementService {
	return NewAnnouncementService(repos.announcement, repos.notification, repos.user)
}

func TestAnnouncementCreateAndFanOut(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAnnouncementService(repos)
	feeds := NewNotificationService(repos.notification)

	admin := seedUser(t, db, "prof", model.Admin)
	alice := seedUser(t, db, "alice", model.Student)
	bob := seedUser(t, db, "bob", model.Student)
	carol := seedUser(t, db, "carol", model.Student)

	t.Run("fan-out reaches every student and nobody else", func(t *testing.T) {
		announcement, notified, err := svc.Create(AnnouncementInput{
			Title:            "Exam moved",
			Message:          "Now on Friday",
			Type:             model.AnnouncementTypeGeneral,
			SendNotification: true,
		}, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, notified)

		for _, student := range []*model.User{alice, bob, carol} {
			feed, err := feeds.FeedForUser(student.ID)
			require.NoError(t, err)
			require.Len(t, feed.Notifications, 1)

			n := feed.Notifications[0]
			assert.Equal(t, "Exam moved", n.Title)
			assert.False(t, n.IsRead)
			assert.Equal(t, model.NotificationTypeGeneral, n.Type)
			require.NotNil(t, n.AnnouncementID)
			assert.Equal(t, announcement.ID, *n.AnnouncementID)
			assert.Equal(t, int64(1), feed.UnreadCount)
		}

		adminFeed, err := feeds.FeedForUser(admin.ID)
		require.NoError(t, err)
		assert.Empty(t, adminFeed.Notifications)
	})

	t.Run("without the flag nothing is sent", func(t *testing.T) {
		_, notified, err := svc.Create(AnnouncementInput{
			Title: "Quiet note",
			Type:  model.AnnouncementTypeGeneral,
		}, admin.ID)
		require.NoError(t, err)
		assert.Zero(t, notified)

		feed, err := feeds.FeedForUser(alice.ID)
		require.NoError(t, err)
		assert.Len(t, feed.Notifications, 1)
	})

	t.Run("lecture schedule maps to lecture reminder", func(t *testing.T) {
		_, _, err := svc.Create(AnnouncementInput{
			Title:            "Next session",
			Type:             model.AnnouncementTypeLectureSchedule,
			SendNotification: true,
		}, admin.ID)
		require.NoError(t, err)

		feed, err := feeds.FeedForUser(alice.ID)
		require.NoError(t, err)
		// Newest first.
		assert.Equal(t, model.NotificationTypeLectureReminder, feed.Notifications[0].Type)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, _, err := svc.Create(AnnouncementInput{
			Title: "Bad",
			Type:  "broadcast",
		}, admin.ID)
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "type", vErr.Field)
	})
}

func TestNotifyAllStudentsRepeats(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAnnouncementService(repos)
	feeds := NewNotificationService(repos.notification)

	admin := seedUser(t, db, "prof", model.Admin)
	alice := seedUser(t, db, "alice", model.Student)

	announcement, _, err := svc.Create(AnnouncementInput{
		Title:            "Reminder",
		Type:             model.AnnouncementTypeReminder,
		SendNotification: true,
	}, admin.ID)
	require.NoError(t, err)

	// An explicit resend is a fresh batch, not a replay.
	notified, err := svc.NotifyAllStudents(announcement.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	feed, err := feeds.FeedForUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, feed.Notifications, 2)
	assert.Equal(t, int64(2), feed.UnreadCount)

	_, err = svc.NotifyAllStudents(9999)
	assert.ErrorIs(t, err, util.ErrAnnouncementNotFound)
}

func TestNotificationReadFlow(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	announcements := newAnnouncementService(repos)
	feeds := NewNotificationService(repos.notification)

	admin := seedUser(t, db, "prof", model.Admin)
	alice := seedUser(t, db, "alice", model.Student)
	bob := seedUser(t, db, "bob", model.Student)

	announcement, _, err := announcements.Create(AnnouncementInput{
		Title:            "Hello",
		Type:             model.AnnouncementTypeGeneral,
		SendNotification: true,
	}, admin.ID)
	require.NoError(t, err)

	aliceFeed, err := feeds.FeedForUser(alice.ID)
	require.NoError(t, err)
	target := aliceFeed.Notifications[0]

	t.Run("recipient can mark read, twice", func(t *testing.T) {
		require.NoError(t, feeds.MarkRead(alice.ID, target.ID))
		require.NoError(t, feeds.MarkRead(alice.ID, target.ID))

		feed, err := feeds.FeedForUser(alice.ID)
		require.NoError(t, err)
		assert.True(t, feed.Notifications[0].IsRead)
		assert.Equal(t, int64(0), feed.UnreadCount)
	})

	t.Run("others cannot touch it", func(t *testing.T) {
		err := feeds.MarkRead(bob.ID, target.ID)
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("mark all read", func(t *testing.T) {
		_, err := announcements.NotifyAllStudents(announcement.ID)
		require.NoError(t, err)

		require.NoError(t, feeds.MarkAllRead(alice.ID))
		feed, err := feeds.FeedForUser(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), feed.UnreadCount)
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := feeds.MarkRead(alice.ID, 9999)
		assert.ErrorIs(t, err, util.ErrNotificationNotFound)
	})
}

func TestAnnouncementLifecycle(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAnnouncementService(repos)

	admin := seedUser(t, db, "prof", model.Admin)

	past := time.Now().Add(-time.Hour)
	soon := time.Now().Add(time.Hour)
	later := time.Now().Add(2 * time.Hour)

	stale, _, err := svc.Create(AnnouncementInput{
		Title: "Yesterday's lecture", Type: model.AnnouncementTypeLectureSchedule, ScheduledAt: &past,
	}, admin.ID)
	require.NoError(t, err)

	next, _, err := svc.Create(AnnouncementInput{
		Title: "Upcoming lecture", Type: model.AnnouncementTypeLectureSchedule, ScheduledAt: &soon,
	}, admin.ID)
	require.NoError(t, err)

	_, _, err = svc.Create(AnnouncementInput{
		Title: "Far lecture", Type: model.AnnouncementTypeLectureSchedule, ScheduledAt: &later,
	}, admin.ID)
	require.NoError(t, err)

	t.Run("next schedule picks the soonest upcoming", func(t *testing.T) {
		got, err := svc.NextSchedule()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, next.ID, got.ID)
	})

	t.Run("deactivate past retires stale schedules", func(t *testing.T) {
		require.NoError(t, svc.DeactivatePast())

		var reloaded model.Announcement
		require.NoError(t, db.First(&reloaded, stale.ID).Error)
		assert.False(t, reloaded.IsActive)

		var upcoming model.Announcement
		require.NoError(t, db.First(&upcoming, next.ID).Error)
		assert.True(t, upcoming.IsActive)
	})

	t.Run("update changes only the given fields", func(t *testing.T) {
		title := "Moved lecture"
		updated, err := svc.Update(next.ID, AnnouncementUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Moved lecture", updated.Title)
		assert.Equal(t, model.AnnouncementTypeLectureSchedule, updated.Type)
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, svc.Delete(stale.ID))
		err := svc.Delete(stale.ID)
		assert.ErrorIs(t, err, util.ErrAnnouncementNotFound)
	})
}

func TestNextScheduleEmpty(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAnnouncementService(repos)
	_ = db

	got, err := svc.NextSchedule()
	require.NoError(t, err)
	assert.Nil(t, got)
}

package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteCast(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewVoteService(repos.vote)

	alice := seedUser(t, db, "alice", model.Student)
	bob := seedUser(t, db, "bob", model.Student)

	t.Run("first vote counts", func(t *testing.T) {
		summary, err := svc.Cast(alice.ID, model.VoteTypeSchedule, "online")
		require.NoError(t, err)

		assert.Equal(t, int64(1), summary.Totals[model.VoteTypeSchedule]["online"])
		require.NotNil(t, summary.MyVotes[model.VoteTypeSchedule])
		assert.Equal(t, "online", *summary.MyVotes[model.VoteTypeSchedule])
	})

	t.Run("revote replaces, never adds", func(t *testing.T) {
		summary, err := svc.Cast(alice.ID, model.VoteTypeSchedule, "thursday_4")
		require.NoError(t, err)

		assert.Equal(t, int64(1), summary.Totals[model.VoteTypeSchedule]["thursday_4"])
		assert.Zero(t, summary.Totals[model.VoteTypeSchedule]["online"])
		assert.Equal(t, "thursday_4", *summary.MyVotes[model.VoteTypeSchedule])

		var rows int64
		require.NoError(t, db.Model(&model.Vote{}).
			Where("user_id = ?", alice.ID).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("categories are independent", func(t *testing.T) {
		summary, err := svc.Cast(alice.ID, model.VoteTypeAttendance, "yes")
		require.NoError(t, err)

		assert.Equal(t, "thursday_4", *summary.MyVotes[model.VoteTypeSchedule])
		assert.Equal(t, "yes", *summary.MyVotes[model.VoteTypeAttendance])
	})

	t.Run("tallies aggregate across users", func(t *testing.T) {
		summary, err := svc.Cast(bob.ID, model.VoteTypeSchedule, "thursday_4")
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Totals[model.VoteTypeSchedule]["thursday_4"])
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.Cast(alice.ID, "lunch", "pizza")
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "type", vErr.Field)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := svc.Cast(alice.ID, model.VoteTypeSchedule, "friday_9")
		var vErr *util.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "value", vErr.Field)
	})
}

func TestVoteSummaryWithoutVotes(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewVoteService(repos.vote)

	alice := seedUser(t, db, "alice", model.Student)

	summary, err := svc.Summary(alice.ID)
	require.NoError(t, err)

	assert.Nil(t, summary.MyVotes[model.VoteTypeSchedule])
	assert.Nil(t, summary.MyVotes[model.VoteTypeAttendance])
	assert.Empty(t, summary.Totals[model.VoteTypeSchedule])
}

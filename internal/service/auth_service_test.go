package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repos *testRepos) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repos.user, cfg)
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAuthService(repos)

	t.Run("hashes the password and defaults to student", func(t *testing.T) {
		user := &model.User{Name: "alice", Email: "alice@example.com", Password: "hunter22+1"}
		require.NoError(t, svc.Register(user))

		stored, err := repos.user.FindByEmail("alice@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "hunter22+1", stored.Password)
		assert.Equal(t, model.Student, stored.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		err := svc.Register(&model.User{Name: "imposter", Email: "alice@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := newAuthService(repos)

	require.NoError(t, svc.Register(&model.User{Name: "alice", Email: "alice@example.com", Password: "hunter22+1"}))

	t.Run("valid credentials return a parsable token", func(t *testing.T) {
		token, user, err := svc.Login("alice@example.com", "hunter22+1")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, model.Student, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "whatever")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

package service

import (
	"testing"

	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowlist = []string{"EDU-7K9D-2X3F", "EDU-Z4LQ-8W1N"}

func newAuthFixture(t *testing.T) (AuthService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewAuthService(testAllowlist,
		repository.NewAccessCodeRepository(store),
		repository.NewSessionRepository(store))
	return svc, store
}

func TestValidateAccessCode(t *testing.T) {
	svc, _ := newAuthFixture(t)

	assert.True(t, svc.ValidateAccessCode("EDU-7K9D-2X3F"))
	assert.True(t, svc.ValidateAccessCode("edu-7k9d-2x3f"), "validation is case-insensitive")
	assert.False(t, svc.ValidateAccessCode("EDU-7K9D-2X3"), "no partial matching")
	assert.False(t, svc.ValidateAccessCode(""))
	assert.False(t, svc.ValidateAccessCode("EDU-0000-0000"))
}

func TestLoginInvalidCode(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Login("a@x.com", "alice", "secret", "NOT-A-CODE")
	require.ErrorIs(t, err, model.ErrInvalidAccessCode)
	assert.Nil(t, user)
	assert.False(t, svc.IsAuthenticated())
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Login("a@x.com", "alice", "secret", "edu-7k9d-2x3f")
	require.NoError(t, err, "valid code in any case logs in")
	require.NotNil(t, user)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "edu-7k9d-2x3f", user.AccessCode)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, user, svc.CurrentSession())
}

func TestLoginCodeBoundToDifferentEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login("a@x.com", "alice", "secret", "edu-7k9d-2x3f")
	require.NoError(t, err)

	user, err := svc.Login("b@x.com", "bob", "secret", "EDU-7K9D-2X3F")
	require.ErrorIs(t, err, model.ErrAccessCodeConflict)
	assert.Nil(t, user)

	// The other allowlisted code is still free.
	user, err = svc.Login("b@x.com", "bob", "secret", "EDU-Z4LQ-8W1N")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", user.Email)
}

func TestLoginSameEmailReusesCode(t *testing.T) {
	svc, store := newAuthFixture(t)
	codeRepo := repository.NewAccessCodeRepository(store)

	_, err := svc.Login("a@x.com", "alice", "secret", "EDU-7K9D-2X3F")
	require.NoError(t, err)
	_, err = svc.Login("a@x.com", "alice", "secret", "EDU-7K9D-2X3F")
	require.NoError(t, err)

	// Bindings are append-only and not deduplicated.
	bindings, err := codeRepo.All()
	require.NoError(t, err)
	assert.Len(t, bindings, 2)
	for _, b := range bindings {
		assert.Equal(t, "a@x.com", b.Email)
	}
}

func TestLogoutKeepsBindings(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login("a@x.com", "alice", "secret", "EDU-7K9D-2X3F")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentSession())

	// Re-login with the same email and code succeeds after logout.
	_, err = svc.Login("a@x.com", "alice", "secret", "EDU-7K9D-2X3F")
	require.NoError(t, err)

	// And a different email is still rejected.
	_, err = svc.Login("b@x.com", "bob", "secret", "EDU-7K9D-2X3F")
	require.ErrorIs(t, err, model.ErrAccessCodeConflict)
}

func TestRestoreSessionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	codeRepo := repository.NewAccessCodeRepository(store)
	sessionRepo := repository.NewSessionRepository(store)

	first := NewAuthService(testAllowlist, codeRepo, sessionRepo)
	user, err := first.Login("a@x.com", "alice", "secret", "EDU-7K9D-2X3F")
	require.NoError(t, err)

	// A fresh service over the same store simulates a process restart.
	second := NewAuthService(testAllowlist, codeRepo, sessionRepo)
	restored, err := second.RestoreSession()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, user, restored)
	assert.True(t, second.IsAuthenticated())
}

func TestRestoreSessionAbsent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	restored, err := svc.RestoreSession()
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.False(t, svc.IsAuthenticated())
}

func TestRestoreSessionMalformed(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyUser, "not a user record"))

	svc := NewAuthService(testAllowlist,
		repository.NewAccessCodeRepository(store),
		repository.NewSessionRepository(store))

	restored, err := svc.RestoreSession()
	require.NoError(t, err, "a malformed record is treated as absent, not an error")
	assert.Nil(t, restored)
}

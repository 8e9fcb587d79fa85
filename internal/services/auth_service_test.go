package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"folio_backend/internal/auth"
	"folio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, users ...*models.User) (AuthService, *fakeUserRepo, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret-0123456789abcdef", time.Hour)
	require.NoError(t, err)
	repo := newFakeUserRepo(users...)
	return NewAuthService(repo, tokens), repo, tokens
}

func TestAuthService_SignInExistingUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := &models.User{Email: "jane@example.com", Username: "jane.doe"}
	svc, repo, tokens := newAuthFixture(t, existing)

	token, err := svc.SignIn(ctx, nil, &auth.ExternalIdentity{Email: "jane@example.com", DisplayName: "Jane"})
	require.NoError(t, err)

	principal, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, principal.UserID)
	assert.Equal(t, "jane@example.com", principal.Email)
	assert.Len(t, repo.byID, 1, "no new account for a known email")
}

func TestAuthService_FirstSignInProvisionsAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, repo, tokens := newAuthFixture(t)

	token, err := svc.SignIn(ctx, nil, &auth.ExternalIdentity{
		Email:       "New.User@Example.com",
		DisplayName: "New User",
		AvatarURL:   "https://avatars.example.com/u/1",
	})
	require.NoError(t, err)

	principal, err := tokens.Parse(token)
	require.NoError(t, err)

	created, err := repo.FindByID(nil, principal.UserID)
	require.NoError(t, err)
	assert.Equal(t, "New.User@Example.com", created.Email)
	assert.Equal(t, "new.user", created.Username, "username derives from the lowercased email local part")
	assert.Equal(t, "New User", created.DisplayName)
	assert.Equal(t, "https://avatars.example.com/u/1", created.ImageURL)
}

func TestAuthService_ProvisionRetriesOnUsernameCollision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	taken := &models.User{Email: "jane@other.com", Username: "jane"}
	svc, repo, tokens := newAuthFixture(t, taken)

	token, err := svc.SignIn(ctx, nil, &auth.ExternalIdentity{Email: "jane@example.com"})
	require.NoError(t, err)

	principal, err := tokens.Parse(token)
	require.NoError(t, err)

	created, err := repo.FindByID(nil, principal.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "jane", created.Username)
	assert.True(t, strings.HasPrefix(created.Username, "jane-"), "collision resolves with a suffixed username, got %q", created.Username)
}

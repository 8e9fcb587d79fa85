package services

import (
	"context"
	"strings"

	"folio_backend/internal/auth"
	"folio_backend/internal/logger"
	"folio_backend/internal/models"
	"folio_backend/internal/repositories"
	"folio_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// usernameAttempts bounds the uuid-suffix retry loop when the username
// derived from the email local part is already taken.
const usernameAttempts = 3

// AuthService completes the OAuth callback: it resolves the external
// identity to a local account (creating one on first sign-in) and issues
// the session token.
type AuthService interface {
	SignIn(ctx context.Context, db *gorm.DB, identity *auth.ExternalIdentity) (string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) SignIn(ctx context.Context, db *gorm.DB, identity *auth.ExternalIdentity) (string, error) {
	user, err := s.userRepo.FindByEmail(db, identity.Email)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.InternalError(err)
		}
		user, err = s.provision(ctx, db, identity)
		if err != nil {
			return "", err
		}
	}

	token, err := s.tokens.Generate(auth.Principal{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

func (s *authService) provision(ctx context.Context, db *gorm.DB, identity *auth.ExternalIdentity) (*models.User, error) {
	base := usernameFromEmail(identity.Email)

	candidate := base
	for attempt := 0; attempt < usernameAttempts; attempt++ {
		user := &models.User{
			Email:       identity.Email,
			Username:    candidate,
			DisplayName: identity.DisplayName,
			ImageURL:    identity.AvatarURL,
		}
		err := s.userRepo.Create(db, user)
		if err == nil {
			logger.CtxInfo(ctx, "provisioned account for first sign-in", "user_id", user.ID, "username", candidate)
			return user, nil
		}
		if !apperrors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.InternalError(err)
		}
		candidate = base + "-" + uuid.NewString()[:8]
	}

	return nil, apperrors.InternalError(repositories.ErrUsernameTaken)
}

// usernameFromEmail lowercases the local part and strips characters outside
// the allowed username alphabet.
func usernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)

	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user-" + uuid.NewString()[:8]
	}
	return b.String()
}

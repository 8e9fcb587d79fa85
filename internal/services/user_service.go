package services

import (
	"context"
	"mime/multipart"

	"folio_backend/internal/auth"
	"folio_backend/internal/dto"
	"folio_backend/internal/models"
	"folio_backend/internal/repositories"
	"folio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const avatarCategory = "avatars"

// UserService covers the owner-facing account surface: the /users/me read,
// profile updates (with optional avatar), section names, contact settings and
// the wholesale social-links replacement.
type UserService interface {
	GetMe(ctx context.Context, db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.UpdateUserRequest, avatar *multipart.FileHeader) (*models.User, error)
	UpdateSectionNames(ctx context.Context, db *gorm.DB, userID string, req *dto.SectionNamesRequest) (*models.User, error)
	GetContactSettings(ctx context.Context, db *gorm.DB, userID string) (*dto.ContactSettingsResponse, error)
	UpdateContactSettings(ctx context.Context, db *gorm.DB, userID string, req *dto.ContactSettingsRequest) (*dto.ContactSettingsResponse, error)
	ReplaceSocialLinks(ctx context.Context, db *gorm.DB, userID string, req *dto.ReplaceSocialLinksRequest) ([]models.SocialLink, error)
}

type userService struct {
	userRepo   repositories.UserRepository
	socialRepo repositories.SocialLinkRepository
	media      *MediaStore
}

func NewUserService(userRepo repositories.UserRepository, socialRepo repositories.SocialLinkRepository, media *MediaStore) UserService {
	return &userService{
		userRepo:   userRepo,
		socialRepo: socialRepo,
		media:      media,
	}
}

func (s *userService) GetMe(ctx context.Context, db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile writes only the provided fields. A username collision is
// caught by the unique constraint and surfaced as a Conflict, never by a
// read-then-write check. A failed row write after an avatar upload discards
// the fresh object.
func (s *userService) UpdateProfile(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.UpdateUserRequest, avatar *multipart.FileHeader) (*models.User, error) {
	current, err := s.userRepo.FindByID(db, principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Profession != nil {
		updates["profession"] = *req.Profession
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	var newKey string
	if avatar != nil {
		key, url, err := s.media.Put(ctx, avatarCategory, principal.Email, avatar)
		if err != nil {
			return nil, err
		}
		newKey = key
		updates["image_url"] = url
		updates["image_path"] = key
	}

	if len(updates) > 0 {
		if err := s.userRepo.Updates(db, principal.UserID, updates); err != nil {
			s.media.Discard(ctx, newKey)
			switch {
			case apperrors.Is(err, repositories.ErrUsernameTaken):
				return nil, apperrors.ErrUsernameTaken
			case apperrors.Is(err, repositories.ErrUserNotFound):
				return nil, apperrors.ErrNotFound(err)
			default:
				return nil, apperrors.InternalError(err)
			}
		}
		if newKey != "" && current.ImagePath != newKey {
			s.media.Remove(ctx, current.ImagePath, current.ImageURL)
		}
	}

	user, err := s.userRepo.FindByID(db, principal.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateSectionNames is idempotent: writing the same labels twice succeeds
// twice and leaves the row unchanged.
func (s *userService) UpdateSectionNames(ctx context.Context, db *gorm.DB, userID string, req *dto.SectionNamesRequest) (*models.User, error) {
	updates := map[string]interface{}{
		"skills_section_name":     req.SkillsSectionName,
		"experience_section_name": req.ExperienceSectionName,
		"education_section_name":  req.EducationSectionName,
		"projects_section_name":   req.ProjectsSectionName,
	}

	if err := s.userRepo.Updates(db, userID, updates); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) GetContactSettings(ctx context.Context, db *gorm.DB, userID string) (*dto.ContactSettingsResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ContactSettingsResponse{ContactToken: user.ContactToken}, nil
}

func (s *userService) UpdateContactSettings(ctx context.Context, db *gorm.DB, userID string, req *dto.ContactSettingsRequest) (*dto.ContactSettingsResponse, error) {
	if err := s.userRepo.Updates(db, userID, map[string]interface{}{"contact_token": req.ContactToken}); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ContactSettingsResponse{ContactToken: req.ContactToken}, nil
}

func (s *userService) ReplaceSocialLinks(ctx context.Context, db *gorm.DB, userID string, req *dto.ReplaceSocialLinksRequest) ([]models.SocialLink, error) {
	links := make([]models.SocialLink, 0, len(req.SocialLinks))
	for _, l := range req.SocialLinks {
		links = append(links, models.SocialLink{
			UserID:   userID,
			Platform: l.Platform,
			URL:      l.URL,
		})
	}

	if err := s.socialRepo.ReplaceAll(db, userID, links); err != nil {
		return nil, apperrors.InternalError(err)
	}

	stored, err := s.socialRepo.ListByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stored == nil {
		stored = []models.SocialLink{}
	}
	return stored, nil
}

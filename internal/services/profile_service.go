package services

import (
	"context"

	"folio_backend/internal/dto"
	"folio_backend/internal/logger"
	"folio_backend/internal/models"
	"folio_backend/internal/repositories"
	"folio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProfileService is the public read path: one username in, one aggregated
// profile document out.
type ProfileService interface {
	GetPublicProfile(ctx context.Context, db *gorm.DB, username string) (*dto.PublicProfileResponse, error)
}

type profileService struct {
	userRepo       repositories.UserRepository
	socialRepo     repositories.SocialLinkRepository
	skillRepo      repositories.CollectionRepository[models.Skill]
	experienceRepo repositories.CollectionRepository[models.ExperienceItem]
	educationRepo  repositories.CollectionRepository[models.EducationItem]
	portfolioRepo  repositories.CollectionRepository[models.PortfolioItem]
}

func NewProfileService(
	userRepo repositories.UserRepository,
	socialRepo repositories.SocialLinkRepository,
	skillRepo repositories.CollectionRepository[models.Skill],
	experienceRepo repositories.CollectionRepository[models.ExperienceItem],
	educationRepo repositories.CollectionRepository[models.EducationItem],
	portfolioRepo repositories.CollectionRepository[models.PortfolioItem],
) ProfileService {
	return &profileService{
		userRepo:       userRepo,
		socialRepo:     socialRepo,
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
		portfolioRepo:  portfolioRepo,
	}
}

// GetPublicProfile resolves the user row (404 when absent), then issues the
// five collection lookups scoped to that user. A failing collection lookup is
// logged and degrades to an empty slice; once the user resolved, the read
// always succeeds with at least a partial profile.
func (s *profileService) GetPublicProfile(ctx context.Context, db *gorm.DB, username string) (*dto.PublicProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.PublicProfileResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Profession:  user.Profession,
		Description: user.Description,
		ImageURL:    user.ImageURL,
		SectionNames: dto.SectionNames{
			Skills:     user.SkillsSectionName,
			Experience: user.ExperienceSectionName,
			Education:  user.EducationSectionName,
			Projects:   user.ProjectsSectionName,
		},
		ContactToken:    user.ContactToken,
		SocialLinks:     []models.SocialLink{},
		PortfolioItems:  []models.PortfolioItem{},
		Skills:          []models.Skill{},
		ExperienceItems: []models.ExperienceItem{},
		EducationItems:  []models.EducationItem{},
	}

	if links, err := s.socialRepo.ListByOwner(db, user.ID); err != nil {
		logger.CtxWithError(ctx, "social links lookup failed, serving empty set", err, "username", username)
	} else if links != nil {
		resp.SocialLinks = links
	}

	if items, err := s.portfolioRepo.ListByOwner(db, user.ID); err != nil {
		logger.CtxWithError(ctx, "portfolio lookup failed, serving empty set", err, "username", username)
	} else if items != nil {
		resp.PortfolioItems = items
	}

	if skills, err := s.skillRepo.ListByOwner(db, user.ID); err != nil {
		logger.CtxWithError(ctx, "skills lookup failed, serving empty set", err, "username", username)
	} else if skills != nil {
		resp.Skills = skills
	}

	if items, err := s.experienceRepo.ListByOwner(db, user.ID); err != nil {
		logger.CtxWithError(ctx, "experience lookup failed, serving empty set", err, "username", username)
	} else if items != nil {
		resp.ExperienceItems = items
	}

	if items, err := s.educationRepo.ListByOwner(db, user.ID); err != nil {
		logger.CtxWithError(ctx, "education lookup failed, serving empty set", err, "username", username)
	} else if items != nil {
		resp.EducationItems = items
	}

	return resp, nil
}

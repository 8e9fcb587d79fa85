package services

import (
	"folio_backend/internal/auth"
	"folio_backend/internal/config"
	"folio_backend/internal/email"
	"folio_backend/internal/models"
	"folio_backend/internal/repositories"
	"folio_backend/internal/storage"
)

// ServiceContainer wires every service with its repositories and shared
// collaborators. Handlers receive this one value instead of individual
// constructor plumbing.
type ServiceContainer struct {
	Auth       AuthService
	User       UserService
	Profile    ProfileService
	Portfolio  PortfolioService
	Contact    ContactService
	Skills     *CollectionService[models.Skill]
	Experience *CollectionService[models.ExperienceItem]
	Education  *CollectionService[models.EducationItem]
}

func NewServiceContainer(cfg *config.Config, store storage.Storage, tokens *auth.TokenService, mailer email.Mailer) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	socialRepo := repositories.NewSocialLinkRepository()
	skillRepo := repositories.NewCollectionRepository[models.Skill]()
	experienceRepo := repositories.NewCollectionRepository[models.ExperienceItem]()
	educationRepo := repositories.NewCollectionRepository[models.EducationItem]()
	portfolioRepo := repositories.NewCollectionRepository[models.PortfolioItem]()

	media := NewMediaStore(store, MediaConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})

	return &ServiceContainer{
		Auth:       NewAuthService(userRepo, tokens),
		User:       NewUserService(userRepo, socialRepo, media),
		Profile:    NewProfileService(userRepo, socialRepo, skillRepo, experienceRepo, educationRepo, portfolioRepo),
		Portfolio:  NewPortfolioService(portfolioRepo, media),
		Contact:    NewContactService(userRepo, mailer),
		Skills:     NewCollectionService(skillRepo, cfg.Limits.MaxSkills),
		Experience: NewCollectionService(experienceRepo, cfg.Limits.MaxExperienceItems),
		Education:  NewCollectionService(educationRepo, cfg.Limits.MaxEducationItems),
	}
}

package handlers

import (
	"folio_backend/internal/auth"
	"folio_backend/internal/dto"
	"folio_backend/internal/models"
	"folio_backend/internal/services"
	"folio_backend/internal/storage"
	"folio_backend/internal/validator"
)

// noUpdate is the request type for collections without an update route.
type noUpdate struct{}

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	User      *UserHandler
	Portfolio *PortfolioHandler
	Contact   *ContactHandler
	Files     *FilesHandler

	Skills     *CollectionHandler[models.Skill, dto.CreateSkillRequest, noUpdate]
	Experience *CollectionHandler[models.ExperienceItem, dto.CreateTimelineItemRequest, dto.UpdateTimelineItemRequest]
	Education  *CollectionHandler[models.EducationItem, dto.CreateTimelineItemRequest, dto.UpdateTimelineItemRequest]
}

func NewAppHandlers(svcs *services.ServiceContainer, github *auth.GitHubProvider, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:      NewAuthHandler(base, github, svcs.Auth),
		Profile:   NewProfileHandler(base, svcs.Profile),
		User:      NewUserHandler(base, svcs.User),
		Portfolio: NewPortfolioHandler(base, svcs.Portfolio),
		Contact:   NewContactHandler(base, svcs.Contact),
		Files:     NewFilesHandler(base, store),

		Skills: NewCollectionHandler[models.Skill, dto.CreateSkillRequest, noUpdate](
			base, svcs.Skills, "skills",
			func(ownerID string, req *dto.CreateSkillRequest) *models.Skill {
				return &models.Skill{UserID: ownerID, Name: req.Name}
			},
			nil,
		),
		Experience: NewCollectionHandler[models.ExperienceItem, dto.CreateTimelineItemRequest, dto.UpdateTimelineItemRequest](
			base, svcs.Experience, "experience-items",
			func(ownerID string, req *dto.CreateTimelineItemRequest) *models.ExperienceItem {
				return &models.ExperienceItem{UserID: ownerID, Title: req.Title, Description: req.Description}
			},
			timelineUpdates,
		),
		Education: NewCollectionHandler[models.EducationItem, dto.CreateTimelineItemRequest, dto.UpdateTimelineItemRequest](
			base, svcs.Education, "education-items",
			func(ownerID string, req *dto.CreateTimelineItemRequest) *models.EducationItem {
				return &models.EducationItem{UserID: ownerID, Title: req.Title, Description: req.Description}
			},
			timelineUpdates,
		),
	}
}

func timelineUpdates(req *dto.UpdateTimelineItemRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	return updates
}

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

const portfolioCategory = "portfolio"

// PortfolioService manages project cards and their images. The image upload
// and the row write must look atomic to the caller even though they are two
// steps against two stores: a storage failure aborts before the row write,
// and a row-write failure triggers a compensating delete of the fresh object.
type PortfolioService interface {
	List(ctx context.Context, db *gorm.DB, ownerID string) ([]models.PortfolioItem, error)
	Create(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.CreatePortfolioItemRequest, file *multipart.FileHeader) (*models.PortfolioItem, error)
	Update(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string, req *dto.UpdatePortfolioItemRequest, file *multipart.FileHeader) (*models.PortfolioItem, error)
	Delete(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string) error
}

type portfolioService struct {
	repo  repositories.CollectionRepository[models.PortfolioItem]
	media *MediaStore
}

func NewPortfolioService(repo repositories.CollectionRepository[models.PortfolioItem], media *MediaStore) PortfolioService {
	return &portfolioService{repo: repo, media: media}
}

func (s *portfolioService) List(ctx context.Context, db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	items, err := s.repo.ListByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}
	return items, nil
}

func (s *portfolioService) Create(ctx context.Context, db *gorm.DB, principal *auth.Principal, req *dto.CreatePortfolioItemRequest, file *multipart.FileHeader) (*models.PortfolioItem, error) {
	key, url, err := s.media.Put(ctx, portfolioCategory, principal.Email, file)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		UserID:       principal.UserID,
		Name:         req.Name,
		Description:  req.Description,
		AccentColor:  req.AccentColor,
		ExternalLink: req.ExternalLink,
		ImageURL:     url,
		ImagePath:    key,
	}

	if err := s.repo.Create(db, item); err != nil {
		// The object is already in storage; take it back out rather than
		// leaving an orphan behind.
		s.media.Discard(ctx, key)
		return nil, apperrors.InternalError(err)
	}

	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string, req *dto.UpdatePortfolioItemRequest, file *multipart.FileHeader) (*models.PortfolioItem, error) {
	current, err := s.repo.FindByID(db, id, principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AccentColor != nil {
		updates["accent_color"] = *req.AccentColor
	}
	if req.ExternalLink != nil {
		updates["external_link"] = *req.ExternalLink
	}

	var newKey string
	if file != nil {
		key, url, err := s.media.Put(ctx, portfolioCategory, principal.Email, file)
		if err != nil {
			return nil, err
		}
		newKey = key
		updates["image_url"] = url
		updates["image_path"] = key
	}

	if len(updates) == 0 {
		return current, nil
	}

	if err := s.repo.Updates(db, id, principal.UserID, updates); err != nil {
		s.media.Discard(ctx, newKey)
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Replacement committed; the previous image is now unreachable.
	if newKey != "" && current.ImagePath != newKey {
		s.media.Remove(ctx, current.ImagePath, current.ImageURL)
	}

	item, err := s.repo.FindByID(db, id, principal.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *portfolioService) Delete(ctx context.Context, db *gorm.DB, principal *auth.Principal, id string) error {
	item, err := s.repo.FindByID(db, id, principal.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.repo.Delete(db, id, principal.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// Object deletion never blocks row deletion.
	s.media.Remove(ctx, item.ImagePath, item.ImageURL)
	return nil
}

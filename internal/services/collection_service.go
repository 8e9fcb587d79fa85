package services

import (
	"context"

	"folio_backend/internal/models"
	"folio_backend/internal/repositories"
	"folio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CollectionService is the single mutation path for user-owned collections.
// Skills, experience items and education items are three instantiations of
// this type, not three copies of the same code. Every operation is scoped by
// the verified owner id, so a foreign row behaves exactly like a missing one.
type CollectionService[T models.OwnedItem] struct {
	repo     repositories.CollectionRepository[T]
	maxItems int
}

// NewCollectionService builds a service for one entity type. maxItems <= 0
// means unlimited.
func NewCollectionService[T models.OwnedItem](repo repositories.CollectionRepository[T], maxItems int) *CollectionService[T] {
	return &CollectionService[T]{repo: repo, maxItems: maxItems}
}

func (s *CollectionService[T]) List(ctx context.Context, db *gorm.DB, ownerID string) ([]T, error) {
	items, err := s.repo.ListByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *CollectionService[T]) Create(ctx context.Context, db *gorm.DB, ownerID string, item *T) (*T, error) {
	if s.maxItems > 0 {
		count, err := s.repo.CountByOwner(db, ownerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if count >= int64(s.maxItems) {
			return nil, apperrors.ErrCollectionLimit
		}
	}

	if err := s.repo.Create(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *CollectionService[T]) Update(ctx context.Context, db *gorm.DB, id, ownerID string, updates map[string]interface{}) (*T, error) {
	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.repo.Updates(db, id, ownerID, updates); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	item, err := s.repo.FindByID(db, id, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *CollectionService[T]) Delete(ctx context.Context, db *gorm.DB, id, ownerID string) error {
	if err := s.repo.Delete(db, id, ownerID); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

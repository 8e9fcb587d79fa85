package repositories

import (
	"errors"

	"folio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("collection item not found")

// CollectionRepository is the single data-access path for every user-owned
// collection (skills, experience items, education items, portfolio items).
// Every read and write is scoped by owner id; a row owned by someone else is
// indistinguishable from a missing row.
type CollectionRepository[T models.OwnedItem] interface {
	ListByOwner(db *gorm.DB, ownerID string) ([]T, error)
	FindByID(db *gorm.DB, id, ownerID string) (*T, error)
	Create(db *gorm.DB, item *T) error
	// Updates patches the given columns of the row matching id AND ownerID.
	// Zero affected rows means ErrItemNotFound.
	Updates(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error
	Delete(db *gorm.DB, id, ownerID string) error
	CountByOwner(db *gorm.DB, ownerID string) (int64, error)
}

type CollectionRepositoryImpl[T models.OwnedItem] struct{}

func NewCollectionRepository[T models.OwnedItem]() CollectionRepository[T] {
	return &CollectionRepositoryImpl[T]{}
}

func (r *CollectionRepositoryImpl[T]) ListByOwner(db *gorm.DB, ownerID string) ([]T, error) {
	var items []T
	err := db.Where("user_id = ?", ownerID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CollectionRepositoryImpl[T]) FindByID(db *gorm.DB, id, ownerID string) (*T, error) {
	var item T
	err := db.Where("id = ? AND user_id = ?", id, ownerID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CollectionRepositoryImpl[T]) Create(db *gorm.DB, item *T) error {
	return db.Create(item).Error
}

func (r *CollectionRepositoryImpl[T]) Updates(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error {
	result := db.Model(new(T)).Where("id = ? AND user_id = ?", id, ownerID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *CollectionRepositoryImpl[T]) Delete(db *gorm.DB, id, ownerID string) error {
	result := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *CollectionRepositoryImpl[T]) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(new(T)).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}

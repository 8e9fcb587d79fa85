package repositories

import (
	"folio_backend/internal/models"

	"gorm.io/gorm"
)

type SocialLinkRepository interface {
	ListByOwner(db *gorm.DB, userID string) ([]models.SocialLink, error)
	// ReplaceAll deletes the owner's links and inserts the given set in one
	// transaction, preserving the wholesale-replacement semantics of the
	// profile editor.
	ReplaceAll(db *gorm.DB, userID string, links []models.SocialLink) error
}

type SocialLinkRepositoryImpl struct{}

func NewSocialLinkRepository() SocialLinkRepository {
	return &SocialLinkRepositoryImpl{}
}

func (r *SocialLinkRepositoryImpl) ListByOwner(db *gorm.DB, userID string) ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&links).Error
	return links, err
}

func (r *SocialLinkRepositoryImpl) ReplaceAll(db *gorm.DB, userID string, links []models.SocialLink) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.SocialLink{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		for i := range links {
			links[i].UserID = userID
		}
		return tx.Create(&links).Error
	})
}

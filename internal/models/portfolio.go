package models

// PortfolioItem is one project card on the public profile. The image lives in
// object storage; ImagePath keeps the storage key so deletion does not depend
// on parsing the public URL.
type PortfolioItem struct {
	BaseModel
	UserID       string `gorm:"not null;index" json:"user_id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	AccentColor  string `json:"accent_color"`
	ExternalLink string `json:"external_link"`
	ImageURL     string `json:"image_url"`
	ImagePath    string `json:"-"`
}

func (p PortfolioItem) ItemID() string  { return p.ID }
func (p PortfolioItem) OwnerID() string { return p.UserID }

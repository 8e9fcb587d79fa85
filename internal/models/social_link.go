package models

// SocialLink is one external profile link. Links are replaced wholesale on
// every social-links update (the client sends the full array), so there is no
// per-link mutation surface.
type SocialLink struct {
	BaseModel
	UserID   string `gorm:"not null;index" json:"user_id"`
	Platform string `gorm:"not null" json:"platform"`
	URL      string `gorm:"not null" json:"url"`
}

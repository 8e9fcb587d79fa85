package dto

import "folio_backend/internal/models"

// SectionNames groups the four customizable display labels.
type SectionNames struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Projects   string `json:"projects"`
}

// PublicProfileResponse is the aggregated document served to visitors: the
// user row plus its five dependent collections, assembled in one read.
type PublicProfileResponse struct {
	Username     string       `json:"username"`
	DisplayName  string       `json:"display_name"`
	Profession   string       `json:"profession"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"image_url"`
	SectionNames SectionNames `json:"section_names"`
	ContactToken string       `json:"contact_token"`

	SocialLinks     []models.SocialLink     `json:"social_links"`
	PortfolioItems  []models.PortfolioItem  `json:"portfolio_items"`
	Skills          []models.Skill          `json:"skills"`
	ExperienceItems []models.ExperienceItem `json:"experience_items"`
	EducationItems  []models.EducationItem  `json:"education_items"`
}

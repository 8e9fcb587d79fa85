package models

// User is the identity anchor and the root of a public profile. Rows are
// created on first successful external sign-in and never hard-deleted.
type User struct {
	BaseModel
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName string `json:"display_name"`
	Profession  string `json:"profession"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ImagePath   string `json:"-"` // storage key of the avatar object

	// Customizable display labels for the fixed collections.
	SkillsSectionName     string `gorm:"default:'Skills'" json:"skills_section_name"`
	ExperienceSectionName string `gorm:"default:'Experience'" json:"experience_section_name"`
	EducationSectionName  string `gorm:"default:'Education'" json:"education_section_name"`
	ProjectsSectionName   string `gorm:"default:'Projects'" json:"projects_section_name"`

	// Token for a hosted contact-form provider, rendered into the public page.
	ContactToken string `json:"contact_token"`

	// Relations
	SocialLinks []SocialLink `gorm:"foreignKey:UserID" json:"social_links,omitempty"`
}

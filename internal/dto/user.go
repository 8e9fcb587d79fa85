package dto

// UpdateUserRequest carries the profile fields of PUT /users/me. The request
// is multipart because an avatar image may ride along; all fields are
// optional and only present ones are applied.
type UpdateUserRequest struct {
	DisplayName *string `form:"display_name" json:"display_name" validate:"omitempty,max=100"`
	Username    *string `form:"username" json:"username" validate:"omitempty,username,min=3,max=30"`
	Profession  *string `form:"profession" json:"profession" validate:"omitempty,max=100"`
	Description *string `form:"description" json:"description" validate:"omitempty,max=2000"`
}

// SectionNamesRequest replaces the four customizable section labels.
type SectionNamesRequest struct {
	SkillsSectionName     string `json:"skills_section_name" validate:"required,max=50"`
	ExperienceSectionName string `json:"experience_section_name" validate:"required,max=50"`
	EducationSectionName  string `json:"education_section_name" validate:"required,max=50"`
	ProjectsSectionName   string `json:"projects_section_name" validate:"required,max=50"`
}

// ContactSettingsRequest updates the hosted contact-form provider token.
type ContactSettingsRequest struct {
	ContactToken string `json:"contact_token" validate:"required,max=200"`
}

type ContactSettingsResponse struct {
	ContactToken string `json:"contact_token"`
}

// SocialLinkInput is one element of the wholesale social-links replacement.
type SocialLinkInput struct {
	Platform string `json:"platform" validate:"required,platform"`
	URL      string `json:"url" validate:"required,url,max=500"`
}

type ReplaceSocialLinksRequest struct {
	SocialLinks []SocialLinkInput `json:"social_links" validate:"required,max=20,dive"`
}

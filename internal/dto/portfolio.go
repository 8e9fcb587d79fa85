package dto

// CreatePortfolioItemRequest carries the form fields of the multipart
// create request; the image arrives as the "image" file part.
type CreatePortfolioItemRequest struct {
	Name         string `form:"name" validate:"required,max=150"`
	Description  string `form:"description" validate:"max=2000"`
	AccentColor  string `form:"accent_color" validate:"omitempty,hexcolor"`
	ExternalLink string `form:"external_link" validate:"omitempty,url,max=500"`
}

// UpdatePortfolioItemRequest patches a portfolio item. The multipart request
// may include a replacement "image" part; form fields are optional.
type UpdatePortfolioItemRequest struct {
	Name         *string `form:"name" validate:"omitempty,min=1,max=150"`
	Description  *string `form:"description" validate:"omitempty,max=2000"`
	AccentColor  *string `form:"accent_color" validate:"omitempty,hexcolor"`
	ExternalLink *string `form:"external_link" validate:"omitempty,url,max=500"`
}

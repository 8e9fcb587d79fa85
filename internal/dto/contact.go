package dto

// ContactMessageRequest is a visitor's message submitted through the public
// contact form and relayed to the profile owner by email.
type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

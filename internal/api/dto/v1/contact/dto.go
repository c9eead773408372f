package contact

import "strings"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Token   string `json:"token"`
}

// Normalize trims surrounding whitespace from the free-text fields.
// The token is passed to the verifier untouched.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	r.Company = strings.TrimSpace(r.Company)
	r.Phone = strings.TrimSpace(r.Phone)
}

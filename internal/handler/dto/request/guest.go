package request

import "strings"

type RegisterGuestRequest struct {
	Document  string `json:"document" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (r RegisterGuestRequest) GetDocument() string {
	return strings.TrimSpace(r.Document)
}

// UpdateGuestContactRequest replaces both contact fields; an omitted field
// clears the stored value.
type UpdateGuestContactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

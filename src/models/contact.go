package models

type ContactMessage struct {
	Base
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"`
}

package models

// User covers both customers and the studio team; team members are the
// staff/admin subset of the same collection.
type User struct {
	Base
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Active    bool   `json:"active,omitempty"`
}

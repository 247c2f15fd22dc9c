package models

// Attendance is one record per (memberId, date) pair. Uniqueness of the pair
// is enforced by the service with a lookup before insert, not by storage.
type Attendance struct {
	Base
	MemberID string `json:"memberId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

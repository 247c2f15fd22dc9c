package models

type Payment struct {
	Base
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId,omitempty"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method,omitempty"`
	Reference string  `json:"reference,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

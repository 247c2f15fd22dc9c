package models

import "time"

// Base carries the identity and timestamps every collection record has. IDs
// are client-generated at creation and never reassigned afterwards.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (b *Base) RecordID() string {
	return b.ID
}

func (b *Base) SetRecordID(id string) {
	b.ID = id
}

func (b *Base) StampCreated(t time.Time) {
	b.CreatedAt = t
	b.UpdatedAt = t
}

func (b *Base) StampUpdated(t time.Time) {
	b.UpdatedAt = t
}

type Entity interface {
	RecordID() string
	SetRecordID(string)
	StampCreated(time.Time)
	StampUpdated(time.Time)
}

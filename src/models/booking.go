package models

import (
	"math"
	"time"

	"sbs/src/types"
)

// PackageLine is one converted cart line on a booking. GroupID and PackageID
// are weak references into the packages collection, resolved on read only.
type PackageLine struct {
	GroupID   string   `json:"groupId,omitempty"`
	PackageID []string `json:"packageId,omitempty"`
	Name      string   `json:"name"`
	Category  string   `json:"category,omitempty"`
	Price     float64  `json:"price"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}

// Assignment links a team member to a work category on one booking. The
// (memberId, category) pair is unique within a booking's assignment list.
type Assignment struct {
	MemberID     string    `json:"memberId"`
	Category     string    `json:"category"`
	AssignedDate time.Time `json:"assignedDate"`
	IsCompleted  bool      `json:"isCompleted"`
	Comments     string    `json:"comments,omitempty"`
}

type Progress struct {
	CompletedTasks int `json:"completedTasks"`
	TotalTasks     int `json:"totalTasks"`
	Percentage     int `json:"percentage"`
}

type Booking struct {
	Base
	UserID      string              `json:"userId,omitempty"`
	Status      types.BookingStatus `json:"status"`
	Packages    []PackageLine       `json:"packages"`
	Assignments []Assignment        `json:"assignments"`
	TotalAmount float64             `json:"totalAmount"`
	PaidAmount  float64             `json:"paidAmount"`
	EventName   string              `json:"eventName,omitempty"`
	EventType   string              `json:"eventType,omitempty"`
	Venue       string              `json:"venue,omitempty"`
	StartDate   string              `json:"startDate,omitempty"`
	EndDate     string              `json:"endDate,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// Progress is derived from the assignment list on every call and never stored.
func (b *Booking) Progress() Progress {
	p := Progress{TotalTasks: len(b.Assignments)}
	for _, a := range b.Assignments {
		if a.IsCompleted {
			p.CompletedTasks++
		}
	}
	if p.TotalTasks > 0 {
		p.Percentage = int(math.Round(float64(p.CompletedTasks) / float64(p.TotalTasks) * 100))
	}
	return p
}

func (b *Booking) AssignedTo(memberId string) bool {
	for _, a := range b.Assignments {
		if a.MemberID == memberId {
			return true
		}
	}
	return false
}

func (b *Booking) Outstanding() float64 {
	return b.TotalAmount - b.PaidAmount
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"sbs/src/models"
	"sbs/src/store"
	"sbs/src/types"
)

var ErrAssignmentExists = errors.New("member is already assigned to this category")

type BookingEventMeta struct {
	EventName string
	EventType string
	Venue     string
	Notes     string
}

type BookingService struct {
	Crud[models.Booking, *models.Booking]
}

func NewBookingService(st *store.Store) *BookingService {
	return &BookingService{Crud: NewCrud[models.Booking, *models.Booking](st, "bookings")}
}

// CreateFromCart converts a non-empty cart into a pending booking. The total
// is the sum of line prices and the booking span is the min start / max end
// across the lines. Per-line date validity is the caller's concern; it is
// checked at the HTTP boundary before this runs.
func (s *BookingService) CreateFromCart(ctx context.Context, userId string, cart []types.CartLineItem, meta BookingEventMeta) models.Booking {
	booking := models.Booking{
		UserID:      userId,
		Status:      types.BOOKING_PENDING,
		EventName:   meta.EventName,
		EventType:   meta.EventType,
		Venue:       meta.Venue,
		Notes:       meta.Notes,
		Packages:    make([]models.PackageLine, 0, len(cart)),
		Assignments: []models.Assignment{},
	}
	for _, line := range cart {
		booking.TotalAmount += line.Price
		if booking.StartDate == "" || line.StartDate < booking.StartDate {
			booking.StartDate = line.StartDate
		}
		if line.EndDate > booking.EndDate {
			booking.EndDate = line.EndDate
		}
		booking.Packages = append(booking.Packages, models.PackageLine{
			GroupID:   line.GroupID,
			PackageID: line.PackageID,
			Name:      line.Name,
			Category:  line.Category,
			Price:     line.Price,
			StartDate: line.StartDate,
			EndDate:   line.EndDate,
		})
	}
	return s.Create(ctx, booking)
}

// UpdateStatus overwrites the status on a full-record replace. There is no
// transition table: any status may follow any other, which keeps admin
// overrides possible.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status types.BookingStatus) *models.Booking {
	return s.Update(ctx, id, func(b *models.Booking) {
		b.Status = status
	})
}

func (s *BookingService) AddAssignment(ctx context.Context, id string, memberId string, category string, comments string) (*models.Booking, error) {
	booking := s.GetByID(ctx, id)
	if booking == nil {
		return nil, nil
	}
	for _, a := range booking.Assignments {
		if a.MemberID == memberId && a.Category == category {
			return nil, ErrAssignmentExists
		}
	}
	updated := s.Update(ctx, id, func(b *models.Booking) {
		b.Assignments = append(b.Assignments, models.Assignment{
			MemberID:     memberId,
			Category:     category,
			AssignedDate: time.Now().UTC(),
			Comments:     comments,
		})
	})
	return updated, nil
}

// RemoveAssignment filters the pair out; removing an absent pair is a no-op
// on an existing booking.
func (s *BookingService) RemoveAssignment(ctx context.Context, id string, memberId string, category string) *models.Booking {
	return s.Update(ctx, id, func(b *models.Booking) {
		kept := make([]models.Assignment, 0, len(b.Assignments))
		for _, a := range b.Assignments {
			if a.MemberID == memberId && a.Category == category {
				continue
			}
			kept = append(kept, a)
		}
		b.Assignments = kept
	})
}

func (s *BookingService) CompleteAssignment(ctx context.Context, id string, memberId string, category string) *models.Booking {
	return s.Update(ctx, id, func(b *models.Booking) {
		for i := range b.Assignments {
			if b.Assignments[i].MemberID == memberId && b.Assignments[i].Category == category {
				b.Assignments[i].IsCompleted = true
			}
		}
	})
}

func (s *BookingService) RecordPayment(ctx context.Context, id string, amount float64) *models.Booking {
	return s.Update(ctx, id, func(b *models.Booking) {
		b.PaidAmount += amount
	})
}

func (s *BookingService) ByUser(ctx context.Context, userId string) []models.Booking {
	return s.filter(ctx, func(b *models.Booking) bool {
		return b.UserID == userId
	})
}

func (s *BookingService) ByStatus(ctx context.Context, status types.BookingStatus) []models.Booking {
	return s.filter(ctx, func(b *models.Booking) bool {
		return b.Status == status
	})
}

// ByDateRange returns bookings whose span overlaps [from, to].
func (s *BookingService) ByDateRange(ctx context.Context, from string, to string) []models.Booking {
	return s.filter(ctx, func(b *models.Booking) bool {
		return b.StartDate <= to && b.EndDate >= from
	})
}

func (s *BookingService) ByVenue(ctx context.Context, venue string) []models.Booking {
	needle := strings.ToLower(venue)
	return s.filter(ctx, func(b *models.Booking) bool {
		return strings.Contains(strings.ToLower(b.Venue), needle)
	})
}

func (s *BookingService) ByMember(ctx context.Context, memberId string) []models.Booking {
	return s.filter(ctx, func(b *models.Booking) bool {
		return b.AssignedTo(memberId)
	})
}

// Revenue recomputes the money totals over the full collection. Rejected
// bookings do not count toward expected revenue.
func (s *BookingService) Revenue(ctx context.Context) (total float64, collected float64, outstanding float64) {
	for _, b := range s.GetAll(ctx) {
		if b.Status == types.BOOKING_REJECTED {
			continue
		}
		total += b.TotalAmount
		collected += b.PaidAmount
	}
	outstanding = total - collected
	return total, collected, outstanding
}

func (s *BookingService) filter(ctx context.Context, keep func(*models.Booking) bool) []models.Booking {
	records := s.GetAll(ctx)
	matches := make([]models.Booking, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			matches = append(matches, records[i])
		}
	}
	return matches
}

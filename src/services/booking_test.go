package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sbs/src/models"
	"sbs/src/types"
)

func testCart() []types.CartLineItem {
	return []types.CartLineItem{
		{Name: "Wedding Photography", Category: "photography", Price: 50000, StartDate: "2025-01-03", EndDate: "2025-01-05"},
		{Name: "Candid Video", Category: "videography", Price: 75000, StartDate: "2025-01-01", EndDate: "2025-01-02"},
	}
}

func TestCreateFromCartAggregates(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())

	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{
		EventName: "Asha & Ravi",
		EventType: "wedding",
		Venue:     "Taj Palace",
	})

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, types.BOOKING_PENDING, booking.Status)
	assert.Equal(t, float64(125000), booking.TotalAmount)
	assert.Equal(t, float64(0), booking.PaidAmount)
	assert.Equal(t, "2025-01-01", booking.StartDate)
	assert.Equal(t, "2025-01-05", booking.EndDate)
	assert.Len(t, booking.Packages, 2)
	assert.Empty(t, booking.Assignments)
}

func TestAssignmentPairIsUnique(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())
	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "Shoot"})

	updated, err := svc.AddAssignment(ctx, booking.ID, "member-1", "photo_edit", "")
	assert.Nil(t, err)
	assert.Len(t, updated.Assignments, 1)

	_, err = svc.AddAssignment(ctx, booking.ID, "member-1", "photo_edit", "again")
	assert.ErrorIs(t, err, ErrAssignmentExists)
	assert.Len(t, svc.GetByID(ctx, booking.ID).Assignments, 1)

	// same member, different category is a distinct assignment
	updated, err = svc.AddAssignment(ctx, booking.ID, "member-1", "video_edit", "")
	assert.Nil(t, err)
	assert.Len(t, updated.Assignments, 2)

	missing, err := svc.AddAssignment(ctx, "missing", "member-1", "photo_edit", "")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestRemoveAssignment(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())
	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "Shoot"})
	svc.AddAssignment(ctx, booking.ID, "member-1", "photo_edit", "")

	updated := svc.RemoveAssignment(ctx, booking.ID, "member-1", "photo_edit")
	assert.NotNil(t, updated)
	assert.Empty(t, updated.Assignments)

	// removing an absent pair still succeeds on an existing booking
	updated = svc.RemoveAssignment(ctx, booking.ID, "member-1", "photo_edit")
	assert.NotNil(t, updated)
	assert.Empty(t, updated.Assignments)
}

func TestProgressIsDerived(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())
	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "Shoot"})

	assert.Equal(t, models.Progress{}, svc.GetByID(ctx, booking.ID).Progress())

	svc.AddAssignment(ctx, booking.ID, "m1", "photography", "")
	svc.AddAssignment(ctx, booking.ID, "m2", "videography", "")
	svc.AddAssignment(ctx, booking.ID, "m1", "photo_edit", "")
	svc.AddAssignment(ctx, booking.ID, "m2", "video_edit", "")
	svc.CompleteAssignment(ctx, booking.ID, "m1", "photography")
	svc.CompleteAssignment(ctx, booking.ID, "m2", "videography")

	progress := svc.GetByID(ctx, booking.ID).Progress()
	assert.Equal(t, 2, progress.CompletedTasks)
	assert.Equal(t, 4, progress.TotalTasks)
	assert.Equal(t, 50, progress.Percentage)
}

func TestStatusChangesAreUnrestricted(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())
	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "Shoot"})

	// no transition table: completed can go back to pending
	assert.Equal(t, types.BOOKING_COMPLETED, svc.UpdateStatus(ctx, booking.ID, types.BOOKING_COMPLETED).Status)
	assert.Equal(t, types.BOOKING_PENDING, svc.UpdateStatus(ctx, booking.ID, types.BOOKING_PENDING).Status)
	assert.Nil(t, svc.UpdateStatus(ctx, "missing", types.BOOKING_APPROVED))
}

func TestRecordPaymentAccumulates(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())
	booking := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "Shoot"})

	svc.RecordPayment(ctx, booking.ID, 25000)
	updated := svc.RecordPayment(ctx, booking.ID, 50000)
	assert.Equal(t, float64(75000), updated.PaidAmount)
	assert.Equal(t, float64(50000), updated.Outstanding())
}

func TestRevenueSkipsRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())

	a := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "A"})
	svc.RecordPayment(ctx, a.ID, 25000)

	b := svc.CreateFromCart(ctx, "user-2", testCart(), BookingEventMeta{EventName: "B"})
	svc.UpdateStatus(ctx, b.ID, types.BOOKING_REJECTED)

	total, collected, outstanding := svc.Revenue(ctx)
	assert.Equal(t, float64(125000), total)
	assert.Equal(t, float64(25000), collected)
	assert.Equal(t, float64(100000), outstanding)
}

func TestBookingFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(newTestStore())

	a := svc.CreateFromCart(ctx, "user-1", testCart(), BookingEventMeta{EventName: "A", Venue: "Taj Palace"})
	svc.AddAssignment(ctx, a.ID, "member-1", "photography", "")
	svc.CreateFromCart(ctx, "user-2", []types.CartLineItem{
		{Name: "Portrait Session", Price: 10000, StartDate: "2025-03-10", EndDate: "2025-03-10"},
	}, BookingEventMeta{EventName: "B", Venue: "Studio Floor"})

	assert.Len(t, svc.ByUser(ctx, "user-1"), 1)
	assert.Len(t, svc.ByStatus(ctx, types.BOOKING_PENDING), 2)
	assert.Len(t, svc.ByMember(ctx, "member-1"), 1)
	assert.Len(t, svc.ByVenue(ctx, "taj"), 1)
	assert.Len(t, svc.ByDateRange(ctx, "2025-01-04", "2025-01-10"), 1)
	assert.Len(t, svc.ByDateRange(ctx, "2025-01-06", "2025-03-09"), 0)
	assert.Len(t, svc.ByDateRange(ctx, "2025-01-01", "2025-12-31"), 2)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"sbs/src/config"
	"sbs/src/lib"
	"sbs/src/lib/mailer"
	"sbs/src/middlewares"
	"sbs/src/models"
	"sbs/src/services"
	"sbs/src/types"
)

func bookingHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			booking := a.bookings.CreateFromCart(ctx, userId, body.Packages, services.BookingEventMeta{
				EventName: body.EventName,
				EventType: body.EventType,
				Venue:     body.Venue,
				Notes:     body.Notes,
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			var bookings []models.Booking
			switch ctx.GetString("role") {
			case types.ROLE_ADMIN:
				bookings = filteredBookings(ctx, a)
			case types.ROLE_STAFF:
				bookings = a.bookings.ByMember(ctx, ctx.GetString("id"))
			default:
				bookings = a.bookings.ByUser(ctx, ctx.GetString("id"))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/stats", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			total, collected, outstanding := a.bookings.Revenue(ctx)
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"totalRevenue": total,
				"collected":    collected,
				"outstanding":  outstanding,
			}})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			booking, ok := authorizedBooking(ctx, a)
			if !ok {
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		GET("/bookings/:id/progress", func(ctx *gin.Context) {
			booking, ok := authorizedBooking(ctx, a)
			if !ok {
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking.Progress()})
		}).
		PATCH("/bookings/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking := a.bookings.Update(ctx, params.ID, func(b *models.Booking) {
				applyBookingPatch(b, &body)
			})
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		DELETE("/bookings/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.bookings.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/bookings/:id/status", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking := a.bookings.UpdateStatus(ctx, params.ID, body.Status)
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			go notifyBookingStatus(a, *booking)
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings/:id/assignments", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AssignmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := a.bookings.AddAssignment(ctx, params.ID, body.MemberID, body.Category, body.Comments)
			if errors.Is(err, services.ErrAssignmentExists) {
				ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		DELETE("/bookings/:id/assignments", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AssignmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking := a.bookings.RemoveAssignment(ctx, params.ID, body.MemberID, body.Category)
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/assignments/complete", middlewares.RequireRole(types.ROLE_ADMIN, types.ROLE_STAFF), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AssignmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// staff can only sign off their own work
			if ctx.GetString("role") == types.ROLE_STAFF && body.MemberID != ctx.GetString("id") {
				ctx.Status(http.StatusForbidden)
				return
			}
			booking := a.bookings.CompleteAssignment(ctx, params.ID, body.MemberID, body.Category)
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking, "progress": booking.Progress()})
		}).
		POST("/bookings/:id/checkout", func(ctx *gin.Context) {
			booking, ok := authorizedBooking(ctx, a)
			if !ok {
				return
			}
			outstanding := booking.Outstanding()
			if outstanding <= 0 {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "booking is fully paid"})
				return
			}
			url, err := lib.CreateBalanceCheckout(booking.ID, booking.EventName, outstanding, config.Currency())
			if err != nil {
				log.Printf("Could not create checkout session: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error while processing request"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"url": url}})
		})
	return g
}

func filteredBookings(ctx *gin.Context, a *app) []models.Booking {
	if status := ctx.Query("status"); status != "" {
		return a.bookings.ByStatus(ctx, types.BookingStatus(status))
	}
	if venue := ctx.Query("venue"); venue != "" {
		return a.bookings.ByVenue(ctx, venue)
	}
	from, to := ctx.Query("from"), ctx.Query("to")
	if from != "" && to != "" {
		return a.bookings.ByDateRange(ctx, from, to)
	}
	if userId := ctx.Query("user"); userId != "" {
		return a.bookings.ByUser(ctx, userId)
	}
	if memberId := ctx.Query("member"); memberId != "" {
		return a.bookings.ByMember(ctx, memberId)
	}
	return a.bookings.GetAll(ctx)
}

// authorizedBooking loads the booking from the uri and enforces that the
// caller is the owner, an assigned member, or an admin. It writes the error
// status itself and reports success through the second return.
func authorizedBooking(ctx *gin.Context, a *app) (*models.Booking, bool) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Status(http.StatusBadRequest)
		return nil, false
	}
	booking := a.bookings.GetByID(ctx, params.ID)
	if booking == nil {
		ctx.Status(http.StatusNotFound)
		return nil, false
	}
	callerId := ctx.GetString("id")
	switch ctx.GetString("role") {
	case types.ROLE_ADMIN:
	case types.ROLE_STAFF:
		if booking.UserID != callerId && !booking.AssignedTo(callerId) {
			ctx.Status(http.StatusForbidden)
			return nil, false
		}
	default:
		if booking.UserID != callerId {
			ctx.Status(http.StatusForbidden)
			return nil, false
		}
	}
	return booking, true
}

func applyBookingPatch(b *models.Booking, patch *types.UpdateBookingRequestBody) {
	if patch.EventName != nil {
		b.EventName = *patch.EventName
	}
	if patch.EventType != nil {
		b.EventType = *patch.EventType
	}
	if patch.Venue != nil {
		b.Venue = *patch.Venue
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.StartDate != nil {
		b.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		b.EndDate = *patch.EndDate
	}
	if patch.TotalAmount != nil {
		b.TotalAmount = *patch.TotalAmount
	}
	if patch.PaidAmount != nil {
		b.PaidAmount = *patch.PaidAmount
	}
}

func notifyBookingStatus(a *app, b models.Booking) {
	customer := a.team.GetByID(context.Background(), b.UserID)
	if customer == nil || customer.Email == "" {
		return
	}
	input := &lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: os.Getenv("MAIL_FROM_NAME"),
		To:       []string{customer.Email},
		Subject:  fmt.Sprintf("Your booking is now %s", b.Status),
		Body:     fmt.Sprintf("Hi %s,\n\nthe status of your booking %q changed to %s.\n", customer.Name, b.EventName, b.Status),
	}
	if err := mailer.Send(input); err != nil {
		log.Printf("Error sending status notification: %s\n", err.Error())
	}
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/middlewares"
	"sbs/src/models"
	"sbs/src/types"
)

func paymentHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/payments", func(ctx *gin.Context) {
			var payments []models.Payment
			if ctx.GetString("role") != types.ROLE_ADMIN {
				payments = a.payments.ByUser(ctx, ctx.GetString("id"))
			} else if bookingId := ctx.Query("booking"); bookingId != "" {
				payments = a.payments.ByBooking(ctx, bookingId)
			} else {
				payments = a.payments.GetAll(ctx)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments, "count": len(payments)})
		}).
		POST("/payments", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking := a.bookings.GetByID(ctx, body.BookingID)
			if booking == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			payment := a.payments.Create(ctx, models.Payment{
				BookingID: body.BookingID,
				UserID:    booking.UserID,
				Amount:    body.Amount,
				Method:    body.Method,
				Reference: body.Reference,
				Notes:     body.Notes,
			})
			a.bookings.RecordPayment(ctx, body.BookingID, body.Amount)
			ctx.JSON(http.StatusCreated, gin.H{"data": payment})
		}).
		DELETE("/payments/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.payments.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"sbs/src/models"
)

func stripeWebhookRoute(g *gin.Engine, a *app) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed":
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				break
			}
			bookingId := cs.Metadata["bookingId"]
			if bookingId == "" {
				log.Printf("[Stripe] CheckoutSession %s carries no booking id\n", cs.ID)
				break
			}
			amount := float64(cs.AmountTotal) / 100
			booking := a.bookings.RecordPayment(ctx, bookingId, amount)
			if booking == nil {
				log.Printf("[Stripe] No booking found for id %s\n", bookingId)
				break
			}
			a.payments.Create(ctx, models.Payment{
				BookingID: bookingId,
				UserID:    booking.UserID,
				Amount:    amount,
				Method:    "stripe",
				Reference: cs.ID,
			})
		}
		ctx.Status(http.StatusOK)
	})
	return apiv1
}

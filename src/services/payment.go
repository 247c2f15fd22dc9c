package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
)

type PaymentService struct {
	Crud[models.Payment, *models.Payment]
}

func NewPaymentService(st *store.Store) *PaymentService {
	return &PaymentService{Crud: NewCrud[models.Payment, *models.Payment](st, "payments")}
}

func (s *PaymentService) ByBooking(ctx context.Context, bookingId string) []models.Payment {
	records := s.GetAll(ctx)
	matches := make([]models.Payment, 0, len(records))
	for _, p := range records {
		if p.BookingID == bookingId {
			matches = append(matches, p)
		}
	}
	return matches
}

func (s *PaymentService) ByUser(ctx context.Context, userId string) []models.Payment {
	records := s.GetAll(ctx)
	matches := make([]models.Payment, 0, len(records))
	for _, p := range records {
		if p.UserID == userId {
			matches = append(matches, p)
		}
	}
	return matches
}

package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
)

type ContactService struct {
	Crud[models.ContactMessage, *models.ContactMessage]
}

func NewContactService(st *store.Store) *ContactService {
	return &ContactService{Crud: NewCrud[models.ContactMessage, *models.ContactMessage](st, "contacts")}
}

func (s *ContactService) Unresolved(ctx context.Context) []models.ContactMessage {
	records := s.GetAll(ctx)
	matches := make([]models.ContactMessage, 0, len(records))
	for _, m := range records {
		if !m.Resolved {
			matches = append(matches, m)
		}
	}
	return matches
}

func (s *ContactService) Resolve(ctx context.Context, id string) *models.ContactMessage {
	return s.Update(ctx, id, func(m *models.ContactMessage) {
		m.Resolved = true
	})
}

package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
	"sbs/src/types"
)

// TeamService manages the shared users collection. Team members are the
// staff/admin subset; customers live in the same file.
type TeamService struct {
	Crud[models.User, *models.User]
}

func NewTeamService(st *store.Store) *TeamService {
	return &TeamService{Crud: NewCrud[models.User, *models.User](st, "users")}
}

func (s *TeamService) Members(ctx context.Context) []models.User {
	return s.filter(ctx, func(u *models.User) bool {
		return u.Role == types.ROLE_STAFF || u.Role == types.ROLE_ADMIN
	})
}

func (s *TeamService) Customers(ctx context.Context) []models.User {
	return s.filter(ctx, func(u *models.User) bool {
		return u.Role == types.ROLE_CUSTOMER
	})
}

// Specialists resolves the active members who cover a work category, for the
// assignment picker.
func (s *TeamService) Specialists(ctx context.Context, category string) []models.User {
	return s.filter(ctx, func(u *models.User) bool {
		if u.Role != types.ROLE_STAFF && u.Role != types.ROLE_ADMIN {
			return false
		}
		return u.Active && u.Specialty == category
	})
}

func (s *TeamService) ByEmail(ctx context.Context, email string) *models.User {
	records := s.GetAll(ctx)
	for i := range records {
		if records[i].Email == email {
			return &records[i]
		}
	}
	return nil
}

func (s *TeamService) filter(ctx context.Context, keep func(*models.User) bool) []models.User {
	records := s.GetAll(ctx)
	matches := make([]models.User, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			matches = append(matches, records[i])
		}
	}
	return matches
}

package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
)

type PackageService struct {
	Crud[models.PackageGroup, *models.PackageGroup]
}

func NewPackageService(st *store.Store) *PackageService {
	return &PackageService{Crud: NewCrud[models.PackageGroup, *models.PackageGroup](st, "packages")}
}

func (s *PackageService) ByCategory(ctx context.Context, category string) []models.PackageGroup {
	groups := s.GetAll(ctx)
	matches := make([]models.PackageGroup, 0, len(groups))
	for _, g := range groups {
		if g.Category == category {
			matches = append(matches, g)
		}
	}
	return matches
}

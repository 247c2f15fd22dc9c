package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
)

type GalleryService struct {
	Crud[models.GalleryItem, *models.GalleryItem]
}

func NewGalleryService(st *store.Store) *GalleryService {
	return &GalleryService{Crud: NewCrud[models.GalleryItem, *models.GalleryItem](st, "gallery")}
}

func (s *GalleryService) Featured(ctx context.Context) []models.GalleryItem {
	items := s.GetAll(ctx)
	matches := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Featured {
			matches = append(matches, item)
		}
	}
	return matches
}

func (s *GalleryService) ByCategory(ctx context.Context, category string) []models.GalleryItem {
	items := s.GetAll(ctx)
	matches := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			matches = append(matches, item)
		}
	}
	return matches
}

package services

import (
	"context"

	"sbs/src/models"
	"sbs/src/store"
)

type SettingService struct {
	Crud[models.Setting, *models.Setting]
}

func NewSettingService(st *store.Store) *SettingService {
	return &SettingService{Crud: NewCrud[models.Setting, *models.Setting](st, "settings")}
}

func (s *SettingService) GetByKey(ctx context.Context, key string) *models.Setting {
	records := s.GetAll(ctx)
	for i := range records {
		if records[i].SettingKey == key {
			return &records[i]
		}
	}
	return nil
}

// Upsert writes a setting by key, creating it on first use.
func (s *SettingService) Upsert(ctx context.Context, key string, group string, value any) models.Setting {
	if existing := s.GetByKey(ctx, key); existing != nil {
		updated := s.Update(ctx, existing.ID, func(rec *models.Setting) {
			rec.Group = group
			rec.SettingValue = value
		})
		if updated != nil {
			return *updated
		}
	}
	return s.Create(ctx, models.Setting{SettingKey: key, Group: group, SettingValue: value})
}

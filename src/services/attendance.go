package services

import (
	"context"
	"errors"

	"sbs/src/models"
	"sbs/src/store"
)

var ErrAlreadyMarked = errors.New("attendance already marked for this member and date")

type AttendanceService struct {
	Crud[models.Attendance, *models.Attendance]
}

func NewAttendanceService(st *store.Store) *AttendanceService {
	return &AttendanceService{Crud: NewCrud[models.Attendance, *models.Attendance](st, "attendance")}
}

// Mark inserts one record per (memberId, date). The pair is checked with a
// lookup before the insert; storage itself enforces nothing.
func (s *AttendanceService) Mark(ctx context.Context, rec models.Attendance) (models.Attendance, error) {
	for _, a := range s.GetAll(ctx) {
		if a.MemberID == rec.MemberID && a.Date == rec.Date {
			return models.Attendance{}, ErrAlreadyMarked
		}
	}
	return s.Create(ctx, rec), nil
}

func (s *AttendanceService) ByMember(ctx context.Context, memberId string) []models.Attendance {
	records := s.GetAll(ctx)
	matches := make([]models.Attendance, 0, len(records))
	for _, a := range records {
		if a.MemberID == memberId {
			matches = append(matches, a)
		}
	}
	return matches
}

func (s *AttendanceService) ByDate(ctx context.Context, date string) []models.Attendance {
	records := s.GetAll(ctx)
	matches := make([]models.Attendance, 0, len(records))
	for _, a := range records {
		if a.Date == date {
			matches = append(matches, a)
		}
	}
	return matches
}

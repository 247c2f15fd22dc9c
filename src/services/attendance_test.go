package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sbs/src/models"
	"sbs/src/types"
)

func TestMarkAttendanceOncePerDay(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newTestStore())

	rec, err := svc.Mark(ctx, models.Attendance{MemberID: "member-1", Date: "2025-02-01", Status: types.ATTENDANCE_PRESENT})
	assert.Nil(t, err)
	assert.NotEmpty(t, rec.ID)

	_, err = svc.Mark(ctx, models.Attendance{MemberID: "member-1", Date: "2025-02-01", Status: types.ATTENDANCE_LEAVE})
	assert.ErrorIs(t, err, ErrAlreadyMarked)
	assert.Len(t, svc.GetAll(ctx), 1)

	_, err = svc.Mark(ctx, models.Attendance{MemberID: "member-1", Date: "2025-02-02", Status: types.ATTENDANCE_PRESENT})
	assert.Nil(t, err)
	_, err = svc.Mark(ctx, models.Attendance{MemberID: "member-2", Date: "2025-02-01", Status: types.ATTENDANCE_PRESENT})
	assert.Nil(t, err)

	assert.Len(t, svc.ByMember(ctx, "member-1"), 2)
	assert.Len(t, svc.ByDate(ctx, "2025-02-01"), 2)
}

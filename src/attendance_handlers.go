package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/middlewares"
	"sbs/src/models"
	"sbs/src/services"
	"sbs/src/types"
)

func attendanceHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		POST("/attendance", middlewares.RequireRole(types.ROLE_ADMIN, types.ROLE_STAFF), func(ctx *gin.Context) {
			var body types.CreateAttendanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			memberId := body.MemberID
			// staff mark themselves; only admins mark for others
			if ctx.GetString("role") == types.ROLE_STAFF || memberId == "" {
				memberId = ctx.GetString("id")
			}
			rec, err := a.attendance.Mark(ctx, models.Attendance{
				MemberID: memberId,
				Date:     body.Date,
				Status:   body.Status,
				CheckIn:  body.CheckIn,
				CheckOut: body.CheckOut,
				Notes:    body.Notes,
			})
			if errors.Is(err, services.ErrAlreadyMarked) {
				ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": rec})
		}).
		GET("/attendance", middlewares.RequireRole(types.ROLE_ADMIN, types.ROLE_STAFF), func(ctx *gin.Context) {
			var records []models.Attendance
			if ctx.GetString("role") == types.ROLE_STAFF {
				records = a.attendance.ByMember(ctx, ctx.GetString("id"))
			} else if date := ctx.Query("date"); date != "" {
				records = a.attendance.ByDate(ctx, date)
			} else if memberId := ctx.Query("member"); memberId != "" {
				records = a.attendance.ByMember(ctx, memberId)
			} else {
				records = a.attendance.GetAll(ctx)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": records, "count": len(records)})
		}).
		PATCH("/attendance/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateAttendanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			rec := a.attendance.Update(ctx, params.ID, func(r *models.Attendance) {
				if body.Status != nil {
					r.Status = *body.Status
				}
				if body.CheckIn != nil {
					r.CheckIn = *body.CheckIn
				}
				if body.CheckOut != nil {
					r.CheckOut = *body.CheckOut
				}
				if body.Notes != nil {
					r.Notes = *body.Notes
				}
			})
			if rec == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rec})
		}).
		DELETE("/attendance/:id", middlewares.RequireRole(types.ROLE_ADMIN), func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.attendance.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

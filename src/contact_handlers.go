package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sbs/src/middlewares"
	"sbs/src/models"
	"sbs/src/types"
)

func contactHandlers(public *gin.RouterGroup, admin *gin.RouterGroup, a *app) {
	public.
		POST("/contact", middlewares.RateLimit(5, time.Hour), func(ctx *gin.Context) {
			var body types.CreateContactRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			msg := a.contacts.Create(ctx, models.ContactMessage{
				Name:    body.Name,
				Email:   body.Email,
				Phone:   body.Phone,
				Subject: body.Subject,
				Message: body.Message,
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": msg})
		})

	admin.
		GET("/contact", func(ctx *gin.Context) {
			var messages []models.ContactMessage
			if ctx.Query("unresolved") == "true" {
				messages = a.contacts.Unresolved(ctx)
			} else {
				messages = a.contacts.GetAll(ctx)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": messages, "count": len(messages)})
		}).
		PUT("/contact/:id/resolve", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			msg := a.contacts.Resolve(ctx, params.ID)
			if msg == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": msg})
		}).
		DELETE("/contact/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.contacts.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
}

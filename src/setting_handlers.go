package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/types"
)

func settingHandlers(admin *gin.RouterGroup, a *app) *gin.RouterGroup {
	admin.
		GET("/settings", func(ctx *gin.Context) {
			settings := a.settings.GetAll(ctx)
			ctx.JSON(http.StatusOK, gin.H{"data": settings, "count": len(settings)})
		}).
		GET("/settings/:key", func(ctx *gin.Context) {
			setting := a.settings.GetByKey(ctx, ctx.Param("key"))
			if setting == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": setting})
		}).
		PUT("/settings", func(ctx *gin.Context) {
			var body types.UpsertSettingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			setting := a.settings.Upsert(ctx, body.SettingKey, body.Group, body.SettingValue)
			ctx.JSON(http.StatusOK, gin.H{"data": setting})
		}).
		DELETE("/settings/:key", func(ctx *gin.Context) {
			setting := a.settings.GetByKey(ctx, ctx.Param("key"))
			if setting == nil || !a.settings.Delete(ctx, setting.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return admin
}

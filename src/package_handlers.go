package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/models"
	"sbs/src/types"
)

// Package reads are public so the storefront can build the cart without a
// session; writes stay behind the admin dashboard.
func packageHandlers(public *gin.RouterGroup, admin *gin.RouterGroup, a *app) {
	public.
		GET("/packages", func(ctx *gin.Context) {
			var groups []models.PackageGroup
			if category := ctx.Query("category"); category != "" {
				groups = a.packages.ByCategory(ctx, category)
			} else {
				groups = a.packages.GetAll(ctx)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": groups, "count": len(groups)})
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			group := a.packages.GetByID(ctx, params.ID)
			if group == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": group})
		})

	admin.
		POST("/packages", func(ctx *gin.Context) {
			var body types.CreatePackageGroupRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			group := a.packages.Create(ctx, models.PackageGroup{
				Category:    body.Category,
				Title:       body.Title,
				Description: body.Description,
				Packages:    packageLines(body.Packages),
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": group})
		}).
		PATCH("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdatePackageGroupRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			group := a.packages.Update(ctx, params.ID, func(g *models.PackageGroup) {
				if body.Category != nil {
					g.Category = *body.Category
				}
				if body.Title != nil {
					g.Title = *body.Title
				}
				if body.Description != nil {
					g.Description = *body.Description
				}
				if body.Packages != nil {
					g.Packages = packageLines(body.Packages)
				}
			})
			if group == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": group})
		}).
		DELETE("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.packages.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
}

func packageLines(entries []types.PackageLineTemplateEntry) []models.Package {
	lines := make([]models.Package, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, models.Package{
			Name:        e.Name,
			Price:       e.Price,
			Description: e.Description,
		})
	}
	return lines
}

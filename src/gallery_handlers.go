package main

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/models"
	"sbs/src/types"
	"sbs/src/utils"
)

func galleryHandlers(public *gin.RouterGroup, admin *gin.RouterGroup, a *app) {
	public.
		GET("/gallery", func(ctx *gin.Context) {
			var items []models.GalleryItem
			if ctx.Query("featured") == "true" {
				items = a.gallery.Featured(ctx)
			} else if category := ctx.Query("category"); category != "" {
				items = a.gallery.ByCategory(ctx, category)
			} else {
				items = a.gallery.GetAll(ctx)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		})

	admin.
		POST("/gallery", func(ctx *gin.Context) {
			var body types.CreateGalleryItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item := a.gallery.Create(ctx, models.GalleryItem{
				Title:     body.Title,
				Category:  body.Category,
				MediaType: body.MediaType,
				URL:       body.URL,
				Featured:  body.Featured,
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		POST("/gallery/upload", func(ctx *gin.Context) {
			title := ctx.PostForm("title")
			if title == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
				return
			}
			fileHeader, err := ctx.FormFile("file")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			contentType := fileHeader.Header.Get("Content-Type")
			key := utils.AssetObjectKey(title, fileHeader.Filename)
			url, err := a.gateway.UploadAsset(ctx, key, contentType, data)
			if err != nil {
				log.Printf("Error uploading gallery asset: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Error while processing upload"})
				return
			}
			mediaType := "image"
			if ctx.PostForm("mediaType") != "" {
				mediaType = ctx.PostForm("mediaType")
			}
			item := a.gallery.Create(ctx, models.GalleryItem{
				Title:     title,
				Category:  ctx.PostForm("category"),
				MediaType: mediaType,
				URL:       url,
				Featured:  ctx.PostForm("featured") == "true",
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		PATCH("/gallery/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateGalleryItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item := a.gallery.Update(ctx, params.ID, func(i *models.GalleryItem) {
				if body.Title != nil {
					i.Title = *body.Title
				}
				if body.Category != nil {
					i.Category = *body.Category
				}
				if body.MediaType != nil {
					i.MediaType = *body.MediaType
				}
				if body.URL != nil {
					i.URL = *body.URL
				}
				if body.Featured != nil {
					i.Featured = *body.Featured
				}
			})
			if item == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		DELETE("/gallery/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.gallery.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
}

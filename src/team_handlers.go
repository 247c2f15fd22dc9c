package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sbs/src/models"
	"sbs/src/types"
)

func teamHandlers(authed *gin.RouterGroup, admin *gin.RouterGroup, a *app) {
	authed.
		GET("/profile", func(ctx *gin.Context) {
			user := a.team.GetByID(ctx, ctx.GetString("id"))
			if user == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})

	admin.
		GET("/team", func(ctx *gin.Context) {
			members := a.team.Members(ctx)
			ctx.JSON(http.StatusOK, gin.H{"data": members, "count": len(members)})
		}).
		GET("/team/specialists", func(ctx *gin.Context) {
			category := ctx.Query("category")
			if category == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
				return
			}
			specialists := a.team.Specialists(ctx, category)
			ctx.JSON(http.StatusOK, gin.H{"data": specialists, "count": len(specialists)})
		}).
		GET("/customers", func(ctx *gin.Context) {
			customers := a.team.Customers(ctx)
			ctx.JSON(http.StatusOK, gin.H{"data": customers, "count": len(customers)})
		}).
		POST("/team", func(ctx *gin.Context) {
			var body types.CreateTeamMemberRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if existing := a.team.ByEmail(ctx, body.Email); existing != nil {
				ctx.JSON(http.StatusConflict, gin.H{"error": "a user with this email already exists"})
				return
			}
			member := a.team.Create(ctx, models.User{
				Name:      body.Name,
				Email:     body.Email,
				Phone:     body.Phone,
				Role:      body.Role,
				Specialty: body.Specialty,
				AvatarURL: body.AvatarURL,
				Active:    true,
			})
			ctx.JSON(http.StatusCreated, gin.H{"data": member})
		}).
		PATCH("/team/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateTeamMemberRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			member := a.team.Update(ctx, params.ID, func(u *models.User) {
				if body.Name != nil {
					u.Name = *body.Name
				}
				if body.Email != nil {
					u.Email = *body.Email
				}
				if body.Phone != nil {
					u.Phone = *body.Phone
				}
				if body.Role != nil {
					u.Role = *body.Role
				}
				if body.Specialty != nil {
					u.Specialty = *body.Specialty
				}
				if body.AvatarURL != nil {
					u.AvatarURL = *body.AvatarURL
				}
				if body.Active != nil {
					u.Active = *body.Active
				}
			})
			if member == nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": member})
		}).
		DELETE("/team/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !a.team.Delete(ctx, params.ID) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
}

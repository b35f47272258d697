package main

import (
	"net/http"

	"oasis/src/config"
	"oasis/src/db"
	"oasis/src/lib"
	libaws "oasis/src/lib/aws"
	"oasis/src/models"
	"oasis/src/models/scopes"
	"oasis/src/types"

	"github.com/gin-gonic/gin"
)

func cabinHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/cabins", func(ctx *gin.Context) {
			var filters types.CabinQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// The unfiltered list is the cached rendering; it stays valid
			// until a mutation revalidates the path.
			if filters == (types.CabinQueryFilters{}) {
				if cached := lib.ViewCache(config.CabinsPath); cached != "" {
					ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
					return
				}
			}
			d := db.GetDb()
			q := d.Model(&models.Cabin{})
			if filters.MaxCapacity != "" {
				q = q.Where("max_capacity >= ?", filters.MaxCapacity)
			}
			if filters.Discounted == "true" {
				q = q.Where("discount > 0")
			}
			var cabins []models.Cabin
			if err := q.Order("name").Find(&cabins).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			res := gin.H{"data": cabins, "count": len(cabins)}
			if filters == (types.CabinQueryFilters{}) {
				lib.CacheView(config.CabinsPath, res)
			}
			ctx.JSON(http.StatusOK, res)
		}).
		GET("/cabins/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			d := db.GetDb()
			var cabin models.Cabin
			if err := d.
				Model(&models.Cabin{}).
				Scopes(scopes.WithID(params.ID)).
				First(&cabin).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "cabin not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":      cabin,
				"image_url": libaws.S3PresignImage(cabin.Image),
			})
		}).
		GET("/settings", func(ctx *gin.Context) {
			if cached := lib.ViewCache(config.SettingsPath); cached != "" {
				ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				return
			}
			d := db.GetDb()
			var setting models.Setting
			if err := d.Model(&models.Setting{}).First(&setting).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "settings not found"})
				return
			}
			res := gin.H{"data": setting}
			lib.CacheView(config.SettingsPath, res)
			ctx.JSON(http.StatusOK, res)
		})
	return g
}

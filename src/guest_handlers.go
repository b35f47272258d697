package main

import (
	"log"
	"net/http"
	"strings"

	"oasis/src/common"
	"oasis/src/config"
	"oasis/src/db"
	"oasis/src/lib"
	"oasis/src/models"
	"oasis/src/models/scopes"
	"oasis/src/types"

	"github.com/gin-gonic/gin"
)

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/account/profile", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			d := db.GetDb()
			var guest models.Guest
			if err := d.
				Model(&models.Guest{}).
				Scopes(scopes.WithID(guestId)).
				First(&guest).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guest})
		}).
		PUT("/account/profile", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			var body types.UpdateProfileRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				// All inputs are untrusted; the national id pattern is the
				// gate that fails before any persistence call.
				abortAction(ctx, common.Invalid("Please provide a valid national ID"))
				return
			}

			nationality, countryFlag := splitNationality(body.Nationality)

			d := db.GetDb()
			if err := d.
				Model(&models.Guest{}).
				Scopes(scopes.WithID(guestId)).
				Updates(map[string]any{
					"nationality":  nationality,
					"country_flag": countryFlag,
					"national_id":  body.NationalID,
				}).
				Error; err != nil {
				log.Printf("Error updating guest [%d]: %s\n", guestId, err.Error())
				abortAction(ctx, common.PersistenceFailure("Guest could not be updated"))
				return
			}

			lib.RevalidatePath(config.ProfilePath)
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{
				"nationality":  nationality,
				"country_flag": countryFlag,
				"national_id":  body.NationalID,
			}})
		})
	return g
}

// splitNationality unpacks the "CommonName%flagURL" select value. Anything
// after the first % is the flag reference; no further validation is applied.
func splitNationality(v string) (string, string) {
	parts := strings.SplitN(v, "%", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

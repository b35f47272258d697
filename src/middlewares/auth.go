package middlewares

import (
	"log"
	"os"
	"strings"

	"oasis/src/common"
	"oasis/src/db"
	"oasis/src/models"
	"oasis/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// AuthMiddleware resolves the principal for every action. There is no
// ambient session: handlers read the guest id from the request context or
// not at all. A missing or bad token is the "must be logged in" failure and
// aborts before any handler runs.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		abortUnauthenticated(ctx)
		return
	}
	parts := strings.Split(bearerToken, " ")
	if len(parts) < 2 || parts[1] == "" {
		abortUnauthenticated(ctx)
		return
	}
	reqToken := parts[1]
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		abortUnauthenticated(ctx)
		return
	}
	if !tkn.Valid {
		abortUnauthenticated(ctx)
		return
	}

	db := db.GetDb()
	var guest models.Guest
	if err := db.
		Model(&models.Guest{}).
		Where(&models.Guest{ID: claims.GuestID}).
		First(&guest).
		Error; err != nil {
		log.Printf("error resolving guest [%d]: %s\n", claims.GuestID, err.Error())
		abortUnauthenticated(ctx)
		return
	}

	ctx.Set("id", guest.ID)
	ctx.Set("email", guest.Email)
	ctx.Set("uid", guest.UID)
}

func abortUnauthenticated(ctx *gin.Context) {
	err := common.AuthenticationRequired()
	ctx.AbortWithStatusJSON(err.Status, gin.H{"error": err.Message})
}

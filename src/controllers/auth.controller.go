package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"oasis/src/db"
	"oasis/src/lib"
	"oasis/src/models"
	"oasis/src/types"
	"oasis/src/utils"

	"github.com/gin-gonic/gin"
)

// AuthLogin finishes a provider sign-in: resolve the verified identity,
// provision the guest record if this is the first visit, and issue a session
// token that carries the guest id. Any provisioning failure is a plain
// sign-in denial; the cause stays in the logs.
func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.SignInRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	auth, err := lib.GetFirebaseAuth()
	if err != nil {
		log.Printf("Error initializing FirebaseAuth client: %s\n", err.Error())
		return nil, http.StatusBadRequest, err
	}
	user, err := auth.GetUserByEmail(context.Background(), body.Email)
	if err != nil {
		log.Printf("error from Firebase: %s\n", err.Error())
		return nil, http.StatusNotFound, err
	}

	guestId, err := utils.EnsureGuest(user.Email, user.DisplayName, user.UID)
	if err != nil {
		log.Printf("Error provisioning guest for %s: %s\n", user.Email, err.Error())
		return nil, http.StatusUnauthorized, errors.New("sign-in could not be completed")
	}

	d := db.GetDb()
	var guest models.Guest
	if err := d.
		Model(&models.Guest{}).
		Where(&models.Guest{ID: guestId}).
		First(&guest).
		Error; err != nil {
		log.Printf("Guest [%d] missing after provisioning: %s\n", guestId, err.Error())
		return nil, http.StatusUnauthorized, errors.New("sign-in could not be completed")
	}

	jwt, err := utils.GenerateJWT(guest.Email, guest.ID, guest.UID)
	if err != nil {
		log.Printf("Error generating JWT token: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}

	rd := lib.GetRedisClient()
	if _, err := rd.JSONSet(ctx, fmt.Sprintf("%d:guest", guest.ID), "$", &guest).Result(); err != nil {
		log.Printf("[redis] Error updating guest cache: %s\n", err.Error())
	}

	return &jwt, http.StatusOK, nil
}

// AuthLogout drops the cached provider token. The session JWT simply ages
// out; the caller is pointed back at the landing page.
func AuthLogout(ctx *gin.Context) (redirect string, status int) {
	uid := ctx.GetString("uid")
	rd := lib.GetRedisClient()
	if err := rd.Del(context.Background(), fmt.Sprintf("%s:token", uid)).Err(); err != nil {
		log.Printf("[redis] Error dropping token for %s: %s\n", uid, err.Error())
	}
	return "/", http.StatusOK
}

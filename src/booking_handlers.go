package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"oasis/src/common"
	"oasis/src/config"
	"oasis/src/db"
	"oasis/src/lib"
	"oasis/src/lib/mailer"
	"oasis/src/models"
	"oasis/src/models/scopes"
	"oasis/src/types"
	"oasis/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			data, err := utils.GetOwnReservations(guestId)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		POST("/cabins/:id/reservations", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			// The price context never comes from the form: the cabin row is
			// the trusted side of the draft.
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

			startDate, _ := time.Parse(config.DATE_PARSE_FORMAT, body.StartDate)
			endDate, _ := time.Parse(config.DATE_PARSE_FORMAT, body.EndDate)
			numNights := uint(endDate.Sub(startDate).Hours() / 24)
			cabinPrice := float32(numNights) * (cabin.RegularPrice - cabin.Discount)

			booking := models.Booking{
				GuestID:      guestId,
				CabinID:      cabin.ID,
				StartDate:    startDate,
				EndDate:      endDate,
				NumNights:    numNights,
				NumGuests:    body.NumGuests,
				Observations: utils.Truncate(body.Observations, config.OBSERVATIONS_MAX_LEN),
				CabinPrice:   cabinPrice,
				ExtrasPrice:  0,
				TotalPrice:   cabinPrice,
				IsPaid:       false,
				HasBreakfast: false,
				Status:       types.BOOKING_UNCONFIRMED,
			}
			if err := d.Create(&booking).Error; err != nil {
				log.Printf("Error inserting booking for guest [%d]: %s\n", guestId, err.Error())
				abortAction(ctx, common.PersistenceFailure("Booking could not be created"))
				return
			}

			lib.RevalidatePath(fmt.Sprintf("%s/%d", config.CabinsPath, cabin.ID))
			if email := ctx.GetString("email"); email != "" {
				go mailer.SendBookingReceived(email, cabin.Name, booking.TotalPrice)
			}
			ctx.Redirect(http.StatusSeeOther, config.ThankYouPath)
		}).
		PATCH("/reservations/:id", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBind(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			owned, err := utils.OwnsBooking(guestId, params.ID)
			if err != nil {
				log.Printf("Error checking ownership of booking [%d]: %s\n", params.ID, err.Error())
				abortAction(ctx, common.PersistenceFailure("Booking could not be updated"))
				return
			}
			if !owned {
				abortAction(ctx, common.NotAllowed("You are not allowed to update this booking"))
				return
			}

			d := db.GetDb()
			if err := d.
				Model(&models.Booking{}).
				Scopes(scopes.WithID(params.ID)).
				Updates(map[string]any{
					"num_guests":   body.NumGuests,
					"observations": utils.Truncate(body.Observations, config.OBSERVATIONS_MAX_LEN),
				}).
				Error; err != nil {
				log.Printf("Error updating booking [%d]: %s\n", params.ID, err.Error())
				abortAction(ctx, common.PersistenceFailure("Booking could not be updated"))
				return
			}

			lib.RevalidatePath(config.ReservationsPath)
			lib.RevalidatePath(fmt.Sprintf("%s/edit/%d", config.ReservationsPath, params.ID))
			ctx.Redirect(http.StatusSeeOther, config.ReservationsPath)
		}).
		DELETE("/reservations/:id", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			if guestId == 0 {
				abortAction(ctx, common.AuthenticationRequired())
				return
			}
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			owned, err := utils.OwnsBooking(guestId, params.ID)
			if err != nil {
				log.Printf("Error checking ownership of booking [%d]: %s\n", params.ID, err.Error())
				abortAction(ctx, common.PersistenceFailure("Booking could not be deleted"))
				return
			}
			if !owned {
				abortAction(ctx, common.NotAllowed("You are not allowed to delete this booking"))
				return
			}

			d := db.GetDb()
			if err := d.
				Scopes(scopes.WithID(params.ID)).
				Delete(&models.Booking{}).
				Error; err != nil {
				log.Printf("Error deleting booking [%d]: %s\n", params.ID, err.Error())
				abortAction(ctx, common.PersistenceFailure("Booking could not be deleted"))
				return
			}

			lib.RevalidatePath(config.ReservationsPath)
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func abortAction(ctx *gin.Context, err *common.ActionError) {
	ctx.AbortWithStatusJSON(err.Status, gin.H{"error": err.Message})
}

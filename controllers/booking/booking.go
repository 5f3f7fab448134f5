package bookingController

import (
	"log"

	"hbook/config"
	"hbook/database"
	"hbook/middleware"
	"hbook/models"
	"hbook/utils"
	bookingValidator "hbook/validators/booking"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking reserves a room for the requested dates. The dates form a
// half-open interval [checkIn, checkOut): a stay may start the same day an
// earlier one ends.
func CreateBooking(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	roomId, err := c.ParamsInt("id")
	if err != nil || roomId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid room id!", nil)
	}

	reqData := c.Locals("validatedBooking").(*bookingValidator.BookingRequest)

	db := database.Database.Db

	var room models.Room
	if err := db.First(&room, roomId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Room not found!", nil)
	}

	// Reject when any live booking overlaps the requested interval:
	// existing.check_in < :checkOut AND existing.check_out > :checkIn
	var overlapping int64
	if err := db.Model(&models.Booking{}).
		Where("room_id = ? AND check_in < ? AND check_out > ?", room.ID, reqData.CheckOut, reqData.CheckIn).
		Count(&overlapping).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check availability!", nil)
	}
	if overlapping > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Room is already booked for the selected dates!", nil)
	}

	booking := models.Booking{
		UserID:   userId,
		RoomID:   room.ID,
		CheckIn:  reqData.CheckIn,
		CheckOut: reqData.CheckOut,
		Total:    room.PricePerNight * uint(reqData.Nights),
	}

	if err := db.Create(&booking).Error; err != nil {
		log.Printf("Error saving booking to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	if config.AppConfig.EmailSender != "" {
		var user models.User
		if err := db.First(&user, userId).Error; err == nil {
			go func() {
				if err := utils.SendBookingConfirmationEmail(
					user.Email, user.Name, room.RoomType,
					booking.CheckIn.Format(bookingValidator.DateFormat),
					booking.CheckOut.Format(bookingValidator.DateFormat),
					booking.Total,
				); err != nil {
					log.Printf("Error sending booking confirmation email: %v", err)
				}
			}()
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

// MyBookings lists the authenticated user's bookings
func MyBookings(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var bookings []models.Booking
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Preload("Room").
		Order("check_in").
		Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched!", bookings)
}

// CancelBooking deletes the authenticated user's booking. A booking that
// already has a payment cannot be cancelled; that would orphan the payment.
func CancelBooking(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	bookingId, err := c.ParamsInt("id")
	if err != nil || bookingId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("id = ? AND user_id = ?", bookingId, userId).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	var payment models.Payment
	if err := db.Where("booking_id = ?", booking.ID).First(&payment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Paid bookings cannot be cancelled!", nil)
	}

	if err := db.Delete(&booking).Error; err != nil {
		log.Printf("Error deleting booking: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking cancelled successfully!", nil)
}

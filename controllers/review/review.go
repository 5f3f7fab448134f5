package reviewController

import (
	"log"

	"hbook/database"
	"hbook/middleware"
	"hbook/models"
	reviewValidator "hbook/validators/review"

	"github.com/gofiber/fiber/v2"
)

// PostReview appends a review to a room. The created timestamp is assigned
// by the server; reviews are never edited or deleted.
func PostReview(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	roomId, err := c.ParamsInt("id")
	if err != nil || roomId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid room id!", nil)
	}

	reqData := c.Locals("validatedReview").(*reviewValidator.ReviewRequest)

	db := database.Database.Db

	var room models.Room
	if err := db.First(&room, roomId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Room not found!", nil)
	}

	review := models.Review{
		RoomID:  room.ID,
		UserID:  userId,
		Rating:  reqData.Rating,
		Comment: reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error saving review to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

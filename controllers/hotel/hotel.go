package hotelController

import (
	"strings"

	"hbook/database"
	"hbook/middleware"
	"hbook/models"

	"github.com/gofiber/fiber/v2"
)

// HotelPageSize is the fixed number of hotels per search page
const HotelPageSize = 5

// matchesCity reports whether the last comma-separated segment of the
// address equals the city. Addresses without a comma never match.
func matchesCity(address, city string) bool {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return false
	}
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1])) == city
}

// ListHotels searches hotels by optional keyword and city, paginated
func ListHotels(c *fiber.Ctx) error {
	keyword := strings.ToLower(strings.TrimSpace(c.Query("keyword")))
	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	db := database.Database.Db

	var hotels []models.Hotel
	query := db.Model(&models.Hotel{}).Order("id")
	if keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+keyword+"%")
	}
	if err := query.Find(&hotels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch hotels!", nil)
	}

	// The city lives inside the free-form address, so this filter is a
	// linear scan rather than an indexed query.
	if city != "" {
		filtered := make([]models.Hotel, 0, len(hotels))
		for _, hotel := range hotels {
			if matchesCity(hotel.Address, city) {
				filtered = append(filtered, hotel)
			}
		}
		hotels = filtered
	}

	totalItems := len(hotels)
	totalPages := (totalItems + HotelPageSize - 1) / HotelPageSize
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * HotelPageSize
	end := start + HotelPageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hotels fetched!", fiber.Map{
		"hotels": hotels[start:end],
		"pagination": fiber.Map{
			"page":       page,
			"pageSize":   HotelPageSize,
			"totalItems": totalItems,
			"totalPages": totalPages,
		},
	})
}

// HotelDetail returns a hotel with its rooms and pictures
func HotelDetail(c *fiber.Ctx) error {
	hotelId, err := c.ParamsInt("id")
	if err != nil || hotelId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid hotel id!", nil)
	}

	db := database.Database.Db

	var hotel models.Hotel
	if err := db.First(&hotel, hotelId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Hotel not found!", nil)
	}

	var rooms []models.Room
	if err := db.Where("hotel_id = ?", hotel.ID).Find(&rooms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rooms!", nil)
	}

	var pictures []models.Picture
	if err := db.Where("hotel_id = ?", hotel.ID).Find(&pictures).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pictures!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hotel fetched!", fiber.Map{
		"hotel":    hotel,
		"rooms":    rooms,
		"pictures": pictures,
	})
}

// RoomDetail returns a room with its pictures and reviews, newest first
func RoomDetail(c *fiber.Ctx) error {
	roomId, err := c.ParamsInt("id")
	if err != nil || roomId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid room id!", nil)
	}

	db := database.Database.Db

	var room models.Room
	if err := db.First(&room, roomId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Room not found!", nil)
	}

	var pictures []models.RoomPicture
	if err := db.Where("room_id = ?", room.ID).Find(&pictures).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pictures!", nil)
	}

	var reviews []models.Review
	if err := db.Where("room_id = ?", room.ID).Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Room fetched!", fiber.Map{
		"room":     room,
		"pictures": pictures,
		"reviews":  reviews,
	})
}

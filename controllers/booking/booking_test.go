package bookingController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hbook/config"
	"hbook/database"
	"hbook/middleware"
	"hbook/models"
	bookingRoutes "hbook/routers/bookingRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		BaseURL:   "http://localhost:3000",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	bookingRoutes.SetupBookingRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "Guest", Email: email, Password: "hashed", Phone: "+84900000001"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return user, token
}

func createRoom(t *testing.T, db *gorm.DB, price uint) models.Room {
	t.Helper()
	hotel := models.Hotel{Name: "Riverside Hotel", Address: "12 Bach Dang, Da Nang"}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, RoomType: "Deluxe", PricePerNight: price}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) (*http.Response, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func bookRoom(t *testing.T, app *fiber.App, roomID uint, token, checkIn, checkOut string) (*http.Response, apiResponse) {
	t.Helper()
	return doJSON(t, app, http.MethodPost, fmt.Sprintf("/bookings/room/%d", roomID), token,
		fiber.Map{"checkIn": checkIn, "checkOut": checkOut})
}

func TestCreateBookingComputesTotal(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	room := createRoom(t, db, 500000)

	resp, body := bookRoom(t, app, room.ID, token, "2024-06-01", "2024-06-03")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, body.Status)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, uint(1000000), booking.Total) // 500000/night x 2 nights
	assert.Equal(t, room.ID, booking.RoomID)
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	room := createRoom(t, db, 500000)

	// Unparseable date
	resp, _ := bookRoom(t, app, room.ID, token, "01-06-2024", "2024-06-03")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Zero nights
	resp, _ = bookRoom(t, app, room.ID, token, "2024-06-01", "2024-06-01")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Negative nights
	resp, _ = bookRoom(t, app, room.ID, token, "2024-06-03", "2024-06-01")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingOverlap(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	room := createRoom(t, db, 500000)

	resp, _ := bookRoom(t, app, room.ID, token, "2024-07-01", "2024-07-05")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Overlaps [2024-07-01, 2024-07-05)
	resp, body := bookRoom(t, app, room.ID, token, "2024-07-04", "2024-07-06")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Room is already booked for the selected dates!", body.Message)

	// Fully inside the existing stay
	resp, _ = bookRoom(t, app, room.ID, token, "2024-07-02", "2024-07-03")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Touching boundary: starts the day the existing stay ends
	resp, _ = bookRoom(t, app, room.ID, token, "2024-07-05", "2024-07-06")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Touching boundary on the other side
	resp, _ = bookRoom(t, app, room.ID, token, "2024-06-30", "2024-07-01")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateBookingOtherRoomUnaffected(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	roomA := createRoom(t, db, 500000)
	roomB := models.Room{HotelID: roomA.HotelID, RoomType: "Standard", PricePerNight: 300000}
	require.NoError(t, db.Create(&roomB).Error)

	resp, _ := bookRoom(t, app, roomA.ID, token, "2024-07-01", "2024-07-05")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same dates on a different room are fine
	resp, _ = bookRoom(t, app, roomB.ID, token, "2024-07-01", "2024-07-05")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")

	resp, _ := bookRoom(t, app, 42, token, "2024-06-01", "2024-06-03")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	app, db := setupApp(t)
	room := createRoom(t, db, 500000)

	resp, _ := bookRoom(t, app, room.ID, "", "2024-06-01", "2024-06-03")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMyBookings(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	_, otherToken := createUser(t, db, "other@example.com")
	room := createRoom(t, db, 500000)

	resp, _ := bookRoom(t, app, room.ID, token, "2024-06-01", "2024-06-03")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/bookings/my", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(body.Data, &bookings))
	assert.Len(t, bookings, 1)
	assert.Equal(t, "Deluxe", bookings[0].Room.RoomType)

	// Other users see nothing
	resp, body = doJSON(t, app, http.MethodGet, "/bookings/my", otherToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &bookings))
	assert.Empty(t, bookings)
}

func TestCancelBooking(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	room := createRoom(t, db, 500000)

	resp, _ := bookRoom(t, app, room.ID, token, "2024-07-01", "2024-07-05")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)

	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", booking.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The dates free up for rebooking
	resp, _ = bookRoom(t, app, room.ID, token, "2024-07-01", "2024-07-05")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCancelBookingOwnerOnly(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "guest@example.com")
	_, otherToken := createUser(t, db, "other@example.com")
	room := createRoom(t, db, 500000)

	resp, _ := bookRoom(t, app, room.ID, token, "2024-07-01", "2024-07-05")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)

	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", booking.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.First(&booking, booking.ID).Error) // still there
}

func TestCancelPaidBookingRefused(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "guest@example.com")
	room := createRoom(t, db, 500000)

	booking := models.Booking{
		UserID:   user.ID,
		RoomID:   room.ID,
		CheckIn:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		Total:    2000000,
	}
	require.NoError(t, db.Create(&booking).Error)
	payment := models.Payment{
		BookingID: booking.ID, Method: models.PaymentMethodCash,
		Reference: "ref-1", PaymentDate: time.Now(), Amount: booking.Total,
	}
	require.NoError(t, db.Create(&payment).Error)

	resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/bookings/%d/cancel", booking.ID), token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Paid bookings cannot be cancelled!", body.Message)

	require.NoError(t, db.First(&booking, booking.ID).Error)
}

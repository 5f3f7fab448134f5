package paymentController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hbook/config"
	"hbook/database"
	"hbook/middleware"
	"hbook/models"
	"hbook/utils"
	paymentValidator "hbook/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Controller handles payment recording. The gateway client is injected at
// startup; nil means the gateway is not configured and only direct methods
// are accepted.
type Controller struct {
	Gateway *utils.PayOSClient
}

func New(gateway *utils.PayOSClient) *Controller {
	return &Controller{Gateway: gateway}
}

// paymentDescription builds the gateway description for a booking, capped
// at the 25 characters PayOS allows.
func paymentDescription(bookingID uint) string {
	description := fmt.Sprintf("BOOKING %d", bookingID)
	if len(description) > 25 {
		description = description[:25]
	}
	return description
}

// MakePayment records a payment for the caller's booking. Direct methods
// (cash) create the payment row immediately; the gateway method answers
// with a checkout URL and leaves the recording to the webhook.
func (ct *Controller) MakePayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	bookingId, err := c.ParamsInt("id")
	if err != nil || bookingId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	reqData := c.Locals("validatedPayment").(*paymentValidator.PaymentRequest)

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("id = ? AND user_id = ?", bookingId, userId).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	// One payment per booking, regardless of method
	var existing models.Payment
	if err := db.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Booking is already paid!", nil)
	}

	if reqData.Method == models.PaymentMethodPayOS {
		return ct.createPaymentLink(c, &booking)
	}

	payment := models.Payment{
		BookingID:   booking.ID,
		Method:      reqData.Method,
		Reference:   uuid.NewString(),
		PaymentDate: time.Now(),
		Amount:      booking.Total,
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error saving payment to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", payment)
}

// createPaymentLink asks the gateway for a hosted checkout page. The caller
// is expected to redirect the buyer to the returned URL. Completion is only
// ever recorded by the webhook, never here.
func (ct *Controller) createPaymentLink(c *fiber.Ctx, booking *models.Booking) error {
	if ct.Gateway == nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false,
			"Payment service is currently unavailable. Please choose another method.", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, booking.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var room models.Room
	if err := db.First(&room, booking.RoomID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Room not found!", nil)
	}

	data := utils.PaymentData{
		OrderCode:   int64(booking.ID), // booking id doubles as the gateway order code
		Amount:      int64(booking.Total) * 1000,
		Description: paymentDescription(booking.ID),
		Items: []utils.PaymentItem{{
			Name:     "Room " + room.RoomType,
			Quantity: 1,
			Price:    int64(booking.Total),
		}},
		CancelUrl:  config.AppConfig.BaseURL + "/payments/cancel",
		ReturnUrl:  config.AppConfig.BaseURL + "/payments/return",
		BuyerName:  user.Name,
		BuyerEmail: user.Email,
		BuyerPhone: user.Phone,
	}

	result, err := ct.Gateway.CreatePaymentLink(data)
	if err != nil {
		var payosErr *utils.PayOSError
		if errors.As(err, &payosErr) {
			log.Printf("PayOS API error for booking %d: %v", booking.ID, payosErr)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false,
				"Payment gateway error: "+payosErr.Desc, nil)
		}
		log.Printf("Error creating payment link for booking %d: %v", booking.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false,
			"Failed to create payment link. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment link created!", fiber.Map{
		"orderCode":   booking.ID,
		"checkoutUrl": result.CheckoutUrl,
	})
}

// Webhook receives the gateway's server-to-server payment notification.
// This is the sole source of truth for gateway payment completion. The
// response speaks the provider's code/desc convention: "00" success, "02"
// order not found (still HTTP 200, the delivery itself succeeded), "99"
// anything else.
func (ct *Controller) Webhook(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"code": "99", "desc": "Invalid request method",
		})
	}

	var payload struct {
		OrderCode int64  `json:"orderCode"`
		Code      string `json:"code"`
	}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code": "99", "desc": "Invalid JSON",
		})
	}
	if payload.OrderCode == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code": "99", "desc": "Missing orderCode",
		})
	}

	// Only a success status mutates state; anything else is acknowledged
	// and ignored.
	if payload.Code != "00" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"code": "00", "desc": "Success",
		})
	}

	code, desc := "00", "Success"
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// Lock the booking row so concurrent or replayed deliveries for
		// the same order serialize on the existence check below.
		var booking models.Booking
		if err := database.LockForUpdate(tx).First(&booking, payload.OrderCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				code, desc = "02", "Order not found"
				return nil
			}
			return err
		}

		var existing models.Payment
		if err := tx.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
			desc = "Success (Already processed)"
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		payment := models.Payment{
			BookingID:   booking.ID,
			Method:      models.PaymentMethodPayOS,
			Reference:   uuid.NewString(),
			PaymentDate: time.Now(),
			Amount:      booking.Total,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		log.Printf("Error processing payment webhook for order %d: %v", payload.OrderCode, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code": "99", "desc": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"code": code, "desc": desc})
}

// PaymentReturn is the page the buyer lands on after the gateway checkout.
// It only echoes the query-string hints; it has no authority over state.
func (ct *Controller) PaymentReturn(c *fiber.Ctx) error {
	orderCode := c.Query("orderCode")
	status := c.Query("status")

	if orderCode == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Transaction information not found!", nil)
	}

	var message string
	ok := false
	switch status {
	case "PAID":
		message = fmt.Sprintf("Payment for booking #%s has been received. The system is updating.", orderCode)
		ok = true
	case "CANCELLED":
		message = fmt.Sprintf("You cancelled the payment for booking #%s.", orderCode)
	default: // PENDING, FAILED
		message = fmt.Sprintf("Payment for booking #%s failed or is still pending.", orderCode)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, ok, message, fiber.Map{
		"orderCode": orderCode,
		"status":    status,
	})
}

// PaymentCancel is the page the buyer lands on after aborting the checkout
func (ct *Controller) PaymentCancel(c *fiber.Ctx) error {
	orderCode := c.Query("orderCode")

	message := fmt.Sprintf("Payment for booking #%s was cancelled.", orderCode)
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"orderCode": orderCode,
	})
}

package paymentController

import (
	"egrow/config"
	"egrow/database"
	"egrow/middleware"
	"egrow/models"
	courseModels "egrow/models/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

// InitMidtrans configures the snap client. Called once at bootstrap.
func InitMidtrans() {
	env := midtrans.Sandbox
	if config.AppConfig.MidtransEnv == "production" {
		env = midtrans.Production
	}
	snapClient.New(config.AppConfig.MidtransServerKey, env)
}

// Checkout creates a pending payment and a snap token for a paid course
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
	}

	reqData := new(struct {
		CourseID uint `json:"courseId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.CourseID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "courseId is required")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", reqData.CourseID, false, true).
		First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found", "")
	}
	if course.IsFree {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "course is free, no payment needed")
	}

	payment := models.Payment{
		OrderID:  uuid.NewString(),
		UserID:   userID,
		CourseID: course.ID,
		Amount:   course.Price,
		Status:   "PENDING",
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.OrderID,
			GrossAmt: payment.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
	}

	resp, err := snapClient.CreateTransaction(snapReq)
	if err != nil {
		log.Printf("[PAYMENT] Snap transaction failed for order %s: %v", payment.OrderID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}
	payment.SnapToken = resp.Token

	if dbErr := db.Create(&payment).Error; dbErr != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", dbErr.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orderId":     payment.OrderID,
		"snapToken":   resp.Token,
		"redirectUrl": resp.RedirectURL,
	})
}

// Webhook receives payment-status notifications from the processor. On
// settlement the payment flips to PAID and the enrollment is activated.
func Webhook(c *fiber.Ctx) error {
	body := make(map[string]interface{})
	if err := c.BodyParser(&body); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "malformed payload")
	}

	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", "missing order_id or transaction_status")
	}

	db := database.Database.Db

	var payment models.Payment
	if err := db.Where("order_id = ? AND is_deleted = ?", orderID, false).First(&payment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Payment not found", "")
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.Status = "PAID"
		payment.PaidAt = &now
	case "expire":
		payment.Status = "EXPIRED"
	case "cancel", "deny":
		payment.Status = "CANCELLED"
	default:
		log.Printf("[PAYMENT] Ignoring transaction status %q for order %s", status, orderID)
		return c.SendStatus(fiber.StatusOK)
	}

	if err := db.Save(&payment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	// Activate enrollment once the money settles
	if payment.Status == "PAID" {
		var enrollment courseModels.Enrollment
		err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", payment.UserID, payment.CourseID, false).
			First(&enrollment).Error
		if err != nil {
			enrollment = courseModels.Enrollment{
				UserID:     payment.UserID,
				CourseID:   payment.CourseID,
				Status:     "ACTIVE",
				EnrolledAt: time.Now(),
			}
			if err := db.Create(&enrollment).Error; err != nil {
				log.Printf("[PAYMENT] Could not create enrollment for order %s: %v", orderID, err)
			}
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetPaymentHistory lists the caller's payments
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "")
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"payments": payments})
}

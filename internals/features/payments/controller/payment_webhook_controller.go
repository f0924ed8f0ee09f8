package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorhub_backend/internals/features/payments/model"
	"tutorhub_backend/internals/features/payments/service"
)

// HandleMidtransNotification memproses webhook Midtrans. order_id = payment_id.
func (ctl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook",
		})
	}

	log.Println("Received webhook:", body)

	if err := ctl.applyGatewayNotification(ctl.DB, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

// applyGatewayNotification memetakan transaction_status Midtrans ke status
// pembayaran. Status terminal tidak pernah diturunkan oleh notifikasi.
func (ctl *PaymentController) applyGatewayNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	transactionID, _ := body["transaction_id"].(string)

	paymentID, err := uuid.Parse(orderID)
	if err != nil {
		return err
	}

	var payment model.PaymentModel
	if err := db.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		return err
	}

	var next string
	switch transactionStatus {
	case "capture", "settlement":
		next = model.PaymentStatusSuccessful
	case "expire", "deny", "failure":
		next = model.PaymentStatusFailed
	case "cancel":
		next = model.PaymentStatusCancelled
	default:
		// pending dsb: tidak ada perpindahan
		return nil
	}

	if !payment.CanTransitionTo(next) {
		log.Printf("[WARNING] webhook %s diabaikan: payment %s berstatus %s",
			transactionStatus, payment.PaymentID, payment.PaymentStatus)
		return nil
	}

	payment.PaymentStatus = next
	if next == model.PaymentStatusSuccessful {
		now := time.Now()
		payment.PaymentPaidAt = &now
		if transactionID != "" {
			payment.PaymentGatewayReference = &transactionID
		}
	}

	merged, err := service.MergeMeta(payment.PaymentMeta, map[string]any{
		"gateway_transaction_status": transactionStatus,
		"gateway_transaction_id":     transactionID,
	})
	if err == nil {
		payment.PaymentMeta = merged
	}

	return db.Save(&payment).Error
}

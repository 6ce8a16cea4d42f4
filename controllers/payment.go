// controllers/payment.go
package controllers

import (
	"errors"
	"net/http"

	"atelier-backend/config"
	"atelier-backend/models"
	"atelier-backend/services"
	"atelier-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordPaymentInput defines the expected JSON structure for recording a payment
type RecordPaymentInput struct {
	BookingID uuid.UUID       `json:"bookingId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	PaidOn    *models.Date    `json:"paidOn"`
	Notes     string          `json:"notes"`
}

// UpdatePaymentInput defines the expected JSON structure for editing a payment
type UpdatePaymentInput struct {
	Amount *decimal.Decimal `json:"amount"`
	PaidOn *models.Date     `json:"paidOn"`
	Notes  *string          `json:"notes"`
}

// RecordPayment collects money against a booking and moves its balance
func RecordPayment(c *gin.Context) {
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	paidOn := models.Today()
	if input.PaidOn != nil {
		paidOn = *input.PaidOn
	}

	ledger := services.NewLedgerService(config.DB)
	payment, err := ledger.RecordPayment(input.BookingID, input.Amount, paidOn, input.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves all payments, optionally filtered by booking or
// bride name
func GetPayments(c *gin.Context) {
	query := config.DB
	if bookingID := c.Query("bookingId"); bookingID != "" {
		bookingUUID, err := uuid.Parse(bookingID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
			return
		}
		query = query.Where("booking_id = ?", bookingUUID)
	}
	if name := c.Query("brideName"); name != "" {
		query = query.Where("bride_name = ?", name)
	}

	var payments []models.Payment
	if err := query.Order("paid_on").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPayment retrieves a specific payment by ID
func GetPayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", paymentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// UpdatePayment edits a payment row. The parent booking's balance is not
// recomputed; delete and re-record the payment to move it.
func UpdatePayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB)
	payment, err := ledger.UpdatePayment(paymentUUID, services.UpdatePaymentInput{
		Amount: input.Amount,
		PaidOn: input.PaidOn,
		Notes:  input.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a payment and restores the booking balance it
// had reduced
func DeletePayment(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	if err := ledger.DeletePayment(paymentUUID); err != nil {
		respondServiceError(c, err, "Failed to delete payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

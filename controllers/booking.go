// controllers/booking.go
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

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	CustomerID uuid.UUID       `json:"customerId" binding:"required"`
	Department string          `json:"department" binding:"required,oneof=makeup photography hair skincare dresses"`
	ServiceID  uuid.UUID       `json:"serviceId" binding:"required"`
	DressID    *uuid.UUID      `json:"dressId"`
	EventDate  models.Date     `json:"eventDate" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Deposit    decimal.Decimal `json:"deposit"`
	Notes      string          `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	ServiceID *uuid.UUID       `json:"serviceId"`
	DressID   *uuid.UUID       `json:"dressId"`
	EventDate *models.Date     `json:"eventDate"`
	Price     *decimal.Decimal `json:"price"`
	Notes     *string          `json:"notes"`
}

// CreateBooking books a service (and optionally a dress) for a customer.
// A positive deposit also records the opening payment atomically.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB)
	booking, err := ledger.CreateBooking(services.CreateBookingInput{
		CustomerID: input.CustomerID,
		Department: input.Department,
		ServiceID:  input.ServiceID,
		DressID:    input.DressID,
		EventDate:  input.EventDate,
		Price:      input.Price,
		Deposit:    input.Deposit,
		Notes:      input.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves all bookings, optionally filtered by bride name
// or department
func GetBookings(c *gin.Context) {
	query := config.DB.Preload("Payments")
	if name := c.Query("brideName"); name != "" {
		query = query.Where("bride_name = ?", name)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Payments").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking edits a booking. A price change recomputes the remaining
// balance against what has already been paid.
func UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB)
	booking, err := ledger.UpdateBooking(bookingUUID, services.UpdateBookingInput{
		ServiceID: input.ServiceID,
		DressID:   input.DressID,
		EventDate: input.EventDate,
		Price:     input.Price,
		Notes:     input.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking; blocked while payments reference it
func DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	if err := ledger.DeleteBooking(bookingUUID); err != nil {
		respondServiceError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

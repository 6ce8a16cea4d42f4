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
	"gorm.io/gorm"
)

// CreateDressInput defines the expected JSON structure for adding a dress
type CreateDressInput struct {
	Code        string       `json:"code" binding:"required"`
	Category    string       `json:"category"`
	PurchasedOn *models.Date `json:"purchasedOn"`
	Description string       `json:"description"`
	ImagePath   string       `json:"imagePath"`
}

// UpdateDressInput defines the expected JSON structure for updating a dress
type UpdateDressInput struct {
	Category    *string      `json:"category"`
	PurchasedOn *models.Date `json:"purchasedOn"`
	Description *string      `json:"description"`
	ImagePath   *string      `json:"imagePath"`
	Status      *string      `json:"status"`
}

// CreateDress adds a dress to the catalog. The code is user-supplied and
// must be unique.
func CreateDress(c *gin.Context) {
	var input CreateDressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if the code is already taken
	var existingDress models.Dress
	if err := config.DB.Where("code = ?", input.Code).
		First(&existingDress).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A dress with this code already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	dress := models.Dress{
		Code:        input.Code,
		Category:    input.Category,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		Status:      models.DressAvailable,
	}
	if input.PurchasedOn != nil {
		dress.PurchasedOn = *input.PurchasedOn
	}

	if err := config.DB.Create(&dress).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create dress")
		return
	}

	c.JSON(http.StatusCreated, dress)
}

// GetDresses retrieves the dress catalog, optionally filtered by status
func GetDresses(c *gin.Context) {
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var dresses []models.Dress
	if err := query.Find(&dresses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve dresses")
		return
	}

	c.JSON(http.StatusOK, dresses)
}

// GetDress retrieves a specific dress by ID
func GetDress(c *gin.Context) {
	dressUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dress ID format")
		return
	}

	var dress models.Dress
	if err := config.DB.First(&dress, "id = ?", dressUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dress not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, dress)
}

// UpdateDress updates an existing dress
func UpdateDress(c *gin.Context) {
	dressUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dress ID format")
		return
	}

	var input UpdateDressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var dress models.Dress
	if err := config.DB.First(&dress, "id = ?", dressUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Dress not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Category != nil {
		dress.Category = *input.Category
	}
	if input.PurchasedOn != nil {
		dress.PurchasedOn = *input.PurchasedOn
	}
	if input.Description != nil {
		dress.Description = *input.Description
	}
	if input.ImagePath != nil {
		dress.ImagePath = *input.ImagePath
	}
	if input.Status != nil {
		if !models.ValidDressStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dress status")
			return
		}
		dress.Status = *input.Status
	}

	if err := config.DB.Save(&dress).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update dress")
		return
	}

	c.JSON(http.StatusOK, dress)
}

// DeleteDress removes a dress; blocked while bookings reference it
func DeleteDress(c *gin.Context) {
	dressUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dress ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	if err := ledger.DeleteDress(dressUUID); err != nil {
		respondServiceError(c, err, "Failed to delete dress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dress deleted successfully"})
}

package controllers

import (
	"errors"
	"net/http"

	"atelier-backend/config"
	"atelier-backend/models"
	"atelier-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// getOrCreateAtelier returns the single shop profile row, creating a
// default one on first use.
func getOrCreateAtelier() (*models.Atelier, error) {
	var atelier models.Atelier
	err := config.DB.First(&atelier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		atelier = models.Atelier{
			Name:             "Atelier",
			EventReminders:   true,
			PaymentReminders: true,
			WorkingHours:     models.JSONB{},
		}
		if err := config.DB.Create(&atelier).Error; err != nil {
			return nil, err
		}
		return &atelier, nil
	}
	if err != nil {
		return nil, err
	}
	return &atelier, nil
}

func GetSettings(c *gin.Context) {
	atelier, err := getOrCreateAtelier()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, atelier)
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	atelier, err := getOrCreateAtelier()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	if input.Name != nil {
		atelier.Name = *input.Name
	}
	if input.Address != nil {
		atelier.Address = *input.Address
	}
	if input.Phone != nil {
		atelier.Phone = *input.Phone
	}

	if err := config.DB.Save(atelier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateWorkingHours(c *gin.Context) {
	var input struct {
		WorkingHours models.JSONB `json:"workingHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	atelier, err := getOrCreateAtelier()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	if err := config.DB.Model(atelier).
		Update("working_hours", input.WorkingHours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	var input struct {
		EventReminders        bool `json:"eventReminders"`
		PaymentReminders      bool `json:"paymentReminders"`
		WhatsAppNotifications bool `json:"whatsAppNotifications"`
		SMSNotifications      bool `json:"smsNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	atelier, err := getOrCreateAtelier()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	if err := config.DB.Model(atelier).
		Updates(map[string]interface{}{
			"event_reminders":         input.EventReminders,
			"payment_reminders":       input.PaymentReminders,
			"whats_app_notifications": input.WhatsAppNotifications,
			"sms_notifications":       input.SMSNotifications,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}

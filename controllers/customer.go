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

// CreateCustomerInput defines the expected JSON structure for registering a customer
type CreateCustomerInput struct {
	BrideName    string       `json:"brideName" binding:"required"`
	GroomName    string       `json:"groomName"`
	Address      string       `json:"address"`
	Phone1       string       `json:"phone1" binding:"required"`
	Phone2       string       `json:"phone2"`
	RegisteredOn *models.Date `json:"registeredOn"`
	Notes        string       `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	BrideName *string `json:"brideName"`
	GroomName *string `json:"groomName"`
	Address   *string `json:"address"`
	Phone1    *string `json:"phone1"`
	Phone2    *string `json:"phone2"`
	Notes     *string `json:"notes"`
}

// CreateCustomer registers a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone1) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if input.Phone2 != "" && !utils.ValidatePhone(input.Phone2) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid second phone number format")
		return
	}

	// Check if phone already exists
	var existingCustomer models.Customer
	if err := config.DB.Where("phone1 = ?", input.Phone1).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	registeredOn := models.Today()
	if input.RegisteredOn != nil {
		registeredOn = *input.RegisteredOn
	}

	customer := models.Customer{
		RegisteredOn: registeredOn,
		BrideName:    input.BrideName,
		GroomName:    input.GroomName,
		Address:      input.Address,
		Phone1:       input.Phone1,
		Phone2:       input.Phone2,
		Notes:        input.Notes,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers, optionally filtered by bride name
func GetCustomers(c *gin.Context) {
	query := config.DB
	if name := c.Query("brideName"); name != "" {
		query = query.Where("bride_name LIKE ?", "%"+name+"%")
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer. Name changes go through
// the ledger so the copies on booking and payment rows follow.
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Phone1 != nil {
		if !utils.ValidatePhone(*input.Phone1) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone1 = *input.Phone1
	}
	if input.Phone2 != nil {
		customer.Phone2 = *input.Phone2
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	if input.BrideName != nil || input.GroomName != nil {
		brideName := customer.BrideName
		groomName := customer.GroomName
		if input.BrideName != nil {
			brideName = *input.BrideName
		}
		if input.GroomName != nil {
			groomName = *input.GroomName
		}

		ledger := services.NewLedgerService(config.DB)
		renamed, err := ledger.RenameCustomer(customer.ID, brideName, groomName)
		if err != nil {
			respondServiceError(c, err, "Failed to rename customer")
			return
		}
		customer = *renamed
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer; blocked while bookings reference it
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB)
	if err := ledger.DeleteCustomer(customerUUID); err != nil {
		respondServiceError(c, err, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

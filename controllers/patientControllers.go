package controllers

import (
	"errors"
	"net/http"

	"github.com/captainwycliffe/omnimed/configuration"
	"github.com/captainwycliffe/omnimed/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// CreateUser handles the landing form: a lightweight identity is created
// before the full patient registration. Submitting the same email again
// returns the existing user instead of erroring, so the form is safe to
// resubmit.
func CreateUser(c *gin.Context) {
	var user models.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if user.Name == "" || user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	var existing models.User
	if err := configuration.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"Status":  "Success",
			"Message": "User already exists",
			"data":    existing,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	user.UserID = uuid.NewString()
	if err := configuration.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "User created successfully",
		"data":    user,
	})
}

// GetUser fetches the lightweight identity by id
func GetUser(c *gin.Context) {
	var user models.User
	userID := c.Param("user_id")

	if err := configuration.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "User fetched successfully",
		"data":    user,
	})
}

// RegisterPatient completes the full patient registration for an existing
// user.
func RegisterPatient(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient.UserID = c.Param("user_id")

	// Validate patient struct fields
	if err := validate.Struct(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"Message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	var user models.User
	if err := configuration.DB.Where("user_id = ?", patient.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wrong user ID"})
		return
	}

	// One patient record per user
	var existing models.Patient
	if err := configuration.DB.Where("user_id = ?", patient.UserID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"Message": "Patient already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "database error"})
		return
	}

	patient.PatientID = uuid.NewString()
	if err := configuration.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Patient registered successfully",
		"data":    patient,
	})
}

// GetPatient fetches the registered patient of a user. A user without a
// completed registration yields null data rather than an error, the caller
// redirects to the register step in that case.
func GetPatient(c *gin.Context) {
	var patient models.Patient
	userID := c.Param("user_id")

	if err := configuration.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"Status":  "Success",
				"Message": "No patient registered for this user",
				"data":    nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Patient fetched successfully",
		"data":    patient,
	})
}

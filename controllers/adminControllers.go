package controllers

import (
	"net/http"

	"github.com/captainwycliffe/omnimed/authentication"
	"github.com/captainwycliffe/omnimed/configuration"
	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/models"
	"github.com/captainwycliffe/omnimed/projection"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin exchanges the administrative passkey for a token guarding the
// /admin routes
func AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Passkey  string `json:"passkey" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" {
		req.Username = "admin"
	}

	var dbAdmin models.Admin
	if err := configuration.DB.Where("username = ?", req.Username).First(&dbAdmin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or passkey"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbAdmin.Passkey), []byte(req.Passkey)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or passkey"})
		return
	}

	token, err := authentication.GenerateAdminToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func AdminLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// GetAppointmentTable feeds the admin dashboard: every appointment projected
// into a display row, newest first, plus the per-status counts shown in the
// header cards.
func GetAppointmentTable(c *gin.Context) {
	var appointments []models.Appointment
	if err := configuration.DB.Preload("Patient").Order("created_at DESC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch appointments"})
		return
	}

	// Query the database to count appointments per status
	var scheduledCount int64
	if err := configuration.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusScheduled).Count(&scheduledCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch scheduled count"})
		return
	}

	var pendingCount int64
	if err := configuration.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&pendingCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch pending count"})
		return
	}

	var cancelledCount int64
	if err := configuration.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCancelled).Count(&cancelledCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch cancelled count"})
		return
	}

	rows := projection.Project(appointments, directory.Dir)

	c.JSON(http.StatusOK, gin.H{
		"Status":         "Success",
		"Message":        "Appointments fetched successfully",
		"TotalCount":     len(rows),
		"ScheduledCount": scheduledCount,
		"PendingCount":   pendingCount,
		"CancelledCount": cancelledCount,
		"data":           rows,
	})
}

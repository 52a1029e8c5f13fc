package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/captainwycliffe/omnimed/configuration"
	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/models"
	"github.com/captainwycliffe/omnimed/projection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointment books a new appointment request for a registered
// patient. Requests always start out pending until an administrator
// schedules them.
func CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.BindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appointment.UserID = c.Param("user_id")

	if appointment.PrimaryPhysician == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Primary physician is required"})
		return
	}

	// Check if the appointment date is in the past
	if appointment.Schedule.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment date cannot be in the past"})
		return
	}

	// Check if the patient exists
	var patient models.Patient
	if err := configuration.DB.Where("patient_id = ?", appointment.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wrong patient ID"})
		return
	}

	appointment.AppointmentID = uuid.NewString()
	appointment.Status = models.StatusPending
	appointment.Patient = nil
	if err := configuration.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment requested successfully",
		"data":    appointment,
	})
}

// GetAppointment returns one appointment together with its display
// projection: resolved doctor, badge and the formatted schedule the success
// page shows.
func GetAppointment(c *gin.Context) {
	var appointment models.Appointment
	appointmentID := c.Param("id")

	if err := configuration.DB.Preload("Patient").Where("appointment_id = ?", appointmentID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows := projection.Project([]models.Appointment{appointment}, directory.Dir)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment fetched successfully",
		"data":    appointment,
		"view":    rows[0],
	})
}

// GetAppointmentHistory lists a user's own appointments in request order
func GetAppointmentHistory(c *gin.Context) {
	var appointments []models.Appointment
	userID := c.Param("user_id")

	if err := configuration.DB.Preload("Patient").Where("user_id = ?", userID).Order("created_at").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get appointment history"})
		return
	}
	if len(appointments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment history fetched successfully",
		"data":    projection.Project(appointments, directory.Dir),
	})
}

// ScheduleAppointment confirms a pending appointment, optionally adjusting
// the physician and time, and notifies the patient. Cancelled appointments
// stay cancelled.
func ScheduleAppointment(c *gin.Context) {
	var req struct {
		PrimaryPhysician string    `json:"primary_physician"`
		Schedule         time.Time `json:"schedule"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.Preload("Patient").Where("appointment_id = ?", c.Param("id")).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if !projection.CanTransition(appointment.Status, models.StatusScheduled) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cannot schedule a %s appointment", appointment.Status)})
		return
	}

	if req.PrimaryPhysician != "" {
		appointment.PrimaryPhysician = req.PrimaryPhysician
	}
	if !req.Schedule.IsZero() {
		appointment.Schedule = req.Schedule
	}
	appointment.Status = models.StatusScheduled

	if err := configuration.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule appointment"})
		return
	}

	notifyScheduled(appointment)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment scheduled successfully",
		"data":    appointment,
	})
}

// CancelAppointment cancels a pending or scheduled appointment. A reason is
// mandatory and the patient is notified.
func CancelAppointment(c *gin.Context) {
	var req struct {
		CancellationReason string `json:"cancellation_reason"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CancellationReason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cancellation reason is required"})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.Preload("Patient").Where("appointment_id = ?", c.Param("id")).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if !projection.CanTransition(appointment.Status, models.StatusCancelled) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cannot cancel a %s appointment", appointment.Status)})
		return
	}

	appointment.Status = models.StatusCancelled
	appointment.CancellationReason = req.CancellationReason

	if err := configuration.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	notifyCancelled(appointment)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment cancelled successfully",
		"data":    appointment,
	})
}

// Notifications are best effort: the state change already happened, a
// failed message must not turn the response into an error.
func notifyScheduled(appointment models.Appointment) {
	if appointment.Patient == nil {
		log.Println("No patient loaded for appointment", appointment.AppointmentID, ", skipping notifications")
		return
	}

	doctor := directory.Dir.Resolve(appointment.PrimaryPhysician)
	when := projection.FormatSchedule(appointment.Schedule)

	sms := fmt.Sprintf("Greetings from OmniMed. Your appointment is confirmed for %s with Dr. %s.", when, doctor.Name)
	if err := SendSMS(appointment.Patient.Phone, sms); err != nil {
		log.Println("Failed to send schedule SMS:", err)
	}

	pdfSummary, err := generateAppointmentPDF(appointment, doctor)
	if err != nil {
		log.Println("Failed to generate appointment PDF:", err)
		return
	}
	msg := fmt.Sprintf("Your appointment with Dr. %s has been scheduled for %s. A summary is attached.", doctor.Name, when)
	if err := SendEmail("Appointment confirmation", msg, appointment.Patient.Email, "appointment.pdf", pdfSummary); err != nil {
		log.Println("Failed to send confirmation email:", err)
	}
}

func notifyCancelled(appointment models.Appointment) {
	if appointment.Patient == nil {
		log.Println("No patient loaded for appointment", appointment.AppointmentID, ", skipping notifications")
		return
	}

	when := projection.FormatSchedule(appointment.Schedule)
	sms := fmt.Sprintf("Greetings from OmniMed. We regret to inform that your appointment for %s is cancelled. Reason: %s", when, appointment.CancellationReason)
	if err := SendSMS(appointment.Patient.Phone, sms); err != nil {
		log.Println("Failed to send cancellation SMS:", err)
	}
}

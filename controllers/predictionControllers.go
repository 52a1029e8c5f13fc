package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/captainwycliffe/omnimed/configuration"
	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/prediction"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// matchedDoctorTTL bounds the session-scoped handoff between the
// found-doctor step and the new-appointment form.
const matchedDoctorTTL = 30 * time.Minute

var predictionClient *prediction.Client

// PredictionClient lazily builds the client for the external
// disease-prediction service.
func PredictionClient() *prediction.Client {
	if predictionClient == nil {
		base := os.Getenv("PREDICTION_API")
		if base == "" {
			base = "https://disease-prediction-and-medical.onrender.com"
		}
		predictionClient = prediction.NewClient(base)
	}
	return predictionClient
}

// PredictDisease forwards the patient's comma-separated symptoms to the
// prediction service and returns its insights. Any upstream failure comes
// back as one generic message so the patient can simply retry.
func PredictDisease(c *gin.Context) {
	var req struct {
		Symptoms string `json:"symptoms" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := PredictionClient().Predict(c.Request.Context(), req.Symptoms)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Prediction fetched successfully",
		"data":    result,
	})
}

// MatchDoctor matches the predicted condition against the doctor directory
// and stashes the result for the booking step. No match is a normal outcome
// and renders the condition back to the patient.
func MatchDoctor(c *gin.Context) {
	disease := c.Query("disease")
	userID := c.Param("user_id")

	doctor, ok := directory.Dir.Match(disease)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "NotFound",
			"Message": fmt.Sprintf("Sorry, no doctor found for %s. Please try again.", disease),
		})
		return
	}

	payload, err := json.Marshal(doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store matched doctor"})
		return
	}
	key := fmt.Sprintf("matched_doctor:%s", userID)
	if err := configuration.SetRedis(key, payload, matchedDoctorTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store matched doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor matched successfully",
		"data":    doctor,
	})
}

// GetMatchedDoctor reads back the stashed match for the new-appointment
// form. Expired or absent handoffs just mean the patient restarts the
// matching step.
func GetMatchedDoctor(c *gin.Context) {
	key := fmt.Sprintf("matched_doctor:%s", c.Param("user_id"))

	value, err := configuration.GetRedis(key)
	if err != nil {
		if err == redis.Nil {
			c.JSON(http.StatusNotFound, gin.H{"Message": "No matched doctor found for this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matched doctor"})
		return
	}

	var doctor directory.Doctor
	if err := json.Unmarshal([]byte(value), &doctor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode matched doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Matched doctor fetched successfully",
		"data":    doctor,
	})
}

// GetDoctors lists the doctor directory for the appointment form picker
func GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors fetched successfully",
		"data":    directory.Dir.Doctors(),
	})
}

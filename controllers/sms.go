package controllers

import (
	"errors"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// SendSMS texts the patient about schedule and cancellation changes
func SendSMS(to, body string) error {
	if to == "" {
		return errors.New("no phone number on record")
	}

	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTHTOKEN")

	// Initialize Twilio client
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(os.Getenv("TWILIO_PHONENUMBER"))
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		log.Println("Failed to send SMS:", err)
		return err
	}
	return nil
}

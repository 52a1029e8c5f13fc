package models

import "time"

// User is the lightweight identity created from the landing form,
// before the full patient registration is completed.
type User struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Patient struct {
	PatientID              string    `gorm:"primaryKey" json:"patient_id"`
	UserID                 string    `json:"user_id" gorm:"index;not null"`
	Name                   string    `json:"name" validate:"required"`
	Email                  string    `json:"email" validate:"required,email"`
	Phone                  string    `json:"phone" validate:"required"`
	BirthDate              time.Time `json:"birth_date"`
	Gender                 string    `json:"gender"`
	Address                string    `json:"address"`
	Occupation             string    `json:"occupation"`
	EmergencyContactName   string    `json:"emergency_contact_name"`
	EmergencyContactNumber string    `json:"emergency_contact_number"`
	PrimaryPhysician       string    `json:"primary_physician"`
	InsuranceProvider      string    `json:"insurance_provider"`
	InsurancePolicyNumber  string    `json:"insurance_policy_number"`
	Allergies              string    `json:"allergies"`
	CurrentMedication      string    `json:"current_medication"`
	FamilyMedicalHistory   string    `json:"family_medical_history"`
	PastMedicalHistory     string    `json:"past_medical_history"`
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

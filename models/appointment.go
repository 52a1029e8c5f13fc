package models

import "time"

// Appointment lifecycle statuses. The set is closed: anything else in the
// status column is a data-integrity problem, not a fourth state.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	AppointmentID      string    `gorm:"primaryKey" json:"appointment_id"`
	UserID             string    `json:"user_id" gorm:"index"`
	PatientID          string    `json:"patient_id" gorm:"index;not null"`
	Patient            *Patient  `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:PatientID"`
	PrimaryPhysician   string    `json:"primary_physician"`
	Schedule           time.Time `json:"schedule"`
	Status             string    `json:"status" gorm:"default:'pending'"`
	Reason             string    `json:"reason"`
	Note               string    `json:"note"`
	CancellationReason string    `json:"cancellation_reason"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

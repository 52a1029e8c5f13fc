package projection

import (
	"log"
	"time"

	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/models"
)

// scheduleLayout is the fixed display format for appointment times. Kept
// locale-independent so test fixtures can round-trip it.
const scheduleLayout = "Jan 2, 2006, 3:04 PM"

// unknownSchedule is rendered when an appointment carries no usable
// timestamp instead of propagating a formatting failure.
const unknownSchedule = "Unknown date"

// Action is the payload one of the row buttons carries into the
// schedule/cancel confirmation flow. The projector only assembles it; the
// mutation itself happens in the appointment controllers.
type Action struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	UserID        string `json:"user_id"`
}

// Row is the display-ready view of one appointment in the admin table.
type Row struct {
	Ordinal     int              `json:"ordinal"`
	PatientName string           `json:"patient_name"`
	Badge       Badge            `json:"badge"`
	Schedule    string           `json:"schedule"`
	Doctor      directory.Doctor `json:"doctor"`
	Actions     []Action         `json:"actions"`
	Error       string           `json:"error,omitempty"`
}

// FormatSchedule renders an appointment timestamp in the fixed table format.
func FormatSchedule(t time.Time) string {
	if t.IsZero() {
		return unknownSchedule
	}
	return t.Format(scheduleLayout)
}

// Project turns appointment records into table rows, one per record, in
// input order. A malformed record poisons only its own row: the row is still
// emitted, carrying whatever could be resolved plus an error note.
func Project(appointments []models.Appointment, dir *directory.Directory) []Row {
	rows := make([]Row, len(appointments))
	for i, appointment := range appointments {
		rows[i] = projectRow(i, appointment, dir)
	}
	return rows
}

func projectRow(index int, appointment models.Appointment, dir *directory.Directory) Row {
	row := Row{
		Ordinal:  index + 1,
		Schedule: FormatSchedule(appointment.Schedule),
		Doctor:   dir.Resolve(appointment.PrimaryPhysician),
	}

	if appointment.Patient != nil {
		row.PatientName = appointment.Patient.Name
	} else {
		row.PatientName = "unknown"
		row.Error = "patient record missing"
	}

	badge, err := BadgeFor(appointment.Status)
	if err != nil {
		// Contract violation upstream, worth shouting about.
		log.Printf("appointment %s: %v", appointment.AppointmentID, err)
		row.Error = err.Error()
	}
	row.Badge = badge

	row.Actions = []Action{
		{
			Type:          "schedule",
			Title:         "Schedule Appointment",
			Description:   "Please confirm the following details to schedule.",
			AppointmentID: appointment.AppointmentID,
			PatientID:     appointment.PatientID,
			UserID:        appointment.UserID,
		},
		{
			Type:          "cancel",
			Title:         "Cancel Appointment",
			Description:   "Are you sure you want to cancel your appointment?",
			AppointmentID: appointment.AppointmentID,
			PatientID:     appointment.PatientID,
			UserID:        appointment.UserID,
		},
	}

	return row
}

package projection

import (
	"testing"
	"time"

	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/models"
)

func testDirectory() *directory.Directory {
	doctors := []directory.Doctor{
		{
			Name:            "Leila Cameron",
			Specialty:       "Pulmonologist",
			Specializations: []string{"Bronchitis", "Asthma"},
			Image:           "/assets/images/leila-cameron.png",
		},
	}
	fallback := []directory.Doctor{
		{Name: "John Green", Image: "/assets/images/dr-green.png"},
	}
	return directory.New(doctors, fallback)
}

func TestFormatSchedule(t *testing.T) {
	in := time.Date(2025, time.May, 3, 10, 30, 0, 0, time.UTC)
	if got := FormatSchedule(in); got != "May 3, 2025, 10:30 AM" {
		t.Errorf("FormatSchedule = %q", got)
	}
	if got := FormatSchedule(time.Time{}); got != "Unknown date" {
		t.Errorf("zero time should render as Unknown date, got %q", got)
	}
}

func TestProjectPreservesOrderAndLength(t *testing.T) {
	dir := testDirectory()
	appointments := []models.Appointment{
		{AppointmentID: "a1", Status: models.StatusPending, Patient: &models.Patient{Name: "Ana"}},
		{AppointmentID: "a2", Status: "bogus"}, // malformed status and no patient
		{AppointmentID: "a3", Status: models.StatusCancelled, Patient: &models.Patient{Name: "Carl"}},
	}

	rows := Project(appointments, dir)
	if len(rows) != len(appointments) {
		t.Fatalf("got %d rows for %d appointments", len(rows), len(appointments))
	}
	for i, row := range rows {
		if row.Ordinal != i+1 {
			t.Errorf("row %d has ordinal %d", i, row.Ordinal)
		}
	}
	if rows[0].PatientName != "Ana" || rows[2].PatientName != "Carl" {
		t.Errorf("rows resolved out of order: %q, %q", rows[0].PatientName, rows[2].PatientName)
	}
}

func TestProjectIsolatesMalformedRow(t *testing.T) {
	dir := testDirectory()
	appointments := []models.Appointment{
		{AppointmentID: "a1", Status: "confirmed", Patient: &models.Patient{Name: "Ana"}},
		{AppointmentID: "a2", Status: models.StatusScheduled, Patient: &models.Patient{Name: "Bea"}},
	}

	rows := Project(appointments, dir)
	if rows[0].Error == "" {
		t.Error("row with invalid status should carry an error note")
	}
	if rows[1].Error != "" {
		t.Errorf("healthy row polluted by neighbour: %q", rows[1].Error)
	}
	if rows[1].Badge.Label != "scheduled" {
		t.Errorf("healthy row lost its badge: %+v", rows[1].Badge)
	}
}

func TestProjectMissingPatient(t *testing.T) {
	dir := testDirectory()
	rows := Project([]models.Appointment{{AppointmentID: "a1", Status: models.StatusPending}}, dir)

	if rows[0].PatientName != "unknown" {
		t.Errorf("missing patient should render a literal placeholder, got %q", rows[0].PatientName)
	}
	if rows[0].Error == "" {
		t.Error("missing patient should be noted on the row")
	}
}

func TestProjectResolvesDoctor(t *testing.T) {
	dir := testDirectory()
	appointments := []models.Appointment{
		{AppointmentID: "a1", Status: models.StatusPending, PrimaryPhysician: "leila cameron", Patient: &models.Patient{Name: "Ana"}},
		{AppointmentID: "a2", Status: models.StatusPending, PrimaryPhysician: "Dr. Smith", Patient: &models.Patient{Name: "Bea"}},
	}

	rows := Project(appointments, dir)
	if rows[0].Doctor.Specialty != "Pulmonologist" {
		t.Errorf("known physician not resolved: %+v", rows[0].Doctor)
	}
	// Unknown physician still renders by name, without an image.
	if rows[1].Doctor.Name != "Dr. Smith" || rows[1].Doctor.Image != "" {
		t.Errorf("unknown physician should degrade to raw name: %+v", rows[1].Doctor)
	}
}

func TestProjectActionPayloads(t *testing.T) {
	dir := testDirectory()
	appointments := []models.Appointment{
		{AppointmentID: "a1", PatientID: "p1", UserID: "u1", Status: models.StatusPending, Patient: &models.Patient{Name: "Ana"}},
	}

	rows := Project(appointments, dir)
	if len(rows[0].Actions) != 2 {
		t.Fatalf("expected schedule and cancel actions, got %d", len(rows[0].Actions))
	}
	for _, action := range rows[0].Actions {
		if action.AppointmentID != "a1" || action.PatientID != "p1" || action.UserID != "u1" {
			t.Errorf("action %q missing identifiers: %+v", action.Type, action)
		}
	}
	if rows[0].Actions[0].Type != "schedule" || rows[0].Actions[1].Type != "cancel" {
		t.Errorf("unexpected action order: %q, %q", rows[0].Actions[0].Type, rows[0].Actions[1].Type)
	}
}

package controllers

import (
	"bytes"
	"fmt"

	"github.com/captainwycliffe/omnimed/directory"
	"github.com/captainwycliffe/omnimed/models"
	"github.com/captainwycliffe/omnimed/projection"
	"github.com/jung-kurt/gofpdf"
)

// generateAppointmentPDF renders the confirmation summary attached to the
// scheduling email.
func generateAppointmentPDF(appointment models.Appointment, doctor directory.Doctor) ([]byte, error) {
	// Initialize PDF document
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Set font and font size
	pdf.SetFont("Arial", "B", 14)

	pdf.SetTextColor(34, 139, 34)
	pdf.CellFormat(0, 10, "OmniMed - Appointment Confirmation", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "www.omnimed.health", "", 1, "C", false, 0, "")

	// Appointment details section
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Details", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Appointment ID", appointment.AppointmentID, true)
	if appointment.Patient != nil {
		addDetail(pdf, "Patient Name", appointment.Patient.Name, true)
	}
	addDetail(pdf, "Doctor", doctor.Name, true)
	if doctor.Specialty != "" {
		addDetail(pdf, "Specialty", doctor.Specialty, true)
	}
	addDetail(pdf, "Scheduled For", projection.FormatSchedule(appointment.Schedule), true)
	addDetail(pdf, "Status", appointment.Status, false)
	if appointment.Reason != "" {
		addDetail(pdf, "Reason", appointment.Reason, false)
	}
	if appointment.Note != "" {
		addDetail(pdf, "Note", appointment.Note, false)
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Instructions:", "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, fmt.Sprintf("Please arrive 15 minutes before your appointment with Dr. %s. Carry a valid ID and any previous medical records.", doctor.Name), "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated summary", "", 1, "R", false, 0, "")

	// Output PDF to buffer
	var pdfBuffer bytes.Buffer
	err := pdf.Output(&pdfBuffer)
	if err != nil {
		return nil, err
	}

	return pdfBuffer.Bytes(), nil
}

// addDetail adds a detail line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}

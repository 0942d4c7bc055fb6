package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"parkspot/internal/db"
	"parkspot/internal/entities"
)

type NotifyService struct {
}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

const bookingEmailTemplate = `<html><body>
<h2>ParkSpot booking confirmed</h2>
<p>Hello {{.UserName}},</p>
<p>Your booking <strong>{{.BookingCode}}</strong> at {{.FacilityName}} is confirmed.</p>
<ul>
<li>Slot: {{.SlotNumber}}</li>
<li>Vehicle: {{.VehicleNumber}}</li>
<li>Entry: {{.EntryTimeFormatted}}</li>
<li>Exit: {{.ExitTimeFormatted}}</li>
<li>Amount: ₹{{.Amount}}</li>
</ul>
<p>Show <strong>{{.QRCode}}</strong> at the gate.</p>
<p>ParkSpot. {{.CurrentYear}}. All rights reserved.</p>
</body></html>`

func (s *NotifyService) SendBookingConfirmation(booking db.Booking, facility db.Facility, slot db.ParkingSlot, user db.User) {
	istLoc, errLoc := time.LoadLocation("Asia/Kolkata")
	if errLoc != nil {
		istLoc = time.FixedZone("IST", 5*60*60+30*60) // fallback IST
	}

	exitFormatted := "pay at exit"
	if booking.ExitTime != nil {
		exitFormatted = booking.ExitTime.In(istLoc).Format("02 Jan 2006 15:04 MST")
	}

	emailData := entities.BookingEmailData{
		UserName:           user.Name,
		BookingCode:        booking.Code,
		FacilityName:       facility.Name,
		SlotNumber:         slot.Number,
		VehicleNumber:      booking.VehicleNumber,
		EntryTimeFormatted: booking.EntryTime.In(istLoc).Format("02 Jan 2006 15:04 MST"),
		ExitTimeFormatted:  exitFormatted,
		Amount:             booking.Amount,
		QRCode:             booking.QRCode,
		CurrentYear:        time.Now().In(istLoc).Year(),
	}

	emailSubject := fmt.Sprintf("Your ParkSpot booking is confirmed - Code: %s", emailData.BookingCode)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour booking at %s is confirmed.\n\n"+
			"Booking Details:\n"+
			"Booking Code: %s\n"+
			"Slot: %s\n"+
			"Vehicle: %s\n"+
			"Entry: %s\n"+
			"Exit: %s\n"+
			"Amount: INR %d\n\n"+
			"Show %s at the gate.\n\n"+
			"Thank you for choosing ParkSpot.",
		emailData.UserName, emailData.FacilityName, emailData.BookingCode, emailData.SlotNumber,
		emailData.VehicleNumber, emailData.EntryTimeFormatted, emailData.ExitTimeFormatted,
		emailData.Amount, emailData.QRCode,
	)

	tmpl, err := template.New("booking_email").Parse(bookingEmailTemplate)
	if err != nil {
		log.Printf("ALERT: Error parsing booking email template: %v", err)
		return
	}
	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERT: Error executing booking email template for booking %s: %v", emailData.BookingCode, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): Failed to send confirmation email for booking %s: %v", emailData.BookingCode, errEmail)
		}
	}(user.Email, emailData.UserName, emailSubject, plainTextBody, htmlBody)

	smsMessage := fmt.Sprintf("ParkSpot: Booking %s confirmed at %s!\nSlot %s, entry %s.\nMore details in your email.",
		booking.Code, facility.Name, slot.Number,
		booking.EntryTime.In(istLoc).Format("02/01 15:04"),
	)
	if errSMS := SendSMS(user.Phone, smsMessage); errSMS != nil {
		log.Printf("ALERT: Booking %s was created, but the confirmation SMS to %s failed: %v", booking.Code, user.Phone, errSMS)
	}
}

package booking

import (
	"fmt"
	"strings"

	"kitchenrent/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var priceFormatter = message.NewPrinter(language.English)

// BuildPaymentNotice assembles the payment instructions for a booking intent.
func BuildPaymentNotice(kitchen *models.Kitchen, intent *models.BookingIntent, requesterID, requesterName string) models.PaymentNotice {
	notice := models.PaymentNotice{
		IntentID:      intent.IntentID,
		KitchenName:   kitchen.Name,
		RequesterID:   requesterID,
		RequesterName: requesterName,
		Date:          intent.Date,
		StartHour:     intent.StartHour,
		EndHour:       intent.EndHour,
		GuestCount:    intent.GuestCount,
		TotalPrice:    intent.TotalPrice,
		BankAccount:   kitchen.BankAccount,
		HostChatID:    kitchen.HostChatID,
	}
	notice.Message = FormatPaymentMessage(notice)
	return notice
}

// FormatPaymentMessage renders the human-readable payment instructions.
func FormatPaymentMessage(n models.PaymentNotice) string {
	var b strings.Builder

	b.WriteString(priceFormatter.Sprintf("Booking request for %s\n", n.KitchenName))
	b.WriteString(priceFormatter.Sprintf("Requested by: %s\n", n.RequesterName))
	if day, err := ParseDate(n.Date); err == nil {
		b.WriteString(priceFormatter.Sprintf("Date: %s (%s)\n", n.Date, day.Weekday()))
	} else {
		b.WriteString(priceFormatter.Sprintf("Date: %s\n", n.Date))
	}
	b.WriteString(priceFormatter.Sprintf("Time: %s - %s (%dh)\n",
		clock(n.StartHour), clock(n.EndHour), n.EndHour-n.StartHour))
	b.WriteString(priceFormatter.Sprintf("Guests: %d\n", n.GuestCount))
	b.WriteString(priceFormatter.Sprintf("Total: %d\n", n.TotalPrice))
	b.WriteString(priceFormatter.Sprintf("Please transfer the total to %s and confirm in the app once sent.", n.BankAccount.String()))

	return b.String()
}

func clock(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

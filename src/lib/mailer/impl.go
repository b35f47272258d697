package mailer

import (
	"fmt"
	"log"
	"os"

	"oasis/src/lib"

	"github.com/wneessen/go-mail"
)

type SendMailInput struct {
	To      string
	Subject string
	Body    string
}

func SendMail(input *SendMailInput) error {
	from := os.Getenv("MAIL_FROM")
	c, err := lib.GetSMTPClient()
	if err != nil {
		return err
	}
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return fmt.Errorf("invalid sender address: %s", err.Error())
	}
	if err := m.To(input.To); err != nil {
		return fmt.Errorf("invalid recipient address: %s", err.Error())
	}
	m.Subject(input.Subject)
	m.SetBodyString(mail.TypeTextPlain, input.Body)
	return c.DialAndSend(m)
}

// SendBookingReceived fires a plain confirmation note after a booking insert.
// Callers run it in a goroutine; a failed send never fails the booking.
func SendBookingReceived(to string, cabinName string, total float32) {
	input := &SendMailInput{
		To:      to,
		Subject: fmt.Sprintf("Your reservation for %s", cabinName),
		Body:    fmt.Sprintf("We received your reservation for %s (total $%.2f). It is unconfirmed until check-in is arranged.", cabinName, total),
	}
	if err := SendMail(input); err != nil {
		log.Printf("[mailer] Error sending confirmation to %s: %s\n", to, err.Error())
	}
}

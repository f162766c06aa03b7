package services

import (
	"context"
	"fmt"

	"donation-backend/internal/domain/models"
	"donation-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

// Notifier sends donor-facing messages after a donation settles.
type Notifier interface {
	ThankDonor(ctx context.Context, d models.Donation) error
}

// MailNotifier sends thank-you mail over SMTP.
type MailNotifier struct {
	Dialer  *gomail.Dialer
	From    string
	OrgName string
}

func NewMailNotifier(host string, port int, user, pass, from, orgName string) *MailNotifier {
	return &MailNotifier{
		Dialer:  gomail.NewDialer(host, port, user, pass),
		From:    from,
		OrgName: orgName,
	}
}

func (n *MailNotifier) ThankDonor(ctx context.Context, d models.Donation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.Email == "" {
		return nil
	}
	return n.Dialer.DialAndSend(ThankYouMessage(n.From, n.OrgName, d))
}

// ThankYouMessage builds the plain-text receipt mail for a captured donation.
func ThankYouMessage(from, orgName string, d models.Donation) *gomail.Message {
	name := d.DonorName
	if name == "" {
		name = "friend"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", d.Email)
	m.SetHeader("Subject", fmt.Sprintf("Thank you for supporting %s", orgName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nWe received your donation of %s.\nPayment ID: %s\nOrder ID: %s\n\nThank you for helping children learn.\n%s\n",
		name,
		utils.FormatRupees(d.AmountMajor()),
		d.PaymentID,
		d.OrderID,
		orgName,
	))
	return m
}

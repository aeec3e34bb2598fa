package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"foodhub_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// OrderEmail regroupe tout ce qu'il faut pour la confirmation de commande.
// Copies de valeur uniquement — l'email ne relit jamais la base.
type OrderEmail struct {
	UserName   string
	UserEmail  string
	Items      []models.OrderItem
	TotalPrice float64
	OrderDate  time.Time
}

// MailSender est le transport de notification. L'envoi est toujours
// "best effort" : un échec est loggé par l'appelant, jamais remonté au client.
type MailSender interface {
	SendOrderConfirmation(data OrderEmail) error
}

// SMTPSender envoie via go-mail avec la config SMTP_* de l'environnement.
type SMTPSender struct{}

func (SMTPSender) SendOrderConfirmation(data OrderEmail) error {
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@foodhub.dev"
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("FoodHub", from); err != nil {
		return err
	}
	if err := msg.To(data.UserEmail); err != nil {
		return err
	}
	msg.Subject("Order Confirmation - FoodHub")
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(data))

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", data.UserEmail)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(data OrderEmail) string {
	itemsHTML := ""
	for _, item := range data.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px 16px; border-bottom: 1px solid #f0f0f0; font-size: 14px;">%s</td>
				<td style="padding: 10px 16px; border-bottom: 1px solid #f0f0f0; font-size: 14px; text-align: center;">%d</td>
				<td style="padding: 10px 16px; border-bottom: 1px solid #f0f0f0; font-size: 14px; text-align: right;">$%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	formattedDate := data.OrderDate.Format("Monday, January 2, 2006 at 3:04 PM")

	return fmt.Sprintf(`
<div style="max-width: 600px; margin: 0 auto; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
	<div style="background: #ea580c; padding: 32px; text-align: center; border-radius: 12px 12px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Order Confirmed!</h1>
	</div>
	<div style="background: white; padding: 32px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
		<p style="font-size: 16px; color: #374151;">Hi <strong>%s</strong>,</p>
		<p style="font-size: 14px; color: #6b7280;">Thank you for your order! Here are your order details:</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background: #fef3c7;">
					<th style="padding: 10px 16px; text-align: left; font-size: 13px; font-weight: 600; color: #92400e;">Item</th>
					<th style="padding: 10px 16px; text-align: center; font-size: 13px; font-weight: 600; color: #92400e;">Qty</th>
					<th style="padding: 10px 16px; text-align: right; font-size: 13px; font-weight: 600; color: #92400e;">Price</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
		</table>

		<div style="background: #fff7ed; padding: 16px; border-radius: 8px; margin: 20px 0;">
			<p style="margin: 0; font-size: 18px; font-weight: 700; color: #ea580c; text-align: right;">
				Total: $%.2f
			</p>
		</div>

		<p style="font-size: 13px; color: #9ca3af; margin-top: 20px;">
			Order Date: %s
		</p>

		<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 24px 0;" />
		<p style="font-size: 12px; color: #9ca3af; text-align: center;">
			FoodHub - Fresh food delivered to your door
		</p>
	</div>
</div>`, data.UserName, itemsHTML, data.TotalPrice, formattedDate)
}

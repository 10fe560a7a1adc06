package service

import (
	"context"
	"fmt"
	"log"

	"github.com/spst-logistics/spst-backend/internal/model"
)

// ShipmentGetter is the slice of ShipmentService the dispatcher needs.
type ShipmentGetter interface {
	Get(ctx context.Context, id string) (*model.Shipment, error)
}

// NotificationService sends the shipment confirmation email. It is strictly
// best-effort: a missing provider credential, missing sender address,
// missing recipient or a provider failure all degrade to sent=false.
// Shipment creation must never be perceived as failed because of email.
type NotificationService interface {
	NotifyConfirmation(ctx context.Context, shipmentID, recipientEmail string) bool
}

type notificationService struct {
	mailer    Mailer
	from      string
	replyTo   string
	shipments ShipmentGetter
}

func NewNotificationService(mailer Mailer, from, replyTo string, shipments ShipmentGetter) NotificationService {
	return &notificationService{mailer: mailer, from: from, replyTo: replyTo, shipments: shipments}
}

func (s *notificationService) NotifyConfirmation(ctx context.Context, shipmentID, recipientEmail string) bool {
	if s.mailer == nil || s.from == "" {
		return false
	}
	shipment, err := s.shipments.Get(ctx, shipmentID)
	if err != nil {
		log.Printf("notify %s: shipment lookup failed: %v", shipmentID, err)
		return false
	}
	to := recipientEmail
	if to == "" {
		to = shipment.OwnerEmail
	}
	if to == "" {
		return false
	}
	subject := fmt.Sprintf("SPST - Spedizione %s confermata", shipment.DisplayID)
	if _, err := s.mailer.Send(ctx, s.from, s.replyTo, []string{to}, subject, confirmationBody(shipment)); err != nil {
		log.Printf("notify %s: send failed: %v", shipmentID, err)
		return false
	}
	return true
}

func confirmationBody(s *model.Shipment) string {
	body := fmt.Sprintf(
		`<p>La tua spedizione <strong>%s</strong> è stata registrata.</p>
<p>Destinatario: %s, %s (%s)</p>`,
		s.DisplayID, s.Recipient.Name, s.Recipient.City, s.Recipient.Country,
	)
	if s.PickupDate != "" {
		body += fmt.Sprintf("<p>Ritiro previsto: %s</p>", s.PickupDate)
	}
	if s.TrackingURL != "" {
		body += fmt.Sprintf(`<p><a href="%s">Traccia la spedizione</a></p>`, s.TrackingURL)
	}
	body += "<p>Il team SPST</p>"
	return body
}

package notification

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"

	"oceanview/config"
	"oceanview/infras/otel"
	"oceanview/infras/s3"
	"oceanview/shared/constant"
	"oceanview/shared/timezone"
)

const receiptDirectory = "receipts"

// StayDetails carries everything the notifier needs to render an email,
// receipt or invoice without reaching back into the booking domain.
type StayDetails struct {
	ReservationID string
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	NationalID    string
	RoomNumber    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	RatePerNight  float64
	TotalAmount   float64
	PaymentMethod string
}

// Notifier delivers guest-facing paperwork. Every method is best effort from
// the orchestrator's point of view, a failed email never unwinds a booking.
type Notifier interface {
	SendConfirmation(ctx context.Context, stay StayDetails) error
	SendCancellation(ctx context.Context, stay StayDetails) error
	PrintReceipt(ctx context.Context, stay StayDetails) (string, error)
	PrintInvoice(ctx context.Context, stay StayDetails) (string, error)
}

type notifierImpl struct {
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3) Notifier {
	return &notifierImpl{
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (n *notifierImpl) SendConfirmation(ctx context.Context, stay StayDetails) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Reservation Confirmed - %s", stay.ReservationID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour reservation %s is confirmed.\n\nRoom: %s (%s)\nCheck-In: %s\nCheck-Out: %s\nNights: %d\nTotal: %.2f\n\nWe look forward to welcoming you.\n%s\n",
		stay.GuestName,
		stay.ReservationID,
		stay.RoomNumber,
		stay.RoomType,
		timezone.Format(stay.CheckIn, constant.DateOnlyFormat),
		timezone.Format(stay.CheckOut, constant.DateOnlyFormat),
		stay.Nights,
		stay.TotalAmount,
		n.cfg.App.Hotel.Name,
	)

	return n.send(ctx, stay.GuestEmail, subject, body)
}

func (n *notifierImpl) SendCancellation(ctx context.Context, stay StayDetails) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Reservation Cancelled - %s", stay.ReservationID)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour reservation %s for room %s has been cancelled.\n\n%s\n",
		stay.GuestName,
		stay.ReservationID,
		stay.RoomNumber,
		n.cfg.App.Hotel.Name,
	)

	return n.send(ctx, stay.GuestEmail, subject, body)
}

// PrintReceipt renders the walk-in receipt, logs it to the terminal printer
// stream and archives a copy to object storage.
func (n *notifierImpl) PrintReceipt(ctx context.Context, stay StayDetails) (receipt string, err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".PrintReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	var b strings.Builder

	b.WriteString("================================\n")
	b.WriteString("   OCEAN VIEW RESORT\n")
	b.WriteString("   Reservation Receipt\n")
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Reservation ID: %s\n", stay.ReservationID)
	fmt.Fprintf(&b, "Guest: %s\n", stay.GuestName)
	fmt.Fprintf(&b, "NIC: %s\n", stay.NationalID)
	fmt.Fprintf(&b, "Phone: %s\n", stay.GuestPhone)
	fmt.Fprintf(&b, "Room: %s (%s)\n", stay.RoomNumber, stay.RoomType)
	fmt.Fprintf(&b, "Check-In: %s\n", timezone.Format(stay.CheckIn, constant.DateOnlyFormat))
	fmt.Fprintf(&b, "Check-Out: %s\n", timezone.Format(stay.CheckOut, constant.DateOnlyFormat))
	fmt.Fprintf(&b, "Nights: %d\n", stay.Nights)
	fmt.Fprintf(&b, "Rate per Night: %.2f\n", stay.RatePerNight)
	fmt.Fprintf(&b, "Total Amount: %.2f\n", stay.TotalAmount)
	b.WriteString("================================\n")
	b.WriteString("Thank you for choosing us!\n")
	b.WriteString("================================\n")

	receipt = b.String()

	log.Info().Str("reservationID", stay.ReservationID).Msg("receipt printed")

	n.archive(ctx, stay.ReservationID+"_receipt.txt", receipt)

	return receipt, nil
}

// PrintInvoice renders the final bill issued at check-out.
func (n *notifierImpl) PrintInvoice(ctx context.Context, stay StayDetails) (invoice string, err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".PrintInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	var b strings.Builder

	b.WriteString("================================\n")
	b.WriteString("   OCEAN VIEW RESORT\n")
	b.WriteString("   Final Invoice\n")
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Reservation ID: %s\n", stay.ReservationID)
	fmt.Fprintf(&b, "Guest: %s\n", stay.GuestName)
	fmt.Fprintf(&b, "Room: %s\n", stay.RoomNumber)
	fmt.Fprintf(&b, "Check-In: %s\n", timezone.Format(stay.CheckIn, constant.DateOnlyFormat))
	fmt.Fprintf(&b, "Check-Out: %s\n", timezone.Format(stay.CheckOut, constant.DateOnlyFormat))
	fmt.Fprintf(&b, "Nights: %d\n", stay.Nights)
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "Room Charges: %.2f\n", stay.TotalAmount)
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Total Bill: %.2f\n", stay.TotalAmount)
	fmt.Fprintf(&b, "Payment Method: %s\n", stay.PaymentMethod)
	b.WriteString("================================\n")
	b.WriteString("We hope you enjoyed your stay!\n")
	b.WriteString("================================\n")

	invoice = b.String()

	log.Info().Str("reservationID", stay.ReservationID).Msg("invoice printed")

	n.archive(ctx, stay.ReservationID+"_invoice.txt", invoice)

	return invoice, nil
}

func (n *notifierImpl) send(ctx context.Context, to, subject, body string) error {
	if !n.cfg.SMTP.Enable {
		log.Info().Str("to", to).Str("subject", subject).Msg("SMTP disabled, logging email instead")

		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.SMTP.Sender); err != nil {
		return fmt.Errorf("failed to set email sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.cfg.SMTP.Host,
		mail.WithPort(n.cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.SMTP.Username),
		mail.WithPassword(n.cfg.SMTP.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("email sent")

	return nil
}

// archive stores a copy of the document in object storage. Failures are
// logged only, the printed copy already reached the guest.
func (n *notifierImpl) archive(ctx context.Context, name, content string) {
	bucketName := n.cfg.External.S3.BucketName
	if bucketName == constant.Empty {
		return
	}

	if _, err := n.s3.UploadFileBytes(ctx, bucketName, receiptDirectory, name, constant.ContentTypeText, []byte(content)); err != nil {
		log.Error().Err(err).Str("object", name).Msg("failed to archive document")
	}
}

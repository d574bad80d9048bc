package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fleetbook/internal/infra/repository"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase/commands"
)

const (
	deliveryTimeout = 30 * time.Second
	dateFormat      = "02 Jan 2006"
)

// Dispatcher fans booking events out to email and the automation
// webhook. Delivery is fire-and-forget: failures are logged and
// recorded, never returned to the caller.
type Dispatcher struct {
	cfg     config.NotifyConfig
	email   *EmailSender
	webhook *WebhookSender
	logs    *repository.NotificationLogRepository
}

func NewDispatcher(
	cfg config.NotifyConfig,
	email *EmailSender,
	webhook *WebhookSender,
	logs *repository.NotificationLogRepository,
) commands.Notifier {
	return &Dispatcher{cfg: cfg, email: email, webhook: webhook, logs: logs}
}

func (d *Dispatcher) BookingEvent(event commands.EventType, snapshot commands.BookingSnapshot) {
	go d.deliverBookingEvent(event, snapshot)
}

func (d *Dispatcher) ConflictDetected(attempt commands.ConflictAttempt) {
	go d.deliverConflictAlert(attempt)
}

func (d *Dispatcher) deliverBookingEvent(event commands.EventType, snap commands.BookingSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	subject, body := composeBookingEmail(event, snap)

	recipients := append([]string{snap.ClientEmail}, d.cfg.AdminEmails...)
	d.sendEmail(ctx, event, recipients, subject, body, snap.Reference)

	if err := d.webhook.Post(ctx, string(event), snap); err != nil {
		slog.Warn("webhook delivery failed", "event", event, "reference", snap.Reference, "error", err.Error())
		d.record(ctx, event, "webhook", "", snap.Reference, err)
	} else if d.webhook.Enabled() {
		d.record(ctx, event, "webhook", "", snap.Reference, nil)
	}
}

func (d *Dispatcher) deliverConflictAlert(attempt commands.ConflictAttempt) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	var b strings.Builder
	fmt.Fprintf(&b, "A booking request for car #%d (%s) could not be placed.\n\n", attempt.Car.CarNumber, attempt.Car.Name)
	fmt.Fprintf(&b, "Event: %s\nClient: %s <%s>\nRequested: %s to %s\n\nIn the way:\n",
		attempt.EventName, attempt.ClientName, attempt.ClientEmail,
		attempt.StartDate.Format(dateFormat), attempt.EndDate.Format(dateFormat))
	for _, c := range attempt.Conflicts {
		fmt.Fprintf(&b, "  - %s %s (%s to %s)\n", c.Kind, c.Label,
			c.Start.Format(dateFormat), c.End.Format(dateFormat))
	}

	subject := fmt.Sprintf("Booking conflict on car #%d", attempt.Car.CarNumber)
	d.sendEmail(ctx, commands.EventConflictAttempt, d.cfg.InternalEmails, subject, b.String(), "")
}

func (d *Dispatcher) sendEmail(ctx context.Context, event commands.EventType, to []string, subject, body, reference string) {
	if !d.email.Enabled() || len(to) == 0 {
		return
	}
	err := d.email.Send(ctx, to, subject, body)
	if err != nil {
		slog.Warn("email delivery failed", "event", event, "reference", reference, "error", err.Error())
	}
	d.record(ctx, event, "email", strings.Join(to, ","), reference, err)
}

func (d *Dispatcher) record(ctx context.Context, event commands.EventType, channel, recipient, reference string, deliveryErr error) {
	errMsg := ""
	if deliveryErr != nil {
		errMsg = deliveryErr.Error()
	}
	if err := d.logs.Record(ctx, string(event), channel, recipient, reference, deliveryErr == nil, errMsg); err != nil {
		slog.Warn("failed to record notification", "event", event, "error", err.Error())
	}
}

func composeBookingEmail(event commands.EventType, snap commands.BookingSnapshot) (subject, body string) {
	window := fmt.Sprintf("%s to %s", snap.StartDate.Format(dateFormat), snap.EndDate.Format(dateFormat))
	car := fmt.Sprintf("car #%d (%s)", snap.Car.CarNumber, snap.Car.Name)

	switch event {
	case commands.EventBookingCreated:
		subject = fmt.Sprintf("Booking received: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking %s for %q is in. It holds %s from %s and is awaiting approval.\n",
			snap.ClientName, snap.Reference, snap.EventName, car, window)
	case commands.EventBookingApproved:
		subject = fmt.Sprintf("Booking approved: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking %s is approved. %s is reserved for you, %s.\n",
			snap.ClientName, snap.Reference, car, window)
	case commands.EventBookingRejected:
		subject = fmt.Sprintf("Booking declined: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking %s was declined.\nReason: %s\n",
			snap.ClientName, snap.Reference, snap.RejectionReason)
	case commands.EventBookingEdited:
		subject = fmt.Sprintf("Booking updated: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking %s now holds %s, %s.\n",
			snap.ClientName, snap.Reference, car, window)
	case commands.EventBookingCancelled:
		subject = fmt.Sprintf("Booking cancelled: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nYour booking %s for %s has been cancelled.\n",
			snap.ClientName, snap.Reference, window)
	case commands.EventBookingReminder:
		subject = fmt.Sprintf("Upcoming booking: %s", snap.Reference)
		body = fmt.Sprintf(
			"Hi %s,\n\nReminder: your booking %s starts on %s. %s will be ready in %s.\n",
			snap.ClientName, snap.Reference, snap.StartDate.Format(dateFormat), car, snap.City)
	default:
		subject = fmt.Sprintf("Booking update: %s", snap.Reference)
		body = fmt.Sprintf("Booking %s changed. Current window: %s.\n", snap.Reference, window)
	}
	return subject, body
}

package notify

import (
	"context"
	"log/slog"
	"time"

	"fleetbook/internal/domain/booking"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/config"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"
)

const sweepInterval = 24 * time.Hour

type upcomingBookingStore interface {
	FindStartingOn(ctx context.Context, day time.Time) ([]*queries.BookingView, error)
}

// ReminderSweep emails clients whose approved bookings start in
// ReminderDays. It runs once at startup and then daily.
type ReminderSweep struct {
	store    upcomingBookingStore
	notifier commands.Notifier
	clock    clock.Clock
	days     int
}

func NewReminderSweep(store upcomingBookingStore, notifier commands.Notifier, clock clock.Clock, cfg config.BookingConfig) *ReminderSweep {
	return &ReminderSweep{
		store:    store,
		notifier: notifier,
		clock:    clock,
		days:     cfg.ReminderDays,
	}
}

func (s *ReminderSweep) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderSweep) sweep(ctx context.Context) {
	target := booking.NormalizeDate(s.clock.Now()).AddDate(0, 0, s.days)

	views, err := s.store.FindStartingOn(ctx, target)
	if err != nil {
		slog.Error("reminder sweep failed", "target", target.Format("2006-01-02"), "error", err.Error())
		return
	}

	for _, view := range views {
		s.notifier.BookingEvent(commands.EventBookingReminder, snapshotFromView(view))
	}

	if len(views) > 0 {
		slog.Info("reminder sweep dispatched",
			"target", target.Format("2006-01-02"),
			"count", len(views))
	}
}

func snapshotFromView(v *queries.BookingView) commands.BookingSnapshot {
	snap := commands.BookingSnapshot{
		ID:          v.ID,
		Reference:   v.Reference,
		EventName:   v.EventName,
		ClientName:  v.ClientName,
		ClientEmail: v.ClientEmail,
		Region:      v.Region,
		City:        v.City,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		Status:      v.Status,
		Car: commands.CarSnapshot{
			ID:              v.Car.ID,
			CarNumber:       v.Car.CarNumber,
			Name:            v.Car.Name,
			Registration:    v.Car.Registration,
			CurrentRegion:   v.Car.CurrentRegion,
			CurrentLocation: v.Car.CurrentLocation,
			Status:          v.Car.Status,
		},
	}
	if v.EventType != nil {
		snap.EventType = *v.EventType
	}
	if v.RejectionReason != nil {
		snap.RejectionReason = *v.RejectionReason
	}
	return snap
}

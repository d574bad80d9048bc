package commands

import (
	"time"

	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingApproved  EventType = "booking_approved"
	EventBookingRejected  EventType = "booking_rejected"
	EventBookingEdited    EventType = "booking_edited"
	EventBookingCancelled EventType = "booking_cancelled"
	EventBookingReminder  EventType = "booking_reminder"
	EventConflictAttempt  EventType = "conflict_attempt"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CarSnapshot struct {
	ID              uuid.UUID
	CarNumber       int
	Name            string
	Registration    string
	CurrentRegion   string
	CurrentLocation string
	Status          string
}

type BookingSnapshot struct {
	ID              uuid.UUID
	Reference       string
	EventName       string
	EventType       string
	ClientName      string
	ClientEmail     string
	Region          string
	City            string
	StartDate       time.Time
	EndDate         time.Time
	Status          string
	RejectionReason string
	Car             CarSnapshot
}

// ConflictAttempt captures a rejected reservation request for the
// internal alert channel.
type ConflictAttempt struct {
	EventName   string
	ClientName  string
	ClientEmail string
	StartDate   time.Time
	EndDate     time.Time
	Car         CarSnapshot
	Conflicts   []shared.Conflict
}

// Notifier delivers post-commit notifications. Implementations must
// not block the caller; delivery failures are logged, never surfaced.
type Notifier interface {
	BookingEvent(event EventType, snapshot BookingSnapshot)
	ConflictDetected(attempt ConflictAttempt)
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"fleetbook/internal/domain/block"
	"fleetbook/internal/domain/booking"
	"fleetbook/internal/domain/fleet"
	"fleetbook/internal/infra"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type fakeBookingRepo struct {
	byRef map[string]*booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byRef: make(map[string]*booking.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.byRef[b.Reference()]; ok {
		return infra.WrapRepoErr("duplicate reference", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	r.byRef[b.Reference()] = b
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.byRef[b.Reference()] = b
	return nil
}

func (r *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*booking.Booking, error) {
	b, ok := r.byRef[reference]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
	}
	return b, nil
}

type fakeBlockRepo struct {
	byID map[uuid.UUID]*block.Block
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{byID: make(map[uuid.UUID]*block.Block)}
}

func (r *fakeBlockRepo) Create(_ context.Context, b *block.Block) error {
	r.byID[b.ID()] = b
	return nil
}

func (r *fakeBlockRepo) FindByID(_ context.Context, id uuid.UUID) (*block.Block, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("block not found", errors.New("no rows"), infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeCarRepo struct {
	byID map[uuid.UUID]*fleet.Car
}

func newFakeCarRepo(cars ...*fleet.Car) *fakeCarRepo {
	r := &fakeCarRepo{byID: make(map[uuid.UUID]*fleet.Car)}
	for _, c := range cars {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCarRepo) FindByID(_ context.Context, id uuid.UUID) (*fleet.Car, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", errors.New("no rows"), infra.KindNotFound)
	}
	return c, nil
}

func (r *fakeCarRepo) SetStatus(_ context.Context, id uuid.UUID, status fleet.Status) error {
	if c, ok := r.byID[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *fakeCarRepo) UpdateLocation(_ context.Context, id uuid.UUID, region, location *string) error {
	c, ok := r.byID[id]
	if !ok {
		return infra.WrapRepoErr("car not found", errors.New("no rows"), infra.KindNotFound)
	}
	if region != nil {
		c.CurrentRegion = *region
	}
	if location != nil {
		c.CurrentLocation = *location
	}
	return nil
}

type fakeAvailability struct {
	conflicts       []shared.Conflict
	blocksToday     []*block.Block
	hasBookingToday bool
	lastExclude     *uuid.UUID
}

func (a *fakeAvailability) Conflicts(_ context.Context, _ uuid.UUID, _ booking.DateRange, exclude *uuid.UUID) ([]shared.Conflict, error) {
	a.lastExclude = exclude
	return a.conflicts, nil
}

func (a *fakeAvailability) BlocksOn(_ context.Context, _ uuid.UUID, _ time.Time) ([]*block.Block, error) {
	return a.blocksToday, nil
}

func (a *fakeAvailability) HasActiveBookingOn(_ context.Context, _ uuid.UUID, _ time.Time) (bool, error) {
	return a.hasBookingToday, nil
}

type fakeTx struct {
	bookings     *fakeBookingRepo
	blocks       *fakeBlockRepo
	cars         *fakeCarRepo
	availability *fakeAvailability
	locked       []uuid.UUID
}

func (t *fakeTx) Bookings() shared.BookingRepository      { return t.bookings }
func (t *fakeTx) Blocks() shared.BlockRepository          { return t.blocks }
func (t *fakeTx) Cars() shared.CarRepository              { return t.cars }
func (t *fakeTx) Availability() shared.AvailabilityReader { return t.availability }

func (t *fakeTx) LockCar(_ context.Context, carID uuid.UUID) error {
	t.locked = append(t.locked, carID)
	return nil
}

type fakeUow struct {
	tx *fakeTx
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type notifiedEvent struct {
	event    commands.EventType
	snapshot commands.BookingSnapshot
}

type fakeNotifier struct {
	events    []notifiedEvent
	conflicts []commands.ConflictAttempt
}

func (n *fakeNotifier) BookingEvent(event commands.EventType, snapshot commands.BookingSnapshot) {
	n.events = append(n.events, notifiedEvent{event: event, snapshot: snapshot})
}

func (n *fakeNotifier) ConflictDetected(attempt commands.ConflictAttempt) {
	n.conflicts = append(n.conflicts, attempt)
}

// fakeBookingQueries serves read-after-write lookups straight from the
// write repo.
type fakeBookingQueries struct {
	repo *fakeBookingRepo
}

func (q *fakeBookingQueries) GetByReference(ctx context.Context, reference string) (*queries.BookingView, error) {
	b, err := q.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:        b.ID(),
		Reference: b.Reference(),
		EventName: b.EventName(),
		Status:    string(b.Status()),
		StartDate: b.Dates().Start(),
		EndDate:   b.Dates().End(),
	}, nil
}

func (q *fakeBookingQueries) List(context.Context, queries.BookingFilter, int) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (q *fakeBookingQueries) Stats(context.Context) (*queries.BookingStats, error) {
	return &queries.BookingStats{}, nil
}

type harness struct {
	uow      *fakeUow
	notifier *fakeNotifier
	car      *fleet.Car
}

func newHarness() *harness {
	car := &fleet.Car{
		ID:           uuid.New(),
		CarNumber:    7,
		Name:         "Hauler Seven",
		Registration: "KA-01-AB-0007",
		Status:       fleet.StatusAvailable,
	}
	tx := &fakeTx{
		bookings:     newFakeBookingRepo(),
		blocks:       newFakeBlockRepo(),
		cars:         newFakeCarRepo(car),
		availability: &fakeAvailability{},
	}
	return &harness{
		uow:      &fakeUow{tx: tx},
		notifier: &fakeNotifier{},
		car:      car,
	}
}

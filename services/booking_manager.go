package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hotel-booking/models"
)

// NoRoom is returned by FindAvailableRoom when every room is taken.
// Room ids are always positive.
const NoRoom uint = 0

const bookingLockKey = "bookings"

// RoomStore is the part of the room collection the manager reads.
type RoomStore interface {
	GetAll(ctx context.Context) ([]models.Room, error)
}

// BookingStore is the part of the booking collection the manager reads and writes.
type BookingStore interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	Add(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
}

// BookingManager decides room availability from a fresh snapshot of rooms
// and bookings on every call.
type BookingManager struct {
	rooms    RoomStore
	bookings BookingStore
	locker   Locker
	now      func() time.Time
	log      *zap.Logger
}

type Option func(*BookingManager)

func WithLocker(l Locker) Option {
	return func(m *BookingManager) { m.locker = l }
}

// WithClock overrides how the manager determines today.
func WithClock(now func() time.Time) Option {
	return func(m *BookingManager) { m.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(m *BookingManager) { m.log = log }
}

func NewBookingManager(rooms RoomStore, bookings BookingStore, opts ...Option) *BookingManager {
	m := &BookingManager{
		rooms:    rooms,
		bookings: bookings,
		locker:   NewMutexLocker(),
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *BookingManager) today() time.Time {
	return DateOf(m.now())
}

// validateStay checks a requested stay: it must start after today and must
// not end before it starts.
func (m *BookingManager) validateStay(r DateRange) error {
	if !r.Start.After(m.today()) {
		return ErrStartDateNotInFuture
	}
	return r.Validate()
}

type snapshot struct {
	rooms    []models.Room
	bookings []models.Booking
}

// load reads all rooms sorted by id and the active bookings.
func (m *BookingManager) load(ctx context.Context) (snapshot, error) {
	rooms, err := m.rooms.GetAll(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list rooms: %w", err)
	}
	all, err := m.bookings.GetAll(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	rooms = slices.Clone(rooms)
	slices.SortFunc(rooms, func(a, b models.Room) int { return cmp.Compare(a.ID, b.ID) })

	active := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return snapshot{rooms: rooms, bookings: active}, nil
}

func bookingRange(b models.Booking) DateRange {
	return NewDateRange(b.Start(), b.End())
}

// FindAvailableRoom returns the lowest room id with no active booking
// overlapping [start, end], or NoRoom.
func (m *BookingManager) FindAvailableRoom(ctx context.Context, start, end time.Time) (uint, error) {
	stay := NewDateRange(start, end)
	if err := m.validateStay(stay); err != nil {
		return NoRoom, err
	}
	return m.findAvailableRoom(ctx, stay)
}

func (m *BookingManager) findAvailableRoom(ctx context.Context, stay DateRange) (uint, error) {
	snap, err := m.load(ctx)
	if err != nil {
		return NoRoom, err
	}

	taken := make(map[uint]struct{}, len(snap.rooms))
	for _, b := range snap.bookings {
		if bookingRange(b).Overlaps(stay) {
			taken[b.RoomID] = struct{}{}
		}
	}
	for _, room := range snap.rooms {
		if _, ok := taken[room.ID]; !ok {
			return room.ID, nil
		}
	}
	return NoRoom, nil
}

// CreateBooking assigns the first free room to booking and stores it. It
// returns false without touching the store when no room is free for the
// whole stay. Room id and active flag are always set here.
func (m *BookingManager) CreateBooking(ctx context.Context, booking *models.Booking) (bool, error) {
	stay := NewDateRange(booking.Start(), booking.End())
	if err := m.validateStay(stay); err != nil {
		return false, err
	}

	release, err := m.locker.Acquire(ctx, bookingLockKey)
	if err != nil {
		return false, err
	}
	defer release()

	roomID, err := m.findAvailableRoom(ctx, stay)
	if err != nil {
		return false, err
	}
	if roomID == NoRoom {
		m.log.Info("no room available",
			zap.Time("start", stay.Start),
			zap.Time("end", stay.End),
			zap.Uint("customer_id", booking.CustomerID),
		)
		return false, nil
	}

	booking.RoomID = roomID
	booking.IsActive = true
	booking.StartDate = datatypes.Date(stay.Start)
	booking.EndDate = datatypes.Date(stay.End)

	if err := m.bookings.Add(ctx, booking); err != nil {
		return false, fmt.Errorf("failed to add booking: %w", err)
	}

	m.log.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("room_id", roomID),
		zap.Uint("customer_id", booking.CustomerID),
	)
	return true, nil
}

// UpdateBooking changes the customer and active flag of a stored booking.
// Room and dates never change. Re-activating a booking whose room has since
// been taken for an overlapping day returns false and leaves the store as it
// was.
func (m *BookingManager) UpdateBooking(ctx context.Context, id, customerID uint, isActive bool) (bool, error) {
	release, err := m.locker.Acquire(ctx, bookingLockKey)
	if err != nil {
		return false, err
	}
	defer release()

	existing, err := m.bookings.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	if isActive && !existing.IsActive {
		free, err := m.roomFreeFor(ctx, existing)
		if err != nil {
			return false, err
		}
		if !free {
			m.log.Info("booking cannot be re-activated",
				zap.Uint("booking_id", id),
				zap.Uint("room_id", existing.RoomID),
			)
			return false, nil
		}
	}

	existing.CustomerID = customerID
	existing.IsActive = isActive
	if err := m.bookings.Update(ctx, existing); err != nil {
		return false, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	m.log.Info("booking updated",
		zap.Uint("booking_id", id),
		zap.Uint("customer_id", customerID),
		zap.Bool("is_active", isActive),
	)
	return true, nil
}

// roomFreeFor reports whether b's room still exists and has no other active
// booking overlapping b's dates.
func (m *BookingManager) roomFreeFor(ctx context.Context, b *models.Booking) (bool, error) {
	snap, err := m.load(ctx)
	if err != nil {
		return false, err
	}
	if !slices.ContainsFunc(snap.rooms, func(r models.Room) bool { return r.ID == b.RoomID }) {
		return false, nil
	}

	stay := bookingRange(*b)
	for _, other := range snap.bookings {
		if other.ID != b.ID && other.RoomID == b.RoomID && bookingRange(other).Overlaps(stay) {
			return false, nil
		}
	}
	return true, nil
}

// GetFullyOccupiedDates lists, in ascending order, the dates in [start, end]
// on which every room has an active booking. Past ranges are allowed.
func (m *BookingManager) GetFullyOccupiedDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	query := NewDateRange(start, end)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.rooms) == 0 || len(snap.bookings) == 0 {
		return []time.Time{}, nil
	}

	known := make(map[uint]struct{}, len(snap.rooms))
	for _, room := range snap.rooms {
		known[room.ID] = struct{}{}
	}

	// covered maps a day (unix seconds of its UTC midnight) to the rooms booked on it
	covered := make(map[int64]map[uint]struct{})
	for _, b := range snap.bookings {
		if _, ok := known[b.RoomID]; !ok {
			continue
		}
		span, ok := bookingRange(b).Intersect(query)
		if !ok {
			continue
		}
		for _, d := range span.Days() {
			key := d.Unix()
			if covered[key] == nil {
				covered[key] = make(map[uint]struct{}, len(snap.rooms))
			}
			covered[key][b.RoomID] = struct{}{}
		}
	}

	dates := []time.Time{}
	for key, rooms := range covered {
		if len(rooms) == len(snap.rooms) {
			dates = append(dates, time.Unix(key, 0).UTC())
		}
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates, nil
}

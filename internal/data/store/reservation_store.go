package store

import (
	"sync"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationStore is the single source of truth for booking state. All
// mutations go through it; callers never see the backing slice, only copies.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations []*entity.Reservation
	log          *zap.Logger
}

func NewReservationStore(log *zap.Logger) *ReservationStore {
	return &ReservationStore{
		log: log.With(zap.String("store", "reservation")),
	}
}

// Book checks availability and appends the new reservation as one atomic
// step under the write lock. Two concurrent calls for the same room and
// overlapping dates can therefore never both succeed. The reservation id is
// generated inside the critical section.
func (s *ReservationStore) Book(userID, hotelID, roomID int64, checkIn, checkOut time.Time) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict := entity.FindConflict(s.reservations, roomID, checkIn, checkOut); conflict != nil {
		s.log.Warn("Booking conflict",
			zap.Int64("room_id", roomID),
			zap.String("check_in", checkIn.Format(time.DateOnly)),
			zap.String("check_out", checkOut.Format(time.DateOnly)),
			zap.String("conflicting_reservation", conflict.ID),
		)
		return nil, entity.ErrBookingConflict
	}

	res := &entity.Reservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		HotelID:   hotelID,
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    entity.ReservationStatusConfirmed,
		CreatedAt: time.Now(),
	}
	s.reservations = append(s.reservations, res)

	out := *res
	return &out, nil
}

// Cancel flips the reservation to CANCELLED. Cancelling an already cancelled
// reservation is a no-op success; CANCELLED is terminal either way.
func (s *ReservationStore) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range s.reservations {
		if res.ID == id {
			res.Status = entity.ReservationStatusCancelled
			return nil
		}
	}

	return entity.ErrReservationNotFound
}

// FindByID returns a copy of the reservation, or nil.
func (s *ReservationStore) FindByID(id string) *entity.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, res := range s.reservations {
		if res.ID == id {
			out := *res
			return &out
		}
	}
	return nil
}

// ListByUser returns the user's CONFIRMED reservations in insertion order.
func (s *ReservationStore) ListByUser(userID int64) []*entity.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Reservation
	for _, res := range s.reservations {
		if res.UserID == userID && res.Status == entity.ReservationStatusConfirmed {
			c := *res
			out = append(out, &c)
		}
	}
	return out
}

// ListAll returns every reservation regardless of status, insertion order.
func (s *ReservationStore) ListAll() []*entity.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		c := *res
		out = append(out, &c)
	}
	return out
}

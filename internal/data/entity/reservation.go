package entity

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation books a room for the half-open date range [CheckIn, CheckOut).
// ID, UserID, HotelID and RoomID never change after creation; the only
// allowed mutation is the CONFIRMED -> CANCELLED status flip.
type Reservation struct {
	ID        string // UUID, assigned by the store
	UserID    int64
	HotelID   int64
	RoomID    int64
	CheckIn   time.Time // calendar date, UTC midnight
	CheckOut  time.Time // calendar date, UTC midnight, strictly after CheckIn
	Status    ReservationStatus
	CreatedAt time.Time
}

// Nights returns the number of nights covered by the reservation.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

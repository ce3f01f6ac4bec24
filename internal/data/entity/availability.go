package entity

import "time"

// Overlaps reports whether the reservation's [CheckIn, CheckOut) interval
// intersects the requested half-open range. A stay ending on the day another
// starts touches but does not overlap.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}

// FindConflict returns the first CONFIRMED reservation for roomID whose date
// range intersects [checkIn, checkOut), or nil when the room is free.
// Pure; the caller must hold a consistent snapshot of the reservation set.
func FindConflict(reservations []*Reservation, roomID int64, checkIn, checkOut time.Time) *Reservation {
	for _, res := range reservations {
		if res.RoomID != roomID || res.Status != ReservationStatusConfirmed {
			continue
		}
		if res.Overlaps(checkIn, checkOut) {
			return res
		}
	}
	return nil
}

package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/store"
	"hotel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	return NewService(store.NewStore(zap.NewNop()), zap.NewNop())
}

func bookingReq(userID, hotelID, roomID int64, checkIn, checkOut string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		UserID:   userID,
		HotelID:  hotelID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, entity.ReservationStatusConfirmed, res.Status)
		assert.Equal(t, "2024-08-10", res.CheckIn)
		assert.Equal(t, "2024-08-15", res.CheckOut)
		// room 201 is the 350/night double at Beachfront Paradise
		assert.Equal(t, 5, res.Nights)
		assert.Equal(t, float64(5*350), res.TotalPrice)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-09-01", "2024-08-30"))
		assert.ErrorIs(t, err, entity.ErrInvalidRange)

		bookings, _ := svc.Booking.GetUserBookings(ctx, 1)
		assert.Empty(t, bookings)
	})

	t.Run("zero-night stay", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-10"))
		assert.ErrorIs(t, err, entity.ErrInvalidRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "10-08-2024", "2024-08-15"))
		assert.ErrorIs(t, err, entity.ErrInvalidRange)

		_, err = svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "not-a-date"))
		assert.ErrorIs(t, err, entity.ErrInvalidRange)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(99, 2, 201, "2024-08-10", "2024-08-15"))
		assert.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 99, 201, "2024-08-10", "2024-08-15"))
		assert.ErrorIs(t, err, entity.ErrHotelNotFound)
	})

	t.Run("room not in hotel", func(t *testing.T) {
		svc := newTestService()

		// room 201 belongs to hotel 2
		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 1, 201, "2024-08-10", "2024-08-15"))
		assert.ErrorIs(t, err, entity.ErrRoomNotFound)
	})

	t.Run("overlapping dates conflict", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
		require.NoError(t, err)

		_, err = svc.Booking.CreateBooking(ctx, bookingReq(3, 2, 201, "2024-08-12", "2024-08-14"))
		assert.ErrorIs(t, err, entity.ErrBookingConflict)

		bookings, _ := svc.Booking.GetUserBookings(ctx, 3)
		assert.Empty(t, bookings)
	})

	t.Run("back-to-back stays both succeed", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
		require.NoError(t, err)

		_, err = svc.Booking.CreateBooking(ctx, bookingReq(3, 2, 201, "2024-08-15", "2024-08-18"))
		assert.NoError(t, err)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown reservation", func(t *testing.T) {
		svc := newTestService()

		err := svc.Booking.CancelBooking(ctx, "no-such-reservation")
		assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	})

	t.Run("cancel frees the dates", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
		require.NoError(t, err)

		require.NoError(t, svc.Booking.CancelBooking(ctx, res.ID))

		_, err = svc.Booking.CreateBooking(ctx, bookingReq(3, 2, 201, "2024-08-12", "2024-08-14"))
		assert.NoError(t, err)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
		require.NoError(t, err)

		require.NoError(t, svc.Booking.CancelBooking(ctx, res.ID))
		assert.NoError(t, svc.Booking.CancelBooking(ctx, res.ID))
	})
}

func TestGetUserBookings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
	require.NoError(t, err)
	second, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 3, 301, "2024-09-01", "2024-09-03"))
	require.NoError(t, err)
	_, err = svc.Booking.CreateBooking(ctx, bookingReq(3, 2, 202, "2024-08-10", "2024-08-12"))
	require.NoError(t, err)

	t.Run("joins hotel and room in insertion order", func(t *testing.T) {
		bookings, err := svc.Booking.GetUserBookings(ctx, 1)
		require.NoError(t, err)
		require.Len(t, bookings, 2)

		assert.Equal(t, first.ID, bookings[0].ID)
		assert.Equal(t, "Beachfront Paradise", bookings[0].Hotel.Name)
		assert.Equal(t, int64(201), bookings[0].Room.ID)
		assert.Equal(t, entity.RoomTypeDouble, bookings[0].Room.Type)

		assert.Equal(t, second.ID, bookings[1].ID)
		assert.Equal(t, "Mountain Retreat", bookings[1].Hotel.Name)
	})

	t.Run("excludes cancelled reservations", func(t *testing.T) {
		require.NoError(t, svc.Booking.CancelBooking(ctx, first.ID))

		bookings, err := svc.Booking.GetUserBookings(ctx, 1)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, second.ID, bookings[0].ID)
	})

	t.Run("unknown user has no bookings", func(t *testing.T) {
		bookings, err := svc.Booking.GetUserBookings(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestGetAllBookings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	early, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 2, 201, "2024-08-10", "2024-08-15"))
	require.NoError(t, err)
	late, err := svc.Booking.CreateBooking(ctx, bookingReq(3, 3, 301, "2024-10-01", "2024-10-05"))
	require.NoError(t, err)
	mid, err := svc.Booking.CreateBooking(ctx, bookingReq(1, 4, 401, "2024-09-01", "2024-09-03"))
	require.NoError(t, err)

	require.NoError(t, svc.Booking.CancelBooking(ctx, early.ID))

	bookings, err := svc.Booking.GetAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	t.Run("sorted by check-in descending", func(t *testing.T) {
		assert.Equal(t, late.ID, bookings[0].ID)
		assert.Equal(t, mid.ID, bookings[1].ID)
		assert.Equal(t, early.ID, bookings[2].ID)

		for i := 1; i < len(bookings); i++ {
			assert.LessOrEqual(t, bookings[i].CheckIn, bookings[i-1].CheckIn)
		}
	})

	t.Run("includes cancelled with status", func(t *testing.T) {
		assert.Equal(t, entity.ReservationStatusCancelled, bookings[2].Status)
	})

	t.Run("joins the booking user", func(t *testing.T) {
		assert.Equal(t, "sairajyellewar", bookings[0].User.Username)
		assert.Equal(t, "Sairaj", bookings[1].User.FullName)
	})
}

package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHotels(t *testing.T) {
	svc := newTestService()

	hotels, err := svc.Catalog.GetHotels(context.Background())
	require.NoError(t, err)
	require.Len(t, hotels, 4)
	assert.Equal(t, "The Grand Palace", hotels[0].Name)
	assert.Len(t, hotels[0].Rooms, 3)
}

func TestGetHotelByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	hotel, err := svc.Catalog.GetHotelByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Beachfront Paradise", hotel.Name)
	require.Len(t, hotel.Rooms, 2)
	assert.Equal(t, int64(201), hotel.Rooms[0].ID)

	_, err = svc.Catalog.GetHotelByID(ctx, 99)
	assert.ErrorIs(t, err, entity.ErrHotelNotFound)
}

func TestCreateHotel(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("validation failure", func(t *testing.T) {
		_, err := svc.Catalog.CreateHotel(ctx, &request.CreateHotelRequest{Address: "Nowhere"})
		assert.Error(t, err)
	})

	t.Run("creates hotel with default rooms", func(t *testing.T) {
		created, err := svc.Catalog.CreateHotel(ctx, &request.CreateHotelRequest{
			Name:       "Lakeside Inn",
			Address:    "Udaipur, India",
			Rating:     4.1,
			PriceRange: "$$",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), created.ID)
		require.Len(t, created.Rooms, 2)
		assert.Equal(t, entity.RoomTypeDouble, created.Rooms[0].Type)
		assert.Equal(t, entity.RoomTypeSuite, created.Rooms[1].Type)

		hotels, err := svc.Catalog.GetHotels(ctx)
		require.NoError(t, err)
		assert.Len(t, hotels, 5)

		// new rooms are bookable right away
		_, err = svc.Booking.CreateBooking(ctx, bookingReq(1, created.ID, created.Rooms[0].ID, "2024-08-10", "2024-08-12"))
		assert.NoError(t, err)
	})
}

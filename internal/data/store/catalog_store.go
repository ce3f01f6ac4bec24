package store

import (
	"sync"

	"hotel-booking/internal/data/entity"

	"go.uber.org/zap"
)

// CatalogStore holds the hotel and room reference data. The catalog is
// append-only: hotels are never updated or deleted once added.
type CatalogStore struct {
	mu     sync.RWMutex
	hotels []*entity.Hotel
	nextID int64 // last assigned hotel id, bumped under mu
	log    *zap.Logger
}

func NewCatalogStore(hotels []*entity.Hotel, log *zap.Logger) *CatalogStore {
	var maxID int64
	for _, h := range hotels {
		if h.ID > maxID {
			maxID = h.ID
		}
	}

	return &CatalogStore{
		hotels: hotels,
		nextID: maxID,
		log:    log.With(zap.String("store", "catalog")),
	}
}

// ListHotels returns all hotels in insertion order.
func (s *CatalogStore) ListHotels() []*entity.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

// FindHotelByID returns the hotel with the given id, or nil.
func (s *CatalogStore) FindHotelByID(id int64) *entity.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hotels {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// FindRoom returns the room only when it exists and belongs to the hotel.
func (s *CatalogStore) FindRoom(hotelID, roomID int64) *entity.Room {
	hotel := s.FindHotelByID(hotelID)
	if hotel == nil {
		return nil
	}
	return hotel.FindRoom(roomID)
}

// AddHotel assigns the next hotel id, attaches the standard pair of default
// rooms and appends the hotel to the catalog. The id counter is seeded from
// the largest seeded id and only ever moves forward, so concurrent appends
// cannot collide.
func (s *CatalogStore) AddHotel(hotel *entity.Hotel) *entity.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	hotel.ID = s.nextID
	hotel.Rooms = defaultRooms(hotel.ID)
	s.hotels = append(s.hotels, hotel)

	s.log.Info("Hotel added to catalog",
		zap.Int64("hotel_id", hotel.ID),
		zap.String("name", hotel.Name),
		zap.Int("rooms", len(hotel.Rooms)),
	)

	return hotel
}

// New hotels open with a standard pair of rooms; there is no further room
// management in the catalog.
func defaultRooms(hotelID int64) []entity.Room {
	return []entity.Room{
		{
			ID:         hotelID*100 + 1,
			HotelID:    hotelID,
			Type:       entity.RoomTypeDouble,
			Price:      200,
			RoomNumber: "101",
			Amenities:  []string{"Wi-Fi", "TV", "AC"},
		},
		{
			ID:         hotelID*100 + 2,
			HotelID:    hotelID,
			Type:       entity.RoomTypeSuite,
			Price:      350,
			RoomNumber: "201",
			Amenities:  []string{"Wi-Fi", "TV", "AC", "Mini-bar"},
		},
	}
}

package store

import "hotel-booking/internal/data/entity"

// Startup fixtures. The catalog and the user directory are reference data
// for this service; reservations always start empty.

func seedUsers() []*entity.User {
	return []*entity.User{
		{ID: 1, Username: "user", FullName: "Sairaj", Role: entity.RoleUser},
		{ID: 2, Username: "admin", FullName: "Admin User", Role: entity.RoleAdmin},
		{ID: 3, Username: "sairajyellewar", FullName: "Sairaj Yellewar", Role: entity.RoleUser},
	}
}

func seedHotels() []*entity.Hotel {
	return []*entity.Hotel{
		{
			ID:          1,
			Name:        "The Grand Palace",
			Address:     "Hyderabad, India",
			Description: "A luxurious stay in the heart of the city, offering unparalleled comfort and breathtaking views. Perfect for business and leisure travelers alike.",
			Rating:      4.6,
			PriceRange:  "$$$",
			ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1571896349842-33c89424de2d?q=80&w=1780&auto=format&fit=crop",
			},
			Rooms: []entity.Room{
				{ID: 101, HotelID: 1, Type: entity.RoomTypeSingle, Price: 150, RoomNumber: "101", Amenities: []string{"Wi-Fi", "TV", "AC"}},
				{ID: 102, HotelID: 1, Type: entity.RoomTypeDouble, Price: 250, RoomNumber: "102", Amenities: []string{"Wi-Fi", "TV", "AC", "Mini-bar"}},
				{ID: 103, HotelID: 1, Type: entity.RoomTypeSuite, Price: 400, RoomNumber: "201", Amenities: []string{"Wi-Fi", "TV", "AC", "Mini-bar", "Jacuzzi"}},
			},
			Amenities: []string{"Free Breakfast", "Couple Friendly"},
		},
		{
			ID:          2,
			Name:        "Beachfront Paradise",
			Address:     "Goa, India",
			Description: "Wake up to the sound of waves in our stunning beachfront resort. Enjoy private beach access, infinity pools, and world-class dining.",
			Rating:      4.8,
			PriceRange:  "$$$$",
			ImageURL:    "https://images.unsplash.com/photo-1582719508461-905c673771fd?q=80&w=1925&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?q=80&w=1925&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1563911302283-d2bc129e7570?q=80&w=1935&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?q=80&w=2070&auto=format&fit=crop",
			},
			Rooms: []entity.Room{
				{ID: 201, HotelID: 2, Type: entity.RoomTypeDouble, Price: 350, RoomNumber: "B12", Amenities: []string{"Wi-Fi", "TV", "AC", "Balcony"}},
				{ID: 202, HotelID: 2, Type: entity.RoomTypeSuite, Price: 600, RoomNumber: "C-01", Amenities: []string{"Wi-Fi", "TV", "AC", "Mini-bar", "Ocean View"}},
			},
			Amenities: []string{"Free Cancellation", "Couple Friendly"},
		},
		{
			ID:          3,
			Name:        "Mountain Retreat",
			Address:     "Shimla, India",
			Description: "Escape the city and find tranquility in our cozy mountain retreat. Perfect for hiking, relaxation, and enjoying the crisp mountain air.",
			Rating:      4.5,
			PriceRange:  "$$",
			ImageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?q=80&w=2070&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1445019980597-93e09d141a65?q=80&w=1932&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1611892440504-42a792e24d32?q=80&w=2070&auto=format&fit=crop",
			},
			Rooms: []entity.Room{
				{ID: 301, HotelID: 3, Type: entity.RoomTypeSingle, Price: 120, RoomNumber: "A1", Amenities: []string{"Wi-Fi", "Heater", "Fireplace"}},
				{ID: 302, HotelID: 3, Type: entity.RoomTypeDouble, Price: 200, RoomNumber: "A2", Amenities: []string{"Wi-Fi", "Heater", "Fireplace", "Mountain View"}},
			},
			Amenities: []string{"Free Cancellation", "Free Breakfast"},
		},
		{
			ID:          4,
			Name:        "Urban Modern Loft",
			Address:     "Mumbai, India",
			Description: "A stylish and modern hotel in the bustling city center. Ideal for urban explorers who appreciate design and convenience.",
			Rating:      4.3,
			PriceRange:  "$$$",
			ImageURL:    "https://images.unsplash.com/photo-1549294413-26f195200c16?q=80&w=1964&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1549294413-26f195200c16?q=80&w=1964&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?q=80&w=1780&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?q=80&w=2070&auto=format&fit=crop",
			},
			Rooms: []entity.Room{
				{ID: 401, HotelID: 4, Type: entity.RoomTypeDouble, Price: 220, RoomNumber: "505", Amenities: []string{"Wi-Fi", "TV", "AC", "Kitchenette"}},
				{ID: 402, HotelID: 4, Type: entity.RoomTypeSuite, Price: 380, RoomNumber: "801", Amenities: []string{"Wi-Fi", "Smart TV", "AC", "Full Kitchen"}},
			},
			Amenities: []string{"Couple Friendly"},
		},
	}
}

package startup

import (
	"context"
	"time"

	"booking_service/domain"

	"golang.org/x/crypto/bcrypt"
)

// Collections are seeded only when empty; the emptiness check is the sole
// duplication safeguard, so running the routine twice is a no-op.
func SeedData(ctx context.Context, users domain.UserStore, destinations domain.CatalogStore) error {
	err := seedDefaultAdmin(ctx, users)
	if err != nil {
		return err
	}
	return seedSampleDestinations(ctx, destinations)
}

func seedDefaultAdmin(ctx context.Context, users domain.UserStore) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count != 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Username:  "admin",
		Password:  string(hash),
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	return users.Register(ctx, admin)
}

func seedSampleDestinations(ctx context.Context, destinations domain.CatalogStore) error {
	count, err := destinations.Count(ctx)
	if err != nil {
		return err
	}
	if count != 0 {
		return nil
	}

	return destinations.InsertMany(ctx, SampleDestinations())
}

func SampleDestinations() []*domain.Destination {
	samples := []struct {
		name        string
		location    string
		price       float64
		description string
	}{
		{"Goa Beach Escape", "Goa", 4999.0, "Relax on the golden sands of Goa"},
		{"Jaipur Heritage Tour", "Jaipur", 5999.0, "Explore forts and palaces"},
		{"Rajasthan Desert Camp", "Jaisalmer", 7999.0, "Overnight desert camping and cultural night"},
		{"Kerala Backwaters", "Alleppey", 6999.0, "Houseboat cruise through serene backwaters"},
		{"Himachal Hill-stay", "Manali", 5499.0, "Snowy mountains and cosy cafes"},
		{"Darjeeling Tea Trails", "Darjeeling", 6499.0, "Ride the toy train and visit tea gardens"},
		{"Andaman Scuba", "Port Blair", 12999.0, "Scuba diving and water sports"},
		{"Varanasi Spiritual Tour", "Varanasi", 3999.0, "Sunrise by the Ganges and cultural walks"},
		{"Goa Adventure", "Goa", 6999.0, "Water sports and nightlife"},
		{"Mumbai City Lights", "Mumbai", 4599.0, "Explore the city that never sleeps"},
		{"Kashmir Valley", "Srinagar", 15999.0, "Houseboats, shikaras & snowy peaks"},
		{"Ladakh Road Trip", "Leh", 18999.0, "High-altitude lakes and monasteries"},
		{"Ooty Nilgiri Escape", "Ooty", 5499.0, "Tea gardens and toy train rides"},
		{"Mysore Palace Tour", "Mysore", 4299.0, "Palaces, markets and silk"},
		{"Pondicherry Quiet Stay", "Pondicherry", 4899.0, "French quarters and beachside cafés"},
		{"Rishikesh Adventure", "Rishikesh", 3999.0, "White water rafting & yoga"},
		{"Sikkim Scenic", "Gangtok", 7999.0, "Lakes, monasteries and viewpoints"},
		{"Hampi Ruins", "Hampi", 3699.0, "Ancient ruins and boulder landscapes"},
		{"Goa Luxury", "Goa", 10999.0, "Premium resorts and private beaches"},
		{"Andhra Temple Tour", "Tirupati", 2999.0, "Pilgrimage and local cuisine"},
	}

	now := time.Now().UTC()
	destinations := make([]*domain.Destination, 0, len(samples))
	for _, sample := range samples {
		destinations = append(destinations, &domain.Destination{
			Name:        sample.name,
			Location:    sample.location,
			Price:       sample.price,
			Description: sample.description,
			CreatedAt:   now,
		})
	}
	return destinations
}

package domain

// Favorite carries a denormalized snapshot of the favorited vehicle.
type Favorite struct {
	ID        int64   `json:"favorite_id"`
	VehicleID int64   `json:"vehicle_id"`
	Vehicle   Vehicle `json:"vehicle"`
}

// FavoriteSet is the set of vehicle ids favorited by one user.
type FavoriteSet map[int64]struct{}

func NewFavoriteSet(ids ...int64) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// FavoriteSetFrom builds the set from an API favorites listing.
func FavoriteSetFrom(favorites []*Favorite) FavoriteSet {
	set := make(FavoriteSet, len(favorites))
	for _, f := range favorites {
		set[f.VehicleID] = struct{}{}
	}
	return set
}

func (s FavoriteSet) Contains(vehicleID int64) bool {
	_, ok := s[vehicleID]
	return ok
}

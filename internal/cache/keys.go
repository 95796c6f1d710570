package cache

// Cache key layout. Identity and own-bookings entries are per session;
// catalog lists are shared.
const (
	UnitsKey = "catalog:units"
	RoomsKey = "catalog:rooms"
)

func IdentityKey(sid string) string {
	return "identity:" + sid
}

func BookingsKey(sid string) string {
	return "bookings:" + sid
}

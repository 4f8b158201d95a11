package booking

import "time"

// Nights counts whole days between check-in and check-out. Both are
// midnight-UTC dates, so the division is exact; with checkIn < checkOut the
// result is at least 1.
func Nights(checkIn, checkOut time.Time) int64 {
	return int64(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// Cost returns the total stay price in cents: whole nights times the
// nightly rate. Requires checkIn < checkOut, enforced by the caller.
func Cost(checkIn, checkOut time.Time, nightlyPriceCents int64) int64 {
	return Nights(checkIn, checkOut) * nightlyPriceCents
}

package planner

import "math"

const earthRadiusMeters = 6371000

// HaversineDistance returns the straight-line distance in meters between
// two coordinates on a spherical Earth.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	latDelta := (lat2 - lat1) * math.Pi / 180
	lonDelta := (lon2 - lon1) * math.Pi / 180
	a := math.Pow(math.Sin(latDelta/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(lonDelta/2), 2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

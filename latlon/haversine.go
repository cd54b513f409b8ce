package latlon

import "math"

func haversine(from, to LatLon) float64 {
	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)
	Δφ := ToRadians(to.Lat - from.Lat)
	Δλ := ToRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	// rounding can push a past 1 near the antipode
	a = math.Max(0, math.Min(1, a))
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance returns the great-circle distance between from and to in
// nautical miles.
func Distance(from, to LatLon) float64 {
	d := R * haversine(from, to)

	return d * KmToNm
}

// Bearing returns the initial bearing from from to to, in degrees within
// [0, 360). Identical points have no direction and yield 0.
func Bearing(from, to LatLon) float64 {
	if from == to {
		return 0
	}

	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)
	Δλ := ToRadians(to.Lon - from.Lon)

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Atan2(y, x)

	return wrap360(ToDegrees(θ))
}

func DistanceAndBearing(from, to LatLon) (float64, float64) {
	return Distance(from, to), Bearing(from, to)
}

// Destination projects from along bearing for distance nautical miles.
// The returned longitude is not wrapped; see WrapLon.
func Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := ToRadians(from.Lat)
	λ1 := ToRadians(from.Lon)
	θ := ToRadians(bearing)

	δ := distance * NmToKm / R

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: ToDegrees(φ2), Lon: ToDegrees(λ2)}
}

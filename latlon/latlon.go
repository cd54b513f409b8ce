// Package latlon implements great-circle navigation on a spherical Earth.
//
// Distances cross the package boundary in nautical miles. Internally the
// formulas work on a sphere of mean radius R kilometers.
package latlon

import (
	"errors"
	"fmt"
	"math"
)

const π = math.Pi

const (
	// R is the mean Earth radius in kilometers.
	R = 6371.0
	// KmToNm converts kilometers to nautical miles.
	KmToNm = 0.539957
	// NmToKm converts nautical miles to kilometers.
	NmToKm = 1.852
)

// ErrOutOfRange is returned by Validate for coordinates off the globe.
var ErrOutOfRange = errors.New("coordinate out of range")

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate reports whether p lies within [-90, 90] x [-180, 180].
// None of the math in this package calls it.
func Validate(p LatLon) error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v: %w", p.Lat, ErrOutOfRange)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %v: %w", p.Lon, ErrOutOfRange)
	}
	return nil
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -ε + 360 rounds up to 360
	if d >= 360.0 {
		d = 0
	}
	return d
}

// WrapLon brings a longitude back into [-180, 180).
func WrapLon(lon float64) float64 {
	if -180.0 <= lon && lon < 180.0 {
		return lon
	}
	return wrap360(lon+180.0) - 180.0
}

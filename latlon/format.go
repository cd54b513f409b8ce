package latlon

import (
	"fmt"
	"math"
)

// Axis selects the hemisphere letters used by FormatCoordinate.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

// ParseAxis accepts "lat"/"latitude" and "lng"/"lon"/"longitude".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "lat", "latitude":
		return Latitude, nil
	case "lng", "lon", "longitude":
		return Longitude, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

func (a Axis) String() string {
	if a == Longitude {
		return "lng"
	}
	return "lat"
}

func hemisphere(value float64, axis Axis) string {
	if axis == Longitude {
		if value >= 0 {
			return "E"
		}
		return "W"
	}
	if value >= 0 {
		return "N"
	}
	return "S"
}

// FormatCoordinate renders a decimal degree as degrees and decimal minutes,
// e.g. 26.5 on Latitude gives "26°30.000'N".
func FormatCoordinate(value float64, axis Axis) string {
	// work in thousandths of a minute so 59.9996' carries into the degree
	// instead of printing 60.000'
	total := math.Round(math.Abs(value) * 60000)
	degrees := math.Floor(total / 60000)
	minutes := (total - degrees*60000) / 1000

	return fmt.Sprintf("%.0f°%.3f'%s", degrees, minutes, hemisphere(value, axis))
}

func (p LatLon) String() string {
	return FormatCoordinate(p.Lat, Latitude) + " " + FormatCoordinate(p.Lon, Longitude)
}

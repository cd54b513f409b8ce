// Package route aggregates ordered waypoints into path lengths and drawable
// geometry, and estimates travel time and endurance along them.
package route

import (
	"sort"
	"strconv"
	"strings"

	"github.com/a-bouts/ship-nav/latlon"
)

// Waypoint is a path vertex. Order is a sort key only: it need not be
// unique or contiguous.
type Waypoint struct {
	ID string `json:"id"`
	latlon.LatLon
	Order int `json:"order"`
}

// Sorted returns a copy of waypoints ordered by Order. Ties keep their
// input order. The argument is left untouched.
func Sorted(waypoints []Waypoint) []Waypoint {
	sorted := make([]Waypoint, len(waypoints))
	copy(sorted, waypoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// Distance returns the length in nautical miles of the path visiting
// waypoints by ascending Order.
func Distance(waypoints []Waypoint) float64 {
	if len(waypoints) < 2 {
		return 0
	}

	sorted := Sorted(waypoints)
	total := 0.0
	for i := 1; i < len(sorted); i++ {
		total += latlon.Distance(sorted[i-1].LatLon, sorted[i].LatLon)
	}
	return total
}

// Leg is one hop of a path, distance in nautical miles.
type Leg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
}

// Legs returns the distance and initial bearing of every consecutive pair.
func Legs(waypoints []Waypoint) []Leg {
	if len(waypoints) < 2 {
		return nil
	}

	sorted := Sorted(waypoints)
	legs := make([]Leg, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		d, b := latlon.DistanceAndBearing(sorted[i-1].LatLon, sorted[i].LatLon)
		legs = append(legs, Leg{From: sorted[i-1].ID, To: sorted[i].ID, Distance: d, Bearing: b})
	}
	return legs
}

// LineString returns the path as [lon, lat] pairs. Paths with fewer than
// two waypoints give an empty slice.
func LineString(waypoints []Waypoint) [][2]float64 {
	if len(waypoints) < 2 {
		return [][2]float64{}
	}

	sorted := Sorted(waypoints)
	line := make([][2]float64, len(sorted))
	for i, w := range sorted {
		line[i] = [2]float64{w.Lon, w.Lat}
	}
	return line
}

// SVGPath renders the path as SVG path data in lon/lat space,
// "M lon lat L lon lat ...". Fewer than two waypoints give "".
func SVGPath(waypoints []Waypoint) string {
	line := LineString(waypoints)
	if len(line) == 0 {
		return ""
	}

	var b strings.Builder
	for i, c := range line {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(c[0], 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(c[1], 'f', -1, 64))
	}
	return b.String()
}

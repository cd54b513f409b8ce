// Package ship holds vessel state and its map marker.
package ship

import (
	"github.com/a-bouts/ship-nav/latlon"
	"github.com/a-bouts/ship-nav/route"
)

type Status string

const (
	Active  Status = "active"
	Standby Status = "standby"
	Offline Status = "offline"
)

func (s Status) Valid() bool {
	switch s {
	case Active, Standby, Offline:
		return true
	}
	return false
}

type Ship struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Position latlon.LatLon `json:"position"`
	Heading  float64       `json:"heading"`
	Status   Status        `json:"status"`
	// Speed in knots.
	Speed float64 `json:"speed,omitempty"`
	// Battery charge, percent.
	Battery   float64 `json:"battery,omitempty"`
	PowerDraw float64 `json:"powerDraw,omitempty"`
}

// RemainingRange is the distance the ship can still cover at its current
// speed, in nautical miles.
func (s Ship) RemainingRange() float64 {
	return route.RemainingRange(s.Battery, s.PowerDraw, s.Speed)
}

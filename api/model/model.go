package model

import (
	"github.com/a-bouts/ship-nav/latlon"
	"github.com/a-bouts/ship-nav/route"
)

type DistanceRequest struct {
	From latlon.LatLon `json:"from"`
	To   latlon.LatLon `json:"to"`
}

type DistanceResult struct {
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
}

type DestinationRequest struct {
	From     latlon.LatLon `json:"from"`
	Bearing  float64       `json:"bearing"`
	Distance float64       `json:"distance"`
}

type FormatResult struct {
	Text string `json:"text"`
}

type PathRequest struct {
	Waypoints []route.Waypoint `json:"waypoints"`
	Speed     float64          `json:"speed"`
}

type PathResult struct {
	Distance   float64      `json:"distance"`
	Legs       []route.Leg  `json:"legs"`
	LineString [][2]float64 `json:"lineString"`
	SVG        string       `json:"svg"`
	Hours      *float64     `json:"hours,omitempty"`
}

type RangeRequest struct {
	Battery   float64 `json:"battery"`
	PowerDraw float64 `json:"powerDraw"`
	Speed     float64 `json:"speed"`
}

type RangeResult struct {
	Range float64 `json:"range"`
	Hours float64 `json:"hours"`
}

type Error struct {
	Error string `json:"error"`
}

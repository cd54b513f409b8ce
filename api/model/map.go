package model

import "github.com/a-bouts/ship-nav/latlon"

type MapConfig struct {
	Center         latlon.LatLon `json:"center"`
	Zoom           int           `json:"zoom"`
	MinZoom        int           `json:"minZoom"`
	MaxZoom        int           `json:"maxZoom"`
	TileURL        string        `json:"tileUrl"`
	TileSubdomains []string      `json:"tileSubdomains"`
	IconSize       [2]int        `json:"iconSize"`
	IconAnchor     [2]int        `json:"iconAnchor"`
}

// DefaultMapConfig centres on the Fujian coast over AutoNavi tiles.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Center:         latlon.LatLon{Lat: 26.0614, Lon: 119.3061},
		Zoom:           12,
		MinZoom:        8,
		MaxZoom:        18,
		TileURL:        "https://webrd0{s}.is.autonavi.com/appmaptile?lang=zh_cn&size=1&scale=1&style=8&x={x}&y={y}&z={z}",
		TileSubdomains: []string{"1", "2", "3", "4"},
		IconSize:       [2]int{40, 40},
		IconAnchor:     [2]int{20, 20},
	}
}

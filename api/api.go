package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/ship-nav/api/model"
	"github.com/a-bouts/ship-nav/fleet"
	"github.com/a-bouts/ship-nav/latlon"
	"github.com/a-bouts/ship-nav/route"
	"github.com/a-bouts/ship-nav/ship"
)

type server struct {
	fleet     *fleet.Fleet
	mapConfig model.MapConfig
}

func InitServer(f *fleet.Fleet, mapConfig model.MapConfig) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{
		fleet:     f,
		mapConfig: mapConfig,
	}

	api := router.PathPrefix("/nav").Subrouter()
	api.HandleFunc("/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := api.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/map", s.getMapConfig).Methods(http.MethodGet)
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodPost)
	apiV1.HandleFunc("/destination", s.destination).Methods(http.MethodPost)
	apiV1.HandleFunc("/format/{axis}/{value}", s.format).Methods(http.MethodGet)
	apiV1.HandleFunc("/path", s.path).Methods(http.MethodPost)
	apiV1.HandleFunc("/range", s.remainingRange).Methods(http.MethodPost)
	apiV1.HandleFunc("/ships", s.listShips).Methods(http.MethodGet)
	apiV1.HandleFunc("/ships/{id}", s.getShip).Methods(http.MethodGet)
	apiV1.HandleFunc("/ships/{id}", s.putShip).Methods(http.MethodPut)
	apiV1.HandleFunc("/ships/{id}", s.deleteShip).Methods(http.MethodDelete)
	apiV1.HandleFunc("/ships/{id}/icon", s.shipIcon).Methods(http.MethodGet)

	return router
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Unable to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.Error{Error: err.Error()})
}

func decode(w http.ResponseWriter, req *http.Request, v interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid body: %w", err))
		return false
	}
	return true
}

func validate(w http.ResponseWriter, points ...latlon.LatLon) bool {
	for _, p := range points {
		if err := latlon.Validate(p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return false
		}
	}
	return true
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, http.StatusOK, health{Status: "Ok"})
}

func (s *server) getMapConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.mapConfig)
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	var r model.DistanceRequest
	if !decode(w, req, &r) || !validate(w, r.From, r.To) {
		return
	}

	d, b := latlon.DistanceAndBearing(r.From, r.To)
	log.Debugf("Distance %s -> %s : %.3f nm %.1f°", r.From, r.To, d, b)

	writeJSON(w, http.StatusOK, model.DistanceResult{Distance: d, Bearing: b})
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	var r model.DestinationRequest
	if !decode(w, req, &r) || !validate(w, r.From) {
		return
	}

	writeJSON(w, http.StatusOK, latlon.Destination(r.From, r.Bearing, r.Distance))
}

func (s *server) format(w http.ResponseWriter, req *http.Request) {
	axis, err := latlon.ParseAxis(mux.Vars(req)["axis"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	value, err := strconv.ParseFloat(mux.Vars(req)["value"], 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, model.FormatResult{Text: latlon.FormatCoordinate(value, axis)})
}

func (s *server) path(w http.ResponseWriter, req *http.Request) {
	fields := log.Fields{
		"action": "path",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var r model.PathRequest
	if !decode(w, req, &r) {
		return
	}
	for _, wp := range r.Waypoints {
		if !validate(w, wp.LatLon) {
			return
		}
	}

	res := model.PathResult{
		Distance:   route.Distance(r.Waypoints),
		Legs:       route.Legs(r.Waypoints),
		LineString: route.LineString(r.Waypoints),
		SVG:        route.SVGPath(r.Waypoints),
	}
	if res.Legs == nil {
		res.Legs = []route.Leg{}
	}
	if r.Speed > 0 {
		hours := route.TravelTime(res.Distance, r.Speed)
		res.Hours = &hours
	}

	requestLogger.Infof("Path of %d waypoints : %.2f nm", len(r.Waypoints), res.Distance)

	writeJSON(w, http.StatusOK, res)
}

func (s *server) remainingRange(w http.ResponseWriter, req *http.Request) {
	var r model.RangeRequest
	if !decode(w, req, &r) {
		return
	}

	writeJSON(w, http.StatusOK, model.RangeResult{
		Range: route.RemainingRange(r.Battery, r.PowerDraw, r.Speed),
		Hours: route.Endurance(r.Battery),
	})
}

func shipID(w http.ResponseWriter, req *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid ship id: %w", err))
		return 0, false
	}
	return id, true
}

func (s *server) lookup(w http.ResponseWriter, req *http.Request) (ship.Ship, bool) {
	id, ok := shipID(w, req)
	if !ok {
		return ship.Ship{}, false
	}
	sh, ok := s.fleet.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("ship %d not found", id))
		return ship.Ship{}, false
	}
	return sh, true
}

func (s *server) listShips(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, s.fleet.List())
}

func (s *server) getShip(w http.ResponseWriter, req *http.Request) {
	if sh, ok := s.lookup(w, req); ok {
		writeJSON(w, http.StatusOK, sh)
	}
}

func (s *server) putShip(w http.ResponseWriter, req *http.Request) {
	id, ok := shipID(w, req)
	if !ok {
		return
	}

	var sh ship.Ship
	if !decode(w, req, &sh) || !validate(w, sh.Position) {
		return
	}
	if sh.Status == "" {
		sh.Status = ship.Standby
	}
	if !sh.Status.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown status %q", sh.Status))
		return
	}
	sh.ID = id

	s.fleet.Upsert(sh)
	log.WithField("ship", id).Infof("Ship '%s' %s at %s", sh.Name, sh.Status, sh.Position)

	writeJSON(w, http.StatusOK, sh)
}

func (s *server) deleteShip(w http.ResponseWriter, req *http.Request) {
	id, ok := shipID(w, req)
	if !ok {
		return
	}
	if !s.fleet.Remove(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("ship %d not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) shipIcon(w http.ResponseWriter, req *http.Request) {
	sh, ok := s.lookup(w, req)
	if !ok {
		return
	}

	html, err := ship.IconHTML(sh)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}

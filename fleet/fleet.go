// Package fleet keeps the live ship registry served by the API and moves
// ships forward by dead reckoning.
package fleet

import (
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/ship-nav/latlon"
	"github.com/a-bouts/ship-nav/ship"
)

// Notifier delivers low range alerts.
type Notifier interface {
	Send(message string) error
}

type Fleet struct {
	lock     sync.RWMutex
	ships    map[int]ship.Ship
	alerted  map[int]bool
	lowRange float64
	notifier Notifier
}

// New returns an empty fleet. A ship whose remaining range drops below
// lowRange nautical miles raises one alert through n; a nil n or a
// non-positive lowRange disables alerts.
func New(lowRange float64, n Notifier) *Fleet {
	return &Fleet{
		ships:    make(map[int]ship.Ship),
		alerted:  make(map[int]bool),
		lowRange: lowRange,
		notifier: n,
	}
}

func (f *Fleet) Upsert(s ship.Ship) {
	f.lock.Lock()
	f.ships[s.ID] = s
	f.lock.Unlock()
}

func (f *Fleet) Get(id int) (ship.Ship, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	s, ok := f.ships[id]
	return s, ok
}

func (f *Fleet) Remove(id int) bool {
	f.lock.Lock()
	defer f.lock.Unlock()

	_, ok := f.ships[id]
	delete(f.ships, id)
	delete(f.alerted, id)
	return ok
}

// List returns every ship sorted by ID.
func (f *Fleet) List() []ship.Ship {
	f.lock.RLock()
	ships := make([]ship.Ship, 0, len(f.ships))
	for _, s := range f.ships {
		ships = append(ships, s)
	}
	f.lock.RUnlock()

	sort.Slice(ships, func(i, j int) bool {
		return ships[i].ID < ships[j].ID
	})
	return ships
}

// Advance moves every active ship along its heading for the given number
// of hours, then raises alerts for ships running low.
func (f *Fleet) Advance(hours float64) {
	var alerts []string

	f.lock.Lock()
	count := len(f.ships)
	for id, s := range f.ships {
		if s.Status == ship.Active && s.Speed > 0 && hours > 0 {
			p := latlon.Destination(s.Position, s.Heading, s.Speed*hours)
			p.Lon = latlon.WrapLon(p.Lon)
			s.Position = p
			f.ships[id] = s
		}

		if msg, ok := f.checkRange(s); ok {
			alerts = append(alerts, msg)
		}
	}
	f.lock.Unlock()

	log.WithField("ships", count).Debugf("Fleet advanced %.4fh", hours)

	for _, msg := range alerts {
		log.Warn(msg)
		if err := f.notifier.Send(msg); err != nil {
			log.WithError(err).Error("Unable to send alert")
		}
	}
}

// checkRange must be called with the lock held.
func (f *Fleet) checkRange(s ship.Ship) (string, bool) {
	// a stopped ship has no meaningful range
	if f.notifier == nil || f.lowRange <= 0 || s.Status != ship.Active || s.Speed <= 0 {
		return "", false
	}

	r := s.RemainingRange()
	if r >= f.lowRange {
		delete(f.alerted, s.ID)
		return "", false
	}
	if f.alerted[s.ID] {
		return "", false
	}
	f.alerted[s.ID] = true

	return fmt.Sprintf("%s (#%d) low range: %.1f nm left at %.1f kn, battery %.0f%%, at %s",
		s.Name, s.ID, r, s.Speed, s.Battery, s.Position), true
}

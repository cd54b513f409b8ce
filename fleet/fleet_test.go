package fleet

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-bouts/ship-nav/latlon"
	"github.com/a-bouts/ship-nav/ship"
)

type recorder struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recorder) Send(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return r.err
}

var home = latlon.LatLon{Lat: 26.0614, Lon: 119.3061}

func TestUpsertGetRemove(t *testing.T) {
	f := New(0, nil)

	_, ok := f.Get(1)
	assert.False(t, ok)

	f.Upsert(ship.Ship{ID: 2, Name: "two", Status: ship.Standby})
	f.Upsert(ship.Ship{ID: 1, Name: "one", Status: ship.Active})
	f.Upsert(ship.Ship{ID: 1, Name: "uno", Status: ship.Active})

	s, ok := f.Get(1)
	require.True(t, ok)
	assert.Equal(t, "uno", s.Name)

	list := f.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)

	assert.True(t, f.Remove(2))
	assert.False(t, f.Remove(2))
	assert.Len(t, f.List(), 1)
}

func TestAdvanceDeadReckoning(t *testing.T) {
	f := New(0, nil)
	f.Upsert(ship.Ship{ID: 1, Position: home, Heading: 90, Speed: 10, Status: ship.Active})
	f.Upsert(ship.Ship{ID: 2, Position: home, Heading: 90, Speed: 10, Status: ship.Standby})
	f.Upsert(ship.Ship{ID: 3, Position: home, Heading: 90, Status: ship.Active})

	f.Advance(0.5)

	moved, _ := f.Get(1)
	assert.InEpsilon(t, 5.0, latlon.Distance(home, moved.Position), 1e-6)
	assert.InDelta(t, 90, latlon.Bearing(home, moved.Position), 1e-3)

	standby, _ := f.Get(2)
	assert.Equal(t, home, standby.Position)

	stopped, _ := f.Get(3)
	assert.Equal(t, home, stopped.Position)
}

func TestAdvanceWrapsLongitude(t *testing.T) {
	f := New(0, nil)
	f.Upsert(ship.Ship{ID: 1, Position: latlon.LatLon{Lat: 0, Lon: 179.99}, Heading: 90, Speed: 20, Status: ship.Active})

	f.Advance(1)

	s, _ := f.Get(1)
	assert.True(t, s.Position.Lon < 0, "lon %v", s.Position.Lon)
	assert.NoError(t, latlon.Validate(s.Position))
}

func TestLowRangeAlertOnce(t *testing.T) {
	r := &recorder{}
	f := New(30, r)
	// 20% at 10 kn is 20 nm
	f.Upsert(ship.Ship{ID: 7, Name: "Min Jiang", Position: home, Speed: 10, Battery: 20, Status: ship.Active})
	f.Upsert(ship.Ship{ID: 8, Name: "Plenty", Position: home, Speed: 10, Battery: 90, Status: ship.Active})

	f.Advance(0.1)
	f.Advance(0.1)

	require.Len(t, r.messages, 1)
	assert.Contains(t, r.messages[0], "Min Jiang (#7)")
	assert.Contains(t, r.messages[0], "20.0 nm")

	// recharge re-arms the alert
	f.Upsert(ship.Ship{ID: 7, Name: "Min Jiang", Position: home, Speed: 10, Battery: 100, Status: ship.Active})
	f.Advance(0.1)
	f.Upsert(ship.Ship{ID: 7, Name: "Min Jiang", Position: home, Speed: 10, Battery: 10, Status: ship.Active})
	f.Advance(0.1)

	assert.Len(t, r.messages, 2)
}

func TestLowRangeIgnoresIdleShips(t *testing.T) {
	r := &recorder{}
	f := New(30, r)
	f.Upsert(ship.Ship{ID: 1, Position: home, Battery: 5, Status: ship.Active})
	f.Upsert(ship.Ship{ID: 2, Position: home, Speed: 10, Battery: 5, Status: ship.Offline})

	f.Advance(1)

	assert.Empty(t, r.messages)
}

func TestNotifierErrorDoesNotStop(t *testing.T) {
	r := &recorder{err: errors.New("offline")}
	f := New(30, r)
	f.Upsert(ship.Ship{ID: 1, Position: home, Speed: 10, Battery: 5, Status: ship.Active})
	f.Upsert(ship.Ship{ID: 2, Position: home, Speed: 10, Battery: 5, Status: ship.Active})

	f.Advance(1)

	assert.Len(t, r.messages, 2)
}

func TestConcurrentAccess(t *testing.T) {
	f := New(0, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.Upsert(ship.Ship{ID: id, Position: home, Heading: float64(j), Speed: 5, Status: ship.Active})
				f.Advance(0.01)
				f.List()
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, f.List(), 8)
}

package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// fixedSource makes every rand draw deterministic and position-independent:
// Float64 always returns ~0.5 and Intn(2) always returns 1, so tick
// arithmetic can be reasoned about exactly.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (s fixedSource) Seed(int64)   {}

const halfish = fixedSource(1<<62 | 1<<32)

var testRoutes = []Polyline{
	{Name: "target", Points: []Waypoint{{39.0, 32.0}, {39.5, 32.5}, {40.0, 33.0}}},
	{Name: "alternate", Points: []Waypoint{{41.0, 29.0}, {40.0, 30.0}}},
}

func newTestSim(st *store.Store) *Simulator {
	return New(st,
		WithRoutes(testRoutes),
		WithRand(rand.New(halfish)),
		WithClock(func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }),
	)
}

func addTransitVehicle(st *store.Store) int {
	id := st.NextID()
	st.Vehicles = append(st.Vehicles, models.Vehicle{
		ID:     id,
		Plate:  "34 TST 001",
		Status: models.VehicleStatusTransit,
	})
	return id
}

// With a constant advance of ~0.115 per tick, the 3-waypoint polyline
// (two segments) is exhausted after 18 advancing ticks: nine per segment.
// Tick 1 initializes, tick 19 recycles onto the alternate route, tick 20
// advances along it. Twenty ticks therefore produce exactly twenty
// samples and exactly one route change.
func TestTwentyTicksRecycleAndHistory(t *testing.T) {
	st := store.New()
	id := addTransitVehicle(st)
	s := newTestSim(st)

	for i := 0; i < 20; i++ {
		s.Tick()
	}

	samples := 0
	for _, l := range st.Locations {
		if l.VehicleID == id {
			samples++
		}
	}
	assert.Equal(t, 20, samples)

	p := s.progress[id]
	require.NotNil(t, p)
	assert.Equal(t, 1, p.route, "vehicle must have been recycled onto the other polyline")
	assert.Equal(t, 0, p.segment)

	v := st.Vehicles[0]
	assert.False(t, math.IsNaN(v.Latitude))
	assert.False(t, math.IsNaN(v.Longitude))
	// Position stays inside the catalogue's bounding box plus noise.
	assert.InDelta(t, 40.0, v.Latitude, 1.1)
	assert.InDelta(t, 31.0, v.Longitude, 2.1)
}

func TestInitialTickSnapsToFirstWaypoint(t *testing.T) {
	st := store.New()
	id := addTransitVehicle(st)
	s := newTestSim(st)

	s.Tick()

	v := st.Vehicles[0]
	assert.Equal(t, testRoutes[0].Points[0].Lat, v.Latitude)
	assert.Equal(t, testRoutes[0].Points[0].Lng, v.Longitude)
	require.Len(t, st.Locations, 1)
	assert.Equal(t, id, st.Locations[0].VehicleID)
	assert.GreaterOrEqual(t, st.Locations[0].Speed, 60.0)
	assert.Less(t, st.Locations[0].Speed, 100.0)
	assert.GreaterOrEqual(t, st.Locations[0].Heading, 0.0)
	assert.Less(t, st.Locations[0].Heading, 360.0)
}

func TestRoundRobinInitialAssignment(t *testing.T) {
	st := store.New()
	ids := []int{addTransitVehicle(st), addTransitVehicle(st), addTransitVehicle(st)}
	s := newTestSim(st)

	s.Tick()

	assert.Equal(t, 0, s.progress[ids[0]].route)
	assert.Equal(t, 1, s.progress[ids[1]].route)
	assert.Equal(t, 0, s.progress[ids[2]].route)
}

func TestOnlyTransitVehiclesAdvance(t *testing.T) {
	st := store.New()
	idleID := st.NextID()
	st.Vehicles = append(st.Vehicles, models.Vehicle{
		ID: idleID, Status: models.VehicleStatusIdle, Latitude: 10, Longitude: 20,
	})
	s := newTestSim(st)

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	assert.Empty(t, st.Locations)
	assert.Nil(t, s.progress[idleID])
	assert.Equal(t, 10.0, st.Vehicles[0].Latitude)
	assert.Equal(t, 20.0, st.Vehicles[0].Longitude)
}

func TestProgressRetainedAcrossTransitGap(t *testing.T) {
	st := store.New()
	id := addTransitVehicle(st)
	s := newTestSim(st)

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	before := *s.progress[id]

	st.Vehicles[0].Status = models.VehicleStatusIdle
	s.Tick()
	assert.Len(t, st.Locations, 3, "no samples while out of TRANSIT")
	assert.Equal(t, before, *s.progress[id], "progress kept as-is while out of TRANSIT")

	st.Vehicles[0].Status = models.VehicleStatusTransit
	s.Tick()
	after := *s.progress[id]
	assert.Equal(t, before.route, after.route)
	assert.Greater(t, after.t, before.t, "stale progress resumes, not resets")
}

func TestLocationHistoryRetentionBound(t *testing.T) {
	st := store.New()
	id := addTransitVehicle(st)
	for i := 0; i < 5000; i++ {
		st.Locations = append(st.Locations, models.LocationSample{
			ID: st.NextID(), VehicleID: id,
		})
	}
	firstOld := st.Locations[0].ID
	s := newTestSim(st)

	s.Tick()

	assert.Len(t, st.Locations, 5000)
	assert.NotEqual(t, firstOld, st.Locations[0].ID, "oldest sample evicted")
	newest := st.Locations[len(st.Locations)-1]
	assert.Equal(t, id, newest.VehicleID)
	assert.False(t, newest.RecordedAt.IsZero(), "newest sample is the fresh one")
}

func TestCorruptProgressIsLazilyReinitialized(t *testing.T) {
	st := store.New()
	id := addTransitVehicle(st)
	s := newTestSim(st)
	s.Tick()

	// Simulate progress left over from a route catalogue that no longer
	// matches: a segment index past the end of the polyline.
	s.progress[id].segment = 99
	s.Tick()

	p := s.progress[id]
	assert.Less(t, p.route, len(testRoutes))
	assert.Equal(t, 0, p.segment)
	assert.False(t, math.IsNaN(st.Vehicles[0].Latitude))
}

func TestStartStop(t *testing.T) {
	st := store.New()
	addTransitVehicle(st)
	s := New(st,
		WithRoutes(testRoutes),
		WithRand(rand.New(halfish)),
		WithInterval(5*time.Millisecond),
	)

	s.Start()
	assert.True(t, s.Running())
	s.Start() // idempotent

	require.Eventually(t, func() bool {
		st.RLock()
		defer st.RUnlock()
		return len(st.Locations) > 0
	}, time.Second, time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())
	s.Stop() // idempotent

	st.RLock()
	count := len(st.Locations)
	st.RUnlock()
	time.Sleep(30 * time.Millisecond)
	st.RLock()
	defer st.RUnlock()
	assert.Equal(t, count, len(st.Locations), "no ticks after Stop")
}

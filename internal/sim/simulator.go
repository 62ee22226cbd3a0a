// Package sim advances in-transit vehicles along predefined polylines on a
// fixed tick, feeding the shared fixture store with fresh coordinates and
// location history.
package sim

import (
	"math"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

const (
	// DefaultInterval is the tick cadence.
	DefaultInterval = 3 * time.Second

	// maxLocationSamples bounds the global location history; oldest
	// samples are evicted past this ceiling.
	maxLocationSamples = 5000

	// Per-tick advance fraction along the current segment: [0.08, 0.15).
	advanceMin  = 0.08
	advanceSpan = 0.07

	// Uniform coordinate noise applied per axis: [-0.0025, 0.0025).
	noiseSpan = 0.005
)

// Publisher receives every location sample the simulator produces.
// Implementations must not block the tick.
type Publisher interface {
	Publish(sample models.LocationSample)
}

// progress tracks how far a vehicle has travelled: which polyline, which
// segment of it, and the interpolation fraction t in [0,1) along that
// segment.
type progress struct {
	route   int
	segment int
	t       float64
}

// Simulator owns the per-vehicle progress map and the tick loop. All store
// mutation happens inside Tick under the store's write lock, so handler
// reads never observe a half-advanced tick.
type Simulator struct {
	store    *store.Store
	routes   []Polyline
	rng      *rand.Rand
	now      func() time.Time
	interval time.Duration
	pub      Publisher

	progress map[int]*progress
	assigned int  // round-robin cursor for initial assignments
	ticked   bool // flips after the first tick; later joiners get random routes

	mu      sync.Mutex
	stop    chan struct{}
	running bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRoutes replaces the polyline catalogue.
func WithRoutes(routes []Polyline) Option {
	return func(s *Simulator) { s.routes = routes }
}

// WithRand injects the randomness source used for advance, noise, speed,
// heading and route assignment.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithClock injects the wall-clock source stamped onto samples.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// WithInterval overrides the tick cadence.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) { s.interval = d }
}

// WithPublisher mirrors every sample to the given publisher.
func WithPublisher(p Publisher) Option {
	return func(s *Simulator) { s.pub = p }
}

// New builds a simulator over the shared store.
func New(st *store.Store, opts ...Option) *Simulator {
	s := &Simulator{
		store:    st,
		routes:   Catalogue,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		interval: DefaultInterval,
		progress: make(map[int]*progress),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the tick loop. Ticks are independent: there is no
// catch-up if one overruns the interval. Starting twice is a no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	go s.loop(s.stop)
	log.WithFields(log.Fields{
		"interval": s.interval,
		"routes":   len(s.routes),
	}).Info("route simulator started")
}

// Stop halts all future ticks immediately. Safe to call repeatedly.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	log.Info("route simulator stopped")
}

// Running reports whether the tick loop is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Simulator) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances every TRANSIT vehicle once and trims the location history
// to the retention bound. Exported so tests can drive the simulator
// without the ticker.
func (s *Simulator) Tick() {
	now := s.now()
	var published []models.LocationSample

	s.store.Lock()
	for i := range s.store.Vehicles {
		v := &s.store.Vehicles[i]
		if v.Status != models.VehicleStatusTransit {
			// Progress is retained as-is for vehicles that leave
			// TRANSIT and reused if they come back.
			continue
		}
		p, ok := s.progress[v.ID]
		if !ok {
			p = s.assign()
			s.progress[v.ID] = p
			first := s.routes[p.route].Points[0]
			v.Latitude = first.Lat
			v.Longitude = first.Lng
		} else {
			s.advance(v, p)
		}
		sample := models.LocationSample{
			ID:         s.store.NextID(),
			VehicleID:  v.ID,
			Latitude:   v.Latitude,
			Longitude:  v.Longitude,
			Speed:      60 + s.rng.Float64()*40,
			Heading:    s.rng.Float64() * 360,
			RecordedAt: now,
		}
		s.store.Locations = append(s.store.Locations, sample)
		published = append(published, sample)
	}
	if excess := len(s.store.Locations) - maxLocationSamples; excess > 0 {
		s.store.Locations = append([]models.LocationSample(nil), s.store.Locations[excess:]...)
	}
	s.ticked = true
	s.store.Unlock()

	if s.pub != nil {
		for _, sample := range published {
			s.pub.Publish(sample)
		}
	}
}

// assign picks a polyline for a vehicle that has no progress yet:
// round-robin during the very first tick, random afterwards.
func (s *Simulator) assign() *progress {
	var route int
	if !s.ticked {
		route = s.assigned % len(s.routes)
		s.assigned++
	} else {
		route = s.rng.Intn(len(s.routes))
	}
	return &progress{route: route}
}

// advance moves one vehicle along its polyline by a single tick. When the
// end of the polyline is reached the vehicle is recycled onto a new random
// route and its position holds until the next tick.
func (s *Simulator) advance(v *models.Vehicle, p *progress) {
	// Stale or corrupt progress (route removed, segment past the end
	// from an earlier TRANSIT stint) is lazily reinitialized, never an
	// error.
	if p.route >= len(s.routes) || p.segment >= len(s.routes[p.route].Points)-1 {
		s.recycle(p)
		return
	}

	p.t += advanceMin + s.rng.Float64()*advanceSpan
	if p.t >= 1 {
		p.segment++
		p.t = 0
		if p.segment >= len(s.routes[p.route].Points)-1 {
			s.recycle(p)
			return
		}
	}

	line := s.routes[p.route]
	a := line.Points[p.segment]
	b := line.Points[p.segment+1]
	v.Latitude = round6(a.Lat + (b.Lat-a.Lat)*p.t + s.noise())
	v.Longitude = round6(a.Lng + (b.Lng-a.Lng)*p.t + s.noise())
}

func (s *Simulator) recycle(p *progress) {
	p.route = s.rng.Intn(len(s.routes))
	p.segment = 0
	p.t = 0
}

func (s *Simulator) noise() float64 {
	return s.rng.Float64()*noiseSpan - noiseSpan/2
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

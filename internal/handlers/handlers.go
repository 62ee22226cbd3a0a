// Package handlers answers every API request against the shared fixture
// store, shaped exactly like a real REST backend: pagination envelopes,
// 404 detail bodies, 201/204 status codes and an artificial network-like
// latency before each response.
package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

// Config tunes the API plumbing. Zero latency bounds disable the
// artificial delay, which tests rely on.
type Config struct {
	LatencyMin time.Duration
	LatencyMax time.Duration
	Now        func() time.Time
	NewToken   func() string
	SimStatus  func() bool
	Rand       *rand.Rand
}

// API holds every handler group. One instance serves all resources.
type API struct {
	store      *store.Store
	auth       *auth.Service
	log        *logrus.Logger
	now        func() time.Time
	newToken   func() string
	simStatus  func() bool
	latencyMin time.Duration
	latencyMax time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New wires the handler layer to the store and auth service.
func New(st *store.Store, authSvc *auth.Service, log *logrus.Logger, cfg Config) *API {
	a := &API{
		store:      st,
		auth:       authSvc,
		log:        log,
		now:        cfg.Now,
		newToken:   cfg.NewToken,
		simStatus:  cfg.SimStatus,
		latencyMin: cfg.LatencyMin,
		latencyMax: cfg.LatencyMax,
		rng:        cfg.Rand,
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newToken == nil {
		a.newToken = uuid.NewString
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// randFloat64 draws from the injected source. Handlers run concurrently
// and *rand.Rand is not safe for concurrent use, so a mutex serializes
// the draws.
func (a *API) randFloat64() float64 {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return a.rng.Float64()
}

func (a *API) randInt63n(n int64) int64 {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return a.rng.Int63n(n)
}

// delay sleeps a uniform random duration within the configured latency
// bounds, emulating a network round trip for the consuming UI's
// loading-state logic. It runs before the store is touched so the lock is
// never held across the sleep.
func (a *API) delay() {
	if a.latencyMax <= a.latencyMin {
		if a.latencyMin > 0 {
			time.Sleep(a.latencyMin)
		}
		return
	}
	span := int64(a.latencyMax - a.latencyMin)
	time.Sleep(a.latencyMin + time.Duration(a.randInt63n(span)))
}

func (a *API) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			a.log.WithError(err).Error("failed to encode response")
		}
	}
}

// notFound writes the 404 error shape shared by every handler.
func (a *API) notFound(w http.ResponseWriter, detail string) {
	a.writeJSON(w, http.StatusNotFound, map[string]string{"detail": detail})
}

// decode reads a JSON body permissively: malformed or missing input leaves
// the destination at its zero value instead of erroring, so a bad request
// produces a defaulted record rather than a rejection.
func decode(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	defer r.Body.Close()
	_ = json.NewDecoder(r.Body).Decode(dst)
}

// idVar reads the {id} path variable. The router constrains it to digits,
// so parse failures cannot occur in practice.
func idVar(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

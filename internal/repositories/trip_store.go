package repositories

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"

	"triptalk/internal/models/request_models"
	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
	"triptalk/pkg/utils"
)

// DedupScanWarnThreshold is the store size past which the linear dedup scan is
// reported in the logs.
const DedupScanWarnThreshold = 1000

type TripStoreInterface interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	FindExisting(req request_models.TravelInput) (string, bool)
	Upsert(ctx context.Context, id string, plan trip_models.TripPlan) error
	Delete(ctx context.Context, id string) error
	Get(id string) (trip_models.TripPlan, error)
	List() []trip_models.TripPlan
	Len() int
}

// TripStore is an insertion-ordered map of trips over a Persistence backend.
// Every mutation rewrites the full snapshot.
type TripStore struct {
	mu          sync.RWMutex
	order       []string
	trips       map[string]trip_models.TripPlan
	persistence Persistence
	log         *logger.Logger
	warned      atomic.Bool
}

func NewTripStore(persistence Persistence, log *logger.Logger) *TripStore {
	return &TripStore{
		trips:       make(map[string]trip_models.TripPlan),
		persistence: persistence,
		log:         log,
	}
}

// Load replaces the in-memory store with the persisted snapshot. A missing or
// unreadable snapshot leaves the store empty and is not an error.
func (s *TripStore) Load(ctx context.Context) error {
	trips, err := s.persistence.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.trips = make(map[string]trip_models.TripPlan)
	if err != nil {
		s.log.Warn("trip store unreadable, starting empty", "error", err)
		return nil
	}

	for _, plan := range trips {
		if plan.ID == "" {
			s.log.Warn("skipping stored trip without id", "destination", plan.Destination)
			continue
		}
		if _, dup := s.trips[plan.ID]; !dup {
			s.order = append(s.order, plan.ID)
		}
		s.trips[plan.ID] = plan
	}
	s.log.Info("trip store loaded", "count", len(s.order))
	return nil
}

func (s *TripStore) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked(ctx)
}

func (s *TripStore) saveLocked(ctx context.Context) error {
	if err := s.persistence.Save(ctx, s.snapshotLocked()); err != nil {
		s.log.Error("saving trip store", "error", err)
		return fmt.Errorf("%w: %v", utils.ErrStorageFailed, err)
	}
	return nil
}

func (s *TripStore) snapshotLocked() []trip_models.TripPlan {
	out := make([]trip_models.TripPlan, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.trips[id])
	}
	return out
}

// FindExisting returns the id of the first stored trip, in insertion order,
// whose dedup key equals the request's. Styles compare as sets.
func (s *TripStore) FindExisting(req request_models.TravelInput) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) > DedupScanWarnThreshold && s.warned.CompareAndSwap(false, true) {
		s.log.Warn("dedup scan over a large store", "count", len(s.order), "threshold", DedupScanWarnThreshold)
	}

	for _, id := range s.order {
		if SameTrip(s.trips[id], req) {
			return id, true
		}
	}
	return "", false
}

// SameTrip reports whether plan and req share the dedup key.
func SameTrip(plan trip_models.TripPlan, req request_models.TravelInput) bool {
	return plan.Destination == req.Destination &&
		plan.Departure == req.Departure &&
		plan.StartDate == req.StartDate &&
		plan.EndDate == req.EndDate &&
		plan.Companions == req.Companions &&
		plan.Budget == req.Budget &&
		SameStyles(plan.TravelStyles, req.Style)
}

// SameStyles compares two style lists as sets, ignoring order and duplicates.
func SameStyles(a, b []trip_models.TravelStyle) bool {
	ua, ub := lo.Uniq(a), lo.Uniq(b)
	return len(ua) == len(ub) && lo.Every(ua, ub)
}

// Upsert stores plan under id, keeping the position of an existing entry, and
// persists the store. The in-memory change is kept when saving fails.
func (s *TripStore) Upsert(ctx context.Context, id string, plan trip_models.TripPlan) error {
	if id == "" {
		return fmt.Errorf("%w: empty trip id", utils.ErrInvalidInput)
	}
	plan.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[id]; !ok {
		s.order = append(s.order, id)
	}
	s.trips[id] = plan
	return s.saveLocked(ctx)
}

func (s *TripStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[id]; !ok {
		return &utils.TripNotFoundError{ID: id}
	}
	delete(s.trips, id)
	s.order = lo.Without(s.order, id)
	return s.saveLocked(ctx)
}

func (s *TripStore) Get(id string) (trip_models.TripPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.trips[id]
	if !ok {
		return trip_models.TripPlan{}, &utils.TripNotFoundError{ID: id}
	}
	return plan, nil
}

// List returns every trip in insertion order.
func (s *TripStore) List() []trip_models.TripPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *TripStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

package repositories

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
)

var (
	tripsBucket = []byte("trips")
	orderBucket = []byte("order")
)

// boltPersistence stores one JSON value per trip id in "trips" and the store
// order as position -> id in "order".
type boltPersistence struct {
	db  *bolt.DB
	log *logger.Logger
}

func NewBoltPersistence(path string, log *logger.Logger) (Persistence, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	return &boltPersistence{db: db, log: log}, nil
}

func (p *boltPersistence) Load(ctx context.Context) ([]trip_models.TripPlan, error) {
	var out []trip_models.TripPlan
	err := p.db.View(func(tx *bolt.Tx) error {
		order := tx.Bucket(orderBucket)
		trips := tx.Bucket(tripsBucket)
		if order == nil || trips == nil {
			return nil
		}
		return order.ForEach(func(_, id []byte) error {
			v := trips.Get(id)
			if len(v) == 0 {
				return nil
			}
			var plan trip_models.TripPlan
			if err := json.Unmarshal(v, &plan); err != nil {
				// Skip malformed entries instead of failing the whole load
				p.log.Warn("skipping malformed bolt entry", "id", string(id), "error", err)
				return nil
			}
			out = append(out, plan)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save recreates both buckets to reflect the given snapshot exactly.
func (p *boltPersistence) Save(ctx context.Context, trips []trip_models.TripPlan) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{tripsBucket, orderBucket} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return err
				}
			}
		}
		tb, err := tx.CreateBucket(tripsBucket)
		if err != nil {
			return err
		}
		ob, err := tx.CreateBucket(orderBucket)
		if err != nil {
			return err
		}

		for i, plan := range trips {
			enc, err := json.Marshal(plan)
			if err != nil {
				return err
			}
			if err := tb.Put([]byte(plan.ID), enc); err != nil {
				return err
			}
			if err := ob.Put(positionKey(i), []byte(plan.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *boltPersistence) Close() error {
	return p.db.Close()
}

// positionKey is big-endian so bolt's byte ordering matches store order.
func positionKey(i int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(i))
	return k
}

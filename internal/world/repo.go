package world

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Repository persists the global trend designation
type Repository interface {
	GetTrend(ctx context.Context) (Trend, bool, error)
	SetTrend(ctx context.Context, t Trend) error
	ClearTrend(ctx context.Context) error
}

type MemoryRepo struct {
	mu    sync.RWMutex
	trend Trend
	set   bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) GetTrend(ctx context.Context) (Trend, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.trend, r.set, nil
}

func (r *MemoryRepo) SetTrend(ctx context.Context, t Trend) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trend = t
	r.set = true
	return nil
}

func (r *MemoryRepo) ClearTrend(ctx context.Context) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trend = Trend{}
	r.set = false
	return nil
}

var (
	bucketWorld = []byte("world")
	keyTrend    = []byte("trend")
)

// BoltRepo stores world state in a bbolt bucket, sharing the database file
// with the player store
type BoltRepo struct {
	db *bolt.DB
}

func NewBoltRepo(path string) (*BoltRepo, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open world store: %w", err)
	}
	repo, err := NewBoltRepoFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// NewBoltRepoFromDB wraps an existing handle; the caller keeps ownership
func NewBoltRepoFromDB(db *bolt.DB) (*BoltRepo, error) {
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWorld)
		return err
	}); err != nil {
		return nil, fmt.Errorf("init world store: %w", err)
	}
	return &BoltRepo{db: db}, nil
}

func (r *BoltRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *BoltRepo) GetTrend(ctx context.Context) (Trend, bool, error) {
	_ = ctx

	var (
		trend Trend
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketWorld).Get(keyTrend)
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &trend); err != nil {
			return fmt.Errorf("decode trend: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return Trend{}, false, err
	}
	return trend, found, nil
}

func (r *BoltRepo) SetTrend(ctx context.Context, t Trend) error {
	_ = ctx

	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode trend: %w", err)
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWorld).Put(keyTrend, raw)
	})
}

func (r *BoltRepo) ClearTrend(ctx context.Context) error {
	_ = ctx

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWorld).Delete(keyTrend)
	})
}

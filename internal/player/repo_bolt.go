package player

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketPlayers = []byte("players")

// BoltRepo persists players as JSON records in a bbolt bucket. The version
// check happens inside the update transaction, so a stale save fails with
// ErrConflict instead of clobbering a newer write.
type BoltRepo struct {
	db *bolt.DB
}

// NewBoltRepo opens (and migrates) the player store at path. The returned
// repo owns the database handle until Close.
func NewBoltRepo(path string) (*BoltRepo, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open player store: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPlayers)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init player store: %w", err)
	}
	return &BoltRepo{db: db}, nil
}

// NewBoltRepoFromDB wraps an existing database handle. The caller keeps
// ownership of the handle.
func NewBoltRepoFromDB(db *bolt.DB) (*BoltRepo, error) {
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPlayers)
		return err
	}); err != nil {
		return nil, fmt.Errorf("init player store: %w", err)
	}
	return &BoltRepo{db: db}, nil
}

// Close releases the underlying database handle
func (r *BoltRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *BoltRepo) Get(ctx context.Context, id string) (*Player, error) {
	_ = ctx

	var p *Player
	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketPlayers).Get([]byte(id))
		if raw == nil {
			return ErrNotFound
		}
		var err error
		p, err = decodePlayer(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *BoltRepo) Save(ctx context.Context, p *Player) error {
	_ = ctx

	next := p.Version + 1
	err := r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketPlayers)
		if raw := bucket.Get([]byte(p.ID)); raw != nil {
			var stored struct {
				Version uint64 `json:"version"`
			}
			if err := json.Unmarshal(raw, &stored); err != nil {
				return fmt.Errorf("decode stored player %s: %w", p.ID, err)
			}
			if stored.Version != p.Version {
				return fmt.Errorf("save player %s: %w", p.ID, ErrConflict)
			}
		}

		clone := *p
		clone.Version = next
		encoded, err := json.Marshal(&clone)
		if err != nil {
			return fmt.Errorf("encode player %s: %w", p.ID, err)
		}
		return bucket.Put([]byte(p.ID), encoded)
	})
	if err != nil {
		return err
	}
	p.Version = next
	return nil
}

func (r *BoltRepo) Delete(ctx context.Context, id string) error {
	_ = ctx

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlayers).Delete([]byte(id))
	})
}

func (r *BoltRepo) List(ctx context.Context) ([]string, error) {
	_ = ctx

	var out []string
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPlayers).ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

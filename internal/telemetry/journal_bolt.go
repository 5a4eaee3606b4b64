package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketJournal = []byte("journal")

// BoltJournal persists the journal in a bbolt bucket keyed by
// playerID/unixNano/entryID so per-player scans stay ordered.
type BoltJournal struct {
	db     *bolt.DB
	ownsDB bool
}

func NewBoltJournal(path string) (*BoltJournal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	j, err := NewBoltJournalFromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	j.ownsDB = true
	return j, nil
}

func NewBoltJournalFromDB(db *bolt.DB) (*BoltJournal, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketJournal)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("init journal bucket: %w", err)
	}
	return &BoltJournal{db: db}, nil
}

func (j *BoltJournal) Close() error {
	if j.ownsDB {
		return j.db.Close()
	}
	return nil
}

func entryKey(e Entry) []byte {
	return []byte(fmt.Sprintf("%s/%020d/%s", e.PlayerID, e.CreatedAt.UnixNano(), e.ID))
}

func (j *BoltJournal) Record(e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketJournal).Put(entryKey(e), raw)
	})
}

func (j *BoltJournal) Entries(playerID string, since time.Time) ([]Entry, error) {
	var out []Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketJournal).Cursor()
		var prefix []byte
		if playerID != "" {
			prefix = []byte(playerID + "/")
		}
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decode journal entry: %w", err)
			}
			if e.CreatedAt.Before(since) {
				continue
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

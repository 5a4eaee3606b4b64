package player

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo keeps players in a map, cloning on the way in and out so
// callers never share aggregate memory
type MemoryRepo struct {
	mu      sync.RWMutex
	players map[string][]byte
	version map[string]uint64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		players: make(map[string][]byte),
		version: make(map[string]uint64),
	}
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (*Player, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return decodePlayer(raw)
}

func (r *MemoryRepo) Save(ctx context.Context, p *Player) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.version[p.ID]; ok && stored != p.Version {
		return fmt.Errorf("save player %s: %w", p.ID, ErrConflict)
	}

	next := p.Version + 1
	clone := *p
	clone.Version = next
	raw, err := json.Marshal(&clone)
	if err != nil {
		return fmt.Errorf("encode player %s: %w", p.ID, err)
	}

	r.players[p.ID] = raw
	r.version[p.ID] = next
	p.Version = next
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.players, id)
	delete(r.version, id)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]string, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.players))
	for id := range r.players {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func decodePlayer(raw []byte) (*Player, error) {
	var p Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	p.normalize()
	return &p, nil
}

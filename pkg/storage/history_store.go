package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

type HistoryEntry struct {
	ID            string
	BuildingID    string
	From          string
	To            string
	Algorithm     string
	TotalDistance float64
	TotalTime     float64
	NumSteps      int
	CreatedAt     time.Time
}

func NewHistoryEntry(buildingID, from, to, algorithm string, totalDistance, totalTime float64, numSteps int) HistoryEntry {
	return HistoryEntry{
		ID:            uuid.NewString(),
		BuildingID:    buildingID,
		From:          from,
		To:            to,
		Algorithm:     algorithm,
		TotalDistance: totalDistance,
		TotalTime:     totalTime,
		NumSteps:      numSteps,
		CreatedAt:     time.Now().UTC(),
	}
}

// HistoryStore recent navigation history per user. the least recently active users are evicted
// once more than maxUsers are tracked, and each user keeps at most perUser entries, newest first.
type HistoryStore struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, []HistoryEntry]
	perUser int
}

func NewHistoryStore(maxUsers, perUser int) (*HistoryStore, error) {
	cache, err := lru.New[string, []HistoryEntry](maxUsers)
	if err != nil {
		return nil, err
	}
	if perUser <= 0 {
		perUser = 1
	}
	return &HistoryStore{
		cache:   cache,
		perUser: perUser,
	}, nil
}

func (hs *HistoryStore) Record(ctx context.Context, userID string, entry HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	prev, _ := hs.cache.Get(userID)
	n := len(prev) + 1
	if n > hs.perUser {
		n = hs.perUser
	}
	entries := make([]HistoryEntry, 0, n)
	entries = append(entries, entry)
	entries = append(entries, prev[:n-1]...)
	hs.cache.Add(userID, entries)
	return nil
}

// Recent entries of userID, newest first. a copy, safe to modify.
func (hs *HistoryStore) Recent(userID string) []HistoryEntry {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	entries, ok := hs.cache.Get(userID)
	if !ok {
		return []HistoryEntry{}
	}
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

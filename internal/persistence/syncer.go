package persistence

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"finledger/internal/ledger"
	"finledger/internal/logger"
)

// Syncer binds a KV to an Entity Store. It saves exactly the collections a
// mutation touched and reloads the whole snapshot when another writer
// changes a collection key (last writer wins, no merge).
type Syncer struct {
	kv    KV
	store *ledger.Store

	// saveMu serializes saves so the last save always carries the newest state.
	saveMu sync.Mutex

	mu       sync.Mutex
	ctx      context.Context
	lastSeen map[string][]byte
	locked   map[ledger.Collection]bool
	unsub    func()
}

// NewSyncer creates a Syncer. Call Load, then Start.
func NewSyncer(kv KV, store *ledger.Store) *Syncer {
	return &Syncer{
		kv:       kv,
		store:    store,
		ctx:      context.Background(),
		lastSeen: make(map[string][]byte),
		locked:   make(map[ledger.Collection]bool),
	}
}

// Load reads the snapshot from storage into the store and rewrites stale
// collections at their current version under the canonical key.
func (s *Syncer) Load(ctx context.Context) {
	res := Load(ctx, s.kv)

	s.mu.Lock()
	s.lastSeen = res.Raw
	s.locked = make(map[ledger.Collection]bool, len(res.Locked))
	for _, coll := range res.Locked {
		s.locked[coll] = true
	}
	s.mu.Unlock()

	s.store.Replace(res.Snapshot)

	if len(res.Stale) > 0 {
		logger.Get().Infow("Rewriting migrated collections", "collections", res.Stale)
		s.save(ctx, res.Stale)
	}
}

// Start subscribes to store mutations. Saves use ctx.
func (s *Syncer) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	unsubscribe := s.store.Subscribe(func(c ledger.Change) {
		if c.Reloaded {
			return
		}
		s.save(s.context(), c.Collections)
	})

	s.mu.Lock()
	s.unsub = unsubscribe
	s.mu.Unlock()
}

// Stop removes the store subscription.
func (s *Syncer) Stop() {
	s.mu.Lock()
	unsubscribe := s.unsub
	s.unsub = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// OnExternalChange handles a write notification from the KV. Echoes of this
// Syncer's own saves and writes to unrelated keys are ignored; anything else
// reloads the full snapshot.
func (s *Syncer) OnExternalChange(key string, value []byte) {
	if !isCollectionKey(key) {
		return
	}

	s.mu.Lock()
	seen, ok := s.lastSeen[key]
	echo := ok && bytes.Equal(seen, value)
	ctx := s.ctx
	s.mu.Unlock()

	if echo {
		return
	}
	logger.Get().Infow("Collection changed externally, reloading", "key", key)
	s.Load(ctx)
}

func (s *Syncer) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

func (s *Syncer) save(ctx context.Context, colls []ledger.Collection) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	log := logger.Get()
	snap := s.store.Snapshot()
	for _, coll := range colls {
		s.mu.Lock()
		locked := s.locked[coll]
		s.mu.Unlock()
		if locked {
			log.Warnw("Not saving collection stored at an unsupported schema version", "collection", string(coll))
			continue
		}

		data, err := EncodeCollection(snap, coll)
		if err != nil {
			log.Errorw("Failed to encode collection", "collection", string(coll), "error", err)
			continue
		}

		key := Key(coll)
		s.mu.Lock()
		s.lastSeen[key] = data
		s.mu.Unlock()

		if err := s.kv.Save(ctx, key, data); err != nil {
			log.Errorw("Failed to save collection", "collection", string(coll), "error", err)
		}
	}
}

func isCollectionKey(key string) bool {
	return slices.Contains(ledger.Collections, ledger.Collection(key))
}

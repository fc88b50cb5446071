package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finledger/internal/logger"
	"finledger/internal/persistence"
)

// Entry is one stored key. Revision increases on every write so watchers can
// detect changes made through other connections.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	Revision  int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name shared with the SQL migrations.
func (Entry) TableName() string { return "kv_entries" }

// KVStore implements persistence.KV on top of a GORM database.
type KVStore struct {
	db  *gorm.DB
	now func() time.Time
}

var _ persistence.KV = (*KVStore)(nil)

// NewKVStore creates a KVStore. The kv_entries table must already exist.
func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

// Load implements persistence.KV.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

// Save implements persistence.KV. It inserts the key or overwrites it and
// bumps its revision.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: string(value), Revision: 1, UpdatedAt: s.now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      entry.Value,
			"revision":   gorm.Expr("kv_entries.revision + 1"),
			"updated_at": entry.UpdatedAt,
		}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Revisions returns the current revision of every stored key.
func (s *KVStore) Revisions(ctx context.Context) (map[string]int64, error) {
	var entries []Entry
	if err := s.db.WithContext(ctx).Select("key", "revision").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	revs := make(map[string]int64, len(entries))
	for _, e := range entries {
		revs[e.Key] = e.Revision
	}
	return revs, nil
}

// Watch polls the table every interval and calls fn with the new value of
// each key whose revision changed since the previous poll, including keys
// written through this KVStore. Keys present when Watch starts are not
// reported. It returns when ctx is done.
func (s *KVStore) Watch(ctx context.Context, interval time.Duration, fn persistence.ChangeFunc) error {
	seen, err := s.Revisions(ctx)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		revs, err := s.Revisions(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Get().Warnw("Failed to poll storage revisions", "error", err)
			continue
		}

		for key, rev := range revs {
			if seen[key] == rev {
				continue
			}
			value, ok, err := s.Load(ctx, key)
			if err != nil {
				logger.Get().Warnw("Failed to read changed key", "key", key, "error", err)
				continue
			}
			seen[key] = rev
			if ok {
				fn(key, value)
			}
		}
	}
}

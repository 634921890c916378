package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"
)

// defaultCollectionTTL is how long a fetched collection stays fresh before
// List re-fetches.
const defaultCollectionTTL = 5 * time.Minute

// API is the remote surface the cache depends on. *Client satisfies it.
type API interface {
	ListKeys(ctx context.Context) ([]models.TranslationKeyPayload, error)
	GetKey(ctx context.Context, id string) (models.TranslationKeyPayload, error)
	CreateKey(ctx context.Context, req CreateKeyRequest) (models.TranslationKeyPayload, error)
	UpdateTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (models.TranslationKeyPayload, error)
	DeleteKey(ctx context.Context, id string) error
	BulkUpdate(ctx context.Context, updates []BulkUpdateEntry) (int, error)
}

// cacheEntry is one id-scoped key with its own freshness timestamp, so Get
// can serve entries fetched before any List.
type cacheEntry struct {
	key       models.TranslationKeyPayload
	fetchedAt time.Time
}

// Cache owns the client-side snapshot of the translation key collection and
// applies optimistic local mutations after successful writes. Failed remote
// operations leave the cache untouched. The latest successful server response
// always wins over locally cached state.
type Cache struct {
	api API
	ttl time.Duration

	mu         sync.RWMutex
	collection []models.TranslationKeyPayload
	byID       map[string]cacheEntry
	fetchedAt  time.Time
	populated  bool
}

// NewCache creates a Cache over api. A non-positive ttl selects the default
// five-minute staleness window.
func NewCache(api API, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCollectionTTL
	}
	return &Cache{
		api:  api,
		ttl:  ttl,
		byID: make(map[string]cacheEntry),
	}
}

// List returns the key collection, fetching from the remote store when the
// cached copy is missing or stale. Callers receive a copy of the snapshot.
func (c *Cache) List(ctx context.Context) ([]models.TranslationKeyPayload, error) {
	c.mu.RLock()
	if c.populated && time.Since(c.fetchedAt) < c.ttl {
		snapshot := c.snapshotLocked()
		c.mu.RUnlock()
		return snapshot, nil
	}
	c.mu.RUnlock()

	keys, err := c.api.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c.mu.Lock()
	c.collection = keys
	c.byID = make(map[string]cacheEntry, len(keys))
	for _, key := range keys {
		c.byID[key.ID] = cacheEntry{key: key, fetchedAt: now}
	}
	c.fetchedAt = now
	c.populated = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	return snapshot, nil
}

// Get returns one key, served from the id-scoped cache while the entry is
// fresh. Entry freshness is independent of the collection, so a Get before
// the first List still caches.
func (c *Cache) Get(ctx context.Context, id string) (models.TranslationKeyPayload, error) {
	c.mu.RLock()
	if entry, ok := c.byID[id]; ok && time.Since(entry.fetchedAt) < c.ttl {
		c.mu.RUnlock()
		return entry.key, nil
	}
	c.mu.RUnlock()

	key, err := c.api.GetKey(ctx, id)
	if err != nil {
		return models.TranslationKeyPayload{}, err
	}

	c.mu.Lock()
	c.byID[key.ID] = cacheEntry{key: key, fetchedAt: time.Now()}
	if c.populated {
		c.collection = mergeKey(c.collection, key)
	}
	c.mu.Unlock()

	return key, nil
}

// UpdateTranslation writes one locale value through the API and, on success,
// merges the returned key into the collection and id caches. Once this call
// returns, readers see the new value; no stale read is possible after the
// write has been acknowledged.
func (c *Cache) UpdateTranslation(ctx context.Context, keyID, locale, value, updatedBy string) (models.TranslationKeyPayload, error) {
	updated, err := c.api.UpdateTranslation(ctx, keyID, locale, value, updatedBy)
	if err != nil {
		return models.TranslationKeyPayload{}, err
	}

	c.mu.Lock()
	c.byID[updated.ID] = cacheEntry{key: updated, fetchedAt: time.Now()}
	if c.populated {
		c.collection = mergeKey(c.collection, updated)
	}
	c.mu.Unlock()

	return updated, nil
}

// CreateKey creates a key remotely and appends it to the cached collection.
// A duplicate dotted key in the cached collection fails fast without a
// network call; the remote unique constraint remains authoritative for races
// between clients.
func (c *Cache) CreateKey(ctx context.Context, req CreateKeyRequest) (models.TranslationKeyPayload, error) {
	c.mu.RLock()
	if c.populated {
		for _, key := range c.collection {
			if key.Key == req.Key {
				c.mu.RUnlock()
				return models.TranslationKeyPayload{}, app_errors.NewDuplicateError(
					fmt.Sprintf("Translation key %q already exists", req.Key))
			}
		}
	}
	c.mu.RUnlock()

	created, err := c.api.CreateKey(ctx, req)
	if err != nil {
		return models.TranslationKeyPayload{}, err
	}

	c.mu.Lock()
	c.byID[created.ID] = cacheEntry{key: created, fetchedAt: time.Now()}
	if c.populated {
		c.collection = append(c.collection, created)
	}
	c.mu.Unlock()

	return created, nil
}

// DeleteKey deletes a key remotely and evicts it from both caches.
func (c *Cache) DeleteKey(ctx context.Context, id string) error {
	if err := c.api.DeleteKey(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.byID, id)
	if c.populated {
		c.collection = removeKey(c.collection, id)
	}
	c.mu.Unlock()

	return nil
}

// BulkUpdate applies the updates remotely. The response reports only a count,
// which is not enough detail for a precise local merge, so the collection
// cache is invalidated and the next List re-fetches.
func (c *Cache) BulkUpdate(ctx context.Context, updates []BulkUpdateEntry) (int, error) {
	count, err := c.api.BulkUpdate(ctx, updates)
	if err != nil {
		return 0, err
	}

	c.Invalidate()
	return count, nil
}

// Invalidate marks the cached collection stale, forcing the next List to
// re-fetch. Id-scoped entries are evicted as well.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.populated = false
	c.collection = nil
	c.byID = make(map[string]cacheEntry)
}

// Reset restores the cache to its initial empty state.
func (c *Cache) Reset() {
	c.Invalidate()
}

// snapshotLocked copies the collection. Callers must hold at least a read lock.
func (c *Cache) snapshotLocked() []models.TranslationKeyPayload {
	snapshot := make([]models.TranslationKeyPayload, len(c.collection))
	copy(snapshot, c.collection)
	return snapshot
}

// mergeKey replaces the entry matching updated's ID, preserving collection
// order. An unmatched ID is appended so the merge is total.
func mergeKey(collection []models.TranslationKeyPayload, updated models.TranslationKeyPayload) []models.TranslationKeyPayload {
	merged := make([]models.TranslationKeyPayload, len(collection))
	copy(merged, collection)
	for i := range merged {
		if merged[i].ID == updated.ID {
			merged[i] = updated
			return merged
		}
	}
	return append(merged, updated)
}

// removeKey drops the entry with the given ID, preserving order.
func removeKey(collection []models.TranslationKeyPayload, id string) []models.TranslationKeyPayload {
	result := make([]models.TranslationKeyPayload, 0, len(collection))
	for _, key := range collection {
		if key.ID != id {
			result = append(result, key)
		}
	}
	return result
}

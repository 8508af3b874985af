package catalog_cache

import (
	"sync"
	"time"

	"github.com/kramislife/world-of-minifigs-sub001/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// One snapshot serves every storefront read (listing, facet counts, search
// suggestions) until it expires or the CMS invalidates it. The engines treat
// the snapshot as read-only, so sharing one instance across requests is safe.

type snapshotEntry struct {
	snap      *models.CatalogSnapshot
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() (*models.CatalogSnapshot, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.snap, true
	}
	return nil, false
}

func SetSnapshot(snap *models.CatalogSnapshot) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{snap: snap, fetchedAt: time.Now()}
}

// ── Invalidate (call on any catalog or taxonomy write) ───────────────────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}

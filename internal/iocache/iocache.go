// Package iocache is for caching rendered charts and recording chart history.
package iocache

import (
	"sync"

	"github.com/huangsam/radar/internal/contract"
)

// CacheStoreManager manages the render cache and the chart history stores.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	render       contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetRenderStore returns the render CacheStore.
func (mgr *CacheStoreManager) GetRenderStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.render
}

// GetHistoryStore returns the chart HistoryStore.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}

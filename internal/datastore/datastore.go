// Package datastore persists benchmarks, scores and evaluation runs.
package datastore

import (
	"sync"

	"github.com/kademeqms/altscore/internal/contract"
)

// StoreManagerImpl holds the data store and the run store.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	data         contract.DataStore
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// NewStoreManager wraps already opened stores, mainly for tests and embedding.
func NewStoreManager(data contract.DataStore, runs contract.RunStore) *StoreManagerImpl {
	return &StoreManagerImpl{data: data, runs: runs}
}

// GetDataStore returns the benchmark DataStore.
func (mgr *StoreManagerImpl) GetDataStore() contract.DataStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.data
}

// GetRunStore returns the evaluation RunStore.
func (mgr *StoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}

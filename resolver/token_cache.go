package resolver

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// TokenCache maps token addresses across layers. It lives for the whole process,
// entries are filled once per key and the last write wins.
type TokenCache struct {
	mu   sync.RWMutex
	toL2 map[common.Address]common.Address
	toL1 map[common.Address]common.Address
}

// NewTokenCache creates an empty TokenCache
func NewTokenCache() *TokenCache {
	return &TokenCache{
		toL2: make(map[common.Address]common.Address),
		toL1: make(map[common.Address]common.Address),
	}
}

// L2 returns the cached L2 address of l1Token
func (c *TokenCache) L2(l1Token common.Address) (common.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	addr, ok := c.toL2[l1Token]
	return addr, ok
}

// L1 returns the cached L1 address of l2Token
func (c *TokenCache) L1(l2Token common.Address) (common.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	addr, ok := c.toL1[l2Token]
	return addr, ok
}

// Store records the pair in both directions
func (c *TokenCache) Store(l1Token, l2Token common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toL2[l1Token] = l2Token
	c.toL1[l2Token] = l1Token
}

// Len returns the number of cached pairs
func (c *TokenCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.toL2)
}

// Package cache holds the process-local read-through caches of vendor data.
package cache

import (
	"marketplace-ledger/config"
	"marketplace-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
)

// VendorCache implements ports.VendorCache with two TTL caches: vendor
// identity, which rarely changes, and statistics, which every ledger write
// invalidates. Values are copied in and out so callers cannot mutate
// cached entries.
type VendorCache struct {
	vendors *ttlcache.Cache[uuid.UUID, domain.Vendor]
	stats   *ttlcache.Cache[uuid.UUID, domain.VendorStatistics]
}

// NewVendorCache creates the caches. Entries are never touched on read, so
// a hot vendor still refreshes once per TTL.
func NewVendorCache(cfg config.CacheConfig) *VendorCache {
	return &VendorCache{
		vendors: ttlcache.New[uuid.UUID, domain.Vendor](
			ttlcache.WithTTL[uuid.UUID, domain.Vendor](cfg.VendorTTL),
			ttlcache.WithDisableTouchOnHit[uuid.UUID, domain.Vendor](),
		),
		stats: ttlcache.New[uuid.UUID, domain.VendorStatistics](
			ttlcache.WithTTL[uuid.UUID, domain.VendorStatistics](cfg.StatsTTL),
			ttlcache.WithDisableTouchOnHit[uuid.UUID, domain.VendorStatistics](),
		),
	}
}

// GetVendor returns a copy of the cached vendor.
func (c *VendorCache) GetVendor(id uuid.UUID) (*domain.Vendor, bool) {
	item := c.vendors.Get(id)
	if item == nil {
		return nil, false
	}
	v := item.Value()
	return &v, true
}

// SetVendor caches a copy of v for the vendor TTL.
func (c *VendorCache) SetVendor(v *domain.Vendor) {
	c.vendors.Set(v.ID, *v, ttlcache.DefaultTTL)
}

// GetStats returns a copy of the vendor's cached statistics.
func (c *VendorCache) GetStats(vendorID uuid.UUID) (*domain.VendorStatistics, bool) {
	item := c.stats.Get(vendorID)
	if item == nil {
		return nil, false
	}
	s := item.Value()
	return &s, true
}

// SetStats caches a copy of s for the statistics TTL.
func (c *VendorCache) SetStats(s *domain.VendorStatistics) {
	c.stats.Set(s.VendorID, *s, ttlcache.DefaultTTL)
}

// Invalidate drops the vendor's statistics. Identity is left alone since
// no ledger write changes it.
func (c *VendorCache) Invalidate(vendorID uuid.UUID) {
	c.stats.Delete(vendorID)
}

// InvalidateAll empties both caches.
func (c *VendorCache) InvalidateAll() {
	c.vendors.DeleteAll()
	c.stats.DeleteAll()
}

// DeleteExpired evicts expired entries from both caches.
func (c *VendorCache) DeleteExpired() {
	c.vendors.DeleteExpired()
	c.stats.DeleteExpired()
}

// Len returns the number of unexpired entries.
func (c *VendorCache) Len() int {
	return c.vendors.Len() + c.stats.Len()
}


// Package content implements the client's content-state layer: one category
// cache per content domain (magazines, articles, digests), each holding four
// independently refreshed buckets, plus a store that tracks the active domain
// and derives the currently displayed view from it.
package content

import (
	"context"
	"sync"

	"github.com/ilyakharev/glossy/internal/client/api"
	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/logging"
)

// Cache holds one domain's content buckets and fetch state.
//
// Loading reflects "at least one fetch in flight" for the domain: an
// in-flight counter is kept so that a bucket fetch completing early cannot
// flip loading off while a sibling fetch is still pending.
//
// Failed refreshes keep the previous bucket contents (stale-but-valid): the
// error field tells the UI the refresh failed, the stale items stay visible.
//
// Bucket accessors return the stored slice itself, so their identity is
// stable between refreshes; callers must treat the contents as read-only.
type Cache struct {
	domain models.PostType
	client api.Client
	log    logging.Logger

	mu          sync.RWMutex
	featured    []models.Post
	trending    []models.Post
	recommended []models.Post
	newContent  []models.Post
	categories  []models.CategoryTag
	inflight    int
	err         string
}

// NewCache constructs a cache for domain. seed, if non-nil, pre-populates the
// category list; a later successful categories fetch replaces it wholesale.
func NewCache(domain models.PostType, client api.Client, seed []models.CategoryTag, log logging.Logger) *Cache {
	return &Cache{
		domain:     domain,
		client:     client,
		categories: seed,
		log:        log.With("domain", string(domain)),
	}
}

// Domain returns the content domain this cache serves.
func (c *Cache) Domain() models.PostType { return c.domain }

// FetchFeatured refreshes the featured bucket.
func (c *Cache) FetchFeatured(ctx context.Context) error {
	return c.fetchBucket(ctx, models.BucketFeatured)
}

// FetchTrending refreshes the trending bucket.
func (c *Cache) FetchTrending(ctx context.Context) error {
	return c.fetchBucket(ctx, models.BucketTrending)
}

// FetchRecommended refreshes the recommended bucket.
func (c *Cache) FetchRecommended(ctx context.Context) error {
	return c.fetchBucket(ctx, models.BucketRecommended)
}

// FetchNew refreshes the new-content bucket.
func (c *Cache) FetchNew(ctx context.Context) error {
	return c.fetchBucket(ctx, models.BucketNew)
}

// fetchBucket runs one bucket refresh: marks the fetch in flight, clears the
// error, and on completion either replaces the target bucket wholesale
// (success) or records the error leaving the bucket untouched (failure).
// Sibling buckets are never modified. The error is both recorded in cache
// state and returned; callers that only render may ignore the return.
func (c *Cache) fetchBucket(ctx context.Context, bucket models.Bucket) error {
	c.beginFetch()

	posts, err := c.client.FetchPosts(ctx, c.domain, bucket)
	if err != nil {
		c.finishFailure(err)
		c.log.Warn(ctx, "bucket fetch failed", "bucket", string(bucket), "error", err)
		return err
	}

	c.mu.Lock()
	switch bucket {
	case models.BucketFeatured:
		c.featured = posts
	case models.BucketTrending:
		c.trending = posts
	case models.BucketRecommended:
		c.recommended = posts
	case models.BucketNew:
		c.newContent = posts
	}
	c.inflight--
	c.err = ""
	c.mu.Unlock()
	return nil
}

// FetchCategories refreshes the category list, replacing the seeded (or
// previously fetched) tags wholesale on success. It participates in the
// domain's loading state like any bucket fetch.
func (c *Cache) FetchCategories(ctx context.Context) error {
	c.beginFetch()

	tags, err := c.client.FetchCategories(ctx, c.domain)
	if err != nil {
		c.finishFailure(err)
		c.log.Warn(ctx, "categories fetch failed", "error", err)
		return err
	}

	c.mu.Lock()
	c.categories = tags
	c.inflight--
	c.err = ""
	c.mu.Unlock()
	return nil
}

func (c *Cache) beginFetch() {
	c.mu.Lock()
	c.inflight++
	c.err = ""
	c.mu.Unlock()
}

func (c *Cache) finishFailure(err error) {
	c.mu.Lock()
	c.inflight--
	c.err = err.Error()
	c.mu.Unlock()
}

// ClearError resets the error without touching buckets or loading state.
func (c *Cache) ClearError() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Loading reports whether any fetch for this domain is in flight.
func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inflight > 0
}

// Err returns the last fetch error message, or "" if the last fetch
// succeeded or the error was cleared.
func (c *Cache) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Cache) Featured() []models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.featured
}

func (c *Cache) Trending() []models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trending
}

func (c *Cache) Recommended() []models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recommended
}

func (c *Cache) New() []models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.newContent
}

func (c *Cache) Categories() []models.CategoryTag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categories
}

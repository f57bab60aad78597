package content

import (
	"sync"

	"github.com/ilyakharev/glossy/internal/client/api"
	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/logging"
)

// Store owns the three domain caches and the process-wide active domain
// selection. Its view accessors (Featured, Trending, ...) dispatch to the
// active domain's cache, falling back to magazines when the active value is
// unrecognized — a defined fallback, not an error.
//
// Because accessors forward to the cache's stored slices, repeated calls with
// unchanged state return the same slice identity, so downstream consumers can
// use cheap identity comparison to skip re-rendering.
type Store struct {
	magazines *Cache
	articles  *Cache
	digests   *Cache

	mu     sync.RWMutex
	active models.PostType
}

// Seeds optionally pre-populates per-domain category lists at construction.
type Seeds map[models.PostType][]models.CategoryTag

// NewStore builds the three domain caches over the shared API client.
// The active domain defaults to magazines.
func NewStore(client api.Client, seeds Seeds, log logging.Logger) *Store {
	return &Store{
		magazines: NewCache(models.PostTypeMagazines, client, seeds[models.PostTypeMagazines], log),
		articles:  NewCache(models.PostTypeArticles, client, seeds[models.PostTypeArticles], log),
		digests:   NewCache(models.PostTypeDigests, client, seeds[models.PostTypeDigests], log),
		active:    models.PostTypeMagazines,
	}
}

// Magazines returns the magazines domain cache.
func (s *Store) Magazines() *Cache { return s.magazines }

// Articles returns the articles domain cache.
func (s *Store) Articles() *Cache { return s.articles }

// Digests returns the digests domain cache.
func (s *Store) Digests() *Cache { return s.digests }

// Cache returns the cache for domain, with the magazines fallback for
// unrecognized values.
func (s *Store) Cache(domain models.PostType) *Cache {
	switch domain {
	case models.PostTypeArticles:
		return s.articles
	case models.PostTypeDigests:
		return s.digests
	default:
		return s.magazines
	}
}

// SetActiveType records the domain to display. Pure assignment: no fetch is
// triggered, that stays the caller's responsibility.
func (s *Store) SetActiveType(domain models.PostType) {
	s.mu.Lock()
	s.active = domain
	s.mu.Unlock()
}

// ActiveType returns the currently selected domain.
func (s *Store) ActiveType() models.PostType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Store) activeCache() *Cache {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()
	return s.Cache(active)
}

// Featured returns the active domain's featured bucket.
func (s *Store) Featured() []models.Post { return s.activeCache().Featured() }

// Trending returns the active domain's trending bucket.
func (s *Store) Trending() []models.Post { return s.activeCache().Trending() }

// Recommended returns the active domain's recommended bucket.
func (s *Store) Recommended() []models.Post { return s.activeCache().Recommended() }

// New returns the active domain's new-content bucket.
func (s *Store) New() []models.Post { return s.activeCache().New() }

// Categories returns the active domain's category tags.
func (s *Store) Categories() []models.CategoryTag { return s.activeCache().Categories() }

// Loading reports whether the active domain has any fetch in flight.
func (s *Store) Loading() bool { return s.activeCache().Loading() }

// Err returns the active domain's last fetch error message.
func (s *Store) Err() string { return s.activeCache().Err() }

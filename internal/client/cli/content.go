package cli

import (
	"context"
	"fmt"

	"github.com/ilyakharev/glossy/internal/client/content"
	"github.com/ilyakharev/glossy/internal/client/models"
)

// Use switches the active content domain. Unknown values are accepted and
// fall back to magazines at display time.
func (a *App) Use(domain models.PostType) {
	if !domain.Valid() {
		fmt.Printf("Unknown domain %q, showing magazines\n", domain)
	}
	a.content.SetActiveType(domain)
}

// Refresh refetches buckets of the active domain: a named bucket, or all
// four plus categories when no argument is given.
func (a *App) Refresh(ctx context.Context, args []string) {
	cache := a.content.Cache(a.content.ActiveType())

	if len(args) > 0 {
		var err error
		switch models.Bucket(args[0]) {
		case models.BucketFeatured:
			err = cache.FetchFeatured(ctx)
		case models.BucketTrending:
			err = cache.FetchTrending(ctx)
		case models.BucketRecommended:
			err = cache.FetchRecommended(ctx)
		case models.BucketNew:
			err = cache.FetchNew(ctx)
		default:
			fmt.Println("Usage: refresh [featured|trending|recommended|new]")
			return
		}
		if err != nil {
			fmt.Println("Refresh failed:", err)
		}
		return
	}

	refreshAll(ctx, cache)
	if msg := cache.Err(); msg != "" {
		fmt.Println("Some refreshes failed:", msg)
	}
}

func refreshAll(ctx context.Context, cache *content.Cache) {
	_ = cache.FetchFeatured(ctx)
	_ = cache.FetchTrending(ctx)
	_ = cache.FetchRecommended(ctx)
	_ = cache.FetchNew(ctx)
	_ = cache.FetchCategories(ctx)
}

// Show prints the active domain's derived view.
func (a *App) Show() {
	fmt.Printf("Domain: %s  loading=%v", a.content.ActiveType(), a.content.Loading())
	if msg := a.content.Err(); msg != "" {
		fmt.Printf("  error=%q (stale content shown)", msg)
	}
	fmt.Println()

	printBucket("Featured", a.content.Featured())
	printBucket("Trending", a.content.Trending())
	printBucket("Recommended", a.content.Recommended())
	printBucket("New", a.content.New())
}

func printBucket(name string, posts []models.Post) {
	fmt.Printf("%s (%d):\n", name, len(posts))
	for _, p := range posts {
		fmt.Printf("  %s — %s (%s, %s)\n", p.Title, p.Author, p.Category, p.ReadTime)
	}
}

// ShowCategories prints the active domain's category tags.
func (a *App) ShowCategories() {
	for _, c := range a.content.Categories() {
		fmt.Printf("  %s (%d)\n", c.Name, c.Count)
	}
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hoanghai1803/localpages/internal/contentkey"
	"github.com/hoanghai1803/localpages/internal/quality"
	"github.com/hoanghai1803/localpages/internal/site"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// QualityReport handles GET /api/quality. It scores every piece of content
// on the fly and returns per-page-type green/amber/red counts plus the
// indexable-at-risk totals the dashboard leads with.
func QualityReport(store *storage.Store, catalog *site.Catalog, overlapThreshold float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := collectItems(r.Context(), store, catalog)
		if err != nil {
			slog.Error("failed to collect content for quality report", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to build quality report")
			return
		}

		report := quality.BuildReport(items, catalog.LocationNames(), overlapThreshold)
		writeJSON(w, http.StatusOK, report)
	}
}

// QualityScore handles GET /api/quality/{key}. It returns the full signal
// breakdown for one piece of content plus an indexing recommendation.
func QualityScore(store *storage.Store, catalog *site.Catalog, overlapThreshold float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "key")

		key, err := contentkey.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !key.Type.IsScorable() {
			writeError(w, http.StatusBadRequest, "content key is not scorable")
			return
		}

		items, err := collectItems(r.Context(), store, catalog)
		if err != nil {
			slog.Error("failed to collect content for quality score", "key", raw, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to score content")
			return
		}

		var (
			target   *quality.Item
			siblings []string
		)
		for i := range items {
			sameVertical := (items[i].Key.Type == contentkey.PageTypeBlog) == (key.Type == contentkey.PageTypeBlog)
			if sameVertical {
				siblings = append(siblings, items[i].Content)
			}
			if items[i].Key == key {
				target = &items[i]
			}
		}
		if target == nil {
			writeError(w, http.StatusNotFound, "Content not found")
			return
		}

		score := quality.Calculate(target.Content, key.Type, quality.Input{
			HumanReviewed:    target.HumanReviewed,
			LocationName:     target.LocationName,
			KnownLocations:   catalog.LocationNames(),
			Siblings:         siblings,
			OverlapThreshold: overlapThreshold,
		})

		writeJSON(w, http.StatusOK, map[string]any{
			"key":            raw,
			"score":          score,
			"recommendation": quality.IndexingRecommendation(score.Status, target.Indexable),
		})
	}
}

// collectItems loads every scorable content unit: cached page content from
// ai_content and published-or-not articles from blog_posts. Scheduled-blog
// audit rows in ai_content are skipped; the blog corpus comes from
// blog_posts. Page content is always live on the site, so it counts as
// indexable for at-risk purposes.
func collectItems(ctx context.Context, store *storage.Store, catalog *site.Catalog) ([]quality.Item, error) {
	entries, err := store.ListContent(ctx)
	if err != nil {
		return nil, err
	}

	var items []quality.Item
	for _, entry := range entries {
		key, err := contentkey.Parse(entry.Key)
		if err != nil || key.Type == contentkey.PageTypeBlog {
			continue
		}
		items = append(items, quality.Item{
			Key:           key,
			Content:       entry.Content,
			HumanReviewed: entry.HumanReviewed,
			Indexable:     true,
			LocationName:  catalog.LocationNameBySlug(key.LocationSlug),
		})
	}

	posts, err := store.ListBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		items = append(items, quality.Item{
			Key:           contentkey.Blog(strconv.FormatInt(post.ID, 10)),
			Content:       post.Content,
			HumanReviewed: post.HumanReviewed,
			Indexable:     post.Indexable,
		})
	}

	return items, nil
}

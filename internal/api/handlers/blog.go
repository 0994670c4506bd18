package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/models"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// ListBlogPosts handles GET /api/blog. It returns every blog post, newest
// first.
func ListBlogPosts(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := store.ListBlogPosts(r.Context())
		if err != nil {
			slog.Error("failed to list blog posts", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list blog posts")
			return
		}

		if posts == nil {
			posts = []models.BlogPost{}
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

// GetBlogPost handles GET /api/blog/{id}.
func GetBlogPost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		post, err := store.GetBlogPostByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Blog post not found")
				return
			}
			slog.Error("failed to get blog post", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get blog post")
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

// UpdateBlogPost handles PATCH /api/blog/{id}. It toggles the indexable
// flag and/or records a review sign-off.
func UpdateBlogPost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var body struct {
			Indexable  *bool   `json:"indexable"`
			ReviewedBy *string `json:"reviewed_by"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if body.Indexable == nil && body.ReviewedBy == nil {
			writeError(w, http.StatusBadRequest, "indexable or reviewed_by is required")
			return
		}

		if body.Indexable != nil {
			if err := store.SetBlogPostIndexable(ctx, id, *body.Indexable); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					writeError(w, http.StatusNotFound, "Blog post not found")
					return
				}
				slog.Error("failed to set blog post indexable", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to update blog post")
				return
			}
		}

		if body.ReviewedBy != nil {
			reviewedBy := strings.TrimSpace(*body.ReviewedBy)
			if reviewedBy == "" {
				writeError(w, http.StatusBadRequest, "reviewed_by must not be empty")
				return
			}
			if err := store.MarkBlogPostReviewed(ctx, id, reviewedBy); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					writeError(w, http.StatusNotFound, "Blog post not found")
					return
				}
				slog.Error("failed to mark blog post reviewed", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to update blog post")
				return
			}
		}

		post, err := store.GetBlogPostByID(ctx, id)
		if err != nil {
			slog.Error("failed to reload blog post", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load updated blog post")
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

// DeleteBlogPost handles DELETE /api/blog/{id}.
func DeleteBlogPost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.DeleteBlogPost(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Blog post not found")
				return
			}
			slog.Error("failed to delete blog post", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete blog post")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// GenerateBlogBatch handles POST /api/blog/generate. It runs the scheduler
// over the requested items and reports per-batch outcomes. Partial failure
// is a 200: the result body carries the per-item errors.
func GenerateBlogBatch(scheduler *content.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items []content.BatchItem `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if len(body.Items) == 0 {
			writeError(w, http.StatusBadRequest, "items is required")
			return
		}

		result := scheduler.GenerateBatch(r.Context(), body.Items)
		writeJSON(w, http.StatusOK, result)
	}
}

// BlogTopics handles GET /api/blog/topics. It returns the suggested topic
// and category lists for the scheduler form.
func BlogTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"topics":     content.SuggestedTopics,
			"categories": content.TopicCategories,
		})
	}
}

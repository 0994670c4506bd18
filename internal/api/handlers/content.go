package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/contentkey"
	"github.com/hoanghai1803/localpages/internal/models"
	"github.com/hoanghai1803/localpages/internal/prompt"
	"github.com/hoanghai1803/localpages/internal/site"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// ListContent handles GET /api/content. It returns every cached content
// entry, ordered by key.
func ListContent(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.ListContent(r.Context())
		if err != nil {
			slog.Error("failed to list content", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list content")
			return
		}

		if entries == nil {
			entries = []models.ContentEntry{}
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// GetContent handles GET /api/content/{key}.
func GetContent(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		entry, err := store.GetContent(r.Context(), key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Content not found")
				return
			}
			slog.Error("failed to get content", "key", key, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get content")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// DeleteContent handles DELETE /api/content/{key}. Deleting an entry forces
// regeneration on the next page visit.
func DeleteContent(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		if err := store.DeleteContent(r.Context(), key); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Content not found")
				return
			}
			slog.Error("failed to delete content", "key", key, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete content")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// ReviewContent handles POST /api/content/{key}/review. It records a human
// sign-off on the entry.
func ReviewContent(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var body struct {
			ReviewedBy string `json:"reviewed_by"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.ReviewedBy = strings.TrimSpace(body.ReviewedBy)
		if body.ReviewedBy == "" {
			writeError(w, http.StatusBadRequest, "reviewed_by is required")
			return
		}

		if err := store.MarkContentReviewed(r.Context(), key, body.ReviewedBy); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Content not found")
				return
			}
			slog.Error("failed to mark content reviewed", "key", key, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to mark content reviewed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "reviewed"})
	}
}

// RegenerateContent handles POST /api/content/{key}/regenerate. The prompt
// is rebuilt from the key and the site catalog, so the admin panel never has
// to carry prompt text. Regeneration clears the review flag.
func RegenerateContent(generator *content.Generator, catalog *site.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "key")

		key, err := contentkey.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		templateName, variables, err := promptFor(key, catalog)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := generator.Regenerate(r.Context(), raw, templateName, variables)
		if err != nil {
			writeGenerationError(w, raw, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// promptFor resolves a content key to its template and variables using the
// site catalog.
func promptFor(key contentkey.Key, catalog *site.Catalog) (string, map[string]string, error) {
	base := map[string]string{
		"brandName":           catalog.Brand.Name,
		"primaryLocationName": catalog.Brand.PrimaryLocation,
		"serviceAreaLabel":    catalog.Brand.ServiceAreaLabel,
		"phone":               catalog.Brand.Phone,
	}

	switch key.Type {
	case contentkey.PageTypeHome:
		return prompt.TemplateHomeIntro, base, nil

	case contentkey.PageTypeServicesOverview:
		return prompt.TemplateServicesOverview, base, nil

	case contentkey.PageTypeService:
		svc := catalog.ServiceBySlug(key.ServiceSlug)
		if svc == nil {
			return "", nil, fmt.Errorf("unknown service %q", key.ServiceSlug)
		}
		base["serviceName"] = svc.Name
		return prompt.TemplateGenericService, base, nil

	case contentkey.PageTypeLocation:
		loc := catalog.LocationBySlug(key.LocationSlug)
		if loc == nil {
			return "", nil, fmt.Errorf("unknown location %q", key.LocationSlug)
		}
		base["locationName"] = loc.Name
		return prompt.TemplateLocationPage, base, nil

	case contentkey.PageTypeServiceInLocation:
		svc := catalog.ServiceBySlug(key.ServiceSlug)
		if svc == nil {
			return "", nil, fmt.Errorf("unknown service %q", key.ServiceSlug)
		}
		loc := catalog.LocationBySlug(key.LocationSlug)
		if loc == nil {
			return "", nil, fmt.Errorf("unknown location %q", key.LocationSlug)
		}
		base["serviceName"] = svc.Name
		base["locationName"] = loc.Name
		return prompt.TemplateServiceInLocation, base, nil

	case contentkey.PageTypeSubService:
		svc := catalog.ServiceBySlug(key.ServiceSlug)
		if svc == nil {
			return "", nil, fmt.Errorf("unknown service %q", key.ServiceSlug)
		}
		var sub *site.SubService
		for i := range svc.SubServices {
			if svc.SubServices[i].Slug == key.SubServiceSlug {
				sub = &svc.SubServices[i]
				break
			}
		}
		if sub == nil {
			return "", nil, fmt.Errorf("unknown sub-service %q under %q", key.SubServiceSlug, key.ServiceSlug)
		}
		base["serviceName"] = svc.Name
		base["subServiceName"] = sub.Name
		return prompt.TemplateSubService, base, nil

	case contentkey.PageTypeBlog:
		return "", nil, errors.New("blog content is regenerated through the blog scheduler")
	}

	return "", nil, fmt.Errorf("cannot rebuild a prompt for key type %q", key.Type)
}

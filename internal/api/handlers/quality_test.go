package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hoanghai1803/localpages/internal/models"
	"github.com/hoanghai1803/localpages/internal/quality"
)

// localWords builds n distinct filler words.
func localWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestQualityReport(t *testing.T) {
	store := newTestStore(t)
	catalog := testCatalog()

	// One strong location page and one thin one.
	good := localWords(500) +
		" Drain problems in Cricklade often affect older properties." +
		" We also cover Swindon. Contact us today."
	seedContent(t, store, "location:cricklade", good)
	if err := store.MarkContentReviewed(context.Background(), "location:cricklade", "sam"); err != nil {
		t.Fatalf("marking reviewed: %v", err)
	}
	seedContent(t, store, "location:swindon", "we unblock drains fast")

	// Non-scorable entries are ignored.
	seedContent(t, store, "home:intro", "short intro")

	r := httptest.NewRequest(http.MethodGet, "/api/quality", nil)
	w := httptest.NewRecorder()
	QualityReport(store, catalog, quality.DefaultOverlapThreshold).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var report quality.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if report.TotalScored != 2 {
		t.Errorf("TotalScored = %d, want 2", report.TotalScored)
	}
	if report.TotalRed != 1 {
		t.Errorf("TotalRed = %d, want 1", report.TotalRed)
	}
	// The thin page counts as at-risk because page content is live.
	if report.TotalAtRisk != 1 {
		t.Errorf("TotalAtRisk = %d, want 1", report.TotalAtRisk)
	}
}

func TestQualityReportIncludesBlogPosts(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateBlogPost(context.Background(), &models.BlogPost{
		Slug: "thin-post", Title: "Thin", Content: "too short",
	}); err != nil {
		t.Fatalf("creating blog post: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/quality", nil)
	w := httptest.NewRecorder()
	QualityReport(store, testCatalog(), quality.DefaultOverlapThreshold).ServeHTTP(w, r)

	var report quality.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if report.TotalScored != 1 {
		t.Errorf("TotalScored = %d, want 1 blog post", report.TotalScored)
	}
	// Non-indexable, so red but not at risk.
	if report.TotalRed != 1 || report.TotalAtRisk != 0 {
		t.Errorf("TotalRed = %d, TotalAtRisk = %d, want 1 and 0", report.TotalRed, report.TotalAtRisk)
	}
}

func TestQualityScoreForContentKey(t *testing.T) {
	store := newTestStore(t)
	seedContent(t, store, "location:cricklade", "we unblock drains fast")

	r := withKeyParam(httptest.NewRequest(http.MethodGet, "/api/quality/location:cricklade", nil), "location:cricklade")
	w := httptest.NewRecorder()
	QualityScore(store, testCatalog(), quality.DefaultOverlapThreshold).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var body struct {
		Key            string                 `json:"key"`
		Score          quality.Score          `json:"score"`
		Recommendation quality.Recommendation `json:"recommendation"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if body.Key != "location:cricklade" {
		t.Errorf("key = %q", body.Key)
	}
	if body.Score.Status != quality.StatusRed {
		t.Errorf("Status = %s, want red", body.Score.Status)
	}
	if len(body.Score.Signals) != 5 {
		t.Errorf("got %d signals, want 5", len(body.Score.Signals))
	}
	if body.Recommendation.Recommended {
		t.Error("red content must not be recommended for indexing")
	}
	// Page content is live, so a red score carries the hard warning.
	if !strings.Contains(body.Recommendation.Warning, "should NOT be indexed") {
		t.Errorf("Warning = %q", body.Recommendation.Warning)
	}
}

func TestQualityScoreForBlogKey(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateBlogPost(context.Background(), &models.BlogPost{
		Slug: "thin-post", Title: "Thin", Content: "too short",
	})
	if err != nil {
		t.Fatalf("creating blog post: %v", err)
	}

	key := fmt.Sprintf("blog:%d", id)
	r := withKeyParam(httptest.NewRequest(http.MethodGet, "/api/quality/"+key, nil), key)
	w := httptest.NewRecorder()
	QualityScore(store, testCatalog(), quality.DefaultOverlapThreshold).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestQualityScoreErrors(t *testing.T) {
	store := newTestStore(t)
	handler := QualityScore(store, testCatalog(), quality.DefaultOverlapThreshold)

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"invalid key", "garbage", http.StatusBadRequest},
		{"non-scorable key", "home:intro", http.StatusBadRequest},
		{"missing content", "location:cricklade", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withKeyParam(httptest.NewRequest(http.MethodGet, "/api/quality/"+tt.key, nil), tt.key)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

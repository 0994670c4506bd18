package content

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/hoanghai1803/localpages/internal/models"
	"github.com/hoanghai1803/localpages/internal/prompt"
	"github.com/hoanghai1803/localpages/internal/site"
)

// BlogStore is the slice of the persistence layer the scheduler needs.
type BlogStore interface {
	CreateBlogPost(ctx context.Context, post *models.BlogPost) (int64, error)
}

// TopicCategories are the blog categories offered by the admin scheduler.
var TopicCategories = []string{
	"Blocked Drains",
	"Drain Maintenance",
	"Emergency Situations",
	"Seasonal Tips",
	"Homeowner Guides",
	"Commercial Drainage",
}

// SuggestedTopics are starter topics for operators with a blank page.
var SuggestedTopics = []string{
	"How to prevent fat and grease blockages in your kitchen",
	"Signs your drains need professional attention",
	"Winter drain maintenance checklist for UK homeowners",
	"What to do if your drains flood during heavy rain",
	"The benefits of regular CCTV drain surveys",
	"Common causes of blocked toilets and how to avoid them",
	"How tree roots can damage your drainage system",
	"Emergency drain problems: when to call a professional",
	"Understanding your home drainage system",
	"Drain maintenance tips for landlords and property managers",
}

// wordRanges maps a length choice to the word-count instruction embedded in
// the prompt.
var wordRanges = map[string]string{
	"short":  "400-600",
	"medium": "700-900",
	"long":   "1000-1500",
}

// BatchItem is one blog post request in a scheduler batch.
type BatchItem struct {
	Topic        string `json:"topic"`
	Category     string `json:"category,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	// Length is "short", "medium", or "long"; anything else means medium.
	Length string `json:"length,omitempty"`
}

// BatchResult reports the outcome of a batch run. Failures do not abort the
// batch: partial success is the expected mode when a provider is flaky, so
// each item's error is collected and the loop continues.
type BatchResult struct {
	Generated int      `json:"generated"`
	Failed    int      `json:"failed"`
	Slugs     []string `json:"slugs,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Scheduler generates blog posts in sequential batches. One at a time, on
// purpose: parallel generation amplifies provider rate limits for no
// benefit at operator pace.
type Scheduler struct {
	generator *Generator
	blogs     BlogStore
	catalog   *site.Catalog
	// now is stubbed in tests to fix slug suffixes.
	now func() time.Time
}

// NewScheduler creates a Scheduler.
func NewScheduler(generator *Generator, blogs BlogStore, catalog *site.Catalog) *Scheduler {
	return &Scheduler{
		generator: generator,
		blogs:     blogs,
		catalog:   catalog,
		now:       time.Now,
	}
}

// GenerateBatch generates one blog post per item, sequentially, accumulating
// success and failure counts. A failed item is recorded and the batch moves
// on.
func (s *Scheduler) GenerateBatch(ctx context.Context, items []BatchItem) BatchResult {
	var result BatchResult

	for _, item := range items {
		slug, err := s.generateOne(ctx, item)
		if err != nil {
			slog.Error("blog generation failed", "topic", item.Topic, "error", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Topic, err))
			continue
		}
		result.Generated++
		result.Slugs = append(result.Slugs, slug)
	}

	return result
}

// generateOne generates and stores a single blog post, returning its slug.
func (s *Scheduler) generateOne(ctx context.Context, item BatchItem) (string, error) {
	if strings.TrimSpace(item.Topic) == "" {
		return "", fmt.Errorf("topic is required")
	}

	category := item.Category
	if category == "" {
		category = "General"
	}
	wordRange, ok := wordRanges[item.Length]
	if !ok {
		wordRange = wordRanges["medium"]
	}
	locationContext := ""
	if item.LocationName != "" {
		locationContext = fmt.Sprintf("Focus on the %s area.", item.LocationName)
	}

	rendered, err := prompt.Render(prompt.TemplateScheduledBlogPost, map[string]string{
		"topic":               item.Topic,
		"category":            category,
		"brandName":           s.catalog.Brand.Name,
		"primaryLocationName": s.catalog.Brand.PrimaryLocation,
		"locationContext":     locationContext,
		"wordRange":           wordRange,
	})
	if err != nil {
		return "", err
	}

	now := s.now()
	key := fmt.Sprintf("blog:scheduled:%d", now.UnixMilli())

	// Force generation: the timestamped key never hits the cache, and the
	// ai_content row doubles as an audit trail for the raw response.
	res, err := s.generator.Generate(ctx, key, rendered, "", true)
	if err != nil {
		return "", err
	}

	title, excerpt, body := parseStructuredPost(res.Content, item.Topic)

	post := &models.BlogPost{
		Slug:       fmt.Sprintf("%s-%d", site.Slugify(title, 50), now.UnixMilli()),
		Title:      title,
		Excerpt:    excerpt,
		Content:    body,
		HowCreated: fmt.Sprintf("AI-assisted (%s)", res.Provider),
	}
	if _, err := s.blogs.CreateBlogPost(ctx, post); err != nil {
		return "", fmt.Errorf("saving blog post: %w", err)
	}

	return post.Slug, nil
}

var (
	titleRe   = regexp.MustCompile(`(?s)TITLE:\s*(.+?)(?:\n|EXCERPT:)`)
	excerptRe = regexp.MustCompile(`(?s)EXCERPT:\s*(.+?)(?:\n|CONTENT:)`)
	contentRe = regexp.MustCompile(`(?s)CONTENT:\s*(.+)`)
)

// parseStructuredPost splits a TITLE/EXCERPT/CONTENT response into its
// parts. When the model ignores the format, the topic becomes the title and
// the raw text becomes the body.
func parseStructuredPost(raw, topic string) (title, excerpt, body string) {
	title = topic
	if m := titleRe.FindStringSubmatch(raw); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			title = t
		}
	}

	if m := excerptRe.FindStringSubmatch(raw); m != nil {
		excerpt = strings.TrimSpace(m[1])
	}
	if excerpt == "" {
		excerpt = raw
		if len(excerpt) > 150 {
			excerpt = excerpt[:150]
		}
	}

	body = raw
	if m := contentRe.FindStringSubmatch(raw); m != nil {
		if b := strings.TrimSpace(m[1]); b != "" {
			body = b
		}
	}

	return title, excerpt, body
}

package quality

import (
	"testing"

	"github.com/hoanghai1803/localpages/internal/contentkey"
)

func TestBuildReportCountsByPageType(t *testing.T) {
	items := []Item{
		{
			Key:           contentkey.ServiceInLocation("cricklade", "blocked-drains"),
			Content:       goodLocalContent(),
			HumanReviewed: true,
			Indexable:     true,
			LocationName:  "Cricklade",
		},
		{
			// Thin, unreviewed, but live on the site: the at-risk case.
			Key:          contentkey.ServiceInLocation("purton", "blocked-drains"),
			Content:      "we unblock drains fast",
			Indexable:    true,
			LocationName: "Purton",
		},
		{
			// Non-scorable entries are skipped entirely.
			Key:       contentkey.Home(),
			Content:   "short intro",
			Indexable: true,
		},
		{
			Key:       contentkey.Blog("1"),
			Content:   genWords("post", 950) + " Learn more about our services and read more on the blog. Contact us.",
			Indexable: false,
		},
	}

	report := BuildReport(items, knownLocations, DefaultOverlapThreshold)

	if report.TotalScored != 3 {
		t.Errorf("TotalScored = %d, want 3", report.TotalScored)
	}
	if report.TotalRed != 1 {
		t.Errorf("TotalRed = %d, want 1", report.TotalRed)
	}
	if report.TotalAtRisk != 1 {
		t.Errorf("TotalAtRisk = %d, want 1", report.TotalAtRisk)
	}

	sil := report.ByPageType[contentkey.PageTypeServiceInLocation]
	if sil.Green != 1 || sil.Red != 1 {
		t.Errorf("service-in-location counts = %+v, want 1 green / 1 red", sil)
	}
	if sil.IndexableAtRisk != 1 {
		t.Errorf("service-in-location IndexableAtRisk = %d, want 1", sil.IndexableAtRisk)
	}

	if _, ok := report.ByPageType[contentkey.PageTypeHome]; ok {
		t.Error("home entries must not be scored")
	}

	blog := report.ByPageType[contentkey.PageTypeBlog]
	if blog.Green+blog.Amber+blog.Red != 1 {
		t.Errorf("blog counts = %+v, want exactly one scored post", blog)
	}
}

func TestBuildReportSeparatesBlogAndPageCorpora(t *testing.T) {
	// A blog post and a page sharing an intro must not flag each other:
	// uniqueness compares within a vertical, not across.
	intro := genWords("shared", 100)
	pageTail := " Contact us today."
	blogTail := " Learn more about our services and read more on the blog."

	items := []Item{
		{Key: contentkey.Service("drain-jetting"), Content: intro + " " + genWords("a", 550) + pageTail, HumanReviewed: true},
		{Key: contentkey.Service("cctv"), Content: genWords("b", 650) + pageTail, HumanReviewed: true},
		{Key: contentkey.Blog("1"), Content: intro + " " + genWords("c", 850) + blogTail, HumanReviewed: true, Indexable: true},
		{Key: contentkey.Blog("2"), Content: genWords("d", 950) + blogTail, HumanReviewed: true, Indexable: true},
	}

	report := BuildReport(items, nil, DefaultOverlapThreshold)

	// Every item clears the other heuristics, so a non-green anywhere would
	// mean the shared intro was compared across verticals.
	svc := report.ByPageType[contentkey.PageTypeService]
	if svc.Green != 2 {
		t.Errorf("service counts = %+v, want 2 green", svc)
	}
	blog := report.ByPageType[contentkey.PageTypeBlog]
	if blog.Green != 2 {
		t.Errorf("blog counts = %+v, want 2 green", blog)
	}
}

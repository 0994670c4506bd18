package quality

import (
	"strings"
	"testing"

	"github.com/hoanghai1803/localpages/internal/contentkey"
)

var knownLocations = []string{"Swindon", "Cricklade", "Purton"}

// goodLocalContent builds service-in-location content that satisfies every
// heuristic: deep enough, locally specific, and fully cross-linked.
func goodLocalContent() string {
	return genWords("body", 700) +
		" We cover Cricklade and nearby Purton properties." +
		" Learn more about our services, the areas we cover, and contact us today."
}

func TestCalculateGreen(t *testing.T) {
	score := Calculate(goodLocalContent(), contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  true,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})

	if score.Status != StatusGreen {
		t.Fatalf("Status = %s, want green; signals: %+v", score.Status, score.Signals)
	}
	if score.Score != 95 {
		t.Errorf("Score = %d, want 95", score.Score)
	}
	if score.Summary != "Ready for indexing." {
		t.Errorf("Summary = %q", score.Summary)
	}
	if len(score.Signals) != 5 {
		t.Errorf("got %d signals, want 5", len(score.Signals))
	}
}

func TestCalculateRedThinUnreviewedPage(t *testing.T) {
	content := strings.Join([]string{"we", "unblock", "drains", "fast"}, " ")

	score := Calculate(content, contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  false,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})

	if score.Status != StatusRed {
		t.Fatalf("Status = %s, want red; signals: %+v", score.Status, score.Signals)
	}
	// Three errors (depth, local specificity, linking) and one warning
	// (review status): 30 - 30 - 5 clamps to 0.
	if score.Score != 0 {
		t.Errorf("Score = %d, want 0", score.Score)
	}
	if score.Summary != "Not ready for indexing. Address critical issues first." {
		t.Errorf("Summary = %q", score.Summary)
	}
}

func TestCalculateSingleErrorUnreviewedIsRed(t *testing.T) {
	// One error is tolerable on reviewed content but red without a human
	// sign-off.
	content := genWords("body", 300) +
		" We cover Cricklade and nearby Purton properties." +
		" Learn more about our services, the areas we cover, and contact us today."

	reviewed := Calculate(content, contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  true,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})
	if reviewed.Status != StatusAmber {
		t.Errorf("reviewed Status = %s, want amber; signals: %+v", reviewed.Status, reviewed.Signals)
	}

	thin := genWords("body", 100) +
		" We cover Cricklade and nearby Purton properties." +
		" Learn more about our services, the areas we cover, and contact us today."
	unreviewed := Calculate(thin, contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  false,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})
	if unreviewed.Status != StatusRed {
		t.Errorf("unreviewed Status = %s, want red; signals: %+v", unreviewed.Status, unreviewed.Signals)
	}
}

func TestCalculateAmberMinorIssues(t *testing.T) {
	// Reviewed, but word count sits in the warning band.
	content := genWords("body", 600) +
		" We cover Cricklade and nearby Purton properties." +
		" Learn more about our services, the areas we cover, and contact us today."

	score := Calculate(content, contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  true,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})

	if score.Status != StatusAmber {
		t.Fatalf("Status = %s, want amber; signals: %+v", score.Status, score.Signals)
	}
	if score.Score != 75 {
		t.Errorf("Score = %d, want 75", score.Score)
	}
	if score.Summary != "Review and improve minor issues." {
		t.Errorf("Summary = %q", score.Summary)
	}
}

func TestCalculateUnreviewedNeverGreen(t *testing.T) {
	score := Calculate(goodLocalContent(), contentkey.PageTypeServiceInLocation, Input{
		HumanReviewed:  false,
		LocationName:   "Cricklade",
		KnownLocations: knownLocations,
	})

	if score.Status != StatusAmber {
		t.Fatalf("Status = %s, want amber for unreviewed content", score.Status)
	}
}

func TestCalculateOverlapThresholdTunable(t *testing.T) {
	// Intros share 70 of their first 100 words: overlap 0.7 flags under a
	// strict threshold but not a lax one.
	shared := genWords("shared", 70)
	content := shared + " " + genWords("a", 130)
	siblings := []string{
		shared + " " + genWords("b", 130),
		shared + " " + genWords("c", 130),
	}

	strict := Calculate(content, contentkey.PageTypeBlog, Input{
		HumanReviewed:    true,
		Siblings:         siblings,
		OverlapThreshold: 0.3,
	})
	lax := Calculate(content, contentkey.PageTypeBlog, Input{
		HumanReviewed:    true,
		Siblings:         siblings,
		OverlapThreshold: 0.99,
	})

	strictUniq := signalByID(t, strict.Signals, "uniqueness")
	laxUniq := signalByID(t, lax.Signals, "uniqueness")
	if strictUniq.Passed {
		t.Error("strict threshold should flag the shared intro")
	}
	if !laxUniq.Passed {
		t.Error("lax threshold should allow the shared intro")
	}
}

func signalByID(t *testing.T, signals []Signal, id string) Signal {
	t.Helper()
	for _, s := range signals {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("signal %q not found", id)
	return Signal{}
}

func TestIndexingRecommendation(t *testing.T) {
	tests := []struct {
		status          Status
		indexable       bool
		wantRecommended bool
		wantWarning     bool
	}{
		{StatusGreen, false, true, false},
		{StatusGreen, true, true, false},
		{StatusAmber, true, false, true},
		{StatusAmber, false, false, true},
		{StatusRed, true, false, true},
		{StatusRed, false, false, true},
	}

	for _, tt := range tests {
		rec := IndexingRecommendation(tt.status, tt.indexable)
		if rec.Recommended != tt.wantRecommended {
			t.Errorf("IndexingRecommendation(%s, %v).Recommended = %v, want %v",
				tt.status, tt.indexable, rec.Recommended, tt.wantRecommended)
		}
		if (rec.Warning != "") != tt.wantWarning {
			t.Errorf("IndexingRecommendation(%s, %v).Warning = %q", tt.status, tt.indexable, rec.Warning)
		}
	}

	red := IndexingRecommendation(StatusRed, true)
	if !strings.Contains(red.Warning, "should NOT be indexed") {
		t.Errorf("indexable red warning = %q, want the hard stop message", red.Warning)
	}
}

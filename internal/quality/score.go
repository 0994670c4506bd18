// Package quality scores generated content against the heuristics that gate
// whether a page is safe to expose to search engines: text depth, local
// specificity, internal linking, uniqueness against sibling pages, and human
// review status.
//
// Scoring is deterministic and side-effect-free. Scores are recomputed on
// every dashboard view and never stored.
package quality

import "github.com/hoanghai1803/localpages/internal/contentkey"

// Status is the tri-state quality verdict.
type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

// DefaultOverlapThreshold is the word-set overlap above which two intros or
// conclusions count as duplicates. It is deliberately tunable; see Input.
const DefaultOverlapThreshold = 0.7

// Input carries the context a score is computed against.
type Input struct {
	// HumanReviewed is the entry's review flag.
	HumanReviewed bool
	// LocationName is the display name of the page's own location, when the
	// page type has one. Empty disables the local-specificity check.
	LocationName string
	// KnownLocations are the display names of every location in the site
	// catalog, used to detect nearby-area mentions.
	KnownLocations []string
	// Siblings is the corpus of other content bodies the uniqueness check
	// compares against. Fewer than two siblings disables the check.
	Siblings []string
	// OverlapThreshold overrides DefaultOverlapThreshold when > 0.
	OverlapThreshold float64
}

// Score is the aggregate quality verdict for one piece of content.
type Score struct {
	Status  Status   `json:"status"`
	Score   int      `json:"score"`
	Signals []Signal `json:"signals"`
	Summary string   `json:"summary"`
}

// Calculate runs all five signal checks and folds them into a status, a
// 0-100 score, and a summary line.
func Calculate(content string, pageType contentkey.PageType, in Input) Score {
	threshold := in.OverlapThreshold
	if threshold <= 0 {
		threshold = DefaultOverlapThreshold
	}

	signals := []Signal{
		checkTextDepth(content, pageType),
		checkLocalSpecificity(content, in.LocationName, in.KnownLocations, pageType),
		checkInternalLinking(content, pageType),
		checkUniqueness(content, in.Siblings, threshold),
		checkReviewStatus(in.HumanReviewed),
	}

	errors, warnings, passed := 0, 0, 0
	for _, s := range signals {
		if s.Passed {
			passed++
			continue
		}
		switch s.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	var (
		status  Status
		score   int
		summary string
	)
	switch {
	case errors >= 2 || (errors >= 1 && !in.HumanReviewed):
		status = StatusRed
		score = max(0, 30-errors*10-warnings*5)
		summary = "Not ready for indexing. Address critical issues first."
	case errors >= 1 || warnings >= 2:
		status = StatusAmber
		score = max(40, 70-errors*15-warnings*10)
		summary = "Needs improvement before indexing."
	case warnings >= 1 || !in.HumanReviewed:
		status = StatusAmber
		score = max(50, 85-warnings*10)
		summary = "Review and improve minor issues."
	default:
		status = StatusGreen
		score = 90 + passed
		summary = "Ready for indexing."
	}

	return Score{Status: status, Score: min(100, score), Signals: signals, Summary: summary}
}

// Recommendation is the dashboard's indexing advice derived from a status.
type Recommendation struct {
	Recommended bool   `json:"recommended"`
	Warning     string `json:"warning,omitempty"`
}

// IndexingRecommendation maps a status and the entry's current indexable
// flag to advice. Only green content is ever recommended for indexing; red
// content that is currently indexable is the at-risk condition the dashboard
// surfaces most prominently.
func IndexingRecommendation(status Status, currentlyIndexable bool) Recommendation {
	switch status {
	case StatusGreen:
		return Recommendation{Recommended: true}
	case StatusAmber:
		if currentlyIndexable {
			return Recommendation{Warning: "This page has quality issues. Review before keeping it indexable."}
		}
		return Recommendation{Warning: "Review and improve before enabling indexing."}
	default:
		if currentlyIndexable {
			return Recommendation{Warning: "WARNING: This page has critical quality issues and should NOT be indexed."}
		}
		return Recommendation{Warning: "Do not index until critical issues are resolved."}
	}
}

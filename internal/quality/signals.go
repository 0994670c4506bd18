package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hoanghai1803/localpages/internal/contentkey"
)

// Severity ranks how bad a failed signal is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Signal is the result of one heuristic check against a piece of content.
// Signals are computed on demand and never persisted.
type Signal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// wordCountThresholds holds the per-page-type word targets. Content at or
// above target passes; between warn and target is a warning; below warn is
// an error.
type wordCountThresholds struct {
	target int
	warn   int
}

var wordCountByPageType = map[contentkey.PageType]wordCountThresholds{
	contentkey.PageTypeServiceInLocation: {target: 700, warn: 500},
	contentkey.PageTypeLocation:          {target: 500, warn: 350},
	contentkey.PageTypeService:           {target: 600, warn: 400},
	contentkey.PageTypeSubService:        {target: 400, warn: 250},
	contentkey.PageTypeBlog:              {target: 900, warn: 600},
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// Words splits content into words after stripping HTML tags and collapsing
// whitespace. This is the word model every signal shares.
func Words(content string) []string {
	return strings.Fields(htmlTagRe.ReplaceAllString(content, " "))
}

// WordCount returns the number of words in the content.
func WordCount(content string) int {
	return len(Words(content))
}

// checkTextDepth compares the content's word count against the page type's
// thresholds.
func checkTextDepth(content string, pageType contentkey.PageType) Signal {
	count := WordCount(content)
	th := wordCountByPageType[pageType]

	switch {
	case count >= th.target:
		return Signal{
			ID: "text-depth", Name: "Text Depth", Passed: true, Severity: SeverityInfo,
			Message: fmt.Sprintf("Word count (%d) meets target of %d+", count, th.target),
		}
	case count >= th.warn:
		return Signal{
			ID: "text-depth", Name: "Text Depth", Passed: false, Severity: SeverityWarning,
			Message: fmt.Sprintf("Word count (%d) is below target of %d. Consider expanding content.", count, th.target),
		}
	default:
		return Signal{
			ID: "text-depth", Name: "Text Depth", Passed: false, Severity: SeverityError,
			Message: fmt.Sprintf("Word count (%d) is critically low. Minimum %d recommended for this page type.", count, th.warn),
		}
	}
}

// localKeywords are generic terms that indicate the text talks about the
// area rather than the trade in the abstract.
var localKeywords = []string{
	"property",
	"properties",
	"homes",
	"houses",
	"estate",
	"area",
	"neighbourhood",
	"local",
	"residents",
	"community",
}

// localPageTypes are the page types where local specificity applies.
func localSpecificityApplies(pageType contentkey.PageType) bool {
	switch pageType {
	case contentkey.PageTypeServiceInLocation, contentkey.PageTypeLocation, contentkey.PageTypeSubService:
		return true
	}
	return false
}

// checkLocalSpecificity scores three independent conditions: the content
// mentions its own location, mentions at least one other known location, and
// uses at least one local keyword. Two of three is a pass.
func checkLocalSpecificity(content, locationName string, knownLocations []string, pageType contentkey.PageType) Signal {
	if locationName == "" || !localSpecificityApplies(pageType) {
		return Signal{
			ID: "local-specificity", Name: "Local Specificity", Passed: true, Severity: SeverityInfo,
			Message: "Not applicable for this page type",
		}
	}

	contentLower := strings.ToLower(content)
	locationLower := strings.ToLower(locationName)

	hasPrimary := strings.Contains(contentLower, locationLower)

	hasNearby := false
	for _, name := range knownLocations {
		nameLower := strings.ToLower(name)
		if nameLower == locationLower {
			continue
		}
		if strings.Contains(contentLower, nameLower) {
			hasNearby = true
			break
		}
	}

	hasDetail := false
	for _, kw := range localKeywords {
		if strings.Contains(contentLower, kw) {
			hasDetail = true
			break
		}
	}

	score := 0
	for _, ok := range []bool{hasPrimary, hasNearby, hasDetail} {
		if ok {
			score++
		}
	}

	switch {
	case score >= 2:
		return Signal{
			ID: "local-specificity", Name: "Local Specificity", Passed: true, Severity: SeverityInfo,
			Message: "Good local references found",
		}
	case score == 1:
		return Signal{
			ID: "local-specificity", Name: "Local Specificity", Passed: false, Severity: SeverityWarning,
			Message: fmt.Sprintf("Weak local references for %s. Consider adding nearby areas or local details.", locationName),
		}
	default:
		return Signal{
			ID: "local-specificity", Name: "Local Specificity", Passed: false, Severity: SeverityError,
			Message: fmt.Sprintf("Missing local references for %s. Add town name, nearby areas, and local context.", locationName),
		}
	}
}

// checkInternalLinking looks for link-indicating phrases. The required set
// depends on page type: service-in-location pages should reference the
// service, location, and contact pages; blog posts should reference a
// service or location page plus the blog index; everything else just needs a
// contact reference.
func checkInternalLinking(content string, pageType contentkey.PageType) Signal {
	contentLower := strings.ToLower(content)

	containsAny := func(phrases ...string) bool {
		for _, p := range phrases {
			if strings.Contains(contentLower, p) {
				return true
			}
		}
		return false
	}

	hasService := containsAny("/services", "our services", "learn more about")
	hasLocation := containsAny("/locations", "service area", "areas we cover")
	hasContact := containsAny("/contact", "get in touch", "request a quote", "call us", "contact us")
	hasBlog := containsAny("/blog", "read more")

	var required, found []string
	switch pageType {
	case contentkey.PageTypeServiceInLocation:
		required = []string{"service page", "location page", "contact page"}
		if hasService {
			found = append(found, "service page")
		}
		if hasLocation {
			found = append(found, "location page")
		}
		if hasContact {
			found = append(found, "contact page")
		}
	case contentkey.PageTypeBlog:
		required = []string{"service/location page", "blog index"}
		if hasService || hasLocation {
			found = append(found, "service/location page")
		}
		if hasBlog {
			found = append(found, "blog index")
		}
	default:
		required = []string{"contact page"}
		if hasContact {
			found = append(found, "contact page")
		}
	}

	linkScore := float64(len(found)) / float64(len(required))

	switch {
	case linkScore >= 0.75:
		return Signal{
			ID: "internal-linking", Name: "Internal Linking", Passed: true, Severity: SeverityInfo,
			Message: "Good internal linking structure",
		}
	case linkScore >= 0.5:
		missing := make([]string, 0, len(required))
		for _, req := range required {
			present := false
			for _, f := range found {
				if f == req {
					present = true
					break
				}
			}
			if !present {
				missing = append(missing, req)
			}
		}
		return Signal{
			ID: "internal-linking", Name: "Internal Linking", Passed: false, Severity: SeverityWarning,
			Message: "Missing links to: " + strings.Join(missing, ", "),
		}
	default:
		return Signal{
			ID: "internal-linking", Name: "Internal Linking", Passed: false, Severity: SeverityError,
			Message: "Weak internal linking. Add links to: " + strings.Join(required, ", "),
		}
	}
}

// sliceWords returns the first (or, when fromEnd is true, last) n words of
// the text, lowercased and joined with single spaces.
func sliceWords(text string, n int, fromEnd bool) string {
	words := Words(text)
	if len(words) > n {
		if fromEnd {
			words = words[len(words)-n:]
		} else {
			words = words[:n]
		}
	}
	return strings.ToLower(strings.Join(words, " "))
}

// wordSet builds the set of distinct words in a space-joined slice.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Split(s, " ") {
		set[w] = struct{}{}
	}
	return set
}

// overlap computes |current ∩ other| / |current|.
func overlap(current, other map[string]struct{}) float64 {
	matches := 0
	for w := range current {
		if _, ok := other[w]; ok {
			matches++
		}
	}
	denom := len(current)
	if denom < 1 {
		denom = 1
	}
	return float64(matches) / float64(denom)
}

// checkUniqueness compares the first and last 100 words of the content
// against the same slices of every sibling text. The overlap threshold is a
// tunable heuristic, not a precise duplicate detector: short formulaic
// openings can false-positive.
func checkUniqueness(content string, siblings []string, threshold float64) Signal {
	if len(siblings) < 2 {
		return Signal{
			ID: "uniqueness", Name: "Uniqueness", Passed: true, Severity: SeverityInfo,
			Message: "Unable to check (not enough content for comparison)",
		}
	}

	introSet := wordSet(sliceWords(content, 100, false))
	concSet := wordSet(sliceWords(content, 100, true))

	duplicateIntros := 0
	duplicateConclusions := 0

	for _, other := range siblings {
		if other == content {
			continue
		}
		if overlap(introSet, wordSet(sliceWords(other, 100, false))) > threshold {
			duplicateIntros++
		}
		if overlap(concSet, wordSet(sliceWords(other, 100, true))) > threshold {
			duplicateConclusions++
		}
	}

	switch {
	case duplicateIntros == 0 && duplicateConclusions == 0:
		return Signal{
			ID: "uniqueness", Name: "Uniqueness", Passed: true, Severity: SeverityInfo,
			Message: "Content appears unique",
		}
	case duplicateIntros > 0 && duplicateConclusions > 0:
		return Signal{
			ID: "uniqueness", Name: "Uniqueness", Passed: false, Severity: SeverityError,
			Message: fmt.Sprintf("Introduction and conclusion are very similar to %d other page(s). Consider editing for uniqueness.", duplicateIntros),
		}
	default:
		return Signal{
			ID: "uniqueness", Name: "Uniqueness", Passed: false, Severity: SeverityWarning,
			Message: "Some sections appear similar to other pages. Review and differentiate.",
		}
	}
}

// checkReviewStatus passes only when a human has signed the content off.
func checkReviewStatus(humanReviewed bool) Signal {
	if humanReviewed {
		return Signal{
			ID: "review-status", Name: "Review Status", Passed: true, Severity: SeverityInfo,
			Message: "Content has been human reviewed",
		}
	}
	return Signal{
		ID: "review-status", Name: "Review Status", Passed: false, Severity: SeverityWarning,
		Message: "Content has not been human reviewed",
	}
}

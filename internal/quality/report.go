package quality

import "github.com/hoanghai1803/localpages/internal/contentkey"

// Item is one scorable content unit as the dashboard sees it.
type Item struct {
	Key           contentkey.Key
	Content       string
	HumanReviewed bool
	Indexable     bool
	// LocationName is the resolved display name for the item's location
	// slug, empty when the page type has none.
	LocationName string
}

// Counts aggregates statuses for one page type. IndexableAtRisk counts items
// that are currently indexable but scored below green.
type Counts struct {
	Green           int `json:"green"`
	Amber           int `json:"amber"`
	Red             int `json:"red"`
	IndexableAtRisk int `json:"indexable_at_risk"`
}

// Report is the dashboard summary across all scorable content.
type Report struct {
	ByPageType  map[contentkey.PageType]Counts `json:"by_page_type"`
	TotalRed    int                            `json:"total_red"`
	TotalAtRisk int                            `json:"total_at_risk"`
	TotalScored int                            `json:"total_scored"`
}

// BuildReport scores every item and tallies statuses per page type.
//
// The uniqueness sibling corpus for an item is the full set of content
// bodies in the same vertical: blog posts compare against blog posts, page
// content against page content.
func BuildReport(items []Item, knownLocations []string, overlapThreshold float64) Report {
	var pageContents, blogContents []string
	for _, item := range items {
		if item.Key.Type == contentkey.PageTypeBlog {
			blogContents = append(blogContents, item.Content)
		} else {
			pageContents = append(pageContents, item.Content)
		}
	}

	report := Report{ByPageType: make(map[contentkey.PageType]Counts)}

	for _, item := range items {
		if !item.Key.Type.IsScorable() {
			continue
		}

		siblings := pageContents
		if item.Key.Type == contentkey.PageTypeBlog {
			siblings = blogContents
		}

		score := Calculate(item.Content, item.Key.Type, Input{
			HumanReviewed:    item.HumanReviewed,
			LocationName:     item.LocationName,
			KnownLocations:   knownLocations,
			Siblings:         siblings,
			OverlapThreshold: overlapThreshold,
		})

		counts := report.ByPageType[item.Key.Type]
		switch score.Status {
		case StatusGreen:
			counts.Green++
		case StatusAmber:
			counts.Amber++
		case StatusRed:
			counts.Red++
			report.TotalRed++
		}
		if item.Indexable && score.Status != StatusGreen {
			counts.IndexableAtRisk++
			report.TotalAtRisk++
		}
		report.ByPageType[item.Key.Type] = counts
		report.TotalScored++
	}

	return report
}

package entity

import "time"

// Headline is a single news item fetched from the news feed.
type Headline struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}

// MergeHeadlines appends the items of add that are not already in base, keyed by link.
func MergeHeadlines(base, add []Headline) []Headline {
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]Headline, 0, len(base)+len(add))
	for _, h := range base {
		if _, ok := seen[h.Link]; ok {
			continue
		}
		seen[h.Link] = struct{}{}
		out = append(out, h)
	}
	for _, h := range add {
		if _, ok := seen[h.Link]; ok {
			continue
		}
		seen[h.Link] = struct{}{}
		out = append(out, h)
	}
	return out
}

package model

// MergeSummary is the deterministic accounting of one merge: which names were
// added, which had hours updated, which were carried over untouched, and which
// kept their stored rate because the document showed zero.
type MergeSummary struct {
	Added         []string `json:"added"`
	Updated       []string `json:"updated"`
	Carried       []string `json:"carried"`
	RatePreserved []string `json:"rate_preserved"`
}

// Total returns the size of the merged roster the summary describes.
func (m MergeSummary) Total() int {
	return len(m.Added) + len(m.Updated) + len(m.Carried)
}

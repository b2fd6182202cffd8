package domain

// SearchResult is one hit returned by the search gateway. Results are
// immutable once received; display order follows gateway order.
type SearchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Heading is a single entry in a page's outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Outline is the heading structure of a page in document order. The
// gateway makes no promise that levels nest properly; indentation is
// derived from Level alone.
//
// A nil *Outline means the fetch failed (absent). A non-nil Outline with
// an empty Structure means the page genuinely has no headings. The two
// render differently.
type Outline struct {
	URL       string    `json:"url,omitempty"`
	Title     string    `json:"title,omitempty"`
	Structure []Heading `json:"structure"`
}

// OutlinePhase tracks the enrichment lifecycle of one result item.
// A view leaves OutlineLoading at most once.
type OutlinePhase int

const (
	OutlineLoading OutlinePhase = iota
	OutlinePopulated
	OutlineEmpty
	OutlineFailed
)

func (p OutlinePhase) String() string {
	switch p {
	case OutlineLoading:
		return "loading"
	case OutlinePopulated:
		return "populated"
	case OutlineEmpty:
		return "empty"
	case OutlineFailed:
		return "failed"
	}
	return "unknown"
}

// SearchPhase tracks the top-level state of the results surface. It is
// independent of the per-item outline phases it spawns.
type SearchPhase int

const (
	SearchIdle SearchPhase = iota
	SearchInFlight
	SearchPopulated
	SearchFailed
)

func (p SearchPhase) String() string {
	switch p {
	case SearchIdle:
		return "idle"
	case SearchInFlight:
		return "searching"
	case SearchPopulated:
		return "populated"
	case SearchFailed:
		return "failed"
	}
	return "unknown"
}

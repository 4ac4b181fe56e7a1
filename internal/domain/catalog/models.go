package catalog

import (
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/timeutil"
)

// SortBy selects how search results are ordered upstream.
type SortBy string

const (
	SortNone        SortBy = ""
	SortName        SortBy = "name"
	SortMetacritic  SortBy = "metacritic"
	SortReleaseDate SortBy = "released"
	SortRating      SortBy = "rating"
)

// ParseSortBy maps a user-facing sort name to a SortBy. Unknown values are reported as false.
func ParseSortBy(raw string) (SortBy, bool) {
	switch SortBy(strings.ToLower(strings.TrimSpace(raw))) {
	case SortNone:
		return SortNone, true
	case SortName:
		return SortName, true
	case SortMetacritic:
		return SortMetacritic, true
	case SortReleaseDate, "release_date", "releasedate":
		return SortReleaseDate, true
	case SortRating:
		return SortRating, true
	default:
		return SortNone, false
	}
}

// GameSummary is a single catalog search hit.
type GameSummary struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Metacritic      *int           `json:"metacritic,omitempty"`
	Released        *timeutil.Date `json:"released,omitempty"`
	Platforms       []string       `json:"platforms"`
	Genres          []string       `json:"genres"`
	BackgroundImage string         `json:"backgroundImage,omitempty"`
}

// GameDetails is the long-form record for a single title.
type GameDetails struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Screenshots []string `json:"screenshots"`
	Platforms   []string `json:"platforms"`
	Genres      []string `json:"genres"`
	Metacritic  *int     `json:"metacritic,omitempty"`
}

// SearchQuery describes one page of a catalog search.
type SearchQuery struct {
	Text      string
	Platforms []string
	Genres    []string
	Page      int
	PageSize  int
	Sort      SortBy
}

// SearchResult is a page of summaries plus the upstream total.
type SearchResult struct {
	Items []GameSummary `json:"results"`
	Total int           `json:"count"`
}

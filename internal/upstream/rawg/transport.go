package rawg

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
)

func normalizeBaseURL(base string) string {
	return strings.TrimSuffix(strings.TrimSpace(base), "/")
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func orderingToken(sort catalog.SortBy) string {
	switch sort {
	case catalog.SortName:
		return "name"
	case catalog.SortMetacritic:
		return "-metacritic"
	case catalog.SortReleaseDate:
		return "-released"
	case catalog.SortRating:
		return "-rating"
	default:
		return ""
	}
}

// searchURL assembles the upstream search request. url.Values encodes keys in
// sorted order, so equal queries always yield the same string.
func (c *Client) searchURL(q catalog.SearchQuery) string {
	page, pageSize := normalizePaging(q.Page, q.PageSize)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	if text := strings.TrimSpace(q.Text); text != "" {
		params.Set("search", text)
		params.Set("search_precise", "true")
		params.Set("search_exact", "true")
		params.Set("exclude_additions", "true")
	}
	if platforms := joinNonBlank(q.Platforms); platforms != "" {
		params.Set("platforms", platforms)
	}
	if genres := joinNonBlank(q.Genres); genres != "" {
		params.Set("genres", genres)
	}
	if ordering := orderingToken(q.Sort); ordering != "" {
		params.Set("ordering", ordering)
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	return c.baseURL + "/games?" + params.Encode()
}

func (c *Client) gameURL(id int, suffix string) string {
	u := c.baseURL + "/games/" + strconv.Itoa(id) + suffix
	if c.apiKey == "" {
		return u
	}
	return u + "?" + url.Values{"key": {c.apiKey}}.Encode()
}

func joinNonBlank(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ",")
}

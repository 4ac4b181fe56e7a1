package rawg

import (
	"github.com/preston-bernstein/gamescout-service/internal/domain/catalog"
	"github.com/preston-bernstein/gamescout-service/internal/timeutil"
)

func mapSearchResult(payload listResponse) catalog.SearchResult {
	items := make([]catalog.GameSummary, 0, len(payload.Results))
	for _, g := range payload.Results {
		items = append(items, mapSummary(g))
	}
	return catalog.SearchResult{Items: items, Total: payload.Count}
}

func mapSummary(g gameResponse) catalog.GameSummary {
	return catalog.GameSummary{
		ID:              g.ID,
		Name:            g.Name.String(),
		Metacritic:      g.Metacritic.Ptr(),
		Released:        timeutil.ParseOptionalDate(g.Released.String()),
		Platforms:       platformNames(g.Platforms),
		Genres:          genreNames(g.Genres),
		BackgroundImage: g.BackgroundImage.String(),
	}
}

func mapDetails(d detailResponse, shots screenshotsResponse) catalog.GameDetails {
	screenshots := make([]string, 0, len(shots.Results))
	for _, s := range shots.Results {
		if img := s.Image.String(); img != "" {
			screenshots = append(screenshots, img)
		}
	}
	return catalog.GameDetails{
		ID:          d.ID,
		Name:        d.Name.String(),
		Description: describe(d),
		Screenshots: screenshots,
		Platforms:   platformNames(d.Platforms),
		Genres:      genreNames(d.Genres),
		Metacritic:  d.Metacritic.Ptr(),
	}
}

// platformNames flattens {platform:{name}} wrappers, keeping upstream order and duplicates.
func platformNames(wrappers []platformWrapper) []string {
	names := make([]string, 0, len(wrappers))
	for _, w := range wrappers {
		if w.Platform == nil || w.Platform.Name.String() == "" {
			continue
		}
		names = append(names, w.Platform.Name.String())
	}
	return names
}

func genreNames(wrappers []nameWrapper) []string {
	names := make([]string, 0, len(wrappers))
	for _, w := range wrappers {
		if w.Name.String() == "" {
			continue
		}
		names = append(names, w.Name.String())
	}
	return names
}

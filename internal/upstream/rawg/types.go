package rawg

import "github.com/preston-bernstein/gamescout-service/internal/upstream"

// Ids and counts stay strict: a payload without them is structurally broken.
// Display fields decode leniently and degrade to empty or absent.

type listResponse struct {
	Count   int            `json:"count"`
	Results []gameResponse `json:"results"`
}

type gameResponse struct {
	ID              int                 `json:"id"`
	Name            upstream.FlexString `json:"name"`
	Released        upstream.FlexString `json:"released"`
	Metacritic      upstream.FlexInt    `json:"metacritic"`
	BackgroundImage upstream.FlexString `json:"background_image"`
	Platforms       []platformWrapper   `json:"platforms"`
	Genres          []nameWrapper       `json:"genres"`
}

type detailResponse struct {
	ID             int                 `json:"id"`
	Name           upstream.FlexString `json:"name"`
	Description    upstream.FlexString `json:"description"`
	DescriptionRaw upstream.FlexString `json:"description_raw"`
	Metacritic     upstream.FlexInt    `json:"metacritic"`
	Platforms      []platformWrapper   `json:"platforms"`
	Genres         []nameWrapper       `json:"genres"`
}

type screenshotsResponse struct {
	Results []screenshotResponse `json:"results"`
}

type screenshotResponse struct {
	Image upstream.FlexString `json:"image"`
}

type platformWrapper struct {
	Platform *nameWrapper `json:"platform"`
}

type nameWrapper struct {
	Name upstream.FlexString `json:"name"`
}

package rawg

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/gamescout-service/internal/upstream"
)

func TestMapSummaryFlattensWrappers(t *testing.T) {
	g := gameResponse{
		ID:         3498,
		Name:       "Grand Theft Auto V",
		Released:   "2013-09-17",
		Metacritic: upstream.IntOf(96),
		Platforms: []platformWrapper{
			{Platform: &nameWrapper{Name: "PC"}},
			{Platform: nil},
			{Platform: &nameWrapper{Name: ""}},
			{Platform: &nameWrapper{Name: "PlayStation 5"}},
			{Platform: &nameWrapper{Name: "PC"}},
		},
		Genres: []nameWrapper{{Name: "Action"}, {Name: " "}, {Name: "Adventure"}},
	}

	got := mapSummary(g)
	if got.ID != 3498 || got.Name != "Grand Theft Auto V" {
		t.Fatalf("unexpected identity %+v", got)
	}
	if got.Metacritic == nil || *got.Metacritic != 96 {
		t.Fatalf("expected metacritic 96, got %v", got.Metacritic)
	}
	if got.Released == nil || got.Released.String() != "2013-09-17" {
		t.Fatalf("expected release date, got %v", got.Released)
	}
	if want := []string{"PC", "PlayStation 5", "PC"}; !reflect.DeepEqual(got.Platforms, want) {
		t.Fatalf("expected platforms %v, got %v", want, got.Platforms)
	}
	if want := []string{"Action", "Adventure"}; !reflect.DeepEqual(got.Genres, want) {
		t.Fatalf("expected genres %v, got %v", want, got.Genres)
	}
}

func TestMapSummaryDegradesMissingFields(t *testing.T) {
	got := mapSummary(gameResponse{ID: 7, Released: "someday"})
	if got.Name != "" {
		t.Fatalf("expected empty name, got %q", got.Name)
	}
	if got.Released != nil {
		t.Fatalf("expected absent release date, got %v", got.Released)
	}
	if got.Metacritic != nil {
		t.Fatalf("expected absent metacritic")
	}
	if got.Platforms == nil || got.Genres == nil {
		t.Fatalf("expected empty, non-nil name lists")
	}
}

func TestMapDetailsSkipsEmptyScreenshots(t *testing.T) {
	d := detailResponse{ID: 1, Name: "Portal", Description: "<p>Think<br>with portals</p>"}
	shots := screenshotsResponse{Results: []screenshotResponse{{Image: "a.jpg"}, {Image: ""}, {Image: "b.jpg"}}}

	got := mapDetails(d, shots)
	if want := []string{"a.jpg", "b.jpg"}; !reflect.DeepEqual(got.Screenshots, want) {
		t.Fatalf("expected screenshots %v, got %v", want, got.Screenshots)
	}
	if got.Description != "Think\nwith portals" {
		t.Fatalf("unexpected description %q", got.Description)
	}
}

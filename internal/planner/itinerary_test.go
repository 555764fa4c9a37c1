package planner

import (
	"strings"
	"testing"
)

func TestBuildItineraryGroupsScheduleByDay(t *testing.T) {
	trip := Trip{
		Name:    "Kyoto",
		Date:    "2026-06-10",
		EndDate: "2026-06-12",
		Schedule: []ScheduleItem{
			{ID: "3", Date: "2026-06-11", Text: "Arashiyama", StartTime: "09:00"},
			{ID: "1", Date: "2026-06-10", Text: "Check in", StartTime: "15:00"},
			{ID: "2", Date: "2026-06-10", Text: "Fushimi Inari", StartTime: "10:00"},
		},
	}

	doc := BuildItinerary(trip)
	if doc.Title != "Kyoto" {
		t.Fatalf("unexpected title: %q", doc.Title)
	}
	if len(doc.Days) != 2 {
		t.Fatalf("expected 2 days, got %#v", doc.Days)
	}
	if doc.Days[0].Date != "2026-06-10" || doc.Days[1].Date != "2026-06-11" {
		t.Fatalf("days must be in ascending date order: %#v", doc.Days)
	}
	first := doc.Days[0].Items
	if len(first) != 2 || first[0].Text != "Fushimi Inari" || first[1].Text != "Check in" {
		t.Fatalf("items must sort by start time within a day: %#v", first)
	}
}

func TestBuildItineraryItemsWithoutStartTimeSortFirst(t *testing.T) {
	trip := Trip{
		Name: "Kyoto",
		Schedule: []ScheduleItem{
			{ID: "1", Date: "2026-06-10", Text: "Timed", StartTime: "08:00"},
			{ID: "2", Date: "2026-06-10", Text: "Untimed"},
		},
	}

	doc := BuildItinerary(trip)
	items := doc.Days[0].Items
	if items[0].Text != "Untimed" {
		t.Fatalf("untimed items must sort earliest: %#v", items)
	}
}

func TestBuildItineraryKeepsPlacesInStoredOrder(t *testing.T) {
	trip := Trip{
		Name: "Kyoto",
		Places: []Place{
			{Name: "Zeta"},
			{Name: "Alpha", Memo: "worth a detour"},
		},
	}

	doc := BuildItinerary(trip)
	if len(doc.Places) != 2 || doc.Places[0].Name != "Zeta" || doc.Places[1].Name != "Alpha" {
		t.Fatalf("places must keep stored order: %#v", doc.Places)
	}
	if doc.Places[1].Memo != "worth a detour" {
		t.Fatalf("memos must carry over: %#v", doc.Places[1])
	}
}

func TestRenderHTMLSubstitutesPlaceholderStartTime(t *testing.T) {
	trip := Trip{
		Name: "Kyoto",
		Schedule: []ScheduleItem{
			{ID: "1", Date: "2026-06-10", Text: "Wander"},
		},
	}

	page, err := BuildItinerary(trip).RenderHTML()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(page, "--:--") {
		t.Fatalf("missing start time must render as placeholder")
	}
	if !strings.Contains(page, "<h1>Kyoto</h1>") {
		t.Fatalf("rendered page must carry the trip title")
	}
}

func TestRenderHTMLEscapesUserContent(t *testing.T) {
	trip := Trip{Name: `<script>alert("x")</script>`}

	page, err := BuildItinerary(trip).RenderHTML()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if strings.Contains(page, "<script>alert") {
		t.Fatalf("user content must be escaped in the rendered page")
	}
}

func TestRenderHTMLOmitsEmptySections(t *testing.T) {
	page, err := BuildItinerary(Trip{Name: "Kyoto"}).RenderHTML()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if strings.Contains(page, "<h2>Places</h2>") || strings.Contains(page, "<h2>Schedule</h2>") {
		t.Fatalf("empty sections must be omitted")
	}
	if !strings.Contains(page, "not set") {
		t.Fatalf("unset summary fields must render the placeholder")
	}
}

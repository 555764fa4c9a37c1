package planner

import (
	"html/template"
	"sort"
	"strings"
)

// ItineraryPlace is one entry in the exported places section.
type ItineraryPlace struct {
	Name string `json:"name"`
	Memo string `json:"memo,omitempty"`
}

// ItineraryItem is one scheduled activity within a day. StartTime is empty
// when the stored item has no start time; renderers substitute a
// placeholder marker.
type ItineraryItem struct {
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Text      string `json:"text"`
	Memo      string `json:"memo,omitempty"`
}

// ItineraryDay groups schedule items under one calendar day.
type ItineraryDay struct {
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

// ItineraryDocument is a standalone printable projection of a trip: title,
// summary block, places in stored order, schedule grouped by ascending
// date with items in ascending start-time order.
type ItineraryDocument struct {
	Title   string           `json:"title"`
	Date    string           `json:"date,omitempty"`
	EndDate string           `json:"endDate,omitempty"`
	Members string           `json:"members,omitempty"`
	Budget  string           `json:"budget,omitempty"`
	Places  []ItineraryPlace `json:"places,omitempty"`
	Days    []ItineraryDay   `json:"days,omitempty"`
}

// BuildItinerary assembles the exportable document from a trip. It is pure
// serialization: no persistence or network interaction.
func BuildItinerary(trip Trip) ItineraryDocument {
	doc := ItineraryDocument{
		Title:   trip.Name,
		Date:    trip.Date,
		EndDate: trip.EndDate,
		Members: trip.Members,
		Budget:  trip.Budget,
	}

	for _, place := range trip.Places {
		doc.Places = append(doc.Places, ItineraryPlace{Name: place.Name, Memo: place.Memo})
	}

	schedule := make([]ScheduleItem, len(trip.Schedule))
	copy(schedule, trip.Schedule)
	sort.SliceStable(schedule, func(i, j int) bool {
		if schedule[i].Date != schedule[j].Date {
			return schedule[i].Date < schedule[j].Date
		}
		// Items without a start time sort as earliest.
		return schedule[i].StartTime < schedule[j].StartTime
	})

	for _, item := range schedule {
		entry := ItineraryItem{
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Text:      item.Text,
			Memo:      item.Memo,
		}
		if len(doc.Days) == 0 || doc.Days[len(doc.Days)-1].Date != item.Date {
			doc.Days = append(doc.Days, ItineraryDay{Date: item.Date})
		}
		last := len(doc.Days) - 1
		doc.Days[last].Items = append(doc.Days[last].Items, entry)
	}

	return doc
}

var itineraryTemplate = template.Must(template.New("itinerary").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Itinerary - {{.Title}}</title>
<style>
body{font-family:sans-serif;max-width:700px;margin:0 auto;padding:24px;color:#333;}
h1{text-align:center;color:#7CB69D;border-bottom:3px solid #7CB69D;padding-bottom:12px;}
h2{color:#7CB69D;margin-top:24px;}
.info{background:#f5f5f5;padding:16px;border-radius:8px;margin:12px 0;}
.item{padding:8px 0;border-bottom:1px dashed #ddd;}
@media print{body{padding:0;}}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="info">
<b>Dates:</b> {{if .Date}}{{.Date}}{{if .EndDate}} - {{.EndDate}}{{end}}{{else}}not set{{end}}<br>
<b>Members:</b> {{if .Members}}{{.Members}}{{else}}not set{{end}}<br>
<b>Budget:</b> {{if .Budget}}{{.Budget}}{{else}}not set{{end}}
</div>
{{if .Places}}<h2>Places</h2>
{{range .Places}}<div class="item">{{.Name}}{{if .Memo}} - {{.Memo}}{{end}}</div>
{{end}}{{end}}{{if .Days}}<h2>Schedule</h2>
{{range .Days}}<h3>{{.Date}}</h3>
{{range .Items}}<div class="item">{{if .StartTime}}{{.StartTime}}{{else}}--:--{{end}} {{.Text}}{{if .Memo}} ({{.Memo}}){{end}}</div>
{{end}}{{end}}{{end}}</body>
</html>
`))

// RenderHTML serializes the document into a self-contained printable page.
func (doc ItineraryDocument) RenderHTML() (string, error) {
	var builder strings.Builder
	if err := itineraryTemplate.Execute(&builder, doc); err != nil {
		return "", err
	}
	return builder.String(), nil
}

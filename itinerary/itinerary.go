// Package itinerary defines the nested stops/days/activities document embedded
// in every trip and the codec that moves it in and out of storage.
package itinerary

import "encoding/json"

// Document is the root of a trip's itinerary. It is stored as a single JSON
// text column and replaced wholesale on every edit.
type Document struct {
	Stops []Stop `json:"stops"`
}

// Stop is one city visited during a trip, with its own date range and days.
type Stop struct {
	CityName      string   `json:"city_name"`
	State         string   `json:"state"`
	ArrivalDate   string   `json:"arrival_date"`
	DepartureDate string   `json:"departure_date"`
	Image         string   `json:"image"`
	StopCategory  []string `json:"stop_category"`
	Days          []Day    `json:"days"`
}

// Day is a single day of a stop with its planned activities.
type Day struct {
	DayNumber  int        `json:"day_number"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a planned activity inside a day. It is an itinerary entry, not
// a catalog record: the two carry different identity and fields.
type Activity struct {
	ActivityName  string  `json:"activity_name"`
	Time          string  `json:"time"`
	Duration      string  `json:"duration"`
	EstimatedCost float64 `json:"estimated_cost"`
	Category      string  `json:"category"`
	Notes         string  `json:"notes"`
}

// Empty returns the canonical empty document.
func Empty() Document {
	return Document{Stops: []Stop{}}
}

// Decode parses stored itinerary text into a Document. It is total: malformed
// or absent input degrades to the empty document, never an error. Stored trips
// predate any validation, so reads must accept whatever is in the column.
func Decode(raw string) Document {
	if raw == "" {
		return Empty()
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Empty()
	}
	if doc.Stops == nil {
		doc.Stops = []Stop{}
	}
	return doc
}

// Encode serializes a Document for storage. The field names are the stable
// external contract shared with stored documents and API clients.
func Encode(doc Document) string {
	if doc.Stops == nil {
		doc.Stops = []Stop{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		// Marshal cannot fail for this shape; keep the column well-formed anyway.
		return `{"stops": []}`
	}
	return string(data)
}

// StopCount returns the number of stops in the document.
func (d Document) StopCount() int {
	return len(d.Stops)
}

// DayCount returns the total number of days across all stops.
func (d Document) DayCount() int {
	count := 0
	for _, stop := range d.Stops {
		count += len(stop.Days)
	}
	return count
}

// ActivityCount returns the total number of activities across all stops and days.
func (d Document) ActivityCount() int {
	count := 0
	for _, stop := range d.Stops {
		for _, day := range stop.Days {
			count += len(day.Activities)
		}
	}
	return count
}

// EstimatedCost returns the sum of activity cost estimates in the document.
func (d Document) EstimatedCost() float64 {
	total := 0.0
	for _, stop := range d.Stops {
		for _, day := range stop.Days {
			for _, activity := range day.Activities {
				total += activity.EstimatedCost
			}
		}
	}
	return total
}

// Normalize renumbers days in place, sequentially across the whole document,
// 1-based in itinerary order. Stored documents are not required to satisfy
// this; it is offered for callers that want canonical numbering before display.
func (d *Document) Normalize() {
	number := 1
	for i := range d.Stops {
		for j := range d.Stops[i].Days {
			d.Stops[i].Days[j].DayNumber = number
			number++
		}
	}
}

package domain_models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Logistics describes how to move between two adjacent activities of a day.
type Logistics struct {
	TransportType     string `json:"transport_type"`
	EstimatedDuration string `json:"estimated_duration"`
	AdditionalNotes   string `json:"additional_notes,omitempty"`
}

// Activity is a single planned stop. Times are free text in HH:MM style and
// estimated_cost is free text on purpose ("Free", "15€", "40 USD").
type Activity struct {
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Location         string `json:"location"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	EstimatedCost    string `json:"estimated_cost"`
}

// Day is one day of the plan. logistics_between_activities is meant to hold
// one record per adjacent activity pair, but the model is not forced to
// honor that; renderers skip trailing records with no following activity.
type Day struct {
	Date                       string      `json:"date"`
	DayName                    string      `json:"day_name"`
	Activities                 []Activity  `json:"activities"`
	LogisticsBetweenActivities []Logistics `json:"logistics_between_activities"`
}

// TravelItinerary is the full plan handed to the session once generation
// succeeds. It is rebuilt wholesale on every request, never patched in place.
type TravelItinerary struct {
	Destination    string `json:"destination"`
	TotalDays      int    `json:"total_days"`
	MainTheme      string `json:"main_theme"`
	DailyItinerary []Day  `json:"daily_itinerary"`
}

func (l *Logistics) Validate() error {
	if strings.TrimSpace(l.TransportType) == "" {
		return fmt.Errorf("logistics: transport_type is required")
	}
	if strings.TrimSpace(l.EstimatedDuration) == "" {
		return fmt.Errorf("logistics: estimated_duration is required")
	}
	return nil
}

func (a *Activity) Validate() error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return fmt.Errorf("activity: name is required")
	case strings.TrimSpace(a.ShortDescription) == "":
		return fmt.Errorf("activity %q: short_description is required", a.Name)
	case strings.TrimSpace(a.Location) == "":
		return fmt.Errorf("activity %q: location is required", a.Name)
	case strings.TrimSpace(a.StartTime) == "":
		return fmt.Errorf("activity %q: start_time is required", a.Name)
	case strings.TrimSpace(a.EndTime) == "":
		return fmt.Errorf("activity %q: end_time is required", a.Name)
	case strings.TrimSpace(a.EstimatedCost) == "":
		return fmt.Errorf("activity %q: estimated_cost is required", a.Name)
	}
	return nil
}

func (d *Day) Validate() error {
	if strings.TrimSpace(d.Date) == "" {
		return fmt.Errorf("day: date is required")
	}
	if strings.TrimSpace(d.DayName) == "" {
		return fmt.Errorf("day: day_name is required")
	}
	if d.Activities == nil {
		return fmt.Errorf("day %q: activities list is required", d.DayName)
	}
	if d.LogisticsBetweenActivities == nil {
		return fmt.Errorf("day %q: logistics_between_activities list is required", d.DayName)
	}
	for i := range d.Activities {
		if err := d.Activities[i].Validate(); err != nil {
			return fmt.Errorf("day %q: %w", d.DayName, err)
		}
	}
	for i := range d.LogisticsBetweenActivities {
		if err := d.LogisticsBetweenActivities[i].Validate(); err != nil {
			return fmt.Errorf("day %q: %w", d.DayName, err)
		}
	}
	return nil
}

func (t *TravelItinerary) Validate() error {
	if strings.TrimSpace(t.Destination) == "" {
		return fmt.Errorf("itinerary: destination is required")
	}
	if t.TotalDays < 1 {
		return fmt.Errorf("itinerary: total_days must be positive, got %d", t.TotalDays)
	}
	if strings.TrimSpace(t.MainTheme) == "" {
		return fmt.Errorf("itinerary: main_theme is required")
	}
	if t.DailyItinerary == nil {
		return fmt.Errorf("itinerary: daily_itinerary list is required")
	}
	for i := range t.DailyItinerary {
		if err := t.DailyItinerary[i].Validate(); err != nil {
			return fmt.Errorf("itinerary day %d: %w", i+1, err)
		}
	}
	return nil
}

// Clone deep-copies the day so synthesized days never share slices with the
// fallback template.
func (d *Day) Clone() Day {
	out := Day{
		Date:                       d.Date,
		DayName:                    d.DayName,
		Activities:                 make([]Activity, len(d.Activities)),
		LogisticsBetweenActivities: make([]Logistics, len(d.LogisticsBetweenActivities)),
	}
	copy(out.Activities, d.Activities)
	copy(out.LogisticsBetweenActivities, d.LogisticsBetweenActivities)
	return out
}

// ParseItinerary decodes and validates a model response. Unknown fields are
// rejected so a structurally wrong document fails here instead of rendering
// half empty.
func ParseItinerary(data []byte) (*TravelItinerary, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()

	var itinerary TravelItinerary
	if err := dec.Decode(&itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	if err := itinerary.Validate(); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

package response_models

import (
	"fmt"

	"tripcast/internal/models/domain_models"
)

// ActivityRow is one row of a day's activity table.
type ActivityRow struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        string `json:"cost"`
}

// DayView is one tab of the rendered plan.
type DayView struct {
	Tab            string        `json:"tab"`
	Title          string        `json:"title"`
	Date           string        `json:"date"`
	Activities     []ActivityRow `json:"activities"`
	LogisticsNotes []string      `json:"logistics_notes"`
	HasAudio       bool          `json:"has_audio"`
}

// ItineraryView is the render-ready shape of a stored itinerary: header,
// theme line, model caption and one tab per day.
type ItineraryView struct {
	Header      string                         `json:"header"`
	Theme       string                         `json:"theme"`
	ActiveModel string                         `json:"active_model"`
	Days        []DayView                      `json:"days"`
	Itinerary   *domain_models.TravelItinerary `json:"itinerary"`
}

// BuildItineraryView flattens an itinerary into widgets. Logistics records
// with no following activity are skipped, matching the lenient validation of
// the logistics-per-pair invariant.
func BuildItineraryView(itinerary *domain_models.TravelItinerary, activeModel string, audio map[int][]byte) *ItineraryView {
	days := make([]DayView, 0, len(itinerary.DailyItinerary))
	for i, day := range itinerary.DailyItinerary {
		rows := make([]ActivityRow, 0, len(day.Activities))
		for _, act := range day.Activities {
			rows = append(rows, ActivityRow{
				Time:        fmt.Sprintf("%s - %s", act.StartTime, act.EndTime),
				Activity:    act.Name,
				Description: act.ShortDescription,
				Location:    act.Location,
				Cost:        act.EstimatedCost,
			})
		}

		notes := make([]string, 0, len(day.LogisticsBetweenActivities))
		for j, logistics := range day.LogisticsBetweenActivities {
			if j+1 >= len(day.Activities) {
				break
			}
			extra := logistics.AdditionalNotes
			if extra == "" {
				extra = "None"
			}
			notes = append(notes, fmt.Sprintf("Logistics to %s: %s (%s). Notes: %s",
				day.Activities[j+1].Name, logistics.TransportType, logistics.EstimatedDuration, extra))
		}

		_, hasAudio := audio[i]
		days = append(days, DayView{
			Tab:            fmt.Sprintf("Day %d", i+1),
			Title:          day.DayName,
			Date:           day.Date,
			Activities:     rows,
			LogisticsNotes: notes,
			HasAudio:       hasAudio,
		})
	}

	return &ItineraryView{
		Header:      fmt.Sprintf("Plan for %s (%d Days)", itinerary.Destination, len(itinerary.DailyItinerary)),
		Theme:       itinerary.MainTheme,
		ActiveModel: activeModel,
		Days:        days,
		Itinerary:   itinerary,
	}
}

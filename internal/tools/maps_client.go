package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const walkingCutoffSeconds = 1200

// MapsClient wraps the Google Maps Places and Directions REST endpoints.
// Every public method returns a descriptive string and never an error: the
// output is fed back to the language model, which copes better with a
// degraded sentence than with an aborted call.
type MapsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string

	cache *gocache.Cache
}

func NewMapsClient(apiKey string) *MapsClient {
	return &MapsClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://maps.googleapis.com/maps/api",
		cache:   gocache.New(30*time.Minute, 10*time.Minute),
	}
}

type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
}

type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
		Rating           float64  `json:"rating"`
		OpeningHours     *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"result"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Steps []struct {
				TravelMode string `json:"travel_mode"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetLocationDetails resolves a place name to type, rating and open/closed
// status. Any miss degrades to the standard "1.5 hours / Free" note.
func (m *MapsClient) GetLocationDetails(ctx context.Context, placeName string) string {
	if m.APIKey == "" {
		return fmt.Sprintf("Error: GOOGLE_MAPS_API_KEY is missing. Cannot fetch real details for %s.", placeName)
	}

	cacheKey := "place:" + placeName
	if cached, found := m.cache.Get(cacheKey); found {
		return cached.(string)
	}

	var found findPlaceResponse
	err := m.getJSON(ctx, "/place/findplacefromtext/json", url.Values{
		"input":     {placeName},
		"inputtype": {"textquery"},
		"fields":    {"place_id"},
		"key":       {m.APIKey},
	}, &found)
	if err != nil {
		return fmt.Sprintf("Details for %s: Network/API Request failed: %v", placeName, err)
	}
	if found.Status != "OK" || len(found.Candidates) == 0 {
		return fmt.Sprintf("Details for %s: Place not found. Using estimated duration of 1.5 hours and cost of Free.", placeName)
	}

	var details placeDetailsResponse
	err = m.getJSON(ctx, "/place/details/json", url.Values{
		"place_id": {found.Candidates[0].PlaceID},
		"fields":   {"name,type,opening_hours,formatted_address,price_level,rating,user_ratings_total"},
		"key":      {m.APIKey},
		"language": {"en"},
	}, &details)
	if err != nil {
		return fmt.Sprintf("Details for %s: Network/API Request failed: %v", placeName, err)
	}
	if details.Status != "OK" {
		return fmt.Sprintf("Details for %s: Detailed info unavailable. Using estimated duration of 1.5 hours and cost of Free.", placeName)
	}

	result := details.Result
	name := result.Name
	if name == "" {
		name = placeName
	}
	address := result.FormattedAddress
	if address == "" {
		address = "Unknown Address"
	}
	openingStatus := "Unknown Hours"
	if result.OpeningHours != nil && result.OpeningHours.OpenNow != nil {
		status := "Closed Now"
		if *result.OpeningHours.OpenNow {
			status = "Open Now"
		}
		openingStatus = fmt.Sprintf("Status: %s. Full Hours Check Recommended.", status)
	}
	rating := "N/A"
	if result.Rating > 0 {
		rating = fmt.Sprintf("%.1f", result.Rating)
	}

	summary := fmt.Sprintf(
		"Location: %s (%s). Type: %s. Rating: %s/5. %s. LLM Planner Note: Estimate duration based on attraction type (e.g., 2 hours for a major museum).",
		name, address, strings.Join(result.Types, ", "), rating, openingStatus)

	m.cache.Set(cacheKey, summary, gocache.DefaultExpiration)
	return summary
}

// CalculateTravelTime tries walking, then transit, then driving, and reports
// the first mode with a routable leg. Long walks are relabeled as transit.
func (m *MapsClient) CalculateTravelTime(ctx context.Context, fromLocation, toLocation string) string {
	if m.APIKey == "" {
		return fmt.Sprintf("Error: GOOGLE_MAPS_API_KEY is missing. Cannot calculate real travel time between %s and %s.", fromLocation, toLocation)
	}

	cacheKey := "route:" + fromLocation + "|" + toLocation
	if cached, found := m.cache.Get(cacheKey); found {
		return cached.(string)
	}

	for _, mode := range []string{"walking", "transit", "driving"} {
		var directions directionsResponse
		err := m.getJSON(ctx, "/directions/json", url.Values{
			"origin":      {fromLocation},
			"destination": {toLocation},
			"key":         {m.APIKey},
			"mode":        {mode},
			"language":    {"en"},
		}, &directions)
		if err != nil {
			continue
		}
		if directions.Status != "OK" || len(directions.Routes) == 0 || len(directions.Routes[0].Legs) == 0 {
			continue
		}

		leg := directions.Routes[0].Legs[0]
		transportType := capitalize(mode)
		note := ""
		switch {
		case mode == "walking" && leg.Duration.Value > walkingCutoffSeconds:
			transportType = "Transit/Bus"
			note = "Consider public transport or taxi since walking is long."
		case mode == "transit":
			transportType = "Transit"
			if len(leg.Steps) > 0 && leg.Steps[0].TravelMode != "" {
				transportType = leg.Steps[0].TravelMode
			}
			note = "Requires purchasing a ticket."
		}
		if note == "" {
			note = "None"
		}

		summary := fmt.Sprintf("Travel time: %s. Distance: %s. Transport: %s. Note: %s.",
			leg.Duration.Text, leg.Distance.Text, transportType, note)
		m.cache.Set(cacheKey, summary, gocache.DefaultExpiration)
		return summary
	}

	return fmt.Sprintf("Travel time: Route not found for walking, transit, or driving between %s and %s. Check locations.", fromLocation, toLocation)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m *MapsClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := m.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

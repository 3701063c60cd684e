package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const maxToolTurns = 7

// GeminiClient drives Gemini for both the schema-constrained itinerary call
// and the free-text summary call. When a dispatcher is present, itinerary
// generation is preceded by a bounded tool-calling research turn whose notes
// are folded into the final prompt; the final call itself carries the JSON
// schema and no tools.
type GeminiClient struct {
	client     *genai.Client
	model      string
	dispatcher ToolDispatcher
}

func NewGeminiClient(apiKey, model string, dispatcher ToolDispatcher) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model, dispatcher: dispatcher}, nil
}

func (c *GeminiClient) GenerateItinerary(ctx context.Context, destination string, days int, theme string) (string, error) {
	prompt := InitialPrompt(destination, days, theme)
	if notes := c.researchNotes(ctx, destination, days, theme); notes != "" {
		prompt = prompt + "\n\nResearch notes from live lookups:\n" + notes
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(SystemInstruction(destination, days, theme))}}
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = itinerarySchema()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return responseText(resp)
}

func (c *GeminiClient) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// researchNotes runs the optional grounding turn. Every failure path returns
// an empty string: grounding is best-effort and must never block planning.
func (c *GeminiClient) researchNotes(ctx context.Context, destination string, days int, theme string) string {
	if c.dispatcher == nil {
		return ""
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.Tools = []*genai.Tool{{FunctionDeclarations: toolDeclarations()}}

	cs := m.StartChat()
	resp, err := cs.SendMessage(ctx, genai.Text(ResearchPrompt(destination, days, theme)))
	if err != nil {
		return ""
	}

	for turn := 0; turn < maxToolTurns; turn++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}
		parts := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result := c.dispatcher.Dispatch(ctx, call.Name, call.Args)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": result},
			})
		}
		resp, err = cs.SendMessage(ctx, parts...)
		if err != nil {
			return ""
		}
	}

	text, err := responseText(resp)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if call, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return sb.String(), nil
}

// toolDeclarations mirrors the lookup functions the dispatcher implements.
func toolDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "get_location_details",
			Description: "Looks up key information about a place, including place type, rating, and whether it is currently open.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"place_name": {Type: genai.TypeString, Description: "The name of the location."},
				},
				Required: []string{"place_name"},
			},
		},
		{
			Name:        "calculate_travel_time",
			Description: "Calculates the estimated travel time and suggests the best transportation method between two locations.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from_location": {Type: genai.TypeString, Description: "The starting location for the travel time calculation."},
					"to_location":   {Type: genai.TypeString, Description: "The destination location for the travel time calculation."},
				},
				Required: []string{"from_location", "to_location"},
			},
		},
	}
}

// itinerarySchema is the response-format constraint for the final call. The
// field descriptions steer the model; required lists make every field except
// additional_notes mandatory.
func itinerarySchema() *genai.Schema {
	activity := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":              {Type: genai.TypeString, Description: "Name of the place to visit or activity to perform."},
			"short_description": {Type: genai.TypeString, Description: "Brief description of the place (maximum 2 sentences)."},
			"location":          {Type: genai.TypeString, Description: "Address or well-known reference point."},
			"start_time":        {Type: genai.TypeString, Description: "Activity start time in HH:MM format."},
			"end_time":          {Type: genai.TypeString, Description: "Activity end time in HH:MM format."},
			"estimated_cost":    {Type: genai.TypeString, Description: "Approximate cost per person (e.g., '15€', 'Free', '40 USD')."},
		},
		Required: []string{"name", "short_description", "location", "start_time", "end_time", "estimated_cost"},
	}

	logistics := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"transport_type":     {Type: genai.TypeString, Description: "Kind of transport (e.g., 'By foot', 'Metro L1', 'Taxi', 'Bus')."},
			"estimated_duration": {Type: genai.TypeString, Description: "Estimated time, including the waiting time (e.g., '15 min', '45 min', '1h 10min')."},
			"additional_notes":   {Type: genai.TypeString, Description: "Short instructions, like 'Buy metro ticket' or 'Use the red metro line'."},
		},
		Required: []string{"transport_type", "estimated_duration"},
	}

	day := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date":                         {Type: genai.TypeString, Description: "Date of the day in YYYY-MM-DD format."},
			"day_name":                     {Type: genai.TypeString, Description: "Descriptive name of the day (e.g., 'Historic Center Exploration', 'Museum Day')."},
			"activities":                   {Type: genai.TypeArray, Items: activity, Description: "Ordered list of activities planned for this day."},
			"logistics_between_activities": {Type: genai.TypeArray, Items: logistics, Description: "List of logistics to move between Activity[i] and Activity[i+1]."},
		},
		Required: []string{"date", "day_name", "activities", "logistics_between_activities"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"destination":     {Type: genai.TypeString, Description: "Main city or region of the trip."},
			"total_days":      {Type: genai.TypeInteger, Description: "Total number of days the itinerary covers."},
			"main_theme":      {Type: genai.TypeString, Description: "Theme or main focus of the trip (e.g., 'Cultural and Historical', 'Adventure and Nature')."},
			"daily_itinerary": {Type: genai.TypeArray, Items: day, Description: "List of the detailed planning, one 'Day' object for each day of the trip."},
		},
		Required: []string{"destination", "total_days", "main_theme", "daily_itinerary"},
	}
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

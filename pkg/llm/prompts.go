package llm

import "fmt"

// SystemInstruction is the planner persona. The wording demands a single
// schema-exact JSON object so the response can be validated structurally.
func SystemInstruction(destination string, days int, theme string) string {
	return fmt.Sprintf(
		"You are an expert travel planner. Your task is to create a detailed, daily travel itinerary in English for %s over %d days, focusing on the '%s' theme. You must output the FINAL, COMPLETE travel itinerary ONLY in a single JSON object that conforms STRICTLY to the provided JSON Schema.",
		destination, days, theme)
}

func InitialPrompt(destination string, days int, theme string) string {
	return fmt.Sprintf(
		"Plan a %d-day trip to %s with a focus on %s. Please provide the final, complete itinerary JSON now.",
		days, destination, theme)
}

// ResearchPrompt asks the model to ground the plan with the lookup tools
// before the schema-constrained turn.
func ResearchPrompt(destination string, days int, theme string) string {
	return fmt.Sprintf(
		"You are preparing a %d-day trip to %s focused on %s. Use the available tools to check key places and travel times between likely stops, then reply with a short plain-text list of research notes. Do not produce the itinerary yet.",
		days, destination, theme)
}

// SummaryPrompt builds the podcast-host request for one day. activitiesBlock
// is one line per activity: "- HH:MM-HH:MM: name. Description: …. Cost: …".
func SummaryPrompt(dayName, activitiesBlock string) string {
	return fmt.Sprintf(`You are a travel podcast host. Based on the following daily itinerary, write a concise,
enthusiastic, and easy-to-read summary (max 4-5 sentences, intended to be read aloud) of the day.
Focus on the most important activities.
The name of the day is: %q.
Activities:
%s

Write the final summary ONLY in English. Start with: 'Good morning! An incredible day awaits you...'`,
		dayName, activitiesBlock)
}

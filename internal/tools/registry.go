package tools

import (
	"context"
	"fmt"
)

// Registry maps tool names the model may call onto the maps client. It
// implements llm.ToolDispatcher.
type Registry struct {
	maps *MapsClient
}

func NewRegistry(maps *MapsClient) *Registry {
	return &Registry{maps: maps}
}

func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case "get_location_details":
		return r.maps.GetLocationDetails(ctx, stringArg(args, "place_name"))
	case "calculate_travel_time":
		return r.maps.CalculateTravelTime(ctx, stringArg(args, "from_location"), stringArg(args, "to_location"))
	default:
		return fmt.Sprintf("Error: unknown tool %q.", name)
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

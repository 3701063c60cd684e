package request_models

// GenerateItineraryRequest is the body of POST /itineraries/generate.
// Theme must be one of the fixed choices exposed by the UI.
type GenerateItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required"`
	Theme       string `json:"theme" binding:"required"`
}

var allowedThemes = []string{
	"Historical and Cultural",
	"Food and Leisure",
	"Adventure and Nature",
}

func (r *GenerateItineraryRequest) ThemeAllowed() bool {
	for _, t := range allowedThemes {
		if r.Theme == t {
			return true
		}
	}
	return false
}

func AllowedThemes() []string {
	out := make([]string, len(allowedThemes))
	copy(out, allowedThemes)
	return out
}

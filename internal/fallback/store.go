package fallback

import (
	"fmt"
	"os"

	"tripcast/internal/models/domain_models"
	"tripcast/pkg/utils"
)

// Theme markers distinguishing the two degraded-service paths.
const (
	MockMarker      = "[MOCK]"
	RetryFailMarker = "[MOCK/RETRY FAIL]"
)

// Store reads the bundled demo itinerary. The document is loaded fresh on
// every call so an operator can swap the file without a restart.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads and validates the fallback document. A missing, unreadable or
// day-less document is the floor of the fallback chain: there is nothing to
// degrade to below it.
func (s *Store) Load() (*domain_models.TravelItinerary, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrFallbackMissing, err)
	}
	itinerary, err := domain_models.ParseItinerary(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrFallbackMissing, err)
	}
	if len(itinerary.DailyItinerary) == 0 {
		return nil, fmt.Errorf("%w: document has no days", utils.ErrFallbackMissing)
	}
	return itinerary, nil
}

// ExpandForQuota builds the demo plan substituted when the live service
// reports quota exhaustion.
func (s *Store) ExpandForQuota(days int, destination, theme string) (*domain_models.TravelItinerary, error) {
	template, err := s.Load()
	if err != nil {
		return nil, err
	}
	label := fmt.Sprintf("Demo based on %s", template.DailyItinerary[0].DayName)
	return expand(template, days, destination, theme, MockMarker, label)
}

// ExpandForRetryFailure builds the demo plan substituted once the outer
// restart budget is spent on validation failures.
func (s *Store) ExpandForRetryFailure(days int, destination, theme string) (*domain_models.TravelItinerary, error) {
	template, err := s.Load()
	if err != nil {
		return nil, err
	}
	return expand(template, days, destination, theme, RetryFailMarker, "DEMO (JSON Error Fallback)")
}

// expand clones the first template day once per requested day, rewriting the
// per-index fields and re-validating each clone. Any clone failing validation
// aborts the whole expansion: a partially built itinerary is never returned.
func expand(template *domain_models.TravelItinerary, days int, destination, theme, marker, label string) (*domain_models.TravelItinerary, error) {
	templateDay := template.DailyItinerary[0]

	daily := make([]domain_models.Day, 0, days)
	for i := 0; i < days; i++ {
		day := templateDay.Clone()
		day.DayName = fmt.Sprintf("Day %d: %s", i+1, label)
		day.Date = fmt.Sprintf("2025-01-%02d", i+1)
		if err := day.Validate(); err != nil {
			return nil, fmt.Errorf("%w: mock day %d invalid: %v", utils.ErrFallbackMissing, i+1, err)
		}
		daily = append(daily, day)
	}

	return &domain_models.TravelItinerary{
		Destination:    destination,
		TotalDays:      days,
		MainTheme:      fmt.Sprintf("%s %s", marker, theme),
		DailyItinerary: daily,
	}, nil
}

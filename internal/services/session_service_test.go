package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcast/internal/models/domain_models"
	"tripcast/pkg/memcache"
	"tripcast/pkg/utils"
)

// scriptedPlanner fails with the retryable signal a fixed number of times,
// then succeeds with a canned itinerary.
type scriptedPlanner struct {
	failures  int
	calls     int
	itinerary *domain_models.TravelItinerary
	err       error
}

func (p *scriptedPlanner) Generate(ctx context.Context, destination string, days int, theme string) (*domain_models.TravelItinerary, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.calls <= p.failures {
		return nil, utils.ErrRetryableGeneration
	}
	return p.itinerary, nil
}

type countingAudio struct {
	calls int
	audio []byte
	err   error
}

func (a *countingAudio) Summarize(ctx context.Context, day domain_models.Day) ([]byte, error) {
	a.calls++
	return a.audio, a.err
}

func cannedItinerary(destination string, days int, theme string) *domain_models.TravelItinerary {
	daily := make([]domain_models.Day, 0, days)
	for i := 0; i < days; i++ {
		daily = append(daily, domain_models.Day{
			Date:    "2025-06-01",
			DayName: "Exploring",
			Activities: []domain_models.Activity{{
				Name:             "Museum",
				ShortDescription: "A museum visit.",
				Location:         "City center",
				StartTime:        "10:00",
				EndTime:          "12:00",
				EstimatedCost:    "Free",
			}},
			LogisticsBetweenActivities: []domain_models.Logistics{},
		})
	}
	return &domain_models.TravelItinerary{
		Destination:    destination,
		TotalDays:      days,
		MainTheme:      theme,
		DailyItinerary: daily,
	}
}

func newTestSessionService(planner PlannerServiceInterface, audio AudioServiceInterface, t *testing.T) (*SessionService, *memcache.SessionStore, *[]time.Duration) {
	store := memcache.NewSessionStore(time.Hour)
	sleeps := &[]time.Duration{}
	svc := &SessionService{
		sessions: store,
		planner:  planner,
		audio:    audio,
		fallback: testFallbackStore(t),
		cfg: SessionConfig{
			MaxAppRetries: 3,
			RetryDelay:    2 * time.Second,
			ActiveModel:   "gemini-2.5-flash",
		},
		sleep: func(d time.Duration) { *sleeps = append(*sleeps, d) },
		now:   time.Now,
	}
	return svc, store, sleeps
}

func TestGenerateItinerarySuccessStoresResult(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 2, "Food and Leisure")}
	svc, store, _ := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	view, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 2, "Food and Leisure")
	require.NoError(t, err)

	assert.Equal(t, "Plan for Rome, Italy (2 Days)", view.Header)
	assert.Equal(t, "gemini-2.5-flash", view.ActiveModel)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "Day 1", view.Days[0].Tab)

	session := store.Get(id)
	assert.Equal(t, memcache.StateIdle, session.State)
	assert.Equal(t, 0, session.RetryCount)
	assert.NotNil(t, session.Itinerary)
}

func TestGenerateItineraryOuterRetryLadder(t *testing.T) {
	// Two retryable failures, then success: three planner calls, two waits.
	planner := &scriptedPlanner{
		failures:  2,
		itinerary: cannedItinerary("Rome, Italy", 2, "Food and Leisure"),
	}
	svc, _, sleeps := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	view, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 2, "Food and Leisure")
	require.NoError(t, err)

	assert.Equal(t, 3, planner.calls)
	require.Len(t, *sleeps, 2)
	for _, d := range *sleeps {
		assert.Equal(t, 2*time.Second, d)
	}
	assert.Equal(t, "Food and Leisure", view.Theme)
}

func TestGenerateItineraryExhaustionFallsBackToMock(t *testing.T) {
	planner := &scriptedPlanner{failures: 100}
	svc, store, sleeps := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	view, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 3, "Food and Leisure")
	require.NoError(t, err)

	// The orchestrator is restarted at most MaxAppRetries times in total.
	assert.Equal(t, 3, planner.calls)
	assert.Len(t, *sleeps, 2)
	assert.Equal(t, "[MOCK/RETRY FAIL] Food and Leisure", view.Theme)
	require.Len(t, view.Days, 3)

	session := store.Get(id)
	assert.Equal(t, memcache.StateIdle, session.State)
}

func TestGenerateItineraryNonRetryableErrorPropagates(t *testing.T) {
	planner := &scriptedPlanner{err: utils.ErrGenerationUnavailable}
	svc, store, sleeps := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	_, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 2, "Food and Leisure")
	assert.ErrorIs(t, err, utils.ErrGenerationUnavailable)
	assert.Equal(t, 1, planner.calls)
	assert.Empty(t, *sleeps)

	session := store.Get(id)
	assert.Equal(t, memcache.StateIdle, session.State)
	assert.Nil(t, session.Itinerary)
}

func TestGenerateItineraryUnknownSession(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 1, "Food and Leisure")}
	svc, _, _ := newTestSessionService(planner, &countingAudio{}, t)

	_, err := svc.GenerateItinerary(context.Background(), "missing", "Rome, Italy", 1, "Food and Leisure")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestParameterChangeDiscardsResultAndAudio(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 2, "Food and Leisure")}
	svc, store, _ := newTestSessionService(planner, &countingAudio{audio: []byte("mp3")}, t)
	id := svc.CreateSession()

	_, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 2, "Food and Leisure")
	require.NoError(t, err)

	_, err = svc.DayAudio(context.Background(), id, 0)
	require.NoError(t, err)
	require.Len(t, store.Get(id).Audio, 1)

	planner.itinerary = cannedItinerary("Lisbon, Portugal", 2, "Food and Leisure")
	_, err = svc.GenerateItinerary(context.Background(), id, "Lisbon, Portugal", 2, "Food and Leisure")
	require.NoError(t, err)

	assert.Empty(t, store.Get(id).Audio)
}

func TestCurrentItinerary(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 1, "Food and Leisure")}
	svc, _, _ := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	_, err := svc.CurrentItinerary(id)
	assert.ErrorIs(t, err, utils.ErrNoItinerary)

	_, err = svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 1, "Food and Leisure")
	require.NoError(t, err)

	view, err := svc.CurrentItinerary(id)
	require.NoError(t, err)
	assert.Equal(t, "Plan for Rome, Italy (1 Days)", view.Header)
}

func TestDayAudioCachesPerDay(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 2, "Food and Leisure")}
	audio := &countingAudio{audio: []byte("mp3-bytes")}
	svc, _, _ := newTestSessionService(planner, audio, t)
	id := svc.CreateSession()

	_, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 2, "Food and Leisure")
	require.NoError(t, err)

	first, err := svc.DayAudio(context.Background(), id, 0)
	require.NoError(t, err)
	second, err := svc.DayAudio(context.Background(), id, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, audio.calls)

	_, err = svc.DayAudio(context.Background(), id, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, audio.calls)
}

func TestDayAudioBounds(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 1, "Food and Leisure")}
	svc, _, _ := newTestSessionService(planner, &countingAudio{}, t)
	id := svc.CreateSession()

	_, err := svc.DayAudio(context.Background(), id, 0)
	assert.ErrorIs(t, err, utils.ErrNoItinerary)

	_, err = svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 1, "Food and Leisure")
	require.NoError(t, err)

	_, err = svc.DayAudio(context.Background(), id, -1)
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)
	_, err = svc.DayAudio(context.Background(), id, 1)
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)
}

func TestAudioFailureIsNotCached(t *testing.T) {
	planner := &scriptedPlanner{itinerary: cannedItinerary("Rome, Italy", 1, "Food and Leisure")}
	audio := &countingAudio{err: utils.ErrAudioUnavailable}
	svc, _, _ := newTestSessionService(planner, audio, t)
	id := svc.CreateSession()

	_, err := svc.GenerateItinerary(context.Background(), id, "Rome, Italy", 1, "Food and Leisure")
	require.NoError(t, err)

	_, err = svc.DayAudio(context.Background(), id, 0)
	assert.ErrorIs(t, err, utils.ErrAudioUnavailable)

	// A manual retry reaches the pipeline again.
	audio.err = nil
	audio.audio = []byte("mp3")
	_, err = svc.DayAudio(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, audio.calls)
}

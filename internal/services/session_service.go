package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"tripcast/internal/fallback"
	"tripcast/internal/models/response_models"
	"tripcast/pkg/memcache"
	"tripcast/pkg/utils"
)

// SessionServiceInterface owns per-session state and the outer restart loop
// around the orchestrator.
type SessionServiceInterface interface {
	CreateSession() string
	GenerateItinerary(ctx context.Context, sessionID, destination string, days int, theme string) (*response_models.ItineraryView, error)
	CurrentItinerary(sessionID string) (*response_models.ItineraryView, error)
	DayAudio(ctx context.Context, sessionID string, dayIndex int) ([]byte, error)
}

type SessionConfig struct {
	// MaxAppRetries bounds the outer ladder: full restarts of the
	// generation after a content/validation failure.
	MaxAppRetries int
	RetryDelay    time.Duration
	ActiveModel   string
}

type SessionService struct {
	sessions *memcache.SessionStore
	planner  PlannerServiceInterface
	audio    AudioServiceInterface
	fallback *fallback.Store
	cfg      SessionConfig
	sleep    func(time.Duration)
	now      func() time.Time
}

func NewSessionService(
	sessions *memcache.SessionStore,
	planner PlannerServiceInterface,
	audio AudioServiceInterface,
	fallbackStore *fallback.Store,
	cfg SessionConfig,
) SessionServiceInterface {
	return &SessionService{
		sessions: sessions,
		planner:  planner,
		audio:    audio,
		fallback: fallbackStore,
		cfg:      cfg,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

func (s *SessionService) CreateSession() string {
	id := uuid.New().String()
	s.sessions.Create(id)
	return id
}

// GenerateItinerary runs the outer ladder: restart the whole generation on
// the distinguished retryable signal, up to MaxAppRetries calls with a fixed
// wait between them, then substitute the retry-failure demo plan.
func (s *SessionService) GenerateItinerary(ctx context.Context, sessionID, destination string, days int, theme string) (*response_models.ItineraryView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Destination != destination || session.Days != days || session.Theme != theme {
		session.ResetResult()
	}
	session.Destination = destination
	session.Days = days
	session.Theme = theme
	session.RetryCount = 0
	session.State = memcache.StateGenerating

	for {
		itinerary, err := s.planner.Generate(ctx, destination, days, theme)
		if err == nil {
			session.Itinerary = itinerary
			session.ActiveModel = s.cfg.ActiveModel
			session.RetryCount = 0
			session.State = memcache.StateIdle
			return response_models.BuildItineraryView(itinerary, session.ActiveModel, session.Audio), nil
		}

		if !errors.Is(err, utils.ErrRetryableGeneration) {
			session.State = memcache.StateIdle
			return nil, err
		}

		session.RetryCount++
		if session.RetryCount < s.cfg.MaxAppRetries {
			log.Printf("Transient generation error captured, automatic retry (%d/%d)", session.RetryCount, s.cfg.MaxAppRetries)
			session.LastResumeAt = s.now().Add(s.cfg.RetryDelay)
			s.sleep(s.cfg.RetryDelay)
			continue
		}

		log.Printf("%d consecutive validation failures, activating mock data fallback", s.cfg.MaxAppRetries)
		session.State = memcache.StateExhausted
		mock, ferr := s.fallback.ExpandForRetryFailure(days, destination, theme)
		if ferr != nil {
			session.State = memcache.StateIdle
			return nil, ferr
		}
		session.Itinerary = mock
		session.ActiveModel = s.cfg.ActiveModel
		session.RetryCount = 0
		session.State = memcache.StateIdle
		return response_models.BuildItineraryView(mock, session.ActiveModel, session.Audio), nil
	}
}

func (s *SessionService) CurrentItinerary(sessionID string) (*response_models.ItineraryView, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Itinerary == nil {
		return nil, utils.ErrNoItinerary
	}
	return response_models.BuildItineraryView(session.Itinerary, session.ActiveModel, session.Audio), nil
}

// DayAudio returns the cached MP3 for a day, synthesizing it on first use.
func (s *SessionService) DayAudio(ctx context.Context, sessionID string, dayIndex int) ([]byte, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	session.Lock()
	defer session.Unlock()

	if session.Itinerary == nil {
		return nil, utils.ErrNoItinerary
	}
	if dayIndex < 0 || dayIndex >= len(session.Itinerary.DailyItinerary) {
		return nil, utils.ErrDayOutOfRange
	}
	if audio, ok := session.Audio[dayIndex]; ok {
		return audio, nil
	}

	audio, err := s.audio.Summarize(ctx, session.Itinerary.DailyItinerary[dayIndex])
	if err != nil {
		return nil, err
	}
	session.Audio[dayIndex] = audio
	return audio, nil
}

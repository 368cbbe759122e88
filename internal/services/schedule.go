package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"conferencecompanion/internal/domain"
	"conferencecompanion/internal/schedule"
)

type scheduleService struct {
	fetcher        domain.FeedFetcher
	snapshots      domain.SnapshotRepository
	emails         domain.EmailService
	logger         *slog.Logger
	reportTo       string
	contextTimeout time.Duration

	// current holds the latest successful build per conference. Every import
	// replaces the whole value; readers share the same immutable snapshot.
	mu      sync.RWMutex
	current map[string]*domain.ConferenceSchedule
}

// NewScheduleService wires the schedule engine to its collaborators: the
// feed fetcher, the snapshot store, and the import report mailer. reportTo
// may be empty to disable diagnostics emails.
func NewScheduleService(fetcher domain.FeedFetcher, snapshots domain.SnapshotRepository, emails domain.EmailService, logger *slog.Logger, reportTo string, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		fetcher:        fetcher,
		snapshots:      snapshots,
		emails:         emails,
		logger:         logger,
		reportTo:       reportTo,
		contextTimeout: timeout,
		current:        make(map[string]*domain.ConferenceSchedule),
	}
}

func (s *scheduleService) ImportFeed(ctx context.Context, conferenceCode string) (*domain.ImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	feedData, err := s.fetcher.Fetch(ctx, conferenceCode)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	feedData.ConferenceCode = conferenceCode

	// Build before persisting: a feed that cannot build is not worth keeping
	// as the latest snapshot.
	built, err := schedule.BuildConference(feedData)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(feedData)
	if err != nil {
		return nil, fmt.Errorf("encode feed payload: %w", err)
	}
	snap := domain.NewFeedSnapshot(uuid.NewString(), conferenceCode, payload, time.Now().UTC())
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save feed snapshot: %w", err)
	}

	s.mu.Lock()
	s.current[conferenceCode] = built
	s.mu.Unlock()

	summary := &domain.ImportSummary{
		ConferenceCode: conferenceCode,
		SnapshotID:     snap.ID,
		Days:           len(built.Days),
		Diagnostics:    []domain.Diagnostic{},
		ImportedAt:     snap.FetchedAt,
	}
	for _, day := range built.Days {
		summary.Sessions += len(day.Items)
		summary.Diagnostics = append(summary.Diagnostics, day.Diagnostics...)
	}

	if len(summary.Diagnostics) > 0 && s.reportTo != "" && s.emails != nil {
		report := &domain.ImportReportEmailData{
			ConferenceCode: conferenceCode,
			Days:           summary.Days,
			Sessions:       summary.Sessions,
			Diagnostics:    summary.Diagnostics,
		}
		if err := s.emails.SendImportReport(ctx, s.reportTo, report); err != nil {
			// The report is best-effort; the import already succeeded.
			s.logger.WarnContext(ctx, "import report email failed", "conference", conferenceCode, "err", err)
		}
	}
	return summary, nil
}

// currentSchedule returns the cached build for the conference, rebuilding
// from the latest stored snapshot on a cold start.
func (s *scheduleService) currentSchedule(ctx context.Context, conferenceCode string) (*domain.ConferenceSchedule, error) {
	s.mu.RLock()
	built, ok := s.current[conferenceCode]
	s.mu.RUnlock()
	if ok {
		return built, nil
	}

	snap, err := s.snapshots.GetLatest(ctx, conferenceCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	var feedData domain.RawConferenceFeed
	if err := json.Unmarshal(snap.Payload, &feedData); err != nil {
		return nil, fmt.Errorf("decode snapshot payload: %w", err)
	}
	built, err = schedule.BuildConference(&feedData)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if cached, raced := s.current[conferenceCode]; raced {
		built = cached
	} else {
		s.current[conferenceCode] = built
	}
	s.mu.Unlock()
	return built, nil
}

func (s *scheduleService) ListDays(ctx context.Context, conferenceCode string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	built, err := s.currentSchedule(ctx, conferenceCode)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, len(built.Days))
	for _, day := range built.Days {
		days = append(days, day.Date)
	}
	return days, nil
}

func (s *scheduleService) GetDaySchedule(ctx context.Context, conferenceCode, date string) (*domain.DaySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	built, err := s.currentSchedule(ctx, conferenceCode)
	if err != nil {
		return nil, err
	}
	for _, day := range built.Days {
		if day.Date == date {
			return day, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *scheduleService) ChronologicalList(ctx context.Context, conferenceCode, date string) ([]domain.TimeGroup, error) {
	day, err := s.GetDaySchedule(ctx, conferenceCode, date)
	if err != nil {
		return nil, err
	}
	return schedule.ChronologicalList(day), nil
}

func (s *scheduleService) Search(ctx context.Context, conferenceCode, query string) ([]domain.ItemWithDuration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	built, err := s.currentSchedule(ctx, conferenceCode)
	if err != nil {
		return nil, err
	}
	return schedule.Search(built.Days, query), nil
}

func (s *scheduleService) NextSession(ctx context.Context, conferenceCode, slug string) (*domain.ItemWithDuration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	built, err := s.currentSchedule(ctx, conferenceCode)
	if err != nil {
		return nil, err
	}
	for _, day := range built.Days {
		for _, item := range day.Items {
			if item.Slug != slug {
				continue
			}
			if next, ok := schedule.NextInRoom(day, item); ok {
				return &next, nil
			}
			return nil, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *scheduleService) ListSnapshots(ctx context.Context, conferenceCode string, params domain.PaginationParams) ([]*domain.FeedSnapshot, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.snapshots.List(ctx, conferenceCode, params)
}

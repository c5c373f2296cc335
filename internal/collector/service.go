package collector

import (
	"context"
	"log/slog"
	"time"

	"fpl-data-collector/internal/domain"
	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/metrics"
	"fpl-data-collector/internal/providers"
	"fpl-data-collector/internal/timeutil"
)

// RowWriter persists an aggregated gameweek to the filesystem.
type RowWriter interface {
	WriteGameweek(season string, gameweek int, rows []domain.GameweekRow) (string, error)
}

// Result summarizes one completed collection run.
type Result struct {
	Season   string
	Gameweek int
	Rows     int
	Path     string
}

// Service runs one fetch-aggregate-write pass. All entities are created
// fresh from the live API on each run and discarded afterwards.
type Service struct {
	provider providers.StatsProvider
	writer   RowWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a collection service.
func NewService(provider providers.StatsProvider, writer RowWriter, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Run performs a single collection. Any fetch, join or write failure aborts
// the run and is returned to the caller; nothing is retried.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start := s.now()

	bootstrap, err := s.fetchBootstrap(ctx)
	if err != nil {
		return s.fail(start, err)
	}
	fixtures, err := s.fetchFixtures(ctx)
	if err != nil {
		return s.fail(start, err)
	}

	gameweek, err := CurrentGameweek(bootstrap.Events, fixtures)
	if err != nil {
		return s.fail(start, err)
	}

	live, err := s.fetchLive(ctx, gameweek)
	if err != nil {
		return s.fail(start, err)
	}

	rows, err := BuildRows(bootstrap, fixtures, live, gameweek)
	if err != nil {
		return s.fail(start, err)
	}

	season := timeutil.SeasonLabel(s.now())
	path, err := s.writer.WriteGameweek(season, gameweek, rows)
	if err != nil {
		return s.fail(start, err)
	}

	result := Result{Season: season, Gameweek: gameweek, Rows: len(rows), Path: path}
	if s.metrics != nil {
		s.metrics.RecordRunCycle(time.Since(start), nil)
		s.metrics.RecordRowsWritten(len(rows))
	}
	logging.Info(s.logger, "collection complete",
		logging.FieldSeason, season,
		logging.FieldGameweek, gameweek,
		logging.FieldCount, len(rows),
		logging.FieldPath, path,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (s *Service) fail(start time.Time, err error) (Result, error) {
	if s.metrics != nil {
		s.metrics.RecordRunCycle(time.Since(start), err)
	}
	logging.Error(s.logger, "collection failed", err,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return Result{}, err
}

func (s *Service) fetchBootstrap(ctx context.Context) (domain.Bootstrap, error) {
	start := time.Now()
	bootstrap, err := s.provider.FetchBootstrap(ctx)
	s.recordFetch("bootstrap-static", start, err)
	return bootstrap, err
}

func (s *Service) fetchFixtures(ctx context.Context) ([]domain.Fixture, error) {
	start := time.Now()
	fixtures, err := s.provider.FetchFixtures(ctx)
	s.recordFetch("fixtures", start, err)
	return fixtures, err
}

func (s *Service) fetchLive(ctx context.Context, gameweek int) (domain.LiveGameweek, error) {
	start := time.Now()
	live, err := s.provider.FetchLive(ctx, gameweek)
	s.recordFetch("live", start, err)
	return live, err
}

func (s *Service) recordFetch(endpoint string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.RecordFetchAttempt(endpoint, time.Since(start), err)
	}
}

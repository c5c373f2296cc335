package providers

import (
	"context"

	"fpl-data-collector/internal/domain"
)

// StatsProvider defines how upstream FPL data is fetched and normalized.
// Implementations return fully-typed domain structures; callers never see
// raw API payloads.
type StatsProvider interface {
	// FetchBootstrap retrieves the bootstrap-static payload: all players,
	// teams, positions and gameweek events in one call.
	FetchBootstrap(ctx context.Context) (domain.Bootstrap, error)
	// FetchFixtures retrieves the full fixture list for the season.
	FetchFixtures(ctx context.Context) ([]domain.Fixture, error)
	// FetchLive retrieves per-player stats for a single gameweek.
	FetchLive(ctx context.Context, gameweek int) (domain.LiveGameweek, error)
}
